package cache

import (
	"time"
)

// RefreshHour は米国市場の終値が確定し、日次データが更新される時刻（ニューヨーク時間）です。
const RefreshHour = 18

// TimeUntilNextRefresh は次の日次更新（ニューヨーク時間 18 時）までの期間を返します。
func TimeUntilNextRefresh() time.Duration {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.UTC
	}
	return timeUntilNext(time.Now(), RefreshHour, loc)
}

// timeUntilNext は now から見て次に loc で hour 時になるまでの期間を返します。
func timeUntilNext(now time.Time, hour int, loc *time.Location) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// 今日の更新時刻が既に過ぎている場合は翌日を使用
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
