// Package ratelimiter は外部 API 呼び出しの頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded(ctx context.Context) error
}

// RateLimiter は interval あたり limit 回までの呼び出しを許可するトークンバケットです。
type RateLimiter struct {
	limiter  *rate.Limiter
	limit    int
	interval time.Duration
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter は新しい RateLimiter のインスタンスを生成します。
// limit 回までは即座に通し、以降は interval/limit ごとに 1 回補充されます。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &RateLimiter{
		limiter:  rate.NewLimiter(rate.Every(interval/time.Duration(limit)), limit),
		limit:    limit,
		interval: interval,
	}
}

// WaitIfNeeded はトークンが空いていれば即座に戻り、そうでなければ補充まで待機します。
// ctx がキャンセルされた場合はそのエラーを返します。
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) error {
	r := rl.limiter.Reserve()
	if !r.OK() {
		return rl.limiter.Wait(ctx)
	}
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	slog.Info("rate limit reached, waiting", "limit", rl.limit, "interval", rl.interval, "delay", delay)
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
