package intrinio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

var timeOfDayPattern = regexp.MustCompile(`^(?:0?[0-9]|1[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateTimeParam parses a 24-hour "hh:mm" string (leading zero optional)
// into the offset from midnight.
func ValidateTimeParam(s string) (time.Duration, error) {
	if !timeOfDayPattern.MatchString(s) {
		return 0, &InvalidArgumentError{Operation: "ValidateTimeParam", Param: "hhmm", Reason: fmt.Sprintf("%q is not a valid time, expected hh:mm (24-hour)", s)}
	}
	hh, mm, _ := strings.Cut(s, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// CombineDateTime returns date at the given time of day, in UTC.
func CombineDateTime(date types.Date, hhmm string) (time.Time, error) {
	offset, err := ValidateTimeParam(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Time.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC).Add(offset), nil
}

// setDateTime adds a date/time-of-day pair. Only a time given together with
// its date is validated; the date is then sent as the combined instant. A
// lone date or time is passed through as a plain optional parameter.
func setDateTime(r *request, dateName, timeName string, date *types.Date, hhmm *string) {
	if date == nil || hhmm == nil {
		setQuery(r, dateName, date)
		setQuery(r, timeName, hhmm)
		return
	}
	at, err := CombineDateTime(*date, *hhmm)
	if err != nil {
		r.fail(timeName, err.(*InvalidArgumentError).Reason)
		return
	}
	addQuery(r, dateName, at)
	addQuery(r, timeName, *hhmm)
}
