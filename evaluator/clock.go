package evaluator

import (
	"fmt"
	"strings"
	"time"

	"cs-hours/models/hours"
)

// Clock is an instant seen from a venue's timezone.
type Clock struct {
	WeekdayIndex         int
	WeekdayKey           string
	MinutesSinceMidnight int
	YesterdayWeekdayKey  string
}

// Weekday returns the local day as a hours.Weekday.
func (c Clock) Weekday() hours.Weekday {
	return hours.Weekday(c.WeekdayIndex)
}

// ResolveClock converts instant to local weekday and minute in the IANA zone
// named by timezone. "" and "Local" are rejected: they would silently read
// as UTC or as whatever zone the host runs in.
func ResolveClock(timezone string, instant time.Time) (Clock, error) {
	tz := strings.TrimSpace(timezone)
	if tz == "" || tz == "Local" {
		return Clock{}, fmt.Errorf("%w: %q", hours.ErrInvalidTimezone, timezone)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q: %v", hours.ErrInvalidTimezone, timezone, err)
	}

	local := instant.In(loc)
	day := hours.Weekday(local.Weekday())
	return Clock{
		WeekdayIndex:         int(day),
		WeekdayKey:           day.Key(),
		MinutesSinceMidnight: local.Hour()*hours.MinutesPerHour + local.Minute(),
		YesterdayWeekdayKey:  day.Yesterday().Key(),
	}, nil
}
