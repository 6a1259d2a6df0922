package parser

import (
	"strings"
)

// ParseGoogleWeekdayText reads Places-style weekday descriptions such as
// "Monday: 6:00 AM – 11:00 PM", "Wednesday: Closed" or "Friday: Open 24 hours".
// Lines with an unknown weekday or unreadable hours are skipped.
func ParseGoogleWeekdayText(lines []string) (*Result, error) {
	b := newScheduleBuilder("google weekday text")
	for _, line := range lines {
		name, value, found := strings.Cut(line, ":")
		if !found {
			b.skip("", line, "missing ':' after weekday")
			continue
		}
		day, ok := lookupWeekday(name)
		if !ok {
			b.skip(strings.TrimSpace(name), line, "unrecognized weekday")
			continue
		}
		s, err := parseDayValue(value)
		if err != nil {
			b.skip(day.Key(), line, err.Error())
			continue
		}
		b.set(day, s, line)
	}
	return b.finish(strings.Join(lines, "\n"))
}
