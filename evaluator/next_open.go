package evaluator

import "cs-hours/models/hours"

// searchDays bounds the forward scan: today plus six days ahead.
const searchDays = hours.DaysPerWeek

// NextOpening is the next instant a venue opens, relative to the search start.
type NextOpening struct {
	Day          hours.Weekday
	Offset       int
	OpenMinute   int
	MinutesUntil int
}

// FindNextOpen scans from today (offset 0) through offset 6 for the first
// opening. At offset 0, shifts that opened at or before now are skipped.
// Closed and unset days are skipped.
func FindNextOpen(schedule hours.WeeklySchedule, today hours.Weekday, now int) (NextOpening, bool) {
	for offset := 0; offset < searchDays; offset++ {
		day := today.Add(offset)
		s, ok := schedule.Day(day)
		if !ok {
			continue
		}
		switch d := s.(type) {
		case hours.Closed:
			continue
		case hours.Open24Hours:
			until := 0
			if offset > 0 {
				until = offset*hours.MinutesPerDay - now
			}
			return NextOpening{Day: day, Offset: offset, OpenMinute: 0, MinutesUntil: until}, true
		case hours.Scheduled:
			for i := 0; i < d.Len(); i++ {
				iv := d.At(i)
				if offset == 0 && iv.OpenMinute <= now {
					continue
				}
				return NextOpening{
					Day:          day,
					Offset:       offset,
					OpenMinute:   iv.OpenMinute,
					MinutesUntil: offset*hours.MinutesPerDay - now + iv.OpenMinute,
				}, true
			}
		}
	}
	return NextOpening{}, false
}
