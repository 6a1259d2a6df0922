package parser

import (
	"fmt"
	"strconv"

	"cs-hours/models/hours"
	"cs-hours/models/venue"
)

// ParseBestTimeHours reads BestTime's venue_open_close_v2 days. The day is taken
// from day_text, falling back to day_int (Monday=0). crosses_midnight applies
// to the day's last shift.
func ParseBestTimeHours(days []venue.DayInfoV2) (*Result, error) {
	b := newScheduleBuilder("besttime hours")
	for _, d := range days {
		input := rawJSON(d)
		day, ok := lookupWeekday(d.DayText)
		if !ok {
			if d.DayInt < 0 || d.DayInt >= hours.DaysPerWeek {
				b.skip(d.DayText, input, "unrecognized day "+strconv.Itoa(d.DayInt))
				continue
			}
			day = hours.Monday.Add(d.DayInt)
		}
		s, err := bestTimeDay(d)
		if err != nil {
			b.skip(day.Key(), input, err.Error())
			continue
		}
		b.set(day, s, input)
	}
	return b.finish(rawJSON(days))
}

func bestTimeDay(d venue.DayInfoV2) (hours.DaySchedule, error) {
	if d.Open24H {
		return hours.Open24HourDay(), nil
	}
	if len(d.H24) == 0 {
		return hours.ClosedDay(), nil
	}
	intervals := make([]hours.TimeInterval, 0, len(d.H24))
	for i, oc := range d.H24 {
		open, err := bestTimeMinute(oc.Opens, oc.OpensMinutes)
		if err != nil {
			return nil, fmt.Errorf("opens: %w", err)
		}
		closeMinute, err := bestTimeMinute(oc.Closes, oc.ClosesMinutes)
		if err != nil {
			return nil, fmt.Errorf("closes: %w", err)
		}
		last := i == len(d.H24)-1
		intervals = append(intervals, hours.NewInterval(open, closeMinute, last && d.CrossesMidnight))
	}
	return hours.DayWithIntervals(intervals), nil
}

func bestTimeMinute(hour, minute int) (int, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("invalid time %d:%02d", hour, minute)
	}
	return (hour%24)*hours.MinutesPerHour + minute, nil
}
