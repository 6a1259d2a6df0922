package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"cs-hours/models/hours"
	"cs-hours/models/venue"
)

var errMissingTimes = errors.New("both open and close are required")

// ParseStructuredHours reads {"friday": {"open": "16:00", "close": "02:00"}}.
// Keys must be canonical weekday keys. closed wins over open_24h/is_24h,
// which win over the open/close pair.
func ParseStructuredHours(days map[string]venue.StructuredDay) (*Result, error) {
	b := newScheduleBuilder("structured hours")
	for _, key := range sortedKeys(days) {
		d := days[key]
		input := rawJSON(d)
		day, ok := hours.ParseWeekdayKey(key)
		if !ok {
			b.skip(key, input, "unrecognized weekday key")
			continue
		}
		s, err := structuredDay(d)
		if err != nil {
			b.skip(day.Key(), input, err.Error())
			continue
		}
		b.set(day, s, input)
	}
	return b.finish(rawJSON(days))
}

// ParseStructuredHoursJSON decodes the structured map before parsing it.
func ParseStructuredHoursJSON(data []byte) (*Result, error) {
	var days map[string]venue.StructuredDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, &ParseError{
			Message:  "invalid structured hours JSON",
			RawInput: string(data),
			Err:      err,
		}
	}
	return ParseStructuredHours(days)
}

func structuredDay(d venue.StructuredDay) (hours.DaySchedule, error) {
	switch {
	case d.Closed:
		return hours.ClosedDay(), nil
	case d.Open24h || d.Is24h:
		return hours.Open24HourDay(), nil
	case d.Open == "" || d.Close == "":
		return nil, errMissingTimes
	}
	open, ok := hours.TimeOfDayToMinutes(d.Open)
	if !ok {
		return nil, fmt.Errorf("invalid open time %q", d.Open)
	}
	closeMinute, ok := hours.TimeOfDayToMinutes(d.Close)
	if !ok {
		return nil, fmt.Errorf("invalid close time %q", d.Close)
	}
	return hours.DayWithIntervals([]hours.TimeInterval{
		hours.NewInterval(open, closeMinute, d.ClosesNextDay),
	}), nil
}
