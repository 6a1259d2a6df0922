package hours

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedSchedule is returned by Validate for out-of-range minutes.
var ErrMalformedSchedule = errors.New("malformed schedule")

// WeeklySchedule maps each weekday to a DaySchedule or leaves it unset. Unset
// means "no data", which is not the same as Closed. The zero value is an
// all-unset week. Values are never mutated after construction; With returns a copy.
type WeeklySchedule struct {
	days [DaysPerWeek]DaySchedule
}

// UnsetWeek returns a schedule with no data for any day.
func UnsetWeek() WeeklySchedule {
	return WeeklySchedule{}
}

// Day returns the schedule for d and whether it is set.
func (w WeeklySchedule) Day(d Weekday) (DaySchedule, bool) {
	if !d.Valid() || w.days[d] == nil {
		return nil, false
	}
	return w.days[d], true
}

// With returns a copy of w with d set to s. A nil s unsets the day.
func (w WeeklySchedule) With(d Weekday, s DaySchedule) WeeklySchedule {
	if !d.Valid() {
		return w
	}
	if sc, ok := s.(Scheduled); ok {
		s = DayWithIntervals(sc.intervals)
	}
	w.days[d] = s
	return w
}

// SetDays counts the days that carry data.
func (w WeeklySchedule) SetDays() int {
	n := 0
	for _, s := range w.days {
		if s != nil {
			n++
		}
	}
	return n
}

func (w WeeklySchedule) IsEmpty() bool {
	return w.SetDays() == 0
}

// Validate checks every interval lies within [0, 1439].
func (w WeeklySchedule) Validate() error {
	for i, s := range w.days {
		sc, ok := s.(Scheduled)
		if !ok {
			continue
		}
		for j, iv := range sc.intervals {
			if !iv.Valid() {
				return fmt.Errorf("%w: %s interval %d (%d-%d)", ErrMalformedSchedule, Weekday(i).Key(), j, iv.OpenMinute, iv.CloseMinute)
			}
		}
	}
	return nil
}

// MarshalJSON renders set days keyed by weekday; unset days are omitted.
func (w WeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]DaySchedule, DaysPerWeek)
	for i, s := range w.days {
		if s != nil {
			out[Weekday(i).Key()] = s
		}
	}
	return json.Marshal(out)
}
