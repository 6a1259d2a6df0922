package hours

import (
	"encoding/json"
	"fmt"
)

// DaySchedule is exactly one of Closed, Open24Hours or Scheduled. The unexported
// marker keeps other packages from adding variants.
type DaySchedule interface {
	isDaySchedule()
	fmt.Stringer
}

// Closed marks a day without opening hours.
type Closed struct{}

// Open24Hours marks a day open around the clock.
type Open24Hours struct{}

// Scheduled holds a day's shifts in the order they were supplied.
type Scheduled struct {
	intervals []TimeInterval
}

func (Closed) isDaySchedule()      {}
func (Open24Hours) isDaySchedule() {}
func (Scheduled) isDaySchedule()   {}

func (Closed) String() string      { return "closed" }
func (Open24Hours) String() string { return "open 24 hours" }

func (s Scheduled) String() string {
	out := ""
	for i, iv := range s.intervals {
		if i > 0 {
			out += ", "
		}
		out += MinutesToTimeOfDay(iv.OpenMinute) + "-" + MinutesToTimeOfDay(iv.CloseMinute)
	}
	return out
}

// Intervals returns a copy of the day's shifts.
func (s Scheduled) Intervals() []TimeInterval {
	out := make([]TimeInterval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

func (s Scheduled) Len() int {
	return len(s.intervals)
}

// At returns the i-th shift without copying the whole list.
func (s Scheduled) At(i int) TimeInterval {
	return s.intervals[i]
}

func ClosedDay() DaySchedule {
	return Closed{}
}

func Open24HourDay() DaySchedule {
	return Open24Hours{}
}

// DayWithIntervals copies the list so later edits by the caller do not leak in.
func DayWithIntervals(intervals []TimeInterval) DaySchedule {
	cp := make([]TimeInterval, len(intervals))
	copy(cp, intervals)
	return Scheduled{intervals: cp}
}

type dayScheduleJSON struct {
	Status    string         `json:"status"`
	Intervals []intervalJSON `json:"intervals,omitempty"`
}

type intervalJSON struct {
	Opens         string `json:"opens"`
	Closes        string `json:"closes"`
	OpenMinute    int    `json:"open_minute"`
	CloseMinute   int    `json:"close_minute"`
	ClosesNextDay bool   `json:"closes_next_day"`
}

func (Closed) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayScheduleJSON{Status: "closed"})
}

func (Open24Hours) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayScheduleJSON{Status: "open_24h"})
}

func (s Scheduled) MarshalJSON() ([]byte, error) {
	out := dayScheduleJSON{Status: "scheduled", Intervals: make([]intervalJSON, 0, len(s.intervals))}
	for _, iv := range s.intervals {
		out.Intervals = append(out.Intervals, intervalJSON{
			Opens:         MinutesToTimeOfDay(iv.OpenMinute),
			Closes:        MinutesToTimeOfDay(iv.CloseMinute),
			OpenMinute:    iv.OpenMinute,
			CloseMinute:   iv.CloseMinute,
			ClosesNextDay: iv.ClosesNextDay,
		})
	}
	return json.Marshal(out)
}
