package hours

import "strings"

// Weekday is the canonical day of week. Ordinals run Sunday=0 .. Saturday=6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const DaysPerWeek = 7

// AllWeekdays lists the days in ordinal order.
var AllWeekdays = [DaysPerWeek]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayKeys = [DaysPerWeek]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Key returns the lowercase weekday key, e.g. "friday".
func (d Weekday) Key() string {
	if !d.Valid() {
		return ""
	}
	return weekdayKeys[d]
}

func (d Weekday) String() string {
	return d.Key()
}

func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Add moves n days forward (or backward for negative n), wrapping around the week.
func (d Weekday) Add(n int) Weekday {
	return Weekday(((int(d)+n)%DaysPerWeek + DaysPerWeek) % DaysPerWeek)
}

// Yesterday is (index + 6) mod 7.
func (d Weekday) Yesterday() Weekday {
	return Weekday((int(d) + 6) % DaysPerWeek)
}

// ParseWeekdayKey accepts only canonical keys ("sunday" .. "saturday"), ignoring
// surrounding whitespace and case.
func ParseWeekdayKey(key string) (Weekday, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, k := range weekdayKeys {
		if k == key {
			return Weekday(i), true
		}
	}
	return 0, false
}
