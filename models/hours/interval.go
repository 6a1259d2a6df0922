package hours

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
	MaxMinute      = MinutesPerDay - 1
)

// TimeInterval is one opening shift. ClosesNextDay marks a shift that runs past
// midnight into the following calendar day.
type TimeInterval struct {
	OpenMinute    int  `json:"open_minute"`
	CloseMinute   int  `json:"close_minute"`
	ClosesNextDay bool `json:"closes_next_day"`
}

// NewInterval builds an interval from minutes since midnight. An explicit
// closesNextDay=true is kept even when close > open.
func NewInterval(openMinute, closeMinute int, closesNextDay bool) TimeInterval {
	return TimeInterval{
		OpenMinute:    openMinute,
		CloseMinute:   closeMinute,
		ClosesNextDay: closesNextDay || closeMinute <= openMinute,
	}
}

// CreateInterval builds an interval from hour/minute pairs. Hour 24 is midnight.
func CreateInterval(openH, openM, closeH, closeM int) TimeInterval {
	return NewInterval(toMinutes(openH, openM), toMinutes(closeH, closeM), false)
}

// Valid reports whether both ends lie within the day.
func (i TimeInterval) Valid() bool {
	return inDay(i.OpenMinute) && inDay(i.CloseMinute)
}

func toMinutes(h, m int) int {
	if h == 24 {
		h = 0
	}
	return h*MinutesPerHour + m
}

func inDay(m int) bool {
	return m >= 0 && m <= MaxMinute
}
