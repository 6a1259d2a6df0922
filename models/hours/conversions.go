package hours

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesToTimeOfDay renders minutes since midnight as "HH:MM".
func MinutesToTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// MinutesToDisplay renders minutes since midnight as "H[:MM] AM/PM",
// e.g. 120 -> "2 AM", 1050 -> "5:30 PM".
func MinutesToDisplay(minutes int) string {
	h := minutes / MinutesPerHour
	m := minutes % MinutesPerHour
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	if m == 0 {
		return fmt.Sprintf("%d %s", h12, period)
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}

// TimeOfDayToMinutes parses "HH:MM" (or "H:MM"). Hour 24 is read as midnight.
// ok is false when the value is not a well-formed time of day.
func TimeOfDayToMinutes(hhmm string) (int, bool) {
	hs, ms, found := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !found || len(hs) == 0 || len(hs) > 2 || len(ms) != 2 || !allDigits(hs) || !allDigits(ms) {
		return 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, false
	}
	return toMinutes(h, m), true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
