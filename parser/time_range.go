package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cs-hours/models/hours"
)

var (
	dashReplacer  = strings.NewReplacer("\u2013", "-", "\u2014", "-")
	spaceReplacer = strings.NewReplacer("\u202f", " ", "\u2009", " ", "\u00a0", " ")

	twelveHourPattern     = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m\.?$`)
	bareTwelveHourPattern = regexp.MustCompile(`^(0?[1-9]|1[0-2])(?::[0-5]\d)?$`)
)

var (
	errEmptyValue    = errors.New("empty hours value")
	errBadRange      = errors.New("expected two times separated by a dash")
	errAmbiguousTime = errors.New("time without AM/PM next to a 12-hour time")
)

// parseDayValue reads one day's value: "closed", "open 24 hours", or one or
// more comma-separated ranges.
func parseDayValue(value string) (hours.DaySchedule, error) {
	v := strings.TrimSpace(spaceReplacer.Replace(value))
	lower := strings.ToLower(v)
	switch {
	case lower == "":
		return nil, errEmptyValue
	case lower == "closed":
		return hours.ClosedDay(), nil
	case strings.Contains(lower, "24 hours"):
		return hours.Open24HourDay(), nil
	}

	var intervals []hours.TimeInterval
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		iv, err := parseRange(part)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", part, err)
		}
		intervals = append(intervals, iv)
	}
	if len(intervals) == 0 {
		return nil, errEmptyValue
	}
	return hours.DayWithIntervals(intervals), nil
}

// parseRange reads "<time> - <time>" with a hyphen, en-dash or em-dash.
func parseRange(s string) (hours.TimeInterval, error) {
	parts := strings.Split(dashReplacer.Replace(s), "-")
	if len(parts) != 2 {
		return hours.TimeInterval{}, errBadRange
	}
	openTok, closeTok, err := sharePeriod(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	if err != nil {
		return hours.TimeInterval{}, err
	}
	open, err := parseTimeToken(openTok)
	if err != nil {
		return hours.TimeInterval{}, err
	}
	closeMinute, err := parseTimeToken(closeTok)
	if err != nil {
		return hours.TimeInterval{}, err
	}
	return hours.NewInterval(open, closeMinute, false), nil
}

// sharePeriod handles "5:00 - 10:00 PM", where the opening time borrows the
// closing time's AM/PM. A bare token next to a 12-hour one must itself be a
// 12-hour clock value, otherwise the range is ambiguous.
func sharePeriod(openTok, closeTok string) (string, string, error) {
	om := twelveHourPattern.FindStringSubmatch(openTok)
	cm := twelveHourPattern.FindStringSubmatch(closeTok)
	switch {
	case om == nil && cm != nil:
		if !bareTwelveHourPattern.MatchString(openTok) {
			return "", "", fmt.Errorf("%w: %q", errAmbiguousTime, openTok)
		}
		return openTok + " " + cm[3] + "m", closeTok, nil
	case om != nil && cm == nil:
		if !bareTwelveHourPattern.MatchString(closeTok) {
			return "", "", fmt.Errorf("%w: %q", errAmbiguousTime, closeTok)
		}
		return openTok, closeTok + " " + om[3] + "m", nil
	}
	return openTok, closeTok, nil
}

// parseTimeToken reads "H[:MM] AM|PM" or "HH:MM" (24:00 is midnight).
func parseTimeToken(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	if m := twelveHourPattern.FindStringSubmatch(tok); m != nil {
		h, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if h < 1 || h > 12 || minute > 59 {
			return 0, fmt.Errorf("invalid time %q", tok)
		}
		h %= 12
		if strings.EqualFold(m[3], "p") {
			h += 12
		}
		return h*hours.MinutesPerHour + minute, nil
	}
	if minutes, ok := hours.TimeOfDayToMinutes(tok); ok {
		return minutes, nil
	}
	return 0, fmt.Errorf("invalid time %q", tok)
}
