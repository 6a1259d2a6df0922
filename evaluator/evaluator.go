// Package evaluator answers "is this venue open right now, and when does that
// change?" for a weekly schedule, an IANA timezone and an instant. Everything
// here is pure: the same inputs always give the same OpenStatus.
package evaluator

import (
	"fmt"
	"strings"
	"time"

	"cs-hours/models/hours"
)

// ClosingSoonMinutes is the largest remaining open time reported as closing soon.
const ClosingSoonMinutes = 60

// GetOpenStatus evaluates schedule at instant in timezone. It never falls back
// to a default zone or schedule; anything it cannot decide is StateUnknown
// with a reason.
func GetOpenStatus(schedule *hours.WeeklySchedule, timezone string, instant time.Time) hours.OpenStatus {
	if strings.TrimSpace(timezone) == "" {
		return hours.UnknownStatus(hours.FailureMissingTimezone, "missing timezone")
	}
	if schedule == nil || schedule.Validate() != nil {
		return hours.UnknownStatus(hours.FailureInvalidSchedule, "missing or invalid schedule")
	}
	clock, err := ResolveClock(timezone, instant)
	if err != nil {
		return hours.UnknownStatus(hours.FailureInvalidTimezone, "invalid timezone: "+timezone)
	}

	now := clock.MinutesSinceMidnight
	today := clock.Weekday()
	todaySchedule, todaySet := schedule.Day(today)

	// Yesterday's overnight shift has to be checked before today's own shifts.
	if iv, ok := yesterdaySpillover(*schedule, today, todaySchedule, now); ok {
		return openStatus(iv.CloseMinute, iv.CloseMinute-now,
			fmt.Sprintf("open until %s (from yesterday's shift)", hours.MinutesToDisplay(iv.CloseMinute)))
	}

	if !todaySet {
		return hours.UnknownStatus(hours.FailureNoScheduleForDay, "no schedule for "+today.Key())
	}

	switch day := todaySchedule.(type) {
	case hours.Closed:
		status := closedStatus("closed on " + today.Key())
		if next, ok := FindNextOpen(*schedule, today, now); ok {
			withOpening(&status, next)
		}
		return status
	case hours.Open24Hours:
		return hours.OpenStatus{IsOpen: hours.StateOpen, Reason: "open 24 hours"}
	case hours.Scheduled:
		if status, ok := activeToday(day, now); ok {
			return status
		}
		for i := 0; i < day.Len(); i++ {
			iv := day.At(i)
			if iv.OpenMinute > now {
				status := closedStatus("opens at " + hours.MinutesToDisplay(iv.OpenMinute))
				withOpening(&status, NextOpening{Day: today, OpenMinute: iv.OpenMinute, MinutesUntil: iv.OpenMinute - now})
				return status
			}
		}
	}

	next, ok := FindNextOpen(*schedule, today, now)
	if !ok {
		return closedStatus("currently closed")
	}
	status := closedStatus(fmt.Sprintf("opens %s at %s", next.Day.Key(), hours.MinutesToDisplay(next.OpenMinute)))
	withOpening(&status, next)
	return status
}

// yesterdaySpillover finds the first overnight shift of yesterday still running
// at now. From today's own first opening onwards the time belongs to today.
func yesterdaySpillover(schedule hours.WeeklySchedule, today hours.Weekday, todaySchedule hours.DaySchedule, now int) (hours.TimeInterval, bool) {
	s, _ := schedule.Day(today.Yesterday())
	yesterday, ok := s.(hours.Scheduled)
	if !ok {
		return hours.TimeInterval{}, false
	}
	if opening, ok := firstOpening(todaySchedule); ok && now >= opening {
		return hours.TimeInterval{}, false
	}
	for i := 0; i < yesterday.Len(); i++ {
		iv := yesterday.At(i)
		if iv.ClosesNextDay && now < iv.CloseMinute {
			return iv, true
		}
	}
	return hours.TimeInterval{}, false
}

// activeToday returns the status for the first of today's shifts covering now.
// An overnight shift only counts from its opening minute; the early-morning
// part belongs to the previous day's spillover.
func activeToday(day hours.Scheduled, now int) (hours.OpenStatus, bool) {
	for i := 0; i < day.Len(); i++ {
		iv := day.At(i)
		if iv.ClosesNextDay {
			if now >= iv.OpenMinute {
				return openStatus(iv.CloseMinute, hours.MinutesPerDay-now+iv.CloseMinute,
					"open until "+hours.MinutesToDisplay(iv.CloseMinute)), true
			}
			continue
		}
		if iv.OpenMinute <= now && now < iv.CloseMinute {
			return openStatus(iv.CloseMinute, iv.CloseMinute-now,
				"open until "+hours.MinutesToDisplay(iv.CloseMinute)), true
		}
	}
	return hours.OpenStatus{}, false
}

func firstOpening(s hours.DaySchedule) (int, bool) {
	switch d := s.(type) {
	case hours.Open24Hours:
		return 0, true
	case hours.Scheduled:
		if d.Len() == 0 {
			return 0, false
		}
		earliest := d.At(0).OpenMinute
		for i := 1; i < d.Len(); i++ {
			if open := d.At(i).OpenMinute; open < earliest {
				earliest = open
			}
		}
		return earliest, true
	}
	return 0, false
}

func openStatus(closeMinute, untilClose int, reason string) hours.OpenStatus {
	closesAt := hours.MinutesToTimeOfDay(closeMinute)
	return hours.OpenStatus{
		IsOpen:            hours.StateOpen,
		ClosesAt:          &closesAt,
		ClosingSoon:       untilClose <= ClosingSoonMinutes,
		MinutesUntilClose: &untilClose,
		Reason:            reason,
	}
}

func closedStatus(reason string) hours.OpenStatus {
	return hours.OpenStatus{IsOpen: hours.StateClosed, Reason: reason}
}

func withOpening(status *hours.OpenStatus, next NextOpening) {
	opensAt := hours.MinutesToTimeOfDay(next.OpenMinute)
	until := next.MinutesUntil
	status.OpensAt = &opensAt
	status.MinutesUntilOpen = &until
}
