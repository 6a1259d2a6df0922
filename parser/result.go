package parser

import (
	"errors"
	"fmt"

	"cs-hours/models/hours"
)

var (
	// ErrNoUsableDays means not a single day of the input could be parsed.
	ErrNoUsableDays = errors.New("no parseable days")
	// ErrUnknownFormat means RawHours named a format no parser handles.
	ErrUnknownFormat = errors.New("unknown hours format")
)

// Diagnostic records an entry that was skipped. The day it refers to is left
// unset in the schedule.
type Diagnostic struct {
	Day     string `json:"day,omitempty"`
	Input   string `json:"input"`
	Message string `json:"message"`
}

// Result is a successful parse: at least one day carries a schedule.
type Result struct {
	Schedule    hours.WeeklySchedule `json:"schedule"`
	Diagnostics []Diagnostic         `json:"diagnostics,omitempty"`
}

// ParseError is a failed parse.
type ParseError struct {
	Message     string
	RawInput    string
	Diagnostics []Diagnostic
	Err         error
}

func (e *ParseError) Error() string {
	if e.Err == nil || errors.Is(e.Err, ErrNoUsableDays) || errors.Is(e.Err, ErrUnknownFormat) {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// scheduleBuilder accumulates days for one parse call. The first entry for a
// day wins, later ones become diagnostics.
type scheduleBuilder struct {
	source      string
	schedule    hours.WeeklySchedule
	diagnostics []Diagnostic
}

func newScheduleBuilder(source string) *scheduleBuilder {
	return &scheduleBuilder{source: source, schedule: hours.UnsetWeek()}
}

func (b *scheduleBuilder) skip(day, input, message string) {
	b.diagnostics = append(b.diagnostics, Diagnostic{Day: day, Input: input, Message: message})
}

func (b *scheduleBuilder) set(day hours.Weekday, s hours.DaySchedule, input string) {
	if _, exists := b.schedule.Day(day); exists {
		b.skip(day.Key(), input, "duplicate entry for "+day.Key()+", keeping the first")
		return
	}
	b.schedule = b.schedule.With(day, s)
}

func (b *scheduleBuilder) finish(rawInput string) (*Result, error) {
	if b.schedule.IsEmpty() {
		return nil, &ParseError{
			Message:     fmt.Sprintf("no parseable days in %s", b.source),
			RawInput:    rawInput,
			Diagnostics: b.diagnostics,
			Err:         ErrNoUsableDays,
		}
	}
	return &Result{Schedule: b.schedule, Diagnostics: b.diagnostics}, nil
}
