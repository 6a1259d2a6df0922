package hours

import "errors"

var (
	ErrMissingTimezone  = errors.New("missing timezone")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrInvalidSchedule  = errors.New("missing or invalid schedule")
	ErrNoScheduleForDay = errors.New("no schedule for day")
)

var failureErrors = map[Failure]error{
	FailureMissingTimezone:  ErrMissingTimezone,
	FailureInvalidTimezone:  ErrInvalidTimezone,
	FailureInvalidSchedule:  ErrInvalidSchedule,
	FailureNoScheduleForDay: ErrNoScheduleForDay,
}

// Err returns the sentinel matching s.Failure, or nil for a determined verdict.
func (s OpenStatus) Err() error {
	return failureErrors[s.Failure]
}
