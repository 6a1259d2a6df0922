package hours

import "encoding/json"

// OpenState is the tri-state verdict. The zero value is Unknown so an
// uninitialised status never reads as open or closed.
type OpenState int

const (
	StateUnknown OpenState = iota
	StateOpen
	StateClosed
)

func (s OpenState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes open as true, closed as false and unknown as null.
func (s OpenState) MarshalJSON() ([]byte, error) {
	switch s {
	case StateOpen:
		return []byte("true"), nil
	case StateClosed:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (s *OpenState) UnmarshalJSON(data []byte) error {
	var b *bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	switch {
	case b == nil:
		*s = StateUnknown
	case *b:
		*s = StateOpen
	default:
		*s = StateClosed
	}
	return nil
}

// Failure names why a verdict is unknown.
type Failure string

const (
	FailureNone             Failure = ""
	FailureMissingTimezone  Failure = "missing_timezone"
	FailureInvalidTimezone  Failure = "invalid_timezone"
	FailureInvalidSchedule  Failure = "invalid_schedule"
	FailureNoScheduleForDay Failure = "no_schedule_for_day"
)

// OpenStatus is the verdict handed to consumers. ClosesAt and OpensAt are
// "HH:MM" local times; nil means none.
type OpenStatus struct {
	IsOpen            OpenState `json:"is_open"`
	ClosesAt          *string   `json:"closes_at"`
	OpensAt           *string   `json:"opens_at"`
	ClosingSoon       bool      `json:"closing_soon"`
	MinutesUntilClose *int      `json:"minutes_until_close"`
	MinutesUntilOpen  *int      `json:"minutes_until_open"`
	Reason            string    `json:"reason"`
	Failure           Failure   `json:"failure,omitempty"`
}

// UnknownStatus builds a verdict with no times attached.
func UnknownStatus(failure Failure, reason string) OpenStatus {
	return OpenStatus{IsOpen: StateUnknown, Reason: reason, Failure: failure}
}
