package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"cs-hours/dao/redis"
	"cs-hours/evaluator"
	"cs-hours/models/hours"
	"cs-hours/models/venue"
	"cs-hours/parser"
)

// VenueStatus pairs a stored venue with its open status at request time.
type VenueStatus struct {
	Venue  venue.Venue      `json:"venue"`
	Status hours.OpenStatus `json:"status"`
}

// VenueSchedule is the canonical weekly schedule of a stored venue.
type VenueSchedule struct {
	VenueID     string               `json:"venue_id"`
	VenueName   string               `json:"venue_name"`
	Timezone    string               `json:"timezone"`
	Schedule    hours.WeeklySchedule `json:"schedule"`
	Diagnostics []parser.Diagnostic  `json:"diagnostics,omitempty"`
}

// Evaluation is the outcome of evaluating caller-supplied raw hours.
type Evaluation struct {
	Status      hours.OpenStatus     `json:"status"`
	EvaluatedAt time.Time            `json:"evaluated_at"`
	Schedule    hours.WeeklySchedule `json:"schedule"`
	Diagnostics []parser.Diagnostic  `json:"diagnostics,omitempty"`
}

// VenueHoursService answers open/closed questions for stored venues. Verdicts
// are computed on every call from the stored raw hours.
type VenueHoursService struct {
	venueDao *redis.RedisVenueDAO
	now      func() time.Time
}

// NewVenueHoursService constructs a VenueHoursService. A nil now uses time.Now.
func NewVenueHoursService(venueDao *redis.RedisVenueDAO, now func() time.Time) *VenueHoursService {
	if now == nil {
		now = time.Now
	}
	return &VenueHoursService{venueDao: venueDao, now: now}
}

// GetOpenStatus evaluates a stored venue at the current instant. Hours that
// cannot be parsed produce an unknown verdict, not an error.
func (s *VenueHoursService) GetOpenStatus(ctx context.Context, venueID string) (hours.OpenStatus, error) {
	v, err := s.venueDao.GetVenue(ctx, venueID)
	if err != nil {
		return hours.OpenStatus{}, err
	}
	return s.statusAt(ctx, *v, s.now()), nil
}

// GetSchedule parses a stored venue's hours into the canonical schedule.
func (s *VenueHoursService) GetSchedule(ctx context.Context, venueID string) (*VenueSchedule, error) {
	v, err := s.venueDao.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	res, err := parser.ParseRawHours(v.Hours)
	if err != nil {
		return nil, fmt.Errorf("venue %s: %w", venueID, err)
	}
	logDiagnostics(ctx, venueID, res.Diagnostics)
	return &VenueSchedule{
		VenueID:     v.VenueID,
		VenueName:   v.VenueName,
		Timezone:    v.VenueTimezone,
		Schedule:    res.Schedule,
		Diagnostics: res.Diagnostics,
	}, nil
}

// GetVenuesNearby lists venues within radius km of (lat, lon), nearest first,
// each evaluated at the same instant. With openNow only open venues are kept.
func (s *VenueHoursService) GetVenuesNearby(ctx context.Context, lat, lon, radius float64, openNow bool) ([]VenueStatus, error) {
	venues, err := s.venueDao.GetNearbyVenues(ctx, lat, lon, radius)
	if err != nil {
		return nil, err
	}

	instant := s.now()
	out := make([]VenueStatus, 0, len(venues))
	for _, v := range venues {
		status := s.statusAt(ctx, v, instant)
		if openNow && status.IsOpen != hours.StateOpen {
			continue
		}
		out = append(out, VenueStatus{Venue: v, Status: status})
	}
	return out, nil
}

// EvaluateRawHours parses raw and evaluates it in timezone at the given
// instant, or now when at is nil. A *parser.ParseError is returned when raw
// has no usable day.
func (s *VenueHoursService) EvaluateRawHours(ctx context.Context, raw venue.RawHours, timezone string, at *time.Time) (*Evaluation, error) {
	res, err := parser.ParseRawHours(raw)
	if err != nil {
		return nil, err
	}
	logDiagnostics(ctx, "", res.Diagnostics)

	instant := s.now()
	if at != nil {
		instant = *at
	}
	return &Evaluation{
		Status:      evaluator.GetOpenStatus(&res.Schedule, timezone, instant),
		EvaluatedAt: instant,
		Schedule:    res.Schedule,
		Diagnostics: res.Diagnostics,
	}, nil
}

func (s *VenueHoursService) statusAt(ctx context.Context, v venue.Venue, instant time.Time) hours.OpenStatus {
	res, err := parser.ParseRawHours(v.Hours)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("venue_id", v.VenueID).Msg("[VenueHoursService] Unparseable hours")
		return evaluator.GetOpenStatus(nil, v.VenueTimezone, instant)
	}
	logDiagnostics(ctx, v.VenueID, res.Diagnostics)
	return evaluator.GetOpenStatus(&res.Schedule, v.VenueTimezone, instant)
}

func logDiagnostics(ctx context.Context, venueID string, diags []parser.Diagnostic) {
	for _, d := range diags {
		log.Ctx(ctx).Debug().
			Str("venue_id", venueID).
			Str("day", d.Day).
			Str("input", d.Input).
			Msg("[VenueHoursService] Skipped hours entry: " + d.Message)
	}
}
