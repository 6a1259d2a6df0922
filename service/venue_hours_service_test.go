package services

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs-hours/dao/redis"
	"cs-hours/db"
	"cs-hours/models/hours"
	"cs-hours/models/venue"
	"cs-hours/parser"
)

// Friday 2024-01-05 20:00 in America/Recife (UTC-3).
var fridayEvening = time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)

func barVenue() venue.Venue {
	return venue.Venue{
		VenueID: "bar", VenueName: "Bar", VenueLat: -8.060, VenueLon: -34.870,
		VenueTimezone: "America/Recife",
		Hours: venue.RawHours{
			Format:      venue.FormatGoogleWeekdayText,
			WeekdayText: []string{"Friday: 4:00 PM – 2:00 AM"},
		},
	}
}

func cafeVenue() venue.Venue {
	return venue.Venue{
		VenueID: "cafe", VenueName: "Cafe", VenueLat: -8.061, VenueLon: -34.871,
		VenueTimezone: "America/Recife",
		Hours: venue.RawHours{
			Format: venue.FormatStructured,
			Structured: map[string]venue.StructuredDay{
				"friday":   {Open: "07:00", Close: "12:00"},
				"saturday": {Open: "08:00", Close: "12:00"},
			},
		},
	}
}

func lostVenue() venue.Venue {
	return venue.Venue{
		VenueID: "lost", VenueName: "Lost", VenueLat: -8.062, VenueLon: -34.872,
		VenueTimezone: "Mars/Olympus",
		Hours: venue.RawHours{
			Format:     venue.FormatStructured,
			Structured: map[string]venue.StructuredDay{"friday": {Open24h: true}},
		},
	}
}

func brokenVenue() venue.Venue {
	return venue.Venue{
		VenueID: "broken", VenueName: "Broken", VenueLat: -23.55, VenueLon: -46.63,
		VenueTimezone: "America/Sao_Paulo",
		Hours: venue.RawHours{
			Format:  venue.FormatHoursTextMap,
			TextMap: map[string]string{"friday": "whenever"},
		},
	}
}

func newTestHoursService(t *testing.T, venues ...venue.Venue) *VenueHoursService {
	t.Helper()
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient())
	for _, v := range venues {
		require.NoError(t, dao.UpsertVenue(context.Background(), v))
	}
	return NewVenueHoursService(dao, func() time.Time { return fridayEvening })
}

func TestVenueHoursService_GetOpenStatus(t *testing.T) {
	svc := newTestHoursService(t, barVenue(), cafeVenue(), lostVenue(), brokenVenue())
	ctx := context.Background()

	t.Run("open overnight shift", func(t *testing.T) {
		status, err := svc.GetOpenStatus(ctx, "bar")
		require.NoError(t, err)
		assert.Equal(t, hours.StateOpen, status.IsOpen)
		require.NotNil(t, status.ClosesAt)
		assert.Equal(t, "02:00", *status.ClosesAt)
		assert.Equal(t, 360, *status.MinutesUntilClose)
		assert.False(t, status.ClosingSoon)
	})

	t.Run("closed until tomorrow", func(t *testing.T) {
		status, err := svc.GetOpenStatus(ctx, "cafe")
		require.NoError(t, err)
		assert.Equal(t, hours.StateClosed, status.IsOpen)
		assert.Equal(t, "opens saturday at 8 AM", status.Reason)
		assert.Equal(t, "08:00", *status.OpensAt)
		assert.Equal(t, 720, *status.MinutesUntilOpen)
	})

	t.Run("invalid timezone is unknown", func(t *testing.T) {
		status, err := svc.GetOpenStatus(ctx, "lost")
		require.NoError(t, err)
		assert.Equal(t, hours.StateUnknown, status.IsOpen)
		assert.Equal(t, hours.FailureInvalidTimezone, status.Failure)
	})

	t.Run("unparseable hours are unknown", func(t *testing.T) {
		status, err := svc.GetOpenStatus(ctx, "broken")
		require.NoError(t, err)
		assert.Equal(t, hours.StateUnknown, status.IsOpen)
		assert.Equal(t, hours.FailureInvalidSchedule, status.Failure)
	})

	t.Run("unknown venue", func(t *testing.T) {
		_, err := svc.GetOpenStatus(ctx, "nope")
		assert.ErrorIs(t, err, redis.ErrVenueNotFound)
	})
}

func TestVenueHoursService_GetSchedule(t *testing.T) {
	svc := newTestHoursService(t, cafeVenue(), brokenVenue())
	ctx := context.Background()

	got, err := svc.GetSchedule(ctx, "cafe")
	require.NoError(t, err)
	assert.Equal(t, "America/Recife", got.Timezone)
	assert.Equal(t, 2, got.Schedule.SetDays())
	friday, ok := got.Schedule.Day(hours.Friday)
	require.True(t, ok)
	assert.Equal(t, hours.DayWithIntervals([]hours.TimeInterval{hours.CreateInterval(7, 0, 12, 0)}), friday)

	_, err = svc.GetSchedule(ctx, "broken")
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, parser.ErrNoUsableDays)
}

func TestVenueHoursService_GetVenuesNearby(t *testing.T) {
	svc := newTestHoursService(t, barVenue(), cafeVenue(), lostVenue(), brokenVenue())
	ctx := context.Background()

	all, err := svc.GetVenuesNearby(ctx, -8.060, -34.870, 5, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "bar", all[0].Venue.VenueID)
	assert.Equal(t, hours.StateOpen, all[0].Status.IsOpen)
	assert.Equal(t, hours.StateClosed, all[1].Status.IsOpen)
	assert.Equal(t, hours.StateUnknown, all[2].Status.IsOpen)

	open, err := svc.GetVenuesNearby(ctx, -8.060, -34.870, 5, true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "bar", open[0].Venue.VenueID)
}

func TestVenueHoursService_EvaluateRawHours(t *testing.T) {
	svc := newTestHoursService(t)
	ctx := context.Background()
	raw := venue.RawHours{
		Format: venue.FormatHoursTextMap,
		TextMap: map[string]string{
			"friday":   "4:00 PM - 2:00 AM",
			"saturday": "sometimes",
		},
	}

	t.Run("defaults to now", func(t *testing.T) {
		got, err := svc.EvaluateRawHours(ctx, raw, "America/Recife", nil)
		require.NoError(t, err)
		assert.Equal(t, fridayEvening, got.EvaluatedAt)
		assert.Equal(t, hours.StateOpen, got.Status.IsOpen)
		require.Len(t, got.Diagnostics, 1)
		assert.Equal(t, "saturday", got.Diagnostics[0].Day)
	})

	t.Run("explicit instant", func(t *testing.T) {
		// Saturday 01:30 local, inside Friday's shift.
		at := time.Date(2024, 1, 6, 4, 30, 0, 0, time.UTC)
		got, err := svc.EvaluateRawHours(ctx, raw, "America/Recife", &at)
		require.NoError(t, err)
		assert.Equal(t, hours.StateOpen, got.Status.IsOpen)
		assert.True(t, got.Status.ClosingSoon)
		assert.Equal(t, "open until 2 AM (from yesterday's shift)", got.Status.Reason)
	})

	t.Run("missing timezone", func(t *testing.T) {
		got, err := svc.EvaluateRawHours(ctx, raw, "", nil)
		require.NoError(t, err)
		assert.Equal(t, hours.FailureMissingTimezone, got.Status.Failure)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := svc.EvaluateRawHours(ctx, venue.RawHours{Format: "yelp"}, "America/Recife", nil)
		assert.ErrorIs(t, err, parser.ErrUnknownFormat)
	})
}
