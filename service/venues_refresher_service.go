package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"cs-hours/api/besttime"
	"cs-hours/dao/redis"
	"cs-hours/evaluator"
	"cs-hours/parser"
	"cs-hours/util"
)

// RefreshReport summarizes one refresh run.
type RefreshReport struct {
	Requested int
	Upserted  int
	Failed    int
}

// VenuesRefresherService periodically pulls venue hours from the BestTime API
// into the venue store.
type VenuesRefresherService struct {
	venueDao     *redis.RedisVenueDAO
	bestTimeAPI  besttime.BestTimeAPI
	venueIDsPath string
}

// NewVenuesRefresherService constructs a new Refresher with dependencies.
// venueIDsPath names a JSON list of ids to refresh on top of the stored ones.
func NewVenuesRefresherService(
	venueDao *redis.RedisVenueDAO,
	bestTimeAPI besttime.BestTimeAPI,
	venueIDsPath string,
) *VenuesRefresherService {
	return &VenuesRefresherService{
		venueDao:     venueDao,
		bestTimeAPI:  bestTimeAPI,
		venueIDsPath: venueIDsPath,
	}
}

// StartPeriodicJob runs RefreshAll every interval until ctx is done.
func (vr *VenuesRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("[VenuesRefresherService] Periodic job stopped.")
			return nil
		case <-ticker.C:
			log.Info().Msg("[VenuesRefresherService] Running periodic venues refresher job.")
			if _, err := vr.RefreshAll(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("[VenuesRefresherService] RefreshAll returned error")
			}
		}
	}
}

// RefreshAll refreshes the configured ids plus every venue already stored.
func (vr *VenuesRefresherService) RefreshAll(ctx context.Context) (RefreshReport, error) {
	ids, err := vr.collectVenueIDs(ctx)
	if err != nil {
		return RefreshReport{}, err
	}
	return vr.RefreshVenues(ctx, ids)
}

func (vr *VenuesRefresherService) collectVenueIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if vr.venueIDsPath != "" {
		fromFile, err := util.ReadVenuesIds(vr.venueIDsPath)
		if err != nil {
			log.Warn().Err(err).Str("path", vr.venueIDsPath).Msg("[VenuesRefresherService] Could not read venue ids")
		}
		ids = append(ids, fromFile...)
	}

	stored, err := vr.venueDao.ListAllVenueIDs(ctx)
	if err != nil {
		return nil, err
	}
	ids = append(ids, stored...)

	seen := make(map[string]struct{}, len(ids))
	unique := ids[:0]
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique, nil
}

// RefreshVenues fetches each venue from the provider, checks its hours parse
// and upserts it. Failures are logged and skipped.
func (vr *VenuesRefresherService) RefreshVenues(ctx context.Context, ids []string) (RefreshReport, error) {
	report := RefreshReport{Requested: len(ids)}
	log.Info().Int("venues", len(ids)).Msg("[VenuesRefresherService] Refreshing venues")

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		v, err := vr.bestTimeAPI.GetVenue(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("venue_id", id).Msg("[VenuesRefresherService] GetVenue failed")
			report.Failed++
			continue
		}

		res, err := parser.ParseRawHours(v.Hours)
		if err != nil {
			log.Warn().Err(err).Str("venue_id", id).Msg("[VenuesRefresherService] Hours not parseable, skipping")
			report.Failed++
			continue
		}
		for _, d := range res.Diagnostics {
			log.Debug().Str("venue_id", id).Str("day", d.Day).Msg("[VenuesRefresherService] " + d.Message)
		}
		if _, err := evaluator.ResolveClock(v.VenueTimezone, time.Now()); err != nil {
			log.Warn().Err(err).Str("venue_id", id).Msg("[VenuesRefresherService] Venue timezone unusable, status will be unknown")
		}

		if err := vr.venueDao.UpsertVenue(ctx, *v); err != nil {
			log.Error().Err(err).Str("venue_id", id).Msg("[VenuesRefresherService] Upsert failed")
			report.Failed++
			continue
		}
		report.Upserted++
	}

	log.Info().
		Int("requested", report.Requested).
		Int("upserted", report.Upserted).
		Int("failed", report.Failed).
		Msg("[VenuesRefresherService] Refresh completed")
	return report, nil
}
