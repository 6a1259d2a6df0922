package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"cs-hours/db"
	"cs-hours/models/venue"
)

const VENUES_GEO_KEY_V1 = "venues_hours_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venues_hours_place_v1:%s"

// ErrVenueNotFound is returned when no record exists for a venue id.
var ErrVenueNotFound = errors.New("venue not found")

// RedisVenueDAO stores venue records (location, timezone, raw hours) in Redis.
// Only source data is stored; open/closed verdicts are computed per request.
type RedisVenueDAO struct {
	client db.RedisClient
}

func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

func venueKey(venueID string) string {
	return fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, venueID)
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisVenueDAO) UpsertVenue(ctx context.Context, v venue.Venue) error {
	if v.VenueID == "" {
		return fmt.Errorf("[RedisVenueDAO] cannot upsert venue without id")
	}
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey(v.VenueID), v.VenueLat, v.VenueLon, v)
}

// GetVenue loads a single venue record.
func (dao *RedisVenueDAO) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	str, err := dao.client.Get(ctx, venueKey(venueID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
		}
		return nil, fmt.Errorf("failed to get venue %s from redis: %w", venueID, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue %s: %w", venueID, err)
	}
	return &v, nil
}

// GetNearbyVenues retrieves venues within radiusKm of (lat, lon), nearest first.
func (dao *RedisVenueDAO) GetNearbyVenues(ctx context.Context, lat, lon, radiusKm float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(ctx, VENUES_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]venue.Venue, 0, len(venuesJSON))
	for _, venueJSON := range venuesJSON {
		var v venue.Venue
		if err := json.Unmarshal([]byte(venueJSON), &v); err != nil {
			log.Warn().Err(err).Msg("[RedisVenueDAO] Skipping undecodable venue record")
			continue
		}
		venues = append(venues, v)
	}
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the store.
func (dao *RedisVenueDAO) ListAllVenueIDs(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, venueKey("*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}
	prefix := venueKey("")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteVenue drops both the record and its geo index entry.
func (dao *RedisVenueDAO) DeleteVenue(ctx context.Context, venueID string) error {
	if err := dao.client.RemoveLocation(ctx, VENUES_GEO_KEY_V1, venueKey(venueID)); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}
	log.Info().Str("venue_id", venueID).Msg("[RedisVenueDAO] Deleted venue")
	return nil
}
