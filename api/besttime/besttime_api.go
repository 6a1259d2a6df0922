package besttime

import (
	"context"

	"cs-hours/models/venue"
)

// BestTimeAPI defines the interface for interacting with the BestTime API
type BestTimeAPI interface {
	SetCredentials(apiKeyPublic string, apiKeyPrivate string)
	// GetVenue fetches a venue's details and weekly opening hours.
	GetVenue(ctx context.Context, venueID string) (*venue.Venue, error)
}
