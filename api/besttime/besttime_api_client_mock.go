package besttime

import (
	"context"
	"fmt"
	"sync"

	"cs-hours/models/venue"
)

// BestTimeApiClientMock serves venues from memory.
type BestTimeApiClientMock struct {
	mu     sync.RWMutex
	venues map[string]venue.Venue
}

// NewBestTimeApiClientMock creates a mock pre-loaded with venues.
func NewBestTimeApiClientMock(venues ...venue.Venue) *BestTimeApiClientMock {
	m := &BestTimeApiClientMock{venues: make(map[string]venue.Venue, len(venues))}
	for _, v := range venues {
		m.venues[v.VenueID] = v
	}
	return m
}

func (c *BestTimeApiClientMock) SetCredentials(string, string) {}

func (c *BestTimeApiClientMock) GetVenue(_ context.Context, venueID string) (*venue.Venue, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.venues[venueID]
	if !ok {
		return nil, fmt.Errorf("besttime mock: unknown venue %s", venueID)
	}
	return &v, nil
}

// VenueIDs lists the ids the mock knows about.
func (c *BestTimeApiClientMock) VenueIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.venues))
	for id := range c.venues {
		ids = append(ids, id)
	}
	return ids
}
