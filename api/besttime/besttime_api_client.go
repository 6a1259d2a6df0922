package besttime

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cs-hours/api"
	"cs-hours/models"
	"cs-hours/models/venue"
)

// BestTimeApiClient embeds the common HTTPClient
type BestTimeApiClient struct {
	*api.HTTPClient
	apiKeyPublic  string
	apiKeyPrivate string
}

// NewBestTimeApiClient creates a new instance of BestTimeApiClient
func NewBestTimeApiClient(httpClient *api.HTTPClient) *BestTimeApiClient {
	return &BestTimeApiClient{HTTPClient: httpClient}
}

func (c *BestTimeApiClient) SetCredentials(apiKeyPublic string, apiKeyPrivate string) {
	c.apiKeyPublic = apiKeyPublic
	c.apiKeyPrivate = apiKeyPrivate
}

// GetVenue retrieves a venue given a venue id
func (c *BestTimeApiClient) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	query := url.Values{}
	query.Set("api_key_public", c.apiKeyPublic)

	var response models.VenueInfoResponse
	if err := c.Request(ctx, http.MethodGet, "/venues/"+url.PathEscape(venueID), query, nil, &response); err != nil {
		return nil, fmt.Errorf("besttime: get venue %s: %w", venueID, err)
	}
	if response.Status != "" && response.Status != "OK" {
		return nil, fmt.Errorf("besttime: get venue %s: status %q", venueID, response.Status)
	}
	v := response.ToVenue()
	if v.VenueID == "" {
		v.VenueID = venueID
	}
	return &v, nil
}
