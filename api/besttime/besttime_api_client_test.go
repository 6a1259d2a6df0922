package besttime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs-hours/api"
	"cs-hours/models/venue"
)

const venueResponseJSON = `{
	"status": "OK",
	"venue_info": {
		"venue_id": "ven_42",
		"venue_name": "Bar do Neto",
		"venue_address": "Rua da Moeda 100, Recife",
		"venue_lat": -8.0631,
		"venue_lon": -34.8711,
		"venue_timezone": "America/Recife"
	},
	"venue_open_close_v2": [
		{"day_int": 4, "day_text": "Friday", "open_24h": false, "crosses_midnight": true,
		 "24h": [{"opens": 18, "closes": 2, "opens_minutes": 0, "closes_minutes": 0}], "12h": ["6pm - 2am"]},
		{"day_int": 6, "day_text": "Sunday", "open_24h": false, "crosses_midnight": false, "24h": [], "12h": ["Closed"]}
	]
}`

func TestBestTimeApiClient_GetVenue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/venues/ven_42", r.URL.Path)
		assert.Equal(t, "pubkey", r.URL.Query().Get("api_key_public"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(venueResponseJSON))
	}))
	defer srv.Close()

	client := NewBestTimeApiClient(api.NewHTTPClient(srv.URL, time.Second))
	client.SetCredentials("pubkey", "secret")

	got, err := client.GetVenue(context.Background(), "ven_42")
	require.NoError(t, err)

	assert.Equal(t, "ven_42", got.VenueID)
	assert.Equal(t, "America/Recife", got.VenueTimezone)
	assert.Equal(t, venue.FormatBestTime, got.Hours.Format)
	require.Len(t, got.Hours.BestTime, 2)
	assert.True(t, got.Hours.BestTime[0].CrossesMidnight)
	assert.Equal(t, 18, got.Hours.BestTime[0].H24[0].Opens)
}

func TestBestTimeApiClient_GetVenue_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "Error"})
	}))
	defer srv.Close()

	client := NewBestTimeApiClient(api.NewHTTPClient(srv.URL, time.Second))

	_, err := client.GetVenue(context.Background(), "ven_42")
	assert.Error(t, err)
}

func TestBestTimeApiClientMock_GetVenue(t *testing.T) {
	client := NewBestTimeApiClientMock(venue.Venue{VenueID: "v1", VenueName: "Mock"})

	got, err := client.GetVenue(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "Mock", got.VenueName)

	_, err = client.GetVenue(context.Background(), "nope")
	assert.Error(t, err)
	assert.Equal(t, []string{"v1"}, client.VenueIDs())
}
