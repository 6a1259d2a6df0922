// models/venue_info_response.go
package models

import "cs-hours/models/venue"

// VenueInfo holds BestTime's metadata about a venue.
type VenueInfo struct {
	VenueID       string  `json:"venue_id"`
	VenueName     string  `json:"venue_name"`
	VenueAddress  string  `json:"venue_address"`
	VenueLat      float64 `json:"venue_lat"`
	VenueLon      float64 `json:"venue_lon"`
	VenueTimezone string  `json:"venue_timezone"`
	VenueType     string  `json:"venue_type"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	PriceLevel    int     `json:"price_level"`
}

// VenueInfoResponse is the JSON returned by GET /venues/{venue_id}.
type VenueInfoResponse struct {
	Status           string            `json:"status"`
	VenueInfo        VenueInfo         `json:"venue_info"`
	VenueOpenCloseV2 []venue.DayInfoV2 `json:"venue_open_close_v2"`
}

// ToVenue converts the provider response into the stored venue record.
func (r *VenueInfoResponse) ToVenue() venue.Venue {
	return venue.Venue{
		VenueID:       r.VenueInfo.VenueID,
		VenueName:     r.VenueInfo.VenueName,
		VenueAddress:  r.VenueInfo.VenueAddress,
		VenueLat:      r.VenueInfo.VenueLat,
		VenueLon:      r.VenueInfo.VenueLon,
		VenueType:     r.VenueInfo.VenueType,
		Rating:        r.VenueInfo.Rating,
		Reviews:       r.VenueInfo.Reviews,
		PriceLevel:    r.VenueInfo.PriceLevel,
		VenueTimezone: r.VenueInfo.VenueTimezone,
		Hours: venue.RawHours{
			Format:   venue.FormatBestTime,
			BestTime: r.VenueOpenCloseV2,
		},
	}
}
