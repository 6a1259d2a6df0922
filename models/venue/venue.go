package venue

import "fmt"

// Venue is the stored record for a venue: location, timezone and raw hours.
type Venue struct {
	VenueID      string  `json:"venue_id"`
	VenueName    string  `json:"venue_name"`
	VenueAddress string  `json:"venue_address"`
	VenueLat     float64 `json:"venue_lat"`
	VenueLon     float64 `json:"venue_lng"`
	VenueType    string  `json:"venue_type,omitempty"`
	PriceLevel   int     `json:"price_level,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	Reviews      int     `json:"reviews,omitempty"`

	// IANA identifier, e.g. "America/Recife". Empty when the source had none.
	VenueTimezone string `json:"venue_timezone"`

	Hours RawHours `json:"hours"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, lat=%f, lon=%f, tz=%s)",
		v.VenueID, v.VenueName, v.VenueLat, v.VenueLon, v.VenueTimezone)
}
