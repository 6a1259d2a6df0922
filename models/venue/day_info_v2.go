package venue

// DayInfoV2 matches one day of BestTime's 'venue_open_close_v2' structure.
// BestTime counts day_int from Monday=0.
type DayInfoV2 struct {
	DayInt          int               `json:"day_int"`
	DayText         string            `json:"day_text"`
	Open24H         bool              `json:"open_24h"`
	CrossesMidnight bool              `json:"crosses_midnight"`
	SpecialDay      interface{}       `json:"special_day"` // Can be null or string/object
	H24             []OpenCloseDetail `json:"24h"`         // Using H24 because 24h is an invalid struct field name
	H12             []string          `json:"12h"`
}

// OpenCloseDetail matches one element in the '24h' array. Opens/Closes are
// hours, the *Minutes fields the minute part.
type OpenCloseDetail struct {
	Opens         int `json:"opens"`
	Closes        int `json:"closes"`
	OpensMinutes  int `json:"opens_minutes"`
	ClosesMinutes int `json:"closes_minutes"`
}
