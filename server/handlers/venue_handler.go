package handlers

import (
	"bytes"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	services "cs-hours/service"
	"cs-hours/util"
)

const (
	LAT_QUERY_ARG      = "lat"
	LON_QUERY_ARG      = "lon"
	RADIUS_QUERY_ARG   = "radius"
	OPEN_NOW_QUERY_ARG = "open_now"
	VENUE_ID_PATH_VAR  = "venue_id"
)

// VenueHandler serves stored venues and their hours.
type VenueHandler struct {
	hoursService *services.VenueHoursService
}

func NewVenueHandler(hoursService *services.VenueHoursService) *VenueHandler {
	return &VenueHandler{hoursService: hoursService}
}

// GetVenuesNearby handles GET /v1/venues/nearby?lat=&lon=&radius=[&open_now=true]
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, openNow, msg := parseNearbyArgs(r.URL.Query())
	if msg != "" {
		writeBadRequest(w, r, msg)
		return
	}

	venues, err := h.hoursService.GetVenuesNearby(r.Context(), lat, lon, radius, openNow)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, venues)
}

func parseNearbyArgs(vals url.Values) (lat, lon, radius float64, openNow bool, msg string) {
	var err error
	if lat, err = parseArgFloat64(vals, LAT_QUERY_ARG); err != nil || math.Abs(lat) > 90 {
		return 0, 0, 0, false, "Invalid argument " + LAT_QUERY_ARG
	}
	if lon, err = parseArgFloat64(vals, LON_QUERY_ARG); err != nil || math.Abs(lon) > 180 {
		return 0, 0, 0, false, "Invalid argument " + LON_QUERY_ARG
	}
	if radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG); err != nil || radius <= 0 {
		return 0, 0, 0, false, "Invalid argument " + RADIUS_QUERY_ARG
	}
	if v := vals.Get(OPEN_NOW_QUERY_ARG); v != "" {
		if openNow, err = strconv.ParseBool(v); err != nil {
			return 0, 0, 0, false, "Invalid argument " + OPEN_NOW_QUERY_ARG
		}
	}
	return lat, lon, radius, openNow, ""
}

// GetOpenStatus handles GET /v1/venues/{venue_id}/open-status
func (h *VenueHandler) GetOpenStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.hoursService.GetOpenStatus(r.Context(), mux.Vars(r)[VENUE_ID_PATH_VAR])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, status)
}

// GetSchedule handles GET /v1/venues/{venue_id}/hours
func (h *VenueHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.hoursService.GetSchedule(r.Context(), mux.Vars(r)[VENUE_ID_PATH_VAR])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, schedule)
}

// GetScheduleChart handles GET /v1/venues/{venue_id}/hours/chart
func (h *VenueHandler) GetScheduleChart(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.hoursService.GetSchedule(r.Context(), mux.Vars(r)[VENUE_ID_PATH_VAR])
	if err != nil {
		writeError(w, r, err)
		return
	}

	var page bytes.Buffer
	if err := util.RenderWeeklyHoursChart(&page, schedule.VenueName, schedule.Schedule); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("Pinging server")
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "pong"})
}
