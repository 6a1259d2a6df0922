package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"cs-hours/models/venue"
	services "cs-hours/service"
)

// EvaluateRequest is the body of POST /v1/hours/evaluate.
type EvaluateRequest struct {
	Timezone string         `json:"timezone"`
	At       *time.Time     `json:"at,omitempty"`
	Hours    venue.RawHours `json:"hours"`
}

// HoursHandler evaluates caller-supplied hours without touching the store.
type HoursHandler struct {
	hoursService *services.VenueHoursService
}

func NewHoursHandler(hoursService *services.VenueHoursService) *HoursHandler {
	return &HoursHandler{hoursService: hoursService}
}

// Evaluate handles POST /v1/hours/evaluate
func (h *HoursHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		writeBadRequest(w, r, "Invalid request body: "+err.Error())
		return
	}
	if req.Hours.Format == "" {
		writeBadRequest(w, r, "Missing hours.format")
		return
	}

	result, err := h.hoursService.EvaluateRawHours(r.Context(), req.Hours, req.Timezone, req.At)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
