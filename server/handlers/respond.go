package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"cs-hours/dao/redis"
	"cs-hours/parser"
)

type errorResponse struct {
	Error       string              `json:"error"`
	Diagnostics []parser.Diagnostic `json:"diagnostics,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Error encoding response")
	}
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: msg})
}

// writeError maps service errors to status codes: unknown venue 404,
// unparseable hours 422, anything else 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *parser.ParseError
	switch {
	case errors.Is(err, redis.ErrVenueNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &perr):
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: perr.Error(), Diagnostics: perr.Diagnostics})
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// parseArgFloat64 reads a finite float; NaN and ±Inf are rejected.
func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be a finite number, got %q", name, s)
	}
	return f, nil
}
