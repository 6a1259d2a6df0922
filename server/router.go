package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes are the handlers behind the /v1/venues routes and /ping.
type VenueRoutes interface {
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetOpenStatus(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	GetScheduleChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// HoursRoutes are the handlers behind the /v1/hours routes.
type HoursRoutes interface {
	Evaluate(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueRoutes
	hoursHandler HoursRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	venueHandler VenueRoutes,
	hoursHandler HoursRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		hoursHandler: hoursHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(WithRequestID, WithRecovery, WithLogging)

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods(http.MethodGet)

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}[&open_now=true]
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/venues/{venue_id}/open-status", r.venueHandler.GetOpenStatus).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/venues/{venue_id}/hours", r.venueHandler.GetSchedule).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/venues/{venue_id}/hours/chart", r.venueHandler.GetScheduleChart).Methods(http.MethodGet)

	r.router.HandleFunc("/v1/hours/evaluate", r.hoursHandler.Evaluate).Methods(http.MethodPost)
}
