package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type CrowdSenseHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	srv       *http.Server
}

func NewCrowdSenseHttpServer(router *Router, muxRouter *mux.Router, addr string) *CrowdSenseHttpServer {
	router.RegisterRoutes()
	return &CrowdSenseHttpServer{
		router:    router,
		muxRouter: muxRouter,
		srv: &http.Server{
			Addr:              addr,
			Handler:           muxRouter,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler exposes the routed handler, mostly for tests.
func (s *CrowdSenseHttpServer) Handler() http.Handler {
	return s.muxRouter
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *CrowdSenseHttpServer) Start() error {
	log.Info().Str("addr", s.srv.Addr).Msg("Starting server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *CrowdSenseHttpServer) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down the server...")
	return s.srv.Shutdown(ctx)
}
