// Package server exposes the computation engine over a small JSON API:
// horoscope positions, aspects, moon phases and monthly transits.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/rustyeddy/starwheel/config"
	"github.com/rustyeddy/starwheel/ephemeris"
	"github.com/rustyeddy/starwheel/transit"
)

// Server holds the shared, read-only dependencies of the HTTP handlers.
// The ephemeris source is initialized once per process and reused; every
// request is otherwise independent, so no locking is needed.
type Server struct {
	log    *slog.Logger
	eph    ephemeris.Source
	finder *transit.Finder
	cfg    *config.Config
	apiKey string
}

// New assembles a Server. The API key comes from the environment (see
// cmd serve), not from the config file, so it never lands on disk.
func New(logger *slog.Logger, src ephemeris.Source, cfg *config.Config, apiKey string) *Server {
	return &Server{
		log:    logger,
		eph:    src,
		finder: transit.NewFinder(src),
		cfg:    cfg,
		apiKey: apiKey,
	}
}

// Router wires all routes plus CORS, auth and access logging.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/v1").Subrouter()
	api.Handle("/horoscope", s.withAuth(http.HandlerFunc(s.handleHoroscope))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/aspects", s.withAuth(http.HandlerFunc(s.handleAspects))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/moon-phase", s.withAuth(http.HandlerFunc(s.handleMoonPhase))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/moon-phase/month", s.withAuth(http.HandlerFunc(s.handleMoonPhaseMonth))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/transits", s.withAuth(http.HandlerFunc(s.handleTransits))).Methods(http.MethodPost, http.MethodOptions)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return withLogging(s.log, cors(r))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("write_response_failed", slog.Any("err", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
