package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/tsawler/chartwatch/airports"
	"github.com/tsawler/chartwatch/snapshot"
	"github.com/tsawler/chartwatch/watch"
)

// Server handles the HTTP API. Construct with NewServer.
type Server struct {
	registry *airports.Registry
	store    *snapshot.Store
	checker  *watch.Checker
	log      *zap.Logger

	// now is the clock for cycle calculations; tests pin it.
	now func() time.Time
}

// NewServer builds a Server over a registry and snapshot store. A nil
// logger disables logging.
func NewServer(registry *airports.Registry, store *snapshot.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		registry: registry,
		store:    store,
		checker:  watch.NewChecker(watch.StoreSource(store), log),
		log:      log,
		now:      time.Now,
	}
}

// Handler returns the routed http.Handler for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/airports", s.handleAirports)
		r.Get("/cycle", s.handleCycle)
		r.Get("/snapshot/{code}/{cycle}", s.handleSnapshot)
		r.Get("/compare/{code}", s.handleCompare)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

type airportEntry struct {
	Code        string `json:"code"`
	ChartNumber string `json:"chart_number"`
}

func (s *Server) handleAirports(w http.ResponseWriter, r *http.Request) {
	codes := s.registry.Codes()
	entries := make([]airportEntry, 0, len(codes))
	for _, code := range codes {
		num, err := s.registry.ChartNumber(code)
		if err != nil {
			continue
		}
		entries = append(entries, airportEntry{Code: code, ChartNumber: num})
	}
	render.JSON(w, r, map[string]interface{}{"airports": entries})
}

func (s *Server) handleCycle(w http.ResponseWriter, r *http.Request) {
	current := airports.CycleAt(s.now())
	previous, err := airports.PreviousCycle(current)
	if err != nil {
		render.Render(w, r, errInternal(err))
		return
	}
	render.JSON(w, r, map[string]string{
		"current":  current,
		"previous": previous,
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	cycle := chi.URLParam(r, "cycle")

	if !s.registry.Has(code) {
		render.Render(w, r, errNotFound(fmt.Errorf("unknown airport %q", code)))
		return
	}
	if !airports.ValidCycle(cycle) {
		render.Render(w, r, errInvalidRequest(fmt.Errorf("malformed cycle %q", cycle)))
		return
	}

	snap, err := s.store.Load(code, cycle)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			render.Render(w, r, errNotFound(err))
			return
		}
		render.Render(w, r, errInternal(err))
		return
	}

	data, err := snapshot.Marshal(snap)
	if err != nil {
		render.Render(w, r, errInternal(err))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(data)
}

// compareResponse mirrors the flattened comparison schema downstream
// consumers already read.
type compareResponse struct {
	AirportCode string      `json:"airport_code"`
	OldCycle    string      `json:"old_cycle"`
	NewCycle    string      `json:"new_cycle"`
	Summary     interface{} `json:"summary"`
	Changes     interface{} `json:"changes"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !s.registry.Has(code) {
		render.Render(w, r, errNotFound(fmt.Errorf("unknown airport %q", code)))
		return
	}

	newCycle := r.URL.Query().Get("new")
	if newCycle == "" {
		newCycle = airports.CycleAt(s.now())
	}
	oldCycle := r.URL.Query().Get("old")
	if oldCycle == "" {
		prev, err := airports.PreviousCycle(newCycle)
		if err != nil {
			render.Render(w, r, errInvalidRequest(err))
			return
		}
		oldCycle = prev
	}
	if !airports.ValidCycle(oldCycle) || !airports.ValidCycle(newCycle) {
		render.Render(w, r, errInvalidRequest(fmt.Errorf("malformed cycle pair %q, %q", oldCycle, newCycle)))
		return
	}

	result, err := s.checker.Check(r.Context(), code, oldCycle, newCycle)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			render.Render(w, r, errNotFound(err))
			return
		}
		render.Render(w, r, errInternal(err))
		return
	}

	render.JSON(w, r, compareResponse{
		AirportCode: result.AirportCode,
		OldCycle:    result.OldCycle,
		NewCycle:    result.NewCycle,
		Summary:     result.Summary,
		Changes:     result.Changes,
	})
}
