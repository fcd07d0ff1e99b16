// Package httpapi serves the users directory over HTTP so the search client
// and the combobox demo have something to talk to.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/billie-coop/showcase/internal/search"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// DefaultLimit is the page size used when _limit is missing or invalid.
const DefaultLimit = 10

type router struct {
	dir      *search.Directory
	logger   zerolog.Logger
	registry *prometheus.Registry
	latency  time.Duration
}

// Option configures the router
type Option func(*router)

// WithLogger sets the request logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *router) {
		r.logger = logger
	}
}

// WithRegistry registers the HTTP metrics in reg and serves reg on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(r *router) {
		r.registry = reg
	}
}

// WithLatency delays every page of users by d, as a slow backend would.
func WithLatency(d time.Duration) Option {
	return func(r *router) {
		r.latency = d
	}
}

// NewRouter builds the users API handler.
func NewRouter(dir *search.Directory, opts ...Option) http.Handler {
	rt := &router{
		dir:    dir,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.registry == nil {
		rt.registry = prometheus.NewRegistry()
	}
	metrics := newMetrics(rt.registry)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposedHeaders: []string{search.TotalCountHeader},
	}))
	r.Use(metrics.middleware)
	r.Use(requestLogger(rt.logger))

	r.Get("/api/users", rt.listUsers)
	r.Head("/api/users", rt.countUsers)
	r.Get("/api/users/{id}", rt.getUser)

	r.Get("/healthz", healthz)
	r.Method(http.MethodGet, "/metrics", MetricsHandler(rt.registry))

	return r
}

func (rt *router) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start := intParam(q.Get("_start"), 0)
	limit := intParam(q.Get("_limit"), DefaultLimit)

	if err := rt.wait(r.Context()); err != nil {
		// client went away
		return
	}

	writeJSON(w, http.StatusOK, rt.dir.Slice(q.Get("name_like"), start, limit))
}

func (rt *router) countUsers(w http.ResponseWriter, r *http.Request) {
	total := rt.dir.Count(r.URL.Query().Get("name_like"))
	w.Header().Set(search.TotalCountHeader, strconv.Itoa(total))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
}

func (rt *router) getUser(w http.ResponseWriter, r *http.Request) {
	u := rt.dir.Get(chi.URLParam(r, "id"))
	if u == nil {
		writeJSONError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (rt *router) wait(ctx context.Context) error {
	if rt.latency <= 0 {
		return nil
	}
	t := time.NewTimer(rt.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// Serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
