// Package server exposes the calculators over HTTP: a chi router with JSON
// endpoints for trips and ledgers, CSV and PDF exports, and Prometheus
// metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/config"
	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/travel"
)

const (
	readHeaderTimeout = 10 * time.Second
	requestTimeout    = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	Config  config.ServerConfig
	Catalog *catalog.Catalog
	Factors factors.LoadResult
	Logger  zerolog.Logger

	// Traveler fills trip request fields the client leaves out. The zero
	// value selects config.Default().Traveler.
	Traveler config.TravelerConfig

	// Concurrency is passed to the ledger evaluator.
	Concurrency int
}

// Server serves the HTTP API. The catalog and factor table are read-only
// snapshots shared by every request.
type Server struct {
	cfg         config.ServerConfig
	catalog     *catalog.Catalog
	factors     factors.LoadResult
	logger      zerolog.Logger
	defaults    travel.Request
	concurrency int
	metrics     *Metrics
	limiter     *RateLimiter
	router      chi.Router
}

// New builds a Server and its routes. Call Close to release the rate
// limiter.
func New(opts Options) *Server {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	load := opts.Factors
	if load.Table == nil {
		load = factors.Load("")
	}
	traveler := opts.Traveler
	if traveler == (config.TravelerConfig{}) {
		traveler = config.Default().Traveler
	}

	s := &Server{
		cfg:         opts.Config,
		catalog:     cat,
		factors:     load,
		logger:      opts.Logger,
		defaults:    defaultTripRequest(traveler),
		concurrency: opts.Concurrency,
		metrics:     NewMetrics(),
		limiter:     NewRateLimiter(opts.Config.Rate, opts.Config.Burst),
	}
	s.limiter.onReject = s.metrics.RateLimitExceeded.Inc
	if load.FellBack {
		s.metrics.FactorsFallback.Set(1)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(s.logger, s.metrics),
		middleware.Recoverer,
		middleware.Timeout(requestTimeout),
	)

	r.Get("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health)
		r.Get("/catalog", s.getCatalog)
		r.Get("/factors", s.getFactors)

		r.Group(func(r chi.Router) {
			r.Use(s.limiter.Middleware, bodyLimit(s.cfg.MaxBodyBytes))
			r.Post("/trip", s.postTrip)
			r.Post("/ledger", s.postLedger)
		})
	})
	return r
}

func defaultTripRequest(t config.TravelerConfig) travel.Request {
	return travel.Request{
		Trip: travel.TripRequest{
			Mode:      travel.ModeFlight,
			Country:   t.Country,
			Aircraft:  t.Aircraft,
			RoundTrip: t.RoundTrip,
		},
		Island: travel.IslandTransportRequest{
			Vehicle:  t.Vehicle,
			KmPerDay: t.KmPerDay,
			Days:     t.Days,
		},
	}
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Close stops background work.
func (s *Server) Close() { s.limiter.Stop() }

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("component", "server").Str("addr", s.cfg.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info().Str("component", "server").Msg("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}
