// Package server implements the Flowribbon HTTP API.
//
// The server exposes dataset CRUD endpoints backed by a [store.Store]
// and diagram rendering endpoints backed by the shared pipeline
// [pipeline.Runner], so rendered layouts and artifacts are cached
// across requests exactly as they are for CLI runs.
//
// # Endpoints
//
//	GET    /healthz                             liveness probe with version
//	POST   /api/render                          render inline observations
//	POST   /api/datasets                        save a named dataset
//	GET    /api/datasets                        list saved datasets
//	GET    /api/datasets/{id}                   fetch one dataset
//	DELETE /api/datasets/{id}                   delete a dataset
//	GET    /api/datasets/{id}/diagram.{format}  render a saved dataset
//
// Diagram endpoints accept rendering options as query parameters
// (viz, style, aspect, color_by_dest, font_size, frame_height, scale,
// detailed, refresh). Custom color maps are only accepted in the
// POST /api/render body because maps do not fit query strings well.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/flowribbon/pkg/pipeline"
	"github.com/matzehuels/flowribbon/pkg/store"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// serve context is canceled.
const shutdownTimeout = 10 * time.Second

// Server hosts the Flowribbon API.
// Construct with New; the zero value is not usable.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server around the given store and pipeline runner.
// If logger is nil, log.Default() is used.
func New(st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		store:  st,
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	s.routes(r)
	s.router = r

	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves the API on addr until ctx is canceled, then
// shuts down gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
