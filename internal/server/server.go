// Package server exposes the parse-aggregate-project pipeline over HTTP.
// The server holds no mutable state: every upload runs the full pipeline
// from scratch, so concurrent requests are safe by construction.
package server

import (
	"net/http"
	"time"

	"fjacquet/budget-csv/internal/budgetparser"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/projection"
	"fjacquet/budget-csv/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wires the pipeline components behind a chi router.
type Server struct {
	parser    *budgetparser.Parser
	generator *report.Generator
	scenarios []projection.Scenario
	horizon   int
	maxUpload int64
	logger    logging.Logger
	router    chi.Router
}

// Options configures a Server.
type Options struct {
	Parser    *budgetparser.Parser
	Generator *report.Generator
	Scenarios []projection.Scenario
	// HorizonYears for projection series; zero means the default.
	HorizonYears int
	// MaxUploadBytes caps request bodies; zero means 25 MB.
	MaxUploadBytes int64
	Logger         logging.Logger
}

// New creates a Server with all routes registered.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.Scenarios == nil {
		opts.Scenarios = projection.DefaultScenarios()
	}
	if opts.HorizonYears <= 0 {
		opts.HorizonYears = projection.DefaultHorizonYears
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 25 << 20
	}

	s := &Server{
		parser:    opts.Parser,
		generator: opts.Generator,
		scenarios: opts.Scenarios,
		horizon:   opts.HorizonYears,
		maxUpload: opts.MaxUploadBytes,
		logger:    opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/template", s.handleTemplate)
	r.Get("/api/projection", s.handleProjection)
	r.Post("/api/upload", s.handleUpload)

	s.router = r
	return s
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("Starting budget dashboard server",
		logging.Field{Key: logging.FieldAddr, Value: addr})

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
