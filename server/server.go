// Package server exposes the engine state over a JSON REST API and an RSS
// export. Handlers only read the datastore, writes happen through the
// scheduler triggers.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/rydeebs/product-browser/pkg/domain"
	"github.com/rydeebs/product-browser/pkg/feed"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Database is the read surface the handlers work against
type Database interface {
	CountPosts(ctx context.Context) (int, error)
	CountUnprocessed(ctx context.Context) (int, error)
	CountAnnotations(ctx context.Context) (int, error)
	CountOpportunities(ctx context.Context) (int, error)
	GetOpportunities(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, error)
	GetOpportunity(ctx context.Context, id int64) (*domain.Opportunity, error)
	GetLatestRun(ctx context.Context) (*domain.DetectionRun, error)
	GetSourceStates(ctx context.Context) ([]domain.SourceState, error)
}

// Scheduler kicks off on-demand pipeline passes
type Scheduler interface {
	TriggerScrape()
	TriggerDetect()
}

// Config holds the server settings
type Config struct {
	Listen  string
	BaseURL string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Server represents HTTP server instance
type Server struct {
	cfg       Config
	db        Database
	scheduler Scheduler
	generator *feed.Generator

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, db Database, scheduler Scheduler) *Server {
	s := &Server{
		cfg:       cfg,
		db:        db,
		scheduler: scheduler,
		generator: feed.NewGenerator(cfg.BaseURL),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Timeout,
		WriteTimeout: s.cfg.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("product-browser", "rydeebs", s.cfg.Version))
	s.router.Use(rest.Ping)

	if s.cfg.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /opportunities", s.listOpportunitiesHandler)
		r.HandleFunc("GET /opportunities/{id}", s.getOpportunityHandler)
		r.HandleFunc("POST /scrape", s.scrapeHandler)
		r.HandleFunc("POST /detect", s.detectHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
}
