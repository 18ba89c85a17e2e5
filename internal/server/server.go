// Package server assembles the HTTP router and owns the listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-world-api/internal/config"
	"github.com/janisto/hello-world-api/internal/http/health"
	"github.com/janisto/hello-world-api/internal/http/info"
	"github.com/janisto/hello-world-api/internal/http/routes"
	"github.com/janisto/hello-world-api/internal/platform/logging"
	"github.com/janisto/hello-world-api/internal/platform/metrics"
	appmiddleware "github.com/janisto/hello-world-api/internal/platform/middleware"
	"github.com/janisto/hello-world-api/internal/platform/respond"
)

const (
	// Title is the service name published in the OpenAPI document and /info.
	Title = "Hello World API"

	DocsPath    = "/docs"
	MetricsPath = "/metrics"

	maxBodyBytes   = 1 << 20 // 1 MB
	maxHeaderBytes = 64 << 10
)

// ErrNotListening is returned by Serve when Listen has not been called.
var ErrNotListening = errors.New("server is not listening")

// Server is the HTTP service. It moves from not listening to listening once
// Listen succeeds and tracks nothing else.
type Server struct {
	cfg     *config.Config
	version string
	srv     *http.Server

	mu       sync.Mutex
	listener net.Listener
}

// New builds the router for cfg. The server does not bind until Listen or Run.
func New(cfg *config.Config, version string) *Server {
	return &Server{
		cfg:     cfg,
		version: version,
		srv: &http.Server{
			Handler:           NewRouter(cfg, version),
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    maxHeaderBytes,
		},
	}
}

// NewRouter returns the fully wired HTTP handler: middleware stack, huma
// operations, the plain /health route and, when enabled, /metrics.
func NewRouter(cfg *config.Config, version string) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector(version)
	}

	router.Use(
		appmiddleware.Security(DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSAllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP and X-Forwarded-For. Only deploy behind a
		// proxy that overwrites them.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxBodyBytes),
		logging.RequestLogger(),
	)
	if collector != nil {
		router.Use(collector.Middleware())
	}
	router.Use(
		logging.AccessLogger(health.Path),
		respond.Recoverer(),
		// GetHead answers HEAD with the GET route, so load balancers can probe /health with HEAD.
		chimiddleware.GetHead,
	)

	plain := []info.Endpoint{{Path: health.Path, Method: http.MethodGet, Description: "Liveness probe"}}
	router.Get(health.Path, health.Handler)
	if collector != nil {
		router.Method(http.MethodGet, MetricsPath, collector.Handler())
		plain = append(plain, info.Endpoint{Path: MetricsPath, Method: http.MethodGet, Description: "Prometheus metrics"})
	}

	humaCfg := huma.DefaultConfig(Title, version)
	humaCfg.DocsPath = DocsPath
	api := humachi.New(router, humaCfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

	routes.Register(api, routes.Options{
		DocsPath:   DocsPath,
		HealthPath: health.Path,
		Meta: info.Meta{
			Name:        Title,
			Version:     version,
			Environment: cfg.Environment,
		},
		Plain: plain,
	})

	return router
}

// addCBORContent advertises application/cbor next to every JSON request and
// response body in the OpenAPI document.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

// Listen binds the configured address. Calling it twice is a no-op.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr(), err)
	}
	s.listener = ln
	return nil
}

// Listening reports whether Listen has succeeded.
func (s *Server) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener != nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Addr()
}

// Serve blocks serving requests on the bound listener until Shutdown.
// It returns nil after a graceful shutdown.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return ErrNotListening
	}
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Run binds, serves and shuts down gracefully when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	logging.LogInfo(ctx, "server listening",
		zap.String("addr", s.Addr()),
		zap.String("version", s.version),
		zap.String("environment", s.cfg.Environment),
	)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logging.LogError(ctx, "serve failed", err, zap.String("addr", s.Addr()))
		}
		return err
	case <-ctx.Done():
		logging.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logging.LogError(shutdownCtx, "server shutdown error", err)
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}
	logging.LogInfo(context.Background(), "server exited")
	return nil
}
