// Package api serves the local invocation harness: a small HTTP surface that
// accepts CloudFormation-custom-resource-shaped requests and runs the handler
// synchronously, without the pre-signed response URL round trip. Intended for
// development against LocalStack; never deployed.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	slrhandler "github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/handler"
	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/pkg/metrics"
)

// Server representa o servidor HTTP do harness local
type Server struct {
	addr     string
	router   *chi.Mux
	handlers *Handlers
	logger   *zap.Logger
	server   *http.Server
}

// NewServer cria um novo servidor
func NewServer(addr string, resource *slrhandler.Handler, logger *zap.Logger) *Server {
	s := &Server{
		addr:     addr,
		router:   chi.NewRouter(),
		handlers: NewHandlers(resource, logger),
		logger:   logger,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configura as rotas
func (s *Server) setupRoutes() {
	r := s.router

	// Middlewares globais
	r.Use(RequestID)
	r.Use(RequestLogger(s.logger))
	r.Use(Recoverer(s.logger))
	r.Use(ContentTypeJSON)

	r.Get("/health", s.handlers.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	r.Post("/invoke", s.handlers.Invoke)
}

// Router expõe o router para testes
func (s *Server) Router() http.Handler {
	return s.router
}

// Start inicia o servidor HTTP
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("local harness listening", zap.String("addr", s.addr))
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown encerra o servidor graciosamente
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
