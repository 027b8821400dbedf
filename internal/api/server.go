package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"

	api "downtimed/internal/api/application"
	"downtimed/internal/api/handlers"
	apimiddleware "downtimed/internal/api/middleware"
	configapp "downtimed/internal/config/application"
	"downtimed/internal/infrastructure/logger"
	monitorapp "downtimed/internal/monitor/application"
)

// Server is the read-only status API server.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer creates the status API server. When no API key is configured the
// endpoints are open; they expose nothing an attacker could act on.
func NewServer(appLogger *logger.Logger, runtimeCfg *configapp.RuntimeConfig, monitor *monitorapp.Service) *Server {
	statusService := api.NewStatusService(monitor)
	outageService := api.NewOutageService(monitor)

	statusHandler := handlers.NewStatusHandler(statusService)
	outageHandler := handlers.NewOutageHandler(outageService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(httplog.RequestLogger(appLogger.SLog(), &httplog.Options{
		Level:             slog.LevelDebug,
		Schema:            httplog.SchemaECS.Concise(true),
		LogRequestHeaders: []string{},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if runtimeCfg.APIKey != "" {
			r.Use(apimiddleware.APIKeyAuthWithKey(runtimeCfg.APIKey))
		}

		r.Get("/status", statusHandler.GetStatus)
		r.Get("/outages", outageHandler.ListOutages)
	})

	httpServer := &http.Server{
		Addr:         runtimeCfg.APIAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	appLogger.Debug("Server configured",
		"addr", runtimeCfg.APIAddr,
		"auth", runtimeCfg.APIKey != "",
	)

	return &Server{
		httpServer: httpServer,
		logger:     appLogger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("Server error", "err", err)
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server shutdown error", "err", err)
	} else {
		s.logger.Info("Server shutdown complete")
	}
	return err
}
