package http

import (
	"net/http"

	"github.com/architeacher/monitoring/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/monitoring/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/monitoring/internal/config"
	"github.com/architeacher/monitoring/internal/usecases"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	App    *usecases.Application
	Logger logger.Logger
	Config *config.ServiceConfig
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	// Core middlewares - always applied
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(chimiddleware.Timeout(cfg.Config.HTTPServer.WriteTimeout))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS([]string{"*"}))

	// Access logging with health check filtering
	if cfg.Config.Logging.AccessLog.Enabled {
		router.Use(middleware.HealthCheckFilter(cfg.Config.Logging.AccessLog.LogHealthChecks))
		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeQueryParams))
	}

	devicesHandler := handlers.NewDevicesHandler(cfg.App, cfg.Logger)
	sessionsHandler := handlers.NewSessionsHandler(cfg.App, cfg.Logger)
	backupHandler := handlers.NewBackupHandler(cfg.App, cfg.Logger)
	healthHandler := handlers.NewHealthHandler(cfg.App, cfg.Logger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/devices", devicesHandler.ListDevices)
		r.Post("/devices", devicesHandler.CreateDevice)
		r.Get("/devices/{deviceID}/sessions", sessionsHandler.ListDeviceSessions)
		r.Post("/sessions", sessionsHandler.CreateSession)
		r.Get("/backup", backupHandler.DownloadBackup)
	})

	router.Route("/health", func(r chi.Router) {
		r.Get("/liveness", healthHandler.Liveness)
		r.Get("/readiness", healthHandler.Readiness)
	})

	return router
}
