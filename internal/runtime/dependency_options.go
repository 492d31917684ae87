package runtime

import (
	"context"
	"fmt"
	"net/http"

	inboundhttp "github.com/architeacher/monitoring/internal/adapters/inbound/http"
	"github.com/architeacher/monitoring/internal/adapters/repos"
	"github.com/architeacher/monitoring/internal/config"
	"github.com/architeacher/monitoring/internal/infrastructure"
	infraPostgres "github.com/architeacher/monitoring/internal/infrastructure/postgres"
	"github.com/architeacher/monitoring/internal/services"
	"github.com/architeacher/monitoring/internal/usecases"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/architeacher/monitoring/pkg/metrics/noop"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithTracing(ctx),
		WithMetrics(ctx),
		WithDatabase(ctx),
		WithRepositories(),
		WithDomainServices(),
		WithApplication(),
		WithHTTPServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

func WithTracing(_ context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Traces.Enabled || d.config.Telemetry.OTLPEndpoint == "" {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(
			d.config.Telemetry.ServiceName,
			d.config.App.ServiceVersion,
			d.config.Telemetry.OTLPEndpoint,
		)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.infra.tracerShutdown = shutdown
		d.cleanupFuncs["tracer"] = shutdown

		return nil
	}
}

func WithMetrics(_ context.Context) DependencyOption {
	return func(d *dependencies) error {
		d.infra.metricsClient = noop.NewMetricsClient()

		return nil
	}
}

func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		pool, err := infraPostgres.NewPool(ctx, d.config.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		if err := infraPostgres.Bootstrap(ctx, pool, d.config.Database.SeedSampleData, d.infra.logger); err != nil {
			pool.Close()

			return fmt.Errorf("bootstrapping database: %w", err)
		}

		d.infra.dbPool = pool
		d.cleanupFuncs["database"] = func(_ context.Context) error {
			pool.Close()

			return nil
		}

		return nil
	}
}

func WithRepositories() DependencyOption {
	return func(d *dependencies) error {
		scanner := repos.NewPgxScanner()

		d.repos.deviceRepo = repos.NewDevicesRepository(d.infra.dbPool, scanner, d.infra.logger)
		d.repos.sessionRepo = repos.NewSessionsRepository(d.infra.dbPool, scanner, d.infra.logger)

		return nil
	}
}

func WithDomainServices() DependencyOption {
	return func(d *dependencies) error {
		d.services.devices = services.NewDevicesService(d.repos.deviceRepo)
		d.services.sessions = services.NewSessionsService(d.repos.deviceRepo, d.repos.sessionRepo, d.infra.logger)
		d.services.backup = services.NewBackupService(d.repos.deviceRepo, d.repos.sessionRepo, d.infra.logger)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.app = usecases.NewApplication(
			d.services.devices,
			d.services.sessions,
			d.services.backup,
			d.getDBHealthChecker(),
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:    d.app,
			Logger: d.infra.logger,
			Config: d.config,
		})

		d.infra.httpServer = &http.Server{
			Addr:         fmt.Sprintf("%s:%d", d.config.HTTPServer.Host, d.config.HTTPServer.Port),
			Handler:      router,
			ReadTimeout:  d.config.HTTPServer.ReadTimeout,
			WriteTimeout: d.config.HTTPServer.WriteTimeout,
		}

		return nil
	}
}
