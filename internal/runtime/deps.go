package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/monitoring/internal/adapters/repos"
	"github.com/architeacher/monitoring/internal/config"
	"github.com/architeacher/monitoring/internal/infrastructure"
	"github.com/architeacher/monitoring/internal/ports"
	"github.com/architeacher/monitoring/internal/usecases"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/architeacher/monitoring/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	infrastructureDep struct {
		httpServer     *http.Server
		tracerProvider otelTrace.TracerProvider
		tracerShutdown infrastructure.ShutdownFunc
		metricsClient  metrics.Client
		logger         logger.Logger
		dbPool         *pgxpool.Pool
	}

	repositories struct {
		deviceRepo  ports.DeviceRepository
		sessionRepo ports.SessionRepository
	}

	domainServices struct {
		devices  ports.DevicesService
		sessions ports.SessionsService
		backup   ports.BackupService
	}

	dependencies struct {
		config       *config.ServiceConfig
		infra        infrastructureDep
		repos        repositories
		services     domainServices
		app          *usecases.Application
		cleanupFuncs map[string]func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

func (d *dependencies) getDBHealthChecker() ports.DatabaseHealthChecker {
	return d.repos.deviceRepo.(*repos.DevicesRepository)
}
