package usecases

import (
	"github.com/architeacher/monitoring/internal/ports"
	"github.com/architeacher/monitoring/internal/usecases/commands"
	"github.com/architeacher/monitoring/internal/usecases/queries"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/architeacher/monitoring/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		UpsertDevice  commands.UpsertDeviceCommandHandler
		CreateSession commands.CreateSessionCommandHandler
	}

	Queries struct {
		ListDevices        queries.ListDevicesQueryHandler
		ListDeviceSessions queries.ListDeviceSessionsQueryHandler
		FetchBackup        queries.FetchBackupQueryHandler
		FetchLiveness      queries.FetchLivenessQueryHandler
		FetchReadiness     queries.FetchReadinessQueryHandler
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}
)

func NewApplication(
	devicesSvc ports.DevicesService,
	sessionsSvc ports.SessionsService,
	backupSvc ports.BackupService,
	dbHealthChecker ports.DatabaseHealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *Application {
	return &Application{
		Commands: Commands{
			UpsertDevice:  commands.NewUpsertDeviceCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			CreateSession: commands.NewCreateSessionCommandHandler(sessionsSvc, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			ListDevices:        queries.NewListDevicesQueryHandler(devicesSvc, log, metricsClient, tracerProvider),
			ListDeviceSessions: queries.NewListDeviceSessionsQueryHandler(sessionsSvc, log, metricsClient, tracerProvider),
			FetchBackup:        queries.NewFetchBackupQueryHandler(backupSvc, log, metricsClient, tracerProvider),
			FetchLiveness:      queries.NewFetchLivenessQueryHandler(log, metricsClient, tracerProvider),
			FetchReadiness:     queries.NewFetchReadinessQueryHandler(dbHealthChecker, log, metricsClient, tracerProvider),
		},
	}
}
