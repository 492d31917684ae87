package queries

import (
	"context"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/internal/ports"
	"github.com/architeacher/monitoring/pkg/decorator"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/architeacher/monitoring/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	FetchBackupQuery struct{}

	FetchBackupQueryHandler = decorator.QueryHandler[FetchBackupQuery, model.BackupSnapshot]

	fetchBackupQueryHandler struct {
		backupService ports.BackupService
	}
)

func NewFetchBackupQueryHandler(
	svc ports.BackupService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchBackupQueryHandler {
	return decorator.ApplyQueryDecorators[FetchBackupQuery, model.BackupSnapshot](
		fetchBackupQueryHandler{backupService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchBackupQueryHandler) Execute(ctx context.Context, _ FetchBackupQuery) (model.BackupSnapshot, error) {
	return h.backupService.BuildSnapshot(ctx)
}
