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
	ListDeviceSessionsQuery struct {
		DeviceID model.DeviceID
	}

	ListDeviceSessionsQueryHandler = decorator.QueryHandler[ListDeviceSessionsQuery, []*model.Session]

	listDeviceSessionsQueryHandler struct {
		sessionsService ports.SessionsService
	}
)

func NewListDeviceSessionsQueryHandler(
	svc ports.SessionsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListDeviceSessionsQueryHandler {
	return decorator.ApplyQueryDecorators[ListDeviceSessionsQuery, []*model.Session](
		listDeviceSessionsQueryHandler{sessionsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listDeviceSessionsQueryHandler) Execute(ctx context.Context, query ListDeviceSessionsQuery) ([]*model.Session, error) {
	return h.sessionsService.GetSessionsByDevice(ctx, query.DeviceID)
}
