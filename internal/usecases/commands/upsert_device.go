package commands

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
	UpsertDeviceCommand struct {
		ID   model.DeviceID
		Name string
	}

	UpsertDeviceCommandHandler = decorator.CommandHandler[UpsertDeviceCommand, struct{}]

	upsertDeviceCommandHandler struct {
		devicesService ports.DevicesService
	}
)

func NewUpsertDeviceCommandHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) UpsertDeviceCommandHandler {
	return decorator.ApplyCommandDecorators[UpsertDeviceCommand, struct{}](
		upsertDeviceCommandHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h upsertDeviceCommandHandler) Handle(ctx context.Context, cmd UpsertDeviceCommand) (struct{}, error) {
	return struct{}{}, h.devicesService.UpsertDevice(ctx, model.NewDevice(cmd.ID, cmd.Name))
}
