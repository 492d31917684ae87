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
	CreateSessionCommand struct {
		Input model.SessionInput
	}

	CreateSessionCommandHandler = decorator.CommandHandler[CreateSessionCommand, *model.Session]

	createSessionCommandHandler struct {
		sessionsService ports.SessionsService
	}
)

func NewCreateSessionCommandHandler(
	svc ports.SessionsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateSessionCommandHandler {
	return decorator.ApplyCommandDecorators[CreateSessionCommand, *model.Session](
		createSessionCommandHandler{sessionsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (*model.Session, error) {
	return h.sessionsService.CreateSession(ctx, cmd.Input)
}
