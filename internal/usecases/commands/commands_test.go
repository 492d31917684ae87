package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/internal/usecases/commands"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/architeacher/monitoring/pkg/metrics/noop"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

type fakeDevicesService struct {
	listDevicesFn  func(ctx context.Context) ([]*model.Device, error)
	upsertDeviceFn func(ctx context.Context, device *model.Device) error
}

func (f *fakeDevicesService) ListDevices(ctx context.Context) ([]*model.Device, error) {
	return f.listDevicesFn(ctx)
}

func (f *fakeDevicesService) UpsertDevice(ctx context.Context, device *model.Device) error {
	return f.upsertDeviceFn(ctx, device)
}

type fakeSessionsService struct {
	createSessionFn       func(ctx context.Context, input model.SessionInput) (*model.Session, error)
	getSessionsByDeviceFn func(ctx context.Context, deviceID model.DeviceID) ([]*model.Session, error)
}

func (f *fakeSessionsService) CreateSession(ctx context.Context, input model.SessionInput) (*model.Session, error) {
	return f.createSessionFn(ctx, input)
}

func (f *fakeSessionsService) GetSessionsByDevice(ctx context.Context, deviceID model.DeviceID) ([]*model.Session, error) {
	return f.getSessionsByDeviceFn(ctx, deviceID)
}

func TestUpsertDeviceCommandHandler(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()

	deviceID := model.DeviceID{UUID: uuid.New()}

	cases := []struct {
		name        string
		setupSvc    func() *fakeDevicesService
		expectError bool
		expectedErr error
	}{
		{
			name: "forwards id and name to the service",
			setupSvc: func() *fakeDevicesService {
				return &fakeDevicesService{
					upsertDeviceFn: func(_ context.Context, device *model.Device) error {
						require.Equal(t, deviceID, device.ID)
						require.Equal(t, "Laptop 01", device.Name)

						return nil
					},
				}
			},
		},
		{
			name: "service error is propagated",
			setupSvc: func() *fakeDevicesService {
				return &fakeDevicesService{
					upsertDeviceFn: func(_ context.Context, _ *model.Device) error {
						return model.ErrDatabaseQuery
					},
				}
			},
			expectError: true,
			expectedErr: model.ErrDatabaseQuery,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := commands.NewUpsertDeviceCommandHandler(tc.setupSvc(), log, mc, tp)

			_, err := handler.Handle(t.Context(), commands.UpsertDeviceCommand{
				ID:   deviceID,
				Name: "Laptop 01",
			})

			if tc.expectError {
				require.ErrorIs(t, err, tc.expectedErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCreateSessionCommandHandler(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()

	deviceID := model.DeviceID{UUID: uuid.New()}
	now := time.Now().UTC()

	input := model.SessionInput{
		DeviceID:  deviceID,
		Name:      "Laptop 01",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
		Version:   "2.0",
	}

	t.Run("returns the created session", func(t *testing.T) {
		t.Parallel()

		expected := model.NewSession(input)

		svc := &fakeSessionsService{
			createSessionFn: func(_ context.Context, got model.SessionInput) (*model.Session, error) {
				require.Equal(t, input, got)

				return expected, nil
			},
		}

		handler := commands.NewCreateSessionCommandHandler(svc, log, mc, tp)

		session, err := handler.Handle(t.Context(), commands.CreateSessionCommand{Input: input})
		require.NoError(t, err)
		require.Equal(t, expected, session)
	})

	t.Run("service error is propagated", func(t *testing.T) {
		t.Parallel()

		svcErr := errors.New("create failed")

		svc := &fakeSessionsService{
			createSessionFn: func(_ context.Context, _ model.SessionInput) (*model.Session, error) {
				return nil, svcErr
			},
		}

		handler := commands.NewCreateSessionCommandHandler(svc, log, mc, tp)

		session, err := handler.Handle(t.Context(), commands.CreateSessionCommand{Input: input})
		require.ErrorIs(t, err, svcErr)
		require.Nil(t, session)
	})
}
