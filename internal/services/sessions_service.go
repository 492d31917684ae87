package services

import (
	"context"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/internal/ports"
	"github.com/architeacher/monitoring/pkg/logger"
)

// SessionsService coordinates the device upsert and session insert that make
// up a session report. The two writes are sequential, not transactional: a
// crash in between leaves a device with zero sessions, which is a valid
// state, and resubmitting simply upserts the device again and inserts a
// fresh session row.
type SessionsService struct {
	deviceRepo  ports.DeviceRepository
	sessionRepo ports.SessionRepository
	logger      logger.Logger
}

func NewSessionsService(
	deviceRepo ports.DeviceRepository,
	sessionRepo ports.SessionRepository,
	log logger.Logger,
) *SessionsService {
	return &SessionsService{
		deviceRepo:  deviceRepo,
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

// CreateSession upserts the reporting device and persists a new session.
// Every report overwrites the stored device name with whatever name
// accompanied it: last writer wins. Interval validation happens upstream.
func (s *SessionsService) CreateSession(ctx context.Context, input model.SessionInput) (*model.Session, error) {
	device := model.NewDevice(input.DeviceID, input.Name)

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, err
	}

	session := model.NewSession(input)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	ctxLogger := s.logger.WithContext(ctx)
	ctxLogger.Info().
		Str("session_id", session.ID.String()).
		Str("device_id", input.DeviceID.String()).
		Msg("session recorded")

	return session, nil
}

// GetSessionsByDevice returns the device's sessions newest first. An empty
// result is returned as-is; whether that means "not found" is the transport
// layer's call.
func (s *SessionsService) GetSessionsByDevice(ctx context.Context, deviceID model.DeviceID) ([]*model.Session, error) {
	return s.sessionRepo.GetByDevice(ctx, deviceID)
}
