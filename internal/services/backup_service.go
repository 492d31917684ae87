package services

import (
	"context"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/internal/ports"
	"github.com/architeacher/monitoring/pkg/logger"
)

// BackupService assembles full exports of devices and sessions. The two
// reads run without snapshot isolation; a row inserted between them may or
// may not appear, which is acceptable for an operator-triggered export.
type BackupService struct {
	deviceRepo  ports.DeviceRepository
	sessionRepo ports.SessionRepository
	logger      logger.Logger
}

func NewBackupService(
	deviceRepo ports.DeviceRepository,
	sessionRepo ports.SessionRepository,
	log logger.Logger,
) *BackupService {
	return &BackupService{
		deviceRepo:  deviceRepo,
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

func (s *BackupService) BuildSnapshot(ctx context.Context) (model.BackupSnapshot, error) {
	devices, err := s.deviceRepo.GetAll(ctx)
	if err != nil {
		return model.BackupSnapshot{}, err
	}

	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return model.BackupSnapshot{}, err
	}

	snapshot := model.NewBackupSnapshot(devices, sessions)

	ctxLogger := s.logger.WithContext(ctx)
	ctxLogger.Info().
		Int("devices", len(devices)).
		Int("sessions", len(sessions)).
		Msg("backup snapshot assembled")

	return snapshot, nil
}
