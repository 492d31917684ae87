package services

import (
	"context"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/internal/ports"
)

type DevicesService struct {
	repo ports.DeviceRepository
}

func NewDevicesService(repo ports.DeviceRepository) *DevicesService {
	return &DevicesService{repo: repo}
}

func (s *DevicesService) ListDevices(ctx context.Context) ([]*model.Device, error) {
	return s.repo.GetAll(ctx)
}

func (s *DevicesService) UpsertDevice(ctx context.Context, device *model.Device) error {
	return s.repo.Upsert(ctx, device)
}
