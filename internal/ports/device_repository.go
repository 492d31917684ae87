package ports

import (
	"context"

	"github.com/architeacher/monitoring/internal/domain/model"
)

// DeviceRepository defines the interface for device persistence operations.
type DeviceRepository interface {
	// GetAll retrieves every device, ordered by name ascending.
	GetAll(ctx context.Context) ([]*model.Device, error)

	// Upsert inserts the device or, when the ID already exists,
	// overwrites its name in a single atomic statement.
	Upsert(ctx context.Context, device *model.Device) error
}
