package ports

import (
	"context"

	"github.com/architeacher/monitoring/internal/domain/model"
)

type (
	// SessionsService defines the cross-entity session operations.
	SessionsService interface {
		// CreateSession upserts the reporting device and persists a new
		// session for it. Interval validation is the transport layer's
		// responsibility.
		CreateSession(ctx context.Context, input model.SessionInput) (*model.Session, error)

		// GetSessionsByDevice returns the device's sessions, newest first.
		GetSessionsByDevice(ctx context.Context, deviceID model.DeviceID) ([]*model.Session, error)
	}

	// DevicesService defines device registration and listing.
	DevicesService interface {
		// ListDevices returns every known device ordered by name.
		ListDevices(ctx context.Context) ([]*model.Device, error)

		// UpsertDevice registers a device or renames an existing one.
		UpsertDevice(ctx context.Context, device *model.Device) error
	}

	// BackupService builds full data exports.
	BackupService interface {
		// BuildSnapshot reads all devices and sessions and stamps the
		// snapshot with the current UTC time.
		BuildSnapshot(ctx context.Context) (model.BackupSnapshot, error)
	}
)
