package ports

import (
	"context"

	"github.com/architeacher/monitoring/internal/domain/model"
)

// SessionRepository defines the interface for session persistence operations.
// Sessions are append-only: no update or delete exists.
type SessionRepository interface {
	// Create appends a new session row. The session ID must already be
	// populated by the caller.
	Create(ctx context.Context, session *model.Session) error

	// GetAll retrieves every session, ordered by start time descending.
	GetAll(ctx context.Context) ([]*model.Session, error)

	// GetByDevice retrieves the sessions of one device, ordered by start
	// time descending. A device with no sessions yields an empty slice,
	// not an error.
	GetByDevice(ctx context.Context, deviceID model.DeviceID) ([]*model.Session, error)
}
