package repos

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/pkg/logger"
)

const sessionsTable = "sessions"

type (
	// SessionsRepository handles session persistence operations.
	SessionsRepository struct {
		pool    PoolOps
		scanner Scanner
		logger  logger.Logger
	}

	sessionRow struct {
		ID        string    `db:"id"`
		DeviceID  string    `db:"device_id"`
		StartTime time.Time `db:"start_time"`
		EndTime   time.Time `db:"end_time"`
		Version   string    `db:"version"`
	}
)

// NewSessionsRepository creates a new SessionsRepository with the given dependencies.
func NewSessionsRepository(pool PoolOps, scanner Scanner, log logger.Logger) *SessionsRepository {
	return &SessionsRepository{
		pool:    pool,
		scanner: scanner,
		logger:  log,
	}
}

// Create appends a new session row. The id is expected to be populated
// already; generation happens in the sessions service.
func (r *SessionsRepository) Create(ctx context.Context, session *model.Session) error {
	query, args, err := psql.Insert(sessionsTable).
		Columns("id", "device_id", "start_time", "end_time", "version").
		Values(
			session.ID.String(),
			session.DeviceID.String(),
			session.StartTime,
			session.EndTime,
			session.Version,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	ctxLogger := r.logger.WithContext(ctx)
	ctxLogger.Debug().
		Str("session_id", session.ID.String()).
		Str("device_id", session.DeviceID.String()).
		Msg("session created")

	return nil
}

func (r *SessionsRepository) GetAll(ctx context.Context) ([]*model.Session, error) {
	builder := psql.Select("id", "device_id", "start_time", "end_time", "version").
		From(sessionsTable).
		OrderBy("start_time DESC")

	return r.querySessions(ctx, builder)
}

func (r *SessionsRepository) GetByDevice(ctx context.Context, deviceID model.DeviceID) ([]*model.Session, error) {
	builder := psql.Select("id", "device_id", "start_time", "end_time", "version").
		From(sessionsTable).
		Where(sq.Eq{"device_id": deviceID.String()}).
		OrderBy("start_time DESC")

	return r.querySessions(ctx, builder)
}

func (r *SessionsRepository) querySessions(ctx context.Context, builder sq.SelectBuilder) ([]*model.Session, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var sessionRows []sessionRow
	if err := r.scanner.ScanAll(&sessionRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	sessions := make([]*model.Session, 0, len(sessionRows))
	for index := range sessionRows {
		session, err := r.convertRowToSession(sessionRows[index])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (r *SessionsRepository) convertRowToSession(row sessionRow) (*model.Session, error) {
	id, err := model.ParseSessionID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session ID: %w", err)
	}

	deviceID, err := model.ParseDeviceID(row.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse device ID: %w", err)
	}

	return &model.Session{
		ID:        id,
		DeviceID:  deviceID,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		Version:   row.Version,
	}, nil
}
