package postgres

import (
	"context"
	"fmt"

	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS devices (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
    id UUID PRIMARY KEY,
    device_id UUID NOT NULL REFERENCES devices(id) ON DELETE CASCADE,
    start_time TIMESTAMPTZ NOT NULL,
    end_time TIMESTAMPTZ NOT NULL,
    version TEXT NOT NULL
);
`

// sample devices inserted on first start so the UI has something to show.
var seedDeviceNames = []string{"John Doe", "Jack Smith", "Lewis Carroll"}

// Bootstrap applies the schema when absent and optionally seeds sample
// devices into an empty database.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, seedSampleData bool, log logger.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	log.Info().Msg("database schema applied")

	if !seedSampleData {
		return nil
	}

	var existingCount int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM devices").Scan(&existingCount); err != nil {
		return fmt.Errorf("counting devices: %w", err)
	}

	if existingCount > 0 {
		return nil
	}

	for _, name := range seedDeviceNames {
		if _, err := pool.Exec(
			ctx,
			"INSERT INTO devices (id, name) VALUES ($1, $2)",
			uuid.New().String(),
			name,
		); err != nil {
			return fmt.Errorf("seeding device %q: %w", name, err)
		}
	}

	log.Info().Int("count", len(seedDeviceNames)).Msg("seeded sample devices")

	return nil
}
