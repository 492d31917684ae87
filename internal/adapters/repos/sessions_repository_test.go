package repos_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/architeacher/monitoring/internal/adapters/repos"
	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/pkg/logger"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func runSessionsRepoTest(
	t *testing.T,
	setupMock func(pgxmock.PgxPoolIface),
	testFn func(*testing.T, *repos.SessionsRepository),
) {
	t.Helper()
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	setupMock(mock)

	repo := repos.NewSessionsRepository(mock, repos.NewPgxScanner(), logger.NewTestLogger())
	testFn(t, repo)

	require.NoError(t, mock.ExpectationsWereMet())
}

func newTestSession(deviceID model.DeviceID, start time.Time) *model.Session {
	return model.NewSession(model.SessionInput{
		DeviceID:  deviceID,
		Name:      "Laptop 01",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Version:   "1.2.0",
	})
}

func TestSessionsRepository_Create(t *testing.T) {
	t.Parallel()

	deviceID := model.DeviceID{UUID: uuid.New()}
	now := time.Now().UTC()

	cases := []struct {
		name        string
		session     *model.Session
		setupMock   func(mock pgxmock.PgxPoolIface, session *model.Session)
		expectError bool
		expectedErr error
	}{
		{
			name:    "successfully create session",
			session: newTestSession(deviceID, now),
			setupMock: func(mock pgxmock.PgxPoolIface, session *model.Session) {
				mock.ExpectExec(regexp.QuoteMeta(
					`INSERT INTO sessions (id,device_id,start_time,end_time,version) VALUES ($1,$2,$3,$4,$5)`,
				)).
					WithArgs(
						session.ID.String(),
						session.DeviceID.String(),
						session.StartTime,
						session.EndTime,
						session.Version,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:    "database error returns wrapped ErrDatabaseQuery",
			session: newTestSession(deviceID, now),
			setupMock: func(mock pgxmock.PgxPoolIface, session *model.Session) {
				mock.ExpectExec(regexp.QuoteMeta(
					`INSERT INTO sessions (id,device_id,start_time,end_time,version) VALUES ($1,$2,$3,$4,$5)`,
				)).
					WithArgs(
						session.ID.String(),
						session.DeviceID.String(),
						session.StartTime,
						session.EndTime,
						session.Version,
					).
					WillReturnError(errors.New("connection refused"))
			},
			expectError: true,
			expectedErr: model.ErrDatabaseQuery,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runSessionsRepoTest(t, func(mock pgxmock.PgxPoolIface) {
				tc.setupMock(mock, tc.session)
			}, func(t *testing.T, repo *repos.SessionsRepository) {
				err := repo.Create(t.Context(), tc.session)

				if tc.expectError {
					require.Error(t, err)
					require.ErrorIs(t, err, tc.expectedErr)

					return
				}
				require.NoError(t, err)
			})
		})
	}
}

func TestSessionsRepository_GetByDevice(t *testing.T) {
	t.Parallel()

	deviceID := model.DeviceID{UUID: uuid.New()}
	now := time.Now().UTC()
	olderStart := now.Add(-2 * time.Hour)

	cases := []struct {
		name        string
		setupMock   func(mock pgxmock.PgxPoolIface)
		expectError bool
		expectedErr error
		validate    func(*testing.T, []*model.Session)
	}{
		{
			name: "returns sessions newest first",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "device_id", "start_time", "end_time", "version"}).
					AddRow(uuid.NewString(), deviceID.String(), now, now.Add(time.Hour), "2.0").
					AddRow(uuid.NewString(), deviceID.String(), olderStart, olderStart.Add(time.Hour), "1.0")
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT id, device_id, start_time, end_time, version FROM sessions WHERE device_id = $1 ORDER BY start_time DESC`,
				)).
					WithArgs(deviceID.String()).
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, sessions []*model.Session) {
				require.Len(t, sessions, 2)
				require.True(t, sessions[0].StartTime.After(sessions[1].StartTime))
				require.Equal(t, deviceID, sessions[0].DeviceID)
				require.Equal(t, "2.0", sessions[0].Version)
			},
		},
		{
			name: "device without sessions returns empty slice",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "device_id", "start_time", "end_time", "version"})
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT id, device_id, start_time, end_time, version FROM sessions WHERE device_id = $1 ORDER BY start_time DESC`,
				)).
					WithArgs(deviceID.String()).
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, sessions []*model.Session) {
				require.NotNil(t, sessions)
				require.Empty(t, sessions)
			},
		},
		{
			name: "query error returns wrapped ErrDatabaseQuery",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT id, device_id, start_time, end_time, version FROM sessions WHERE device_id = $1 ORDER BY start_time DESC`,
				)).
					WithArgs(deviceID.String()).
					WillReturnError(errors.New("connection refused"))
			},
			expectError: true,
			expectedErr: model.ErrDatabaseQuery,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runSessionsRepoTest(t, tc.setupMock, func(t *testing.T, repo *repos.SessionsRepository) {
				sessions, err := repo.GetByDevice(t.Context(), deviceID)

				if tc.expectError {
					require.Error(t, err)
					require.ErrorIs(t, err, tc.expectedErr)
					require.Nil(t, sessions)

					return
				}
				require.NoError(t, err)
				tc.validate(t, sessions)
			})
		})
	}
}

func TestSessionsRepository_GetAll(t *testing.T) {
	firstDevice := model.DeviceID{UUID: uuid.New()}
	secondDevice := model.DeviceID{UUID: uuid.New()}
	now := time.Now().UTC()

	runSessionsRepoTest(t, func(mock pgxmock.PgxPoolIface) {
		rows := pgxmock.NewRows([]string{"id", "device_id", "start_time", "end_time", "version"}).
			AddRow(uuid.NewString(), firstDevice.String(), now, now.Add(time.Hour), "2.0").
			AddRow(uuid.NewString(), secondDevice.String(), now.Add(-time.Hour), now, "1.0")
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, device_id, start_time, end_time, version FROM sessions ORDER BY start_time DESC`,
		)).
			WillReturnRows(rows)
	}, func(t *testing.T, repo *repos.SessionsRepository) {
		sessions, err := repo.GetAll(t.Context())
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		require.Equal(t, firstDevice, sessions[0].DeviceID)
		require.Equal(t, secondDevice, sessions[1].DeviceID)
	})
}
