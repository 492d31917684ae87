package model_test

import (
	"testing"
	"time"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSessionInputValidate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	cases := []struct {
		name        string
		startTime   time.Time
		endTime     time.Time
		expectError bool
	}{
		{
			name:      "end after start is accepted",
			startTime: now,
			endTime:   now.Add(time.Hour),
		},
		{
			name:      "equal start and end is accepted",
			startTime: now,
			endTime:   now,
		},
		{
			name:        "end before start is rejected",
			startTime:   now,
			endTime:     now.Add(-time.Second),
			expectError: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input := model.SessionInput{
				DeviceID:  model.DeviceID{UUID: uuid.New()},
				Name:      "Laptop 01",
				StartTime: tc.startTime,
				EndTime:   tc.endTime,
				Version:   "1.0",
			}

			err := input.Validate()

			if !tc.expectError {
				require.NoError(t, err)

				return
			}

			var validationErrors *model.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			require.Equal(t, "endTime", validationErrors.Errors[0].Field)
		})
	}
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	input := model.SessionInput{
		DeviceID:  model.DeviceID{UUID: uuid.New()},
		Name:      "Laptop 01",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
		Version:   "2.1.0",
	}

	session := model.NewSession(input)

	require.NotEqual(t, uuid.Nil, session.ID.UUID)
	require.Equal(t, input.DeviceID, session.DeviceID)
	require.Equal(t, input.StartTime, session.StartTime)
	require.Equal(t, input.EndTime, session.EndTime)
	require.Equal(t, input.Version, session.Version)

	other := model.NewSession(input)
	require.NotEqual(t, session.ID, other.ID)
}
