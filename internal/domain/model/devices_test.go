package model_test

import (
	"testing"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDeviceValidate(t *testing.T) {
	t.Parallel()

	validID := model.DeviceID{UUID: uuid.New()}

	cases := []struct {
		name        string
		device      *model.Device
		expectError bool
		field       string
	}{
		{
			name:   "valid device",
			device: model.NewDevice(validID, "Laptop 01"),
		},
		{
			name:        "zero id is rejected",
			device:      model.NewDevice(model.DeviceID{}, "Laptop 01"),
			expectError: true,
			field:       "id",
		},
		{
			name:        "empty name is rejected",
			device:      model.NewDevice(validID, ""),
			expectError: true,
			field:       "name",
		},
		{
			name:        "whitespace-only name is rejected",
			device:      model.NewDevice(validID, "   \t"),
			expectError: true,
			field:       "name",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.device.Validate()

			if !tc.expectError {
				require.NoError(t, err)

				return
			}

			var validationErrors *model.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			require.True(t, validationErrors.HasErrors())
			require.Equal(t, tc.field, validationErrors.Errors[0].Field)
		})
	}
}

func TestParseDeviceID(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	parsed, err := model.ParseDeviceID(id.String())
	require.NoError(t, err)
	require.Equal(t, id.String(), parsed.String())
	require.False(t, parsed.IsZero())

	_, err = model.ParseDeviceID("not-a-uuid")
	require.Error(t, err)
}
