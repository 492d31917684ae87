package model

import (
	"strings"

	"github.com/google/uuid"
)

type DeviceID struct {
	uuid.UUID
}

func ParseDeviceID(s string) (DeviceID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return DeviceID{}, err
	}

	return DeviceID{UUID: id}, nil
}

func (d DeviceID) String() string {
	return d.UUID.String()
}

func (d DeviceID) IsZero() bool {
	return d.UUID == uuid.Nil
}

// Device is a tracked unit identified by a client-supplied UUID.
// The name carries no identity: it is overwritten by whichever
// writer touches the device last.
type Device struct {
	ID   DeviceID
	Name string
}

func NewDevice(id DeviceID, name string) *Device {
	return &Device{
		ID:   id,
		Name: name,
	}
}

// Validate checks the invariants for explicit device registration.
func (d *Device) Validate() error {
	validationErrors := NewValidationErrors()

	if d.ID.IsZero() {
		validationErrors.Add("id", "device ID must be set", "REQUIRED")
	}

	if strings.TrimSpace(d.Name) == "" {
		validationErrors.Add("name", "device name cannot be empty", "REQUIRED")
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}
