package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionID struct {
	uuid.UUID
}

func NewSessionID() SessionID {
	return SessionID{UUID: uuid.Must(uuid.NewV7())}
}

func ParseSessionID(s string) (SessionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SessionID{}, err
	}

	return SessionID{UUID: id}, nil
}

func (s SessionID) String() string {
	return s.UUID.String()
}

// Session is an immutable, time-bounded usage record reported by a device.
type Session struct {
	ID        SessionID
	DeviceID  DeviceID
	StartTime time.Time
	EndTime   time.Time
	Version   string
}

// SessionInput carries everything a reporter submits for a new session,
// including the device name used to implicitly (re)register the device.
type SessionInput struct {
	DeviceID  DeviceID
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Version   string
}

// Validate enforces the session interval invariant. Equal start and end
// times are accepted.
func (in SessionInput) Validate() error {
	validationErrors := NewValidationErrors()

	if in.EndTime.Before(in.StartTime) {
		validationErrors.Add("endTime", "endTime cannot be earlier than startTime", "INVALID_INTERVAL")
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}

// NewSession builds a persistable session from reporter input, generating
// the server-side identifier.
func NewSession(in SessionInput) *Session {
	return &Session{
		ID:        NewSessionID(),
		DeviceID:  in.DeviceID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Version:   in.Version,
	}
}
