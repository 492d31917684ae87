package model

import "time"

// BackupSnapshot is a point-in-time export of every device and session.
// It is derived per request and never persisted. The two underlying reads
// are independent, so a session inserted mid-export may be missing its
// device entry or vice versa.
type BackupSnapshot struct {
	CreatedAt time.Time
	Devices   []*Device
	Sessions  []*Session
}

func NewBackupSnapshot(devices []*Device, sessions []*Session) BackupSnapshot {
	return BackupSnapshot{
		CreatedAt: time.Now().UTC(),
		Devices:   devices,
		Sessions:  sessions,
	}
}
