package inventory

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when an operation targets a session ID
// that does not exist.
var ErrSessionNotFound = errors.New("inventory: session not found")

// SyncError wraps a failed device sync. The whole batch was rolled back;
// the device's previous readings are intact and the device must retry.
type SyncError struct {
	SessionID uint
	Device    string
	Err       error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync session %d device %s: %v", e.SessionID, e.Device, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
