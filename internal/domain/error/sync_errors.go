package error

import "errors"

// Synchronization and retention errors.
var (
	// ErrSyncRemoteUnavailable is returned when the sync remote cannot be reached.
	ErrSyncRemoteUnavailable = errors.New("sync remote unavailable")

	// ErrInvalidRetention is returned when the retention window is not positive.
	ErrInvalidRetention = errors.New("keep_days must be positive")
)

// SyncErrorCode defines error codes for sync and retention errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRetention SyncErrorCode = "SYN-010001"

	// External service errors (02XXXX)
	ErrCodeSyncRemoteUnavailable SyncErrorCode = "SYN-020001"

	// Internal errors (99XXXX)
	ErrCodeSyncInternalError SyncErrorCode = "SYN-990001"
)

// SyncError represents a sync or retention error with code and message.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
