package error

import "errors"

// Reward domain errors.
var (
	// ErrInvalidRewardKind is returned when the reward kind is unknown.
	ErrInvalidRewardKind = errors.New("kind must be one of: hadith_read, surah_read, seerah_chapter, zakat_logged, ibadah_timer")

	// ErrMissingRewardIdentifier is returned when no identifier is supplied for deduplication.
	ErrMissingRewardIdentifier = errors.New("identifier is required")

	// ErrInvalidRewardPoints is returned when an explicit points value is negative or above the reward maximum.
	ErrInvalidRewardPoints = errors.New("points out of range")
)

// RewardErrorCode defines error codes for reward errors.
// Format: RWD-XXYYYY where XX is category and YYYY is specific error.
type RewardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRewardKind       RewardErrorCode = "RWD-010001"
	ErrCodeMissingRewardIdentifier RewardErrorCode = "RWD-010002"
	ErrCodeInvalidRewardPoints     RewardErrorCode = "RWD-010003"

	// Internal errors (99XXXX)
	ErrCodeRewardInternalError RewardErrorCode = "RWD-990001"
)

// RewardError represents a reward error with code and message.
type RewardError struct {
	Code    RewardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RewardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RewardError) Unwrap() error {
	return e.Err
}

// NewRewardError creates a new RewardError with the given code and message.
func NewRewardError(code RewardErrorCode, message string, err error) *RewardError {
	return &RewardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
