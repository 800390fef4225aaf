package error

import "errors"

// Habit log domain errors.
var (
	// ErrInvalidHabit is returned when the habit name is not tracked.
	ErrInvalidHabit = errors.New("habit must be one of: quran, morning_adhkar, evening_adhkar, dua, sadaqah, fasting")
)

// HabitErrorCode defines error codes for habit log errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHabit     HabitErrorCode = "HAB-010001"
	ErrCodeInvalidHabitDate HabitErrorCode = "HAB-010002"

	// Internal errors (99XXXX)
	ErrCodeHabitInternalError HabitErrorCode = "HAB-990001"
)

// HabitError represents a habit log error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
