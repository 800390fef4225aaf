package error

import "errors"

// Prayer log domain errors.
var (
	// ErrInvalidPrayer is returned when the prayer name is not one of the five mandatory prayers.
	ErrInvalidPrayer = errors.New("prayer must be one of: fajr, dhuhr, asr, maghrib, isha")

	// ErrInvalidPrayerStatus is returned when the requested status is unknown.
	ErrInvalidPrayerStatus = errors.New("status must be one of: none, ontime, late, missed")

	// ErrInvalidDateFormat is returned when a date key is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// PrayerErrorCode defines error codes for prayer log errors.
// Format: PRY-XXYYYY where XX is category and YYYY is specific error.
type PrayerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPrayer       PrayerErrorCode = "PRY-010001"
	ErrCodeInvalidPrayerStatus PrayerErrorCode = "PRY-010002"
	ErrCodeInvalidPrayerDate   PrayerErrorCode = "PRY-010003"

	// Internal errors (99XXXX)
	ErrCodePrayerInternalError PrayerErrorCode = "PRY-990001"
)

// PrayerError represents a prayer log error with code and message.
type PrayerError struct {
	Code    PrayerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PrayerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PrayerError) Unwrap() error {
	return e.Err
}

// NewPrayerError creates a new PrayerError with the given code and message.
func NewPrayerError(code PrayerErrorCode, message string, err error) *PrayerError {
	return &PrayerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
