package error

import "errors"

// Zakat domain errors.
var (
	// ErrNegativeAmount is returned when an asset, debt or price is negative.
	ErrNegativeAmount = errors.New("amounts must not be negative")

	// ErrInvalidAmount is returned when an amount cannot be parsed as a number.
	ErrInvalidAmount = errors.New("amounts must be numeric")

	// ErrInvalidZakatEntryID is returned when the entry id is not a valid UUID.
	ErrInvalidZakatEntryID = errors.New("invalid zakat entry id")
)

// ZakatErrorCode defines error codes for zakat errors.
// Format: ZKT-XXYYYY where XX is category and YYYY is specific error.
type ZakatErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount     ZakatErrorCode = "ZKT-010001"
	ErrCodeInvalidAmount      ZakatErrorCode = "ZKT-010002"
	ErrCodeInvalidZakatEntry  ZakatErrorCode = "ZKT-010003"
	ErrCodeInvalidZakatDate   ZakatErrorCode = "ZKT-010004"

	// Internal errors (99XXXX)
	ErrCodeZakatInternalError ZakatErrorCode = "ZKT-990001"
)

// ZakatError represents a zakat error with code and message.
type ZakatError struct {
	Code    ZakatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ZakatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ZakatError) Unwrap() error {
	return e.Err
}

// NewZakatError creates a new ZakatError with the given code and message.
func NewZakatError(code ZakatErrorCode, message string, err error) *ZakatError {
	return &ZakatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
