package error

import "errors"

// Statistics domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidMonth is returned when month is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidGranularity is returned when granularity is unknown.
	ErrInvalidGranularity = errors.New("granularity must be one of: daily, weekly, monthly")
)

// StatsErrorCode defines error codes for statistics errors.
// Format: STS-XXYYYY where XX is category and YYYY is specific error.
type StatsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate   StatsErrorCode = "STS-010001"
	ErrCodeMissingEndDate     StatsErrorCode = "STS-010002"
	ErrCodeInvalidDateRange   StatsErrorCode = "STS-010003"
	ErrCodeInvalidDateFormat  StatsErrorCode = "STS-010004"
	ErrCodeInvalidMonth       StatsErrorCode = "STS-010005"
	ErrCodeInvalidGranularity StatsErrorCode = "STS-010006"

	// Internal errors (99XXXX)
	ErrCodeStatsInternalError StatsErrorCode = "STS-990001"
)

// StatsError represents a statistics error with code and message.
type StatsError struct {
	Code    StatsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatsError) Unwrap() error {
	return e.Err
}

// NewStatsError creates a new StatsError with the given code and message.
func NewStatsError(code StatsErrorCode, message string, err error) *StatsError {
	return &StatsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
