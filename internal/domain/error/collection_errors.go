package error

import "errors"

// Bookmark and favorite domain errors.
var (
	// ErrInvalidAyahRef is returned when the surah is outside 1..114 or the ayah is below 1.
	ErrInvalidAyahRef = errors.New("surah must be between 1 and 114 and ayah must be positive")

	// ErrMissingHadithID is returned when the hadith identifier is empty.
	ErrMissingHadithID = errors.New("hadith_id is required")
)

// CollectionErrorCode defines error codes for bookmark and favorite errors.
// Format: COL-XXYYYY where XX is category and YYYY is specific error.
type CollectionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAyahRef  CollectionErrorCode = "COL-010001"
	ErrCodeMissingHadithID CollectionErrorCode = "COL-010002"

	// Internal errors (99XXXX)
	ErrCodeCollectionInternalError CollectionErrorCode = "COL-990001"
)

// CollectionError represents a bookmark or favorite error with code and message.
type CollectionError struct {
	Code    CollectionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CollectionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CollectionError) Unwrap() error {
	return e.Err
}

// NewCollectionError creates a new CollectionError with the given code and message.
func NewCollectionError(code CollectionErrorCode, message string, err error) *CollectionError {
	return &CollectionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
