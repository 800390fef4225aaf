// Package error defines domain-specific errors for the Ibadah Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidToken is returned when a device token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a device token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("authorization header is required")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUT-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUT-030002"
	ErrCodeMissingToken AuthErrorCode = "AUT-030003"

	// Rate limiting (04XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUT-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
