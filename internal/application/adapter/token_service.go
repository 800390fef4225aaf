package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeviceToken is an access token issued to a registered device.
type DeviceToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// TokenClaims represents the claims contained in a device token.
type TokenClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for device token operations.
type TokenService interface {
	// GenerateDeviceToken issues a token bound to the profile id.
	GenerateDeviceToken(ctx context.Context, userID uuid.UUID) (*DeviceToken, error)

	// ValidateAccessToken validates a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
