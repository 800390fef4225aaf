package dto

import (
	"time"

	"github.com/ibadah-tracker/backend/internal/application/usecase/profile"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// RegisterDeviceRequest represents the request body for registering a device.
type RegisterDeviceRequest struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	ExternalID *string  `json:"external_id"`
}

// UpdateProfileRequest represents the request body for updating a profile.
type UpdateProfileRequest struct {
	Name       *string  `json:"name"`
	City       *string  `json:"city"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	ExternalID *string  `json:"external_id"`
}

// ProfileResponse represents a profile in API responses.
type ProfileResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	ExternalID    *string              `json:"external_id,omitempty"`
	City          string               `json:"city"`
	Latitude      float64              `json:"latitude"`
	Longitude     float64              `json:"longitude"`
	TotalPoints   int                  `json:"total_points"`
	Streak        int                  `json:"streak"`
	LongestStreak int                  `json:"longest_streak"`
	JoinedAt      string               `json:"joined_at"`
	Level         entity.LevelProgress `json:"level"`
}

// DeviceResponse represents the response of a device registration.
type DeviceResponse struct {
	Profile     ProfileResponse `json:"profile"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   string          `json:"expires_at"`
}

// ToProfileResponse converts a profile snapshot to a ProfileResponse DTO.
func ToProfileResponse(output *profile.GetProfileOutput) ProfileResponse {
	p := output.Profile
	return ProfileResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		ExternalID:    p.ExternalID,
		City:          p.City,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		TotalPoints:   p.TotalPoints,
		Streak:        p.Streak,
		LongestStreak: p.LongestStreak,
		JoinedAt:      p.JoinedAt.Format(time.RFC3339),
		Level:         output.Level,
	}
}

// ToDeviceResponse converts a registration output to a DeviceResponse DTO.
func ToDeviceResponse(output *profile.RegisterDeviceOutput) DeviceResponse {
	return DeviceResponse{
		Profile: ToProfileResponse(&profile.GetProfileOutput{
			Profile: output.Profile,
			Level:   entity.ProgressFor(output.Profile.TotalPoints),
		}),
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   output.ExpiresAt.Format(time.RFC3339),
	}
}
