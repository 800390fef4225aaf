package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the single durable profile of a tracker user.
type UserProfile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ExternalID    *string   `json:"external_id,omitempty"`
	City          string    `json:"city"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	TotalPoints   int       `json:"total_points"`
	Streak        int       `json:"streak"`
	LongestStreak int       `json:"longest_streak"`
	JoinedAt      time.Time `json:"joined_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewUserProfile creates a profile with zeroed counters, joined now.
func NewUserProfile(id uuid.UUID, name, city string, now time.Time) *UserProfile {
	return &UserProfile{
		ID:        id,
		Name:      name,
		City:      city,
		JoinedAt:  now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// Normalize clamps counters into their valid domain.
func (p *UserProfile) Normalize() {
	if p.TotalPoints < 0 {
		p.TotalPoints = 0
	}
	if p.Streak < 0 {
		p.Streak = 0
	}
	if p.LongestStreak < p.Streak {
		p.LongestStreak = p.Streak
	}
}

// ApplyStreak sets the current streak and raises the longest streak when exceeded.
// LongestStreak never decreases.
func (p *UserProfile) ApplyStreak(streak int) {
	if streak < 0 {
		streak = 0
	}
	p.Streak = streak
	if streak > p.LongestStreak {
		p.LongestStreak = streak
	}
}

// ValidCoordinates reports whether latitude and longitude are inside their ranges.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
