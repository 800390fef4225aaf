package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for profile persistence operations.
type ProfileRepository interface {
	// FindByID returns the stored profile. The bool is false when none exists or it cannot be read.
	FindByID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, bool)

	// Save writes the profile.
	Save(ctx context.Context, profile *entity.UserProfile) error
}
