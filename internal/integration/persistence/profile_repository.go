package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	records *Records
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(records *Records) adapter.ProfileRepository {
	return &profileRepository{
		records: records,
	}
}

// FindByID retrieves the profile stored in the user's namespace.
func (r *profileRepository) FindByID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, bool) {
	profile, found := LookupRecord(ctx, r.records, Namespace(userID), KeyProfile, entity.UserProfile{})
	if !found {
		return nil, false
	}
	profile.ID = userID
	profile.Normalize()
	return &profile, true
}

// Save writes the profile.
func (r *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	profile.Normalize()
	_, err := SetRecord(ctx, r.records, Namespace(profile.ID), KeyProfile, *profile)
	return err
}
