package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID     uuid.UUID
	Name       *string
	City       *string
	Latitude   *float64
	Longitude  *float64
	ExternalID *string
}

// UpdateProfileUseCase edits the descriptive fields of a profile.
// Points, streaks and the join date are never touched.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
	engine      *progress.Engine
	locker      adapter.OwnerLocker
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository, engine *progress.Engine, locker adapter.OwnerLocker) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
		engine:      engine,
		locker:      locker,
	}
}

// Execute performs the update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*GetProfileOutput, error) {
	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	profile := uc.engine.LoadProfile(ctx, input.UserID)
	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.City != nil {
		profile.City = strings.TrimSpace(*input.City)
	}
	if input.Latitude != nil {
		profile.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		profile.Longitude = *input.Longitude
	}
	if input.ExternalID != nil {
		profile.ExternalID = trimmed(input.ExternalID)
	}
	if profile.Name == "" && input.Name == nil {
		profile.Name = DefaultProfileName
	}
	if err := validateProfile(profile.Name, profile.Latitude, profile.Longitude); err != nil {
		return nil, err
	}

	profile.UpdatedAt = uc.engine.Now().UTC()
	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to save profile",
			err,
		)
	}

	return &GetProfileOutput{
		Profile: profile,
		Level:   entity.ProgressFor(profile.TotalPoints),
	}, nil
}
