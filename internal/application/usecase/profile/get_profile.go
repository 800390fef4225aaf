package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// GetProfileInput represents the input for reading a profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput is a profile snapshot with its level progress.
type GetProfileOutput struct {
	Profile *entity.UserProfile  `json:"profile"`
	Level   entity.LevelProgress `json:"level"`
}

// GetProfileUseCase reads a profile snapshot.
type GetProfileUseCase struct {
	engine *progress.Engine
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(engine *progress.Engine) *GetProfileUseCase {
	return &GetProfileUseCase{
		engine: engine,
	}
}

// Execute reads the profile. A missing profile reads as a fresh default.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	profile := uc.engine.LoadProfile(ctx, input.UserID)
	return &GetProfileOutput{
		Profile: profile,
		Level:   entity.ProgressFor(profile.TotalPoints),
	}, nil
}
