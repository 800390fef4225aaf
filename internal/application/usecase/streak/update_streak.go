// Package streak contains streak use cases.
package streak

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
)

// UpdateStreakInput represents the input for a streak update.
type UpdateStreakInput struct {
	UserID uuid.UUID
}

// UpdateStreakOutput represents the output of a streak update.
type UpdateStreakOutput struct {
	Streak        int `json:"streak"`
	LongestStreak int `json:"longest_streak"`
}

// UpdateStreakUseCase recomputes the current streak from the prayer logs.
type UpdateStreakUseCase struct {
	engine *progress.Engine
	locker adapter.OwnerLocker
}

// NewUpdateStreakUseCase creates a new UpdateStreakUseCase instance.
func NewUpdateStreakUseCase(engine *progress.Engine, locker adapter.OwnerLocker) *UpdateStreakUseCase {
	return &UpdateStreakUseCase{
		engine: engine,
		locker: locker,
	}
}

// Execute performs the streak update.
func (uc *UpdateStreakUseCase) Execute(ctx context.Context, input UpdateStreakInput) (*UpdateStreakOutput, error) {
	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	profile, err := uc.engine.UpdateStreak(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &UpdateStreakOutput{
		Streak:        profile.Streak,
		LongestStreak: profile.LongestStreak,
	}, nil
}
