// Package points contains points and level use cases.
package points

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// RecalculatePointsInput represents the input for a full points recomputation.
type RecalculatePointsInput struct {
	UserID uuid.UUID
}

// RecalculatePointsOutput represents the output of a full points recomputation.
type RecalculatePointsOutput struct {
	TotalPoints int                      `json:"total_points"`
	Breakdown   progress.PointsBreakdown `json:"breakdown"`
	Level       entity.LevelProgress     `json:"level"`
}

// RecalculatePointsUseCase overwrites the stored total with the sum of every points source.
type RecalculatePointsUseCase struct {
	engine *progress.Engine
	locker adapter.OwnerLocker
}

// NewRecalculatePointsUseCase creates a new RecalculatePointsUseCase instance.
func NewRecalculatePointsUseCase(engine *progress.Engine, locker adapter.OwnerLocker) *RecalculatePointsUseCase {
	return &RecalculatePointsUseCase{
		engine: engine,
		locker: locker,
	}
}

// Execute performs the recomputation.
func (uc *RecalculatePointsUseCase) Execute(ctx context.Context, input RecalculatePointsInput) (*RecalculatePointsOutput, error) {
	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	profile, breakdown, err := uc.engine.RecalculatePoints(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &RecalculatePointsOutput{
		TotalPoints: profile.TotalPoints,
		Breakdown:   breakdown,
		Level:       entity.ProgressFor(profile.TotalPoints),
	}, nil
}
