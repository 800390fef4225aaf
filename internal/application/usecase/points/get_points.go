package points

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// GetPointsInput represents the input for reading a points summary.
type GetPointsInput struct {
	UserID uuid.UUID
}

// GetPointsOutput represents a points summary.
type GetPointsOutput struct {
	TotalPoints int                      `json:"total_points"`
	Breakdown   progress.PointsBreakdown `json:"breakdown"`
	Level       entity.LevelProgress     `json:"level"`
}

// GetPointsUseCase reads the stored total together with a fresh per-source breakdown.
type GetPointsUseCase struct {
	engine *progress.Engine
}

// NewGetPointsUseCase creates a new GetPointsUseCase instance.
func NewGetPointsUseCase(engine *progress.Engine) *GetPointsUseCase {
	return &GetPointsUseCase{
		engine: engine,
	}
}

// Execute returns the summary. The stored total is reported as is, even if it drifted from the breakdown.
func (uc *GetPointsUseCase) Execute(ctx context.Context, input GetPointsInput) (*GetPointsOutput, error) {
	profile := uc.engine.LoadProfile(ctx, input.UserID)

	return &GetPointsOutput{
		TotalPoints: profile.TotalPoints,
		Breakdown:   uc.engine.ComputePoints(ctx, input.UserID),
		Level:       entity.ProgressFor(profile.TotalPoints),
	}, nil
}
