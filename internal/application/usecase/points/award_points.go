package points

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// DefaultMaxRewardPoints bounds an explicit points value on a single reward.
const DefaultMaxRewardPoints = 100

// AwardPointsInput represents the input for granting a one-off reward.
type AwardPointsInput struct {
	UserID     uuid.UUID
	Kind       entity.RewardKind
	Identifier string
	Points     *int // Optional, defaults to the table value of the kind
}

// AwardPointsOutput represents the output of granting a one-off reward.
type AwardPointsOutput struct {
	Awarded     bool                 `json:"awarded"`
	Points      int                  `json:"points"`
	TotalPoints int                  `json:"total_points"`
	Level       entity.LevelProgress `json:"level"`
}

// AwardPointsUseCase grants a reward at most once per (kind, identifier).
type AwardPointsUseCase struct {
	engine    *progress.Engine
	locker    adapter.OwnerLocker
	sink      adapter.AnalyticsSink
	maxPoints int
}

// NewAwardPointsUseCase creates a new AwardPointsUseCase instance.
// A non-positive maxPoints falls back to DefaultMaxRewardPoints.
func NewAwardPointsUseCase(engine *progress.Engine, locker adapter.OwnerLocker, sink adapter.AnalyticsSink, maxPoints int) *AwardPointsUseCase {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxRewardPoints
	}
	return &AwardPointsUseCase{
		engine:    engine,
		locker:    locker,
		sink:      sink,
		maxPoints: maxPoints,
	}
}

// Execute grants the reward. A repeated identifier is reported with Awarded false and changes nothing.
func (uc *AwardPointsUseCase) Execute(ctx context.Context, input AwardPointsInput) (*AwardPointsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	points := input.Kind.DefaultPoints()
	if input.Points != nil {
		points = *input.Points
	}
	identifier := strings.TrimSpace(input.Identifier)

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	awarded, profile, err := uc.engine.Award(ctx, input.UserID, input.Kind, identifier, points)
	if err != nil {
		return nil, err
	}

	if awarded {
		progress.Emit(ctx, uc.sink, entity.NewActionEvent(
			entity.EventRewardGranted,
			input.UserID,
			uc.engine.Today(),
			uc.engine.Now(),
			map[string]string{
				"kind":       string(input.Kind),
				"identifier": identifier,
				"points":     strconv.Itoa(points),
			},
		))
	} else {
		points = 0
	}

	return &AwardPointsOutput{
		Awarded:     awarded,
		Points:      points,
		TotalPoints: profile.TotalPoints,
		Level:       entity.ProgressFor(profile.TotalPoints),
	}, nil
}

// validateInput validates the award input.
func (uc *AwardPointsUseCase) validateInput(input AwardPointsInput) error {
	if !input.Kind.IsValid() {
		return domainerror.NewRewardError(
			domainerror.ErrCodeInvalidRewardKind,
			"invalid reward kind",
			domainerror.ErrInvalidRewardKind,
		)
	}
	if strings.TrimSpace(input.Identifier) == "" {
		return domainerror.NewRewardError(
			domainerror.ErrCodeMissingRewardIdentifier,
			"identifier is required",
			domainerror.ErrMissingRewardIdentifier,
		)
	}
	if input.Points != nil && (*input.Points < 0 || *input.Points > uc.maxPoints) {
		return domainerror.NewRewardError(
			domainerror.ErrCodeInvalidRewardPoints,
			fmt.Sprintf("points must be between 0 and %d", uc.maxPoints),
			domainerror.ErrInvalidRewardPoints,
		)
	}
	return nil
}
