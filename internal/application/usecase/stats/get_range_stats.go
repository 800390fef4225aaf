package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// GetRangeStatsInput represents the input for an arbitrary range aggregate.
type GetRangeStatsInput struct {
	UserID      uuid.UUID
	StartDate   string
	EndDate     string
	Granularity Granularity // Optional, no period buckets when empty
}

// GetRangeStatsUseCase aggregates an inclusive range of days.
type GetRangeStatsUseCase struct {
	aggregator
}

// NewGetRangeStatsUseCase creates a new GetRangeStatsUseCase instance.
func NewGetRangeStatsUseCase(prayerRepo adapter.PrayerLogRepository, habitRepo adapter.HabitLogRepository) *GetRangeStatsUseCase {
	return &GetRangeStatsUseCase{
		aggregator: aggregator{prayerRepo: prayerRepo, habitRepo: habitRepo},
	}
}

// Execute aggregates the range. Ranges longer than MaxRangeDays keep only the most recent days.
func (uc *GetRangeStatsUseCase) Execute(ctx context.Context, input GetRangeStatsInput) (*RangeStats, error) {
	if input.Granularity != "" && !input.Granularity.IsValid() {
		return nil, domainerror.NewStatsError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be 'daily', 'weekly', or 'monthly'",
			domainerror.ErrInvalidGranularity,
		)
	}

	r, err := parseRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	return uc.rangeStats(ctx, input.UserID, r, input.Granularity), nil
}
