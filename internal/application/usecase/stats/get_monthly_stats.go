package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// GetMonthlyStatsInput represents the input for a month aggregate.
type GetMonthlyStatsInput struct {
	UserID uuid.UUID
	Year   int // Optional, defaults to the current year
	Month  int // Optional, defaults to the current month
}

// MonthlyStats is the aggregate of a calendar month, bucketed by week.
type MonthlyStats struct {
	Label string `json:"label"`
	*RangeStats
}

// GetMonthlyStatsUseCase aggregates a calendar month.
type GetMonthlyStatsUseCase struct {
	aggregator
	clock adapter.Clock
}

// NewGetMonthlyStatsUseCase creates a new GetMonthlyStatsUseCase instance.
func NewGetMonthlyStatsUseCase(prayerRepo adapter.PrayerLogRepository, habitRepo adapter.HabitLogRepository, clock adapter.Clock) *GetMonthlyStatsUseCase {
	return &GetMonthlyStatsUseCase{
		aggregator: aggregator{prayerRepo: prayerRepo, habitRepo: habitRepo},
		clock:      clock,
	}
}

// Execute aggregates the month.
func (uc *GetMonthlyStatsUseCase) Execute(ctx context.Context, input GetMonthlyStatsInput) (*MonthlyStats, error) {
	now := uc.clock.Now()
	if input.Year == 0 {
		input.Year = now.Year()
	}
	if input.Month == 0 {
		input.Month = int(now.Month())
	}
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewStatsError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	r := valueobject.MonthRange(input.Year, time.Month(input.Month), time.UTC)
	return &MonthlyStats{
		Label:      GeneratePeriodLabel(time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC), GranularityMonthly),
		RangeStats: uc.rangeStats(ctx, input.UserID, r, GranularityWeekly),
	}, nil
}
