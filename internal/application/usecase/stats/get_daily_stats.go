package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// GetDailyStatsInput represents the input for a single day's aggregate.
type GetDailyStatsInput struct {
	UserID uuid.UUID
	Date   string // Optional, defaults to today
}

// GetDailyStatsUseCase aggregates a single day.
type GetDailyStatsUseCase struct {
	aggregator
	clock adapter.Clock
}

// NewGetDailyStatsUseCase creates a new GetDailyStatsUseCase instance.
func NewGetDailyStatsUseCase(prayerRepo adapter.PrayerLogRepository, habitRepo adapter.HabitLogRepository, clock adapter.Clock) *GetDailyStatsUseCase {
	return &GetDailyStatsUseCase{
		aggregator: aggregator{prayerRepo: prayerRepo, habitRepo: habitRepo},
		clock:      clock,
	}
}

// Execute aggregates the day.
func (uc *GetDailyStatsUseCase) Execute(ctx context.Context, input GetDailyStatsInput) (*DayStats, error) {
	date := input.Date
	if date == "" {
		date = valueobject.DateKey(uc.clock.Now())
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	day := uc.day(ctx, input.UserID, date)
	return &day, nil
}
