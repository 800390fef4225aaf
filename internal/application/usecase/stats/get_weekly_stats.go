package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// GetWeeklyStatsInput represents the input for a week aggregate.
type GetWeeklyStatsInput struct {
	UserID uuid.UUID
	Date   string // Optional anchor day, defaults to today
}

// WeeklyStats is the aggregate of a Monday-to-Sunday week.
type WeeklyStats struct {
	Label string `json:"label"`
	*RangeStats
}

// GetWeeklyStatsUseCase aggregates the week containing a day.
type GetWeeklyStatsUseCase struct {
	aggregator
	clock adapter.Clock
}

// NewGetWeeklyStatsUseCase creates a new GetWeeklyStatsUseCase instance.
func NewGetWeeklyStatsUseCase(prayerRepo adapter.PrayerLogRepository, habitRepo adapter.HabitLogRepository, clock adapter.Clock) *GetWeeklyStatsUseCase {
	return &GetWeeklyStatsUseCase{
		aggregator: aggregator{prayerRepo: prayerRepo, habitRepo: habitRepo},
		clock:      clock,
	}
}

// Execute aggregates the week.
func (uc *GetWeeklyStatsUseCase) Execute(ctx context.Context, input GetWeeklyStatsInput) (*WeeklyStats, error) {
	date := input.Date
	if date == "" {
		date = valueobject.DateKey(uc.clock.Now())
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	anchor, _ := valueobject.ParseDateKey(date, time.UTC)
	r := valueobject.WeekRange(anchor)
	return &WeeklyStats{
		Label:      GeneratePeriodLabel(anchor, GranularityWeekly),
		RangeStats: uc.rangeStats(ctx, input.UserID, r, ""),
	}, nil
}
