package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
)

// GetCalendarInput represents the input for a heatmap calendar.
type GetCalendarInput struct {
	UserID    uuid.UUID
	StartDate string
	EndDate   string
}

// CalendarCell is one heatmap cell.
type CalendarCell struct {
	Date      string `json:"date"`
	Intensity int    `json:"intensity"`
	Points    int    `json:"points"`
	Complete  bool   `json:"complete"`
}

// GetCalendarOutput represents a heatmap calendar.
type GetCalendarOutput struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Cells     []CalendarCell `json:"cells"`
}

// GetCalendarUseCase produces heatmap cells for a range of days.
type GetCalendarUseCase struct {
	aggregator
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(prayerRepo adapter.PrayerLogRepository, habitRepo adapter.HabitLogRepository) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		aggregator: aggregator{prayerRepo: prayerRepo, habitRepo: habitRepo},
	}
}

// Execute builds one cell per day of the range.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	r, err := parseRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	prayers, habits := uc.load(ctx, input.UserID, r)
	rows := days(r, prayers, habits)
	cells := make([]CalendarCell, 0, len(rows))
	for _, day := range rows {
		cells = append(cells, CalendarCell{
			Date:      day.Date,
			Intensity: day.Intensity,
			Points:    day.Points,
			Complete:  day.Complete,
		})
	}

	return &GetCalendarOutput{
		StartDate: r.Start,
		EndDate:   r.End,
		Cells:     cells,
	}, nil
}
