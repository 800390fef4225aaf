package habit

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// GetHabitDayInput represents the input for reading one day of habits.
type GetHabitDayInput struct {
	UserID uuid.UUID
	Date   string
}

// GetHabitDayOutput represents one day of habits.
type GetHabitDayOutput struct {
	Date      string           `json:"date"`
	Log       *entity.HabitLog `json:"log"`
	Completed int              `json:"completed"`
	Total     int              `json:"total"`
	Points    int              `json:"points"`
}

// GetHabitDayUseCase reads a day's habit log.
type GetHabitDayUseCase struct {
	habitRepo adapter.HabitLogRepository
}

// NewGetHabitDayUseCase creates a new GetHabitDayUseCase instance.
func NewGetHabitDayUseCase(habitRepo adapter.HabitLogRepository) *GetHabitDayUseCase {
	return &GetHabitDayUseCase{
		habitRepo: habitRepo,
	}
}

// Execute reads the day. Missing days are returned as the default log.
func (uc *GetHabitDayUseCase) Execute(ctx context.Context, input GetHabitDayInput) (*GetHabitDayOutput, error) {
	if !valueobject.IsDateKey(input.Date) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitDate,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}

	log := uc.habitRepo.Get(ctx, input.UserID, input.Date)
	return &GetHabitDayOutput{
		Date:      input.Date,
		Log:       log,
		Completed: log.CompletedCount(),
		Total:     len(entity.Habits),
		Points:    log.Points(),
	}, nil
}
