// Package habit contains habit log use cases.
package habit

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// ToggleHabitInput represents the input for toggling a habit.
type ToggleHabitInput struct {
	UserID uuid.UUID
	Date   string
	Habit  entity.HabitName
}

// ToggleHabitOutput represents the output of toggling a habit.
type ToggleHabitOutput struct {
	Habit       entity.HabitName `json:"habit"`
	Done        bool             `json:"done"`
	Locked      bool             `json:"locked"`
	Log         *entity.HabitLog `json:"log"`
	TotalPoints int              `json:"total_points"`
}

// ToggleHabitUseCase flips one habit of a day.
type ToggleHabitUseCase struct {
	habitRepo adapter.HabitLogRepository
	engine    *progress.Engine
	locker    adapter.OwnerLocker
	sink      adapter.AnalyticsSink
}

// NewToggleHabitUseCase creates a new ToggleHabitUseCase instance.
func NewToggleHabitUseCase(
	habitRepo adapter.HabitLogRepository,
	engine *progress.Engine,
	locker adapter.OwnerLocker,
	sink adapter.AnalyticsSink,
) *ToggleHabitUseCase {
	return &ToggleHabitUseCase{
		habitRepo: habitRepo,
		engine:    engine,
		locker:    locker,
		sink:      sink,
	}
}

// Execute performs the toggle. Future days are locked and left unchanged.
func (uc *ToggleHabitUseCase) Execute(ctx context.Context, input ToggleHabitInput) (*ToggleHabitOutput, error) {
	input.Habit = entity.HabitName(strings.ToLower(strings.TrimSpace(string(input.Habit))))
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	log := uc.habitRepo.Get(ctx, input.UserID, input.Date)
	if input.Date > uc.engine.Today() {
		return &ToggleHabitOutput{
			Habit:       input.Habit,
			Done:        log.Done(input.Habit),
			Locked:      true,
			Log:         log,
			TotalPoints: uc.engine.LoadProfile(ctx, input.UserID).TotalPoints,
		}, nil
	}

	done := log.Toggle(input.Habit)
	if err := uc.habitRepo.Save(ctx, input.UserID, log); err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitInternalError,
			"failed to save habit log",
			err,
		)
	}

	profile, err := uc.engine.Refresh(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitInternalError,
			"failed to refresh points",
			err,
		)
	}

	progress.Emit(ctx, uc.sink, entity.NewActionEvent(
		entity.EventHabitToggled,
		input.UserID,
		input.Date,
		uc.engine.Now(),
		map[string]string{
			"habit": string(input.Habit),
			"done":  strconv.FormatBool(done),
		},
	))

	return &ToggleHabitOutput{
		Habit:       input.Habit,
		Done:        done,
		Log:         log,
		TotalPoints: profile.TotalPoints,
	}, nil
}

// validateInput validates the toggle input.
func (uc *ToggleHabitUseCase) validateInput(input ToggleHabitInput) error {
	if !valueobject.IsDateKey(input.Date) {
		return domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitDate,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	if !input.Habit.IsValid() {
		return domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabit,
			"invalid habit",
			domainerror.ErrInvalidHabit,
		)
	}
	return nil
}
