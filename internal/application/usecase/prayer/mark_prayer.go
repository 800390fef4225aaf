package prayer

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// MarkPrayerInput represents the input for the guarded one-tap mark.
type MarkPrayerInput struct {
	UserID uuid.UUID
	Date   string
	Prayer entity.PrayerName
}

// MarkPrayerUseCase toggles a prayer, deciding between on time and late from the prayer schedule.
type MarkPrayerUseCase struct {
	changer
	onTimeWindow int
}

// NewMarkPrayerUseCase creates a new MarkPrayerUseCase instance.
// A non-positive onTimeWindow falls back to DefaultOnTimeWindow.
func NewMarkPrayerUseCase(
	prayerRepo adapter.PrayerLogRepository,
	schedules adapter.PrayerTimesProvider,
	engine *progress.Engine,
	locker adapter.OwnerLocker,
	sink adapter.AnalyticsSink,
	onTimeWindow int,
) *MarkPrayerUseCase {
	if onTimeWindow <= 0 {
		onTimeWindow = DefaultOnTimeWindow
	}
	return &MarkPrayerUseCase{
		changer: changer{
			prayerRepo: prayerRepo,
			schedules:  schedules,
			engine:     engine,
			locker:     locker,
			sink:       sink,
		},
		onTimeWindow: onTimeWindow,
	}
}

// Execute performs the mark.
//
// A prayer already marked on time or late is cleared. Otherwise a future day, or today before
// the prayer's time, is locked. Today within the window after the time is on time, anything
// later (or a day without a known time) is late.
func (uc *MarkPrayerUseCase) Execute(ctx context.Context, input MarkPrayerInput) (*ChangeOutput, error) {
	input.Prayer = normalizePrayer(input.Prayer)
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	now := uc.engine.Now()
	phase := phaseOf(input.Date, uc.engine.Today())
	log := uc.prayerRepo.Get(ctx, input.UserID, input.Date)
	current := log.Entry(input.Prayer)

	if phase == phaseFuture {
		return uc.unchanged(ctx, input.UserID, log, input.Prayer, OutcomeLocked), nil
	}

	if current.Status.IsPrayed() {
		log.SetEntry(input.Prayer, entity.PrayerEntry{Status: entity.PrayerStatusNone})
		return uc.apply(ctx, input.UserID, log, input.Prayer, OutcomeCleared)
	}

	status := entity.PrayerStatusLate
	if phase == phaseToday {
		if m, ok := minutesSince(now, uc.schedule(ctx, input.UserID, input.Date), input.Prayer); ok {
			if m < 0 {
				return uc.unchanged(ctx, input.UserID, log, input.Prayer, OutcomeLocked), nil
			}
			if m <= uc.onTimeWindow {
				status = entity.PrayerStatusOnTime
			}
		}
	}

	stamp := now.UTC()
	log.SetEntry(input.Prayer, entity.PrayerEntry{Status: status, Timestamp: &stamp})
	return uc.apply(ctx, input.UserID, log, input.Prayer, OutcomeMarked)
}

// validateInput validates the mark input.
func (uc *MarkPrayerUseCase) validateInput(input MarkPrayerInput) error {
	if err := validateDate(input.Date); err != nil {
		return err
	}
	return validatePrayer(input.Prayer)
}
