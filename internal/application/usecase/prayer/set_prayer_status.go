package prayer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// SetPrayerStatusInput represents the input for an explicit status override.
type SetPrayerStatusInput struct {
	UserID uuid.UUID
	Date   string
	Prayer entity.PrayerName
	Status entity.PrayerStatus
}

// SetPrayerStatusUseCase sets a prayer to an explicit status.
type SetPrayerStatusUseCase struct {
	changer
	onTimeWindow int
}

// NewSetPrayerStatusUseCase creates a new SetPrayerStatusUseCase instance.
// A non-positive onTimeWindow falls back to DefaultOnTimeWindow.
func NewSetPrayerStatusUseCase(
	prayerRepo adapter.PrayerLogRepository,
	schedules adapter.PrayerTimesProvider,
	engine *progress.Engine,
	locker adapter.OwnerLocker,
	sink adapter.AnalyticsSink,
	onTimeWindow int,
) *SetPrayerStatusUseCase {
	if onTimeWindow <= 0 {
		onTimeWindow = DefaultOnTimeWindow
	}
	return &SetPrayerStatusUseCase{
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

// Execute performs the override.
//
// Requesting the status the prayer already has clears it. A non-none status cannot be set on a
// future day or before the prayer's time today, and on time is refused for past days. An unmarked
// prayer only becomes on time within the window after its time; a prayer already marked can be
// switched freely.
func (uc *SetPrayerStatusUseCase) Execute(ctx context.Context, input SetPrayerStatusInput) (*ChangeOutput, error) {
	input.Prayer = normalizePrayer(input.Prayer)
	input.Status = entity.PrayerStatus(strings.ToLower(strings.TrimSpace(string(input.Status))))
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	now := uc.engine.Now()
	phase := phaseOf(input.Date, uc.engine.Today())
	log := uc.prayerRepo.Get(ctx, input.UserID, input.Date)
	current := log.Entry(input.Prayer)

	if current.Status == entity.PrayerStatusNone && input.Status == entity.PrayerStatusNone {
		return uc.unchanged(ctx, input.UserID, log, input.Prayer, OutcomeCleared), nil
	}
	if input.Status == current.Status || input.Status == entity.PrayerStatusNone {
		log.SetEntry(input.Prayer, entity.PrayerEntry{Status: entity.PrayerStatusNone})
		return uc.apply(ctx, input.UserID, log, input.Prayer, OutcomeCleared)
	}

	switch phase {
	case phaseFuture:
		return uc.unchanged(ctx, input.UserID, log, input.Prayer, OutcomeLocked), nil
	case phaseToday:
		m, known := minutesSince(now, uc.schedule(ctx, input.UserID, input.Date), input.Prayer)
		if known && m < 0 {
			return uc.unchanged(ctx, input.UserID, log, input.Prayer, OutcomeLocked), nil
		}
		if input.Status == entity.PrayerStatusOnTime && current.Status == entity.PrayerStatusNone && (!known || m > uc.onTimeWindow) {
			return uc.unchanged(ctx, input.UserID, log, input.Prayer, OutcomeRejected), nil
		}
	case phasePast:
		if input.Status == entity.PrayerStatusOnTime {
			return uc.unchanged(ctx, input.UserID, log, input.Prayer, OutcomeRejected), nil
		}
	}

	stamp := now.UTC()
	log.SetEntry(input.Prayer, entity.PrayerEntry{Status: input.Status, Timestamp: &stamp})
	return uc.apply(ctx, input.UserID, log, input.Prayer, OutcomeMarked)
}

// validateInput validates the override input.
func (uc *SetPrayerStatusUseCase) validateInput(input SetPrayerStatusInput) error {
	if err := validateDate(input.Date); err != nil {
		return err
	}
	if err := validatePrayer(input.Prayer); err != nil {
		return err
	}
	if !input.Status.IsValid() {
		return domainerror.NewPrayerError(
			domainerror.ErrCodeInvalidPrayerStatus,
			"invalid prayer status",
			domainerror.ErrInvalidPrayerStatus,
		)
	}
	return nil
}
