package prayer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// GetPrayerDayInput represents the input for reading one day of prayers.
type GetPrayerDayInput struct {
	UserID uuid.UUID
	Date   string
}

// PrayerSlot is one prayer of the day with its schedule and markability.
type PrayerSlot struct {
	Name        entity.PrayerName   `json:"name"`
	Status      entity.PrayerStatus `json:"status"`
	Timestamp   *time.Time          `json:"timestamp,omitempty"`
	ScheduledAt string              `json:"scheduled_at,omitempty"`
	Locked      bool                `json:"locked"`
}

// GetPrayerDayOutput represents one day of prayers.
type GetPrayerDayOutput struct {
	Date     string            `json:"date"`
	IsToday  bool              `json:"is_today"`
	Log      *entity.PrayerLog `json:"log"`
	Prayers  []PrayerSlot      `json:"prayers"`
	Points   int               `json:"points"`
	Complete bool              `json:"complete"`
}

// GetPrayerDayUseCase reads a day's prayer log together with the day's schedule.
type GetPrayerDayUseCase struct {
	changer
}

// NewGetPrayerDayUseCase creates a new GetPrayerDayUseCase instance.
func NewGetPrayerDayUseCase(prayerRepo adapter.PrayerLogRepository, schedules adapter.PrayerTimesProvider, engine *progress.Engine) *GetPrayerDayUseCase {
	return &GetPrayerDayUseCase{
		changer: changer{
			prayerRepo: prayerRepo,
			schedules:  schedules,
			engine:     engine,
		},
	}
}

// Execute reads the day. Missing days are returned as the default log and are not stored.
func (uc *GetPrayerDayUseCase) Execute(ctx context.Context, input GetPrayerDayInput) (*GetPrayerDayOutput, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	now := uc.engine.Now()
	phase := phaseOf(input.Date, uc.engine.Today())
	log := uc.prayerRepo.Get(ctx, input.UserID, input.Date)
	schedule := uc.schedule(ctx, input.UserID, input.Date)

	slots := make([]PrayerSlot, 0, len(entity.Prayers))
	for _, name := range entity.Prayers {
		entry := log.Entry(name)
		slot := PrayerSlot{
			Name:        name,
			Status:      entry.Status,
			Timestamp:   entry.Timestamp,
			ScheduledAt: schedule[name],
		}
		switch phase {
		case phaseFuture:
			slot.Locked = true
		case phaseToday:
			if m, ok := minutesSince(now, schedule, name); ok && m < 0 {
				slot.Locked = true
			}
		}
		slots = append(slots, slot)
	}

	return &GetPrayerDayOutput{
		Date:     input.Date,
		IsToday:  phase == phaseToday,
		Log:      log,
		Prayers:  slots,
		Points:   log.Points(),
		Complete: log.IsComplete(),
	}, nil
}
