// Package prayer contains prayer log use cases.
package prayer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// DefaultOnTimeWindow is how many minutes after the scheduled time a mark still counts as on time.
const DefaultOnTimeWindow = 30

// Outcome reports what a prayer change request did.
type Outcome string

const (
	OutcomeMarked   Outcome = "marked"
	OutcomeCleared  Outcome = "cleared"
	OutcomeLocked   Outcome = "locked"
	OutcomeRejected Outcome = "rejected"
)

// Applied reports whether the outcome changed the stored log.
func (o Outcome) Applied() bool {
	return o == OutcomeMarked || o == OutcomeCleared
}

// ChangeOutput represents the result of a prayer change request.
type ChangeOutput struct {
	Outcome       Outcome            `json:"outcome"`
	Prayer        entity.PrayerName  `json:"prayer"`
	Entry         entity.PrayerEntry `json:"entry"`
	Log           *entity.PrayerLog  `json:"log"`
	TotalPoints   int                `json:"total_points"`
	Streak        int                `json:"streak"`
	LongestStreak int                `json:"longest_streak"`
}

type dayPhase int

const (
	phasePast dayPhase = iota
	phaseToday
	phaseFuture
)

func phaseOf(date, today string) dayPhase {
	switch {
	case date < today:
		return phasePast
	case date == today:
		return phaseToday
	default:
		return phaseFuture
	}
}

// changer holds what every prayer change needs to apply and report a new log state.
type changer struct {
	prayerRepo adapter.PrayerLogRepository
	schedules  adapter.PrayerTimesProvider
	engine     *progress.Engine
	locker     adapter.OwnerLocker
	sink       adapter.AnalyticsSink
}

// schedule returns the day's prayer times for the user's city. Lookup failures yield an empty schedule.
func (c *changer) schedule(ctx context.Context, userID uuid.UUID, date string) entity.PrayerSchedule {
	profile := c.engine.LoadProfile(ctx, userID)
	schedule, err := c.schedules.Schedule(ctx, adapter.ScheduleLocation{
		City:      profile.City,
		Latitude:  profile.Latitude,
		Longitude: profile.Longitude,
	}, date)
	if err != nil {
		slog.Warn("Prayer schedule unavailable",
			"user_id", userID,
			"date", date,
			"error", err,
		)
		return entity.PrayerSchedule{}
	}
	return schedule
}

// minutesSince returns the signed minutes since the prayer's scheduled time today.
// The bool is false when the schedule has no usable time for the prayer.
func minutesSince(now time.Time, schedule entity.PrayerSchedule, prayer entity.PrayerName) (int, bool) {
	at, ok := schedule[prayer]
	if !ok {
		return 0, false
	}
	return valueobject.MinutesSince(now, at)
}

// apply persists the log and refreshes the derived counters, then reports the event.
func (c *changer) apply(ctx context.Context, userID uuid.UUID, log *entity.PrayerLog, prayer entity.PrayerName, outcome Outcome) (*ChangeOutput, error) {
	if err := c.prayerRepo.Save(ctx, userID, log); err != nil {
		return nil, domainerror.NewPrayerError(
			domainerror.ErrCodePrayerInternalError,
			"failed to save prayer log",
			err,
		)
	}

	profile, err := c.engine.Refresh(ctx, userID)
	if err != nil {
		return nil, domainerror.NewPrayerError(
			domainerror.ErrCodePrayerInternalError,
			"failed to refresh points",
			err,
		)
	}

	entry := log.Entry(prayer)
	progress.Emit(ctx, c.sink, entity.NewActionEvent(
		entity.EventPrayerMarked,
		userID,
		log.Date,
		c.engine.Now(),
		map[string]string{
			"prayer":  string(prayer),
			"status":  string(entry.Status),
			"outcome": string(outcome),
		},
	))

	return &ChangeOutput{
		Outcome:       outcome,
		Prayer:        prayer,
		Entry:         entry,
		Log:           log,
		TotalPoints:   profile.TotalPoints,
		Streak:        profile.Streak,
		LongestStreak: profile.LongestStreak,
	}, nil
}

// unchanged reports a refused change without touching any record.
func (c *changer) unchanged(ctx context.Context, userID uuid.UUID, log *entity.PrayerLog, prayer entity.PrayerName, outcome Outcome) *ChangeOutput {
	profile := c.engine.LoadProfile(ctx, userID)
	return &ChangeOutput{
		Outcome:       outcome,
		Prayer:        prayer,
		Entry:         log.Entry(prayer),
		Log:           log,
		TotalPoints:   profile.TotalPoints,
		Streak:        profile.Streak,
		LongestStreak: profile.LongestStreak,
	}
}

func validateDate(date string) error {
	if !valueobject.IsDateKey(date) {
		return domainerror.NewPrayerError(
			domainerror.ErrCodeInvalidPrayerDate,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return nil
}

func validatePrayer(prayer entity.PrayerName) error {
	if !prayer.IsValid() {
		return domainerror.NewPrayerError(
			domainerror.ErrCodeInvalidPrayer,
			"invalid prayer",
			domainerror.ErrInvalidPrayer,
		)
	}
	return nil
}

func normalizePrayer(prayer entity.PrayerName) entity.PrayerName {
	return entity.PrayerName(strings.ToLower(strings.TrimSpace(string(prayer))))
}
