// Package progress keeps a profile's derived counters (total points and streak) in step with its logs.
// Engine methods never take the owner lock; callers that mutate records hold it.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// DefaultStreakScanDays bounds the backward walk of the streak computation.
const DefaultStreakScanDays = 365

// PointsBreakdown is the per-source decomposition of a recomputed total.
type PointsBreakdown struct {
	Prayers  int                       `json:"prayers"`
	Habits   int                       `json:"habits"`
	Rewards  map[entity.RewardKind]int `json:"rewards"`
	Archived int                       `json:"archived"`
	Total    int                       `json:"total"`
}

// Engine recomputes points and streaks from stored records.
type Engine struct {
	profileRepo adapter.ProfileRepository
	prayerRepo  adapter.PrayerLogRepository
	habitRepo   adapter.HabitLogRepository
	rewardRepo  adapter.RewardRepository
	clock       adapter.Clock
	scanDays    int
}

// NewEngine creates a new Engine. A non-positive scanDays falls back to DefaultStreakScanDays.
func NewEngine(
	profileRepo adapter.ProfileRepository,
	prayerRepo adapter.PrayerLogRepository,
	habitRepo adapter.HabitLogRepository,
	rewardRepo adapter.RewardRepository,
	clock adapter.Clock,
	scanDays int,
) *Engine {
	if scanDays <= 0 {
		scanDays = DefaultStreakScanDays
	}
	return &Engine{
		profileRepo: profileRepo,
		prayerRepo:  prayerRepo,
		habitRepo:   habitRepo,
		rewardRepo:  rewardRepo,
		clock:       clock,
		scanDays:    scanDays,
	}
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Today returns the date key of the current local day.
func (e *Engine) Today() string {
	return valueobject.DateKey(e.clock.Now())
}

// LoadProfile returns the stored profile, or a fresh default one that is not persisted.
func (e *Engine) LoadProfile(ctx context.Context, userID uuid.UUID) *entity.UserProfile {
	if profile, ok := e.profileRepo.FindByID(ctx, userID); ok {
		profile.ID = userID
		profile.Normalize()
		return profile
	}
	return entity.NewUserProfile(userID, "", "", e.clock.Now())
}

// ComputePoints sums every points source: prayer logs, habit logs, reward sets and the retention archive.
func (e *Engine) ComputePoints(ctx context.Context, userID uuid.UUID) PointsBreakdown {
	breakdown := PointsBreakdown{Rewards: make(map[entity.RewardKind]int, len(entity.RewardKinds))}

	for _, log := range e.prayerRepo.List(ctx, userID) {
		breakdown.Prayers += log.Points()
	}
	for _, log := range e.habitRepo.List(ctx, userID) {
		breakdown.Habits += log.Points()
	}
	rewards := 0
	for _, kind := range entity.RewardKinds {
		total := e.rewardRepo.GetRewards(ctx, userID, kind).Total()
		breakdown.Rewards[kind] = total
		rewards += total
	}
	archive := e.rewardRepo.GetArchive(ctx, userID)
	if archive.Points > 0 {
		breakdown.Archived = archive.Points
	}

	breakdown.Total = breakdown.Prayers + breakdown.Habits + rewards + breakdown.Archived
	return breakdown
}

// ComputeStreak counts consecutive complete days ending today, or yesterday when today is not complete yet.
// The walk never looks further back than the scan bound.
func (e *Engine) ComputeStreak(ctx context.Context, userID uuid.UUID) int {
	complete := make(map[string]bool)
	for _, log := range e.prayerRepo.List(ctx, userID) {
		if log.IsComplete() {
			complete[log.Date] = true
		}
	}

	today := e.Today()
	streak := 0
	if complete[today] {
		streak = 1
	}

	day := valueobject.AddDays(today, -1)
	for i := 0; i < e.scanDays; i++ {
		if !complete[day] {
			break
		}
		streak++
		day = valueobject.AddDays(day, -1)
	}
	return streak
}

// RecalculatePoints overwrites the stored total with a full recomputation.
func (e *Engine) RecalculatePoints(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, PointsBreakdown, error) {
	profile := e.LoadProfile(ctx, userID)
	breakdown := e.ComputePoints(ctx, userID)
	profile.TotalPoints = breakdown.Total
	if err := e.save(ctx, profile); err != nil {
		return nil, breakdown, err
	}
	return profile, breakdown, nil
}

// UpdateStreak stores the current streak and raises the longest streak when exceeded.
func (e *Engine) UpdateStreak(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile := e.LoadProfile(ctx, userID)
	profile.ApplyStreak(e.ComputeStreak(ctx, userID))
	if err := e.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Refresh recomputes the streak and then the total in a single profile write.
func (e *Engine) Refresh(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile := e.LoadProfile(ctx, userID)
	profile.ApplyStreak(e.ComputeStreak(ctx, userID))
	profile.TotalPoints = e.ComputePoints(ctx, userID).Total
	if err := e.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Award records a one-off reward. It returns false, and changes nothing, when the identifier
// was already rewarded for the kind.
func (e *Engine) Award(ctx context.Context, userID uuid.UUID, kind entity.RewardKind, identifier string, points int) (bool, *entity.UserProfile, error) {
	set := e.rewardRepo.GetRewards(ctx, userID, kind)
	if set == nil {
		set = entity.RewardSet{}
	}
	if _, ok := set[identifier]; ok {
		return false, e.LoadProfile(ctx, userID), nil
	}

	set[identifier] = points
	if err := e.rewardRepo.SaveRewards(ctx, userID, kind, set); err != nil {
		return false, nil, fmt.Errorf("failed to save reward set: %w", err)
	}

	profile := e.LoadProfile(ctx, userID)
	profile.TotalPoints += points
	if err := e.save(ctx, profile); err != nil {
		return true, nil, err
	}

	slog.Debug("Reward granted",
		"user_id", userID,
		"kind", kind,
		"identifier", identifier,
		"points", points,
	)
	return true, profile, nil
}

func (e *Engine) save(ctx context.Context, profile *entity.UserProfile) error {
	profile.Normalize()
	profile.UpdatedAt = e.clock.Now().UTC()
	if err := e.profileRepo.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Emit reports an event to the analytics sink. Sink failures are logged and never fail the caller.
func Emit(ctx context.Context, sink adapter.AnalyticsSink, event entity.ActionEvent) {
	if sink == nil {
		return
	}
	if err := sink.Track(ctx, event); err != nil {
		slog.Warn("Failed to track analytics event",
			"type", event.Type,
			"user_id", event.UserID,
			"error", err,
		)
	}
}
