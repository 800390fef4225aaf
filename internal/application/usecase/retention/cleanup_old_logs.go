// Package retention prunes old day logs without forfeiting their points.
package retention

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// CleanupOldLogsInput represents the input for a retention pass.
type CleanupOldLogsInput struct {
	UserID   uuid.UUID
	KeepDays int
}

// CleanupOldLogsOutput represents the output of a retention pass.
type CleanupOldLogsOutput struct {
	Cutoff         string `json:"cutoff"`
	PrunedPrayers  int    `json:"pruned_prayers"`
	PrunedHabits   int    `json:"pruned_habits"`
	ArchivedPoints int    `json:"archived_points"`
	TotalPoints    int    `json:"total_points"`
}

// CleanupOldLogsUseCase deletes prayer and habit logs dated before the retention cutoff.
// Their points are folded into the points archive before any log is removed.
type CleanupOldLogsUseCase struct {
	prayerRepo adapter.PrayerLogRepository
	habitRepo  adapter.HabitLogRepository
	rewardRepo adapter.RewardRepository
	engine     *progress.Engine
	locker     adapter.OwnerLocker
}

// NewCleanupOldLogsUseCase creates a new CleanupOldLogsUseCase instance.
func NewCleanupOldLogsUseCase(
	prayerRepo adapter.PrayerLogRepository,
	habitRepo adapter.HabitLogRepository,
	rewardRepo adapter.RewardRepository,
	engine *progress.Engine,
	locker adapter.OwnerLocker,
) *CleanupOldLogsUseCase {
	return &CleanupOldLogsUseCase{
		prayerRepo: prayerRepo,
		habitRepo:  habitRepo,
		rewardRepo: rewardRepo,
		engine:     engine,
		locker:     locker,
	}
}

type prunable struct {
	date   string
	points int
	remove func(ctx context.Context) error
}

// Execute runs the retention pass for one profile.
func (uc *CleanupOldLogsUseCase) Execute(ctx context.Context, input CleanupOldLogsInput) (*CleanupOldLogsOutput, error) {
	if input.KeepDays <= 0 {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeInvalidRetention,
			"keep_days must be positive",
			domainerror.ErrInvalidRetention,
		)
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	cutoff := valueobject.AddDays(uc.engine.Today(), -input.KeepDays)
	output := &CleanupOldLogsOutput{Cutoff: cutoff}

	var pruned []prunable
	for _, log := range uc.prayerRepo.List(ctx, input.UserID) {
		if log.Date >= cutoff {
			continue
		}
		date := log.Date
		pruned = append(pruned, prunable{
			date:   date,
			points: log.Points(),
			remove: func(ctx context.Context) error { return uc.prayerRepo.Delete(ctx, input.UserID, date) },
		})
		output.PrunedPrayers++
	}
	for _, log := range uc.habitRepo.List(ctx, input.UserID) {
		if log.Date >= cutoff {
			continue
		}
		date := log.Date
		pruned = append(pruned, prunable{
			date:   date,
			points: log.Points(),
			remove: func(ctx context.Context) error { return uc.habitRepo.Delete(ctx, input.UserID, date) },
		})
		output.PrunedHabits++
	}

	if len(pruned) == 0 {
		output.TotalPoints = uc.engine.LoadProfile(ctx, input.UserID).TotalPoints
		return output, nil
	}

	archive := uc.rewardRepo.GetArchive(ctx, input.UserID)
	days := make(map[string]bool)
	for _, p := range pruned {
		archive.Points += p.points
		output.ArchivedPoints += p.points
		days[p.date] = true
		if p.date > archive.ThroughDate {
			archive.ThroughDate = p.date
		}
	}
	archive.PrunedDays += len(days)

	if err := uc.rewardRepo.SaveArchive(ctx, input.UserID, archive); err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeSyncInternalError,
			"failed to save points archive",
			err,
		)
	}

	kept := make(map[string]bool)
	for _, p := range pruned {
		if err := p.remove(ctx); err != nil {
			slog.Warn("Failed to delete old log, keeping its points live",
				"user_id", input.UserID,
				"date", p.date,
				"error", err,
			)
			archive.Points -= p.points
			output.ArchivedPoints -= p.points
			kept[p.date] = true
		}
	}
	if len(kept) > 0 {
		archive.PrunedDays -= len(kept)
		if err := uc.rewardRepo.SaveArchive(ctx, input.UserID, archive); err != nil {
			return nil, domainerror.NewSyncError(
				domainerror.ErrCodeSyncInternalError,
				"failed to correct points archive",
				err,
			)
		}
	}

	profile, err := uc.engine.Refresh(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeSyncInternalError,
			"failed to refresh profile after cleanup",
			err,
		)
	}
	output.TotalPoints = profile.TotalPoints

	slog.Info("Old logs pruned",
		"user_id", input.UserID,
		"cutoff", cutoff,
		"prayers", output.PrunedPrayers,
		"habits", output.PrunedHabits,
		"archived_points", output.ArchivedPoints,
	)
	return output, nil
}
