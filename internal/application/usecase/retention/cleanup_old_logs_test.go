package retention_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/retention"
	"github.com/ibadah-tracker/backend/internal/application/usecase/testkit"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

type failingDeletes struct {
	adapter.PrayerLogRepository
}

func (failingDeletes) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	return errors.New("disk full")
}

func TestCleanupOldLogsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("non-positive keep days", func(t *testing.T) {
		kit := testkit.New(t)
		uc := retention.NewCleanupOldLogsUseCase(kit.Prayers, kit.Habits, kit.Rewards, kit.Engine, kit.Locker)

		_, err := uc.Execute(ctx, retention.CleanupOldLogsInput{UserID: uuid.New(), KeepDays: 0})
		var syncErr *domainerror.SyncError
		if !errors.As(err, &syncErr) || syncErr.Code != domainerror.ErrCodeInvalidRetention {
			t.Fatalf("expected %s, got %v", domainerror.ErrCodeInvalidRetention, err)
		}
	})

	t.Run("old logs are archived and total is preserved", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Aisha", "")
		old := valueobject.AddDays(testkit.Today, -40)
		kit.SeedPrayers(t, userID, old, entity.PrayerStatusOnTime)
		kit.SeedPrayers(t, userID, valueobject.AddDays(testkit.Today, -5), entity.PrayerStatusLate)
		habits := entity.NewHabitLog(valueobject.AddDays(testkit.Today, -35))
		habits.Set(entity.HabitQuran, true)
		if err := kit.Habits.Save(ctx, userID, habits); err != nil {
			t.Fatalf("save habits: %v", err)
		}
		before, err := kit.Engine.Refresh(ctx, userID)
		if err != nil {
			t.Fatalf("refresh: %v", err)
		}

		uc := retention.NewCleanupOldLogsUseCase(kit.Prayers, kit.Habits, kit.Rewards, kit.Engine, kit.Locker)
		out, err := uc.Execute(ctx, retention.CleanupOldLogsInput{UserID: userID, KeepDays: 30})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.PrunedPrayers != 1 || out.PrunedHabits != 1 {
			t.Errorf("expected 1 prayer and 1 habit log pruned, got %d/%d", out.PrunedPrayers, out.PrunedHabits)
		}
		if out.ArchivedPoints != 53 {
			t.Errorf("expected 53 archived points, got %d", out.ArchivedPoints)
		}
		if out.TotalPoints != before.TotalPoints {
			t.Errorf("expected total %d to survive cleanup, got %d", before.TotalPoints, out.TotalPoints)
		}

		archive := kit.Rewards.GetArchive(ctx, userID)
		if archive.Points != 53 || archive.PrunedDays != 2 {
			t.Errorf("unexpected archive: %+v", archive)
		}
		if archive.ThroughDate != valueobject.AddDays(testkit.Today, -35) {
			t.Errorf("expected through date of the newest pruned log, got %s", archive.ThroughDate)
		}
		if logs := kit.Prayers.List(ctx, userID); len(logs) != 1 {
			t.Errorf("expected 1 prayer log left, got %d", len(logs))
		}
		if kit.Prayers.Get(ctx, userID, old).Points() != 0 {
			t.Error("expected old log to read as empty")
		}
	})

	t.Run("failed delete keeps points live", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Aisha", "")
		kit.SeedPrayers(t, userID, valueobject.AddDays(testkit.Today, -40), entity.PrayerStatusOnTime)
		if _, err := kit.Engine.Refresh(ctx, userID); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		uc := retention.NewCleanupOldLogsUseCase(failingDeletes{kit.Prayers}, kit.Habits, kit.Rewards, kit.Engine, kit.Locker)
		out, err := uc.Execute(ctx, retention.CleanupOldLogsInput{UserID: userID, KeepDays: 30})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.TotalPoints != 50 {
			t.Errorf("expected 50 points, got %d", out.TotalPoints)
		}
		if archive := kit.Rewards.GetArchive(ctx, userID); archive.Points != 0 || archive.PrunedDays != 0 {
			t.Errorf("expected archive to be rolled back, got %+v", archive)
		}
	})

	t.Run("nothing to prune", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Aisha", "")
		kit.SeedPrayers(t, userID, testkit.Today, entity.PrayerStatusOnTime)

		uc := retention.NewCleanupOldLogsUseCase(kit.Prayers, kit.Habits, kit.Rewards, kit.Engine, kit.Locker)
		out, err := uc.Execute(ctx, retention.CleanupOldLogsInput{UserID: userID, KeepDays: 30})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.PrunedPrayers != 0 || out.ArchivedPoints != 0 {
			t.Errorf("expected no pruning, got %+v", out)
		}
	})
}
