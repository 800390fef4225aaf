package sync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/profile"
	"github.com/ibadah-tracker/backend/internal/application/usecase/retention"
	syncuc "github.com/ibadah-tracker/backend/internal/application/usecase/sync"
	"github.com/ibadah-tracker/backend/internal/application/usecase/testkit"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/adapters"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/mock"
)

type unavailableRemote struct{}

func (unavailableRemote) Push(ctx context.Context, namespace string, records []adapter.Record) error {
	return errors.New("connection refused")
}

func (unavailableRemote) Pull(ctx context.Context, namespace string) ([]adapter.Record, error) {
	return nil, errors.New("connection refused")
}

func newRemote(t *testing.T) adapter.SyncRemote {
	t.Helper()
	r := mock.NewRedis()
	t.Cleanup(r.Close)
	return adapters.NewRedisSyncRemote(r.Client, "test:sync:")
}

func push(t *testing.T, kit *testkit.Kit, remote adapter.SyncRemote, userID uuid.UUID) {
	t.Helper()
	if _, err := syncuc.NewPushBundleUseCase(kit.Store, remote, kit.Locker).Execute(context.Background(), syncuc.PushBundleInput{UserID: userID}); err != nil {
		t.Fatalf("push: %v", err)
	}
}

func pull(t *testing.T, kit *testkit.Kit, remote adapter.SyncRemote, userID uuid.UUID) *syncuc.PullAndMergeOutput {
	t.Helper()
	out, err := syncuc.NewPullAndMergeUseCase(kit.Store, remote, kit.Engine, kit.Locker).Execute(context.Background(), syncuc.PullAndMergeInput{UserID: userID})
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	return out
}

func saveProfile(t *testing.T, kit *testkit.Kit, profile *entity.UserProfile) {
	t.Helper()
	if err := kit.Profiles.Save(context.Background(), profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
}

func TestPullAndMerge_RestoresEmptyDevice(t *testing.T) {
	ctx := context.Background()
	remote := newRemote(t)
	phone, tablet := testkit.New(t), testkit.New(t)
	userID := uuid.New()

	profile := entity.NewUserProfile(userID, "Aisha", "Makkah", testkit.Now)
	profile.LongestStreak = 9
	saveProfile(t, phone, profile)
	phone.SeedPrayers(t, userID, testkit.Today, entity.PrayerStatusOnTime)
	push(t, phone, remote, userID)

	out := pull(t, tablet, remote, userID)
	if out.Pulled != 2 || out.Applied != 2 || out.Kept != 0 {
		t.Errorf("expected 2 pulled and applied, got %+v", out)
	}
	if out.TotalPoints != 50 || out.Streak != 1 || out.LongestStreak != 9 {
		t.Errorf("unexpected counters: %+v", out)
	}
	if got := tablet.Profile(t, userID).Name; got != "Aisha" {
		t.Errorf("expected restored name, got %q", got)
	}
	if got := tablet.Prayers.Get(ctx, userID, testkit.Today).Fajr.Status; got != entity.PrayerStatusOnTime {
		t.Errorf("expected restored fajr, got %s", got)
	}
}

func TestPullAndMerge_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	remote := newRemote(t)
	phone, tablet := testkit.New(t), testkit.New(t)
	userID := uuid.New()

	phone.SeedPrayers(t, userID, testkit.Today, entity.PrayerStatusLate)
	tablet.Clock.Advance(time.Minute)
	tablet.SeedPrayers(t, userID, testkit.Today, entity.PrayerStatusOnTime)

	push(t, phone, remote, userID)
	out := pull(t, tablet, remote, userID)
	if out.Kept != 1 || out.Applied != 0 {
		t.Errorf("expected newer local log kept, got %+v", out)
	}
	if got := tablet.Prayers.Get(ctx, userID, testkit.Today).Isha.Status; got != entity.PrayerStatusOnTime {
		t.Errorf("expected local ontime to win, got %s", got)
	}

	phone.Clock.Advance(time.Hour)
	phone.SeedPrayers(t, userID, testkit.Today, entity.PrayerStatusMissed)
	push(t, phone, remote, userID)

	out = pull(t, tablet, remote, userID)
	if out.Applied != 1 {
		t.Errorf("expected newer remote log applied, got %+v", out)
	}
	if got := tablet.Prayers.Get(ctx, userID, testkit.Today).Isha.Status; got != entity.PrayerStatusMissed {
		t.Errorf("expected remote missed to win, got %s", got)
	}
}

func TestPullAndMerge_ProfileFieldMerge(t *testing.T) {
	remote := newRemote(t)
	phone, tablet := testkit.New(t), testkit.New(t)
	userID := uuid.New()

	joined := testkit.Now.AddDate(0, 0, -30)
	old := entity.NewUserProfile(userID, "Old name", "Makkah", joined)
	old.LongestStreak = 4
	saveProfile(t, phone, old)

	tablet.Clock.Advance(time.Minute)
	fresh := entity.NewUserProfile(userID, "New name", "London", testkit.Now)
	fresh.LongestStreak = 2
	saveProfile(t, tablet, fresh)

	push(t, phone, remote, userID)
	pull(t, tablet, remote, userID)

	merged := tablet.Profile(t, userID)
	if merged.Name != "New name" || merged.City != "London" {
		t.Errorf("expected newer descriptive fields, got %s/%s", merged.Name, merged.City)
	}
	if merged.LongestStreak != 4 {
		t.Errorf("expected longest streak 4, got %d", merged.LongestStreak)
	}
	if !merged.JoinedAt.Equal(joined.UTC()) {
		t.Errorf("expected earliest join date %v, got %v", joined.UTC(), merged.JoinedAt)
	}
}

func TestPullAndMerge_RewardUnion(t *testing.T) {
	ctx := context.Background()
	remote := newRemote(t)
	phone, tablet := testkit.New(t), testkit.New(t)
	userID := uuid.New()

	if err := phone.Rewards.SaveRewards(ctx, userID, entity.RewardHadithRead, entity.RewardSet{"a": 2, "c": 2}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := tablet.Rewards.SaveRewards(ctx, userID, entity.RewardHadithRead, entity.RewardSet{"a": 5, "b": 2}); err != nil {
		t.Fatalf("save: %v", err)
	}

	push(t, phone, remote, userID)
	out := pull(t, tablet, remote, userID)

	set := tablet.Rewards.GetRewards(ctx, userID, entity.RewardHadithRead)
	if len(set) != 3 || set["a"] != 5 || set["c"] != 2 {
		t.Errorf("expected union keeping local points, got %v", set)
	}
	if out.TotalPoints != 9 {
		t.Errorf("expected 9 points, got %d", out.TotalPoints)
	}

	again := pull(t, tablet, remote, userID)
	if again.Applied != 0 || again.TotalPoints != 9 {
		t.Errorf("expected a second pull to change nothing, got %+v", again)
	}
}

func TestPullAndMerge_ArchivedLogsStayArchived(t *testing.T) {
	ctx := context.Background()
	remote := newRemote(t)
	kit := testkit.New(t)
	userID := kit.SeedProfile(t, "Aisha", "")
	kit.SeedPrayers(t, userID, "2023-01-01", entity.PrayerStatusOnTime)
	if _, err := kit.Engine.Refresh(ctx, userID); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	push(t, kit, remote, userID)

	cleanup := retention.NewCleanupOldLogsUseCase(kit.Prayers, kit.Habits, kit.Rewards, kit.Engine, kit.Locker)
	pruned, err := cleanup.Execute(ctx, retention.CleanupOldLogsInput{UserID: userID, KeepDays: 30})
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if pruned.ArchivedPoints != 50 || pruned.TotalPoints != 50 {
		t.Fatalf("expected 50 archived and 50 total, got %+v", pruned)
	}

	t.Run("stale bundle does not resurrect the pruned day", func(t *testing.T) {
		out := pull(t, kit, remote, userID)
		if out.TotalPoints != 50 {
			t.Errorf("expected total to stay 50, got %d", out.TotalPoints)
		}
		if out.Skipped != 1 {
			t.Errorf("expected the archived day to be skipped, got %+v", out)
		}
		if logs := kit.Prayers.List(ctx, userID); len(logs) != 0 {
			t.Errorf("expected no prayer logs, got %d", len(logs))
		}
		if got := kit.Engine.ComputePoints(ctx, userID).Total; got != 50 {
			t.Errorf("expected recomputed total 50, got %d", got)
		}
	})

	t.Run("fresh device receives the archive instead of the day", func(t *testing.T) {
		push(t, kit, remote, userID)
		tablet := testkit.New(t)

		out := pull(t, tablet, remote, userID)
		if out.TotalPoints != 50 {
			t.Errorf("expected 50 points on the new device, got %d", out.TotalPoints)
		}
		if got := tablet.Rewards.GetArchive(ctx, userID).Points; got != 50 {
			t.Errorf("expected archive of 50, got %d", got)
		}
		if logs := tablet.Prayers.List(ctx, userID); len(logs) != 0 {
			t.Errorf("expected no prayer logs, got %d", len(logs))
		}
	})

	t.Run("older remote archive does not replace the local one", func(t *testing.T) {
		stale := []adapter.Record{{
			Key:       "points:archive",
			Value:     []byte(`{"points":5,"through_date":"2022-06-01","pruned_days":1}`),
			UpdatedAt: testkit.Now.Add(time.Hour),
		}}
		if err := remote.Push(ctx, userID.String(), stale); err != nil {
			t.Fatalf("push: %v", err)
		}

		out := pull(t, kit, remote, userID)
		if out.Applied != 0 || out.TotalPoints != 50 {
			t.Errorf("expected local archive kept, got %+v", out)
		}
	})
}

func TestPullAndMerge_AfterReset(t *testing.T) {
	ctx := context.Background()
	remote := newRemote(t)
	kit := testkit.New(t)
	userID := kit.SeedProfile(t, "Aisha", "")
	kit.SeedPrayers(t, userID, testkit.Today, entity.PrayerStatusOnTime)
	push(t, kit, remote, userID)

	reset := profile.NewResetAllDataUseCase(kit.Store, kit.Engine, kit.Locker, kit.Events)
	if err := reset.Execute(ctx, profile.ResetAllDataInput{UserID: userID}); err != nil {
		t.Fatalf("reset: %v", err)
	}

	out := pull(t, kit, remote, userID)
	if out.Applied != 0 || out.Skipped != 2 {
		t.Errorf("expected both pre-reset records skipped, got %+v", out)
	}
	if out.TotalPoints != 0 {
		t.Errorf("expected 0 points after reset, got %d", out.TotalPoints)
	}
	if logs := kit.Prayers.List(ctx, userID); len(logs) != 0 {
		t.Errorf("expected no prayer logs after reset, got %d", len(logs))
	}

	t.Run("records written after the reset still sync", func(t *testing.T) {
		kit.Clock.Advance(time.Minute)
		kit.SeedPrayers(t, userID, testkit.Today, entity.PrayerStatusLate)
		push(t, kit, remote, userID)

		tablet := testkit.New(t)
		restored := pull(t, tablet, remote, userID)
		if restored.TotalPoints != 25 {
			t.Errorf("expected 25 points from the post-reset log, got %d", restored.TotalPoints)
		}
	})
}

func TestSync_RemoteUnavailable(t *testing.T) {
	ctx := context.Background()
	kit := testkit.New(t)
	userID := kit.SeedProfile(t, "Aisha", "")

	_, err := syncuc.NewPushBundleUseCase(kit.Store, unavailableRemote{}, kit.Locker).Execute(ctx, syncuc.PushBundleInput{UserID: userID})
	var syncErr *domainerror.SyncError
	if !errors.As(err, &syncErr) || syncErr.Code != domainerror.ErrCodeSyncRemoteUnavailable {
		t.Fatalf("expected %s on push, got %v", domainerror.ErrCodeSyncRemoteUnavailable, err)
	}

	_, err = syncuc.NewPullAndMergeUseCase(kit.Store, unavailableRemote{}, kit.Engine, kit.Locker).Execute(ctx, syncuc.PullAndMergeInput{UserID: userID})
	if !errors.As(err, &syncErr) || syncErr.Code != domainerror.ErrCodeSyncRemoteUnavailable {
		t.Fatalf("expected %s on pull, got %v", domainerror.ErrCodeSyncRemoteUnavailable, err)
	}
}
