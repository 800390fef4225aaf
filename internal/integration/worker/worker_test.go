package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/retention"
	syncuc "github.com/ibadah-tracker/backend/internal/application/usecase/sync"
	"github.com/ibadah-tracker/backend/internal/application/usecase/testkit"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
	"github.com/ibadah-tracker/backend/internal/integration/adapters"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/mock"
)

func TestRetentionWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()
	kit := testkit.New(t)
	first := kit.SeedProfile(t, "Aisha", "")
	second := kit.SeedProfile(t, "Omar", "")
	old := valueobject.AddDays(testkit.Today, -100)
	kit.SeedPrayers(t, first, old, entity.PrayerStatusOnTime)
	kit.SeedPrayers(t, second, old, entity.PrayerStatusLate)
	if err := kit.Store.Put(ctx, "not-a-profile", adapter.Record{Key: "profile", Value: []byte(`{}`), UpdatedAt: testkit.Now}); err != nil {
		t.Fatalf("put: %v", err)
	}

	cleanup := retention.NewCleanupOldLogsUseCase(kit.Prayers, kit.Habits, kit.Rewards, kit.Engine, kit.Locker)
	w := NewRetentionWorker(kit.Store, cleanup, 30, Config{Interval: time.Hour})
	w.ProcessNow(ctx)

	for _, userID := range []uuid.UUID{first, second} {
		if logs := kit.Prayers.List(ctx, userID); len(logs) != 0 {
			t.Errorf("expected old logs of %s pruned, got %d", userID, len(logs))
		}
	}
	if got := kit.Profile(t, first).TotalPoints; got != 50 {
		t.Errorf("expected archived points to keep total at 50, got %d", got)
	}
	if got := kit.Profile(t, second).TotalPoints; got != 25 {
		t.Errorf("expected archived points to keep total at 25, got %d", got)
	}
}

func TestSyncWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()
	r := mock.NewRedis()
	defer r.Close()
	remote := adapters.NewRedisSyncRemote(r.Client, "test:sync:")

	kit := testkit.New(t)
	userID := kit.SeedProfile(t, "Aisha", "")
	kit.SeedPrayers(t, userID, testkit.Today, entity.PrayerStatusOnTime)

	pull := syncuc.NewPullAndMergeUseCase(kit.Store, remote, kit.Engine, kit.Locker)
	push := syncuc.NewPushBundleUseCase(kit.Store, remote, kit.Locker)
	w := NewSyncWorker(kit.Store, pull, push, Config{Interval: time.Hour})
	w.ProcessNow(ctx)

	records, err := remote.Pull(ctx, userID.String())
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected profile and prayer log pushed, got %d records", len(records))
	}
	if got := kit.Profile(t, userID).TotalPoints; got != 50 {
		t.Errorf("expected refreshed total 50, got %d", got)
	}
}

func TestRunner_StartStopsOnCancel(t *testing.T) {
	kit := testkit.New(t)
	calls := 0
	r := &runner{
		name:     "test",
		store:    kit.Store,
		interval: time.Hour,
		job: func(ctx context.Context, userID uuid.UUID) error {
			calls++
			return nil
		},
	}
	kit.SeedProfile(t, "Aisha", "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected worker to stop after cancel")
	}
	if calls > 1 {
		t.Errorf("expected at most the initial pass, got %d calls", calls)
	}
}
