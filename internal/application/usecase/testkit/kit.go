// Package testkit wires use cases against an isolated in-memory store for tests.
package testkit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/integration/adapters"
	"github.com/ibadah-tracker/backend/internal/integration/persistence"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/mock"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/model"
)

// Location is the local timezone every kit clock reports in.
var Location = time.FixedZone("UTC+3", 3*3600)

// Now is the kit's initial local time: Sunday 2024-03-10 13:00, after dhuhr and before asr.
var Now = time.Date(2024, 3, 10, 13, 0, 0, 0, Location)

// Today is the date key of Now.
const Today = "2024-03-10"

// Kit bundles repositories and collaborators sharing one in-memory store.
type Kit struct {
	Store       adapter.RecordStore
	Records     *persistence.Records
	Clock       *adapters.FixedClock
	Locker      *adapters.InMemoryOwnerLocker
	Events      *RecordingSink
	Schedules   *StubSchedule
	Profiles    adapter.ProfileRepository
	Prayers     adapter.PrayerLogRepository
	Habits      adapter.HabitLogRepository
	Rewards     adapter.RewardRepository
	Zakat       adapter.ZakatRepository
	Collections adapter.CollectionRepository
	Engine      *progress.Engine
}

// New opens a fresh store and wires every repository over it.
func New(t testing.TB) *Kit {
	t.Helper()

	db := mock.NewDb(&model.RecordModel{})
	t.Cleanup(db.Close)

	clock := adapters.NewFixedClock(Now)
	store := persistence.NewGormRecordStore(db.DbConn)
	records := persistence.NewRecords(store, clock)

	provider, err := adapters.NewScheduleFileProvider("")
	if err != nil {
		t.Fatalf("failed to load bundled schedule: %v", err)
	}

	kit := &Kit{
		Store:       store,
		Records:     records,
		Clock:       clock,
		Locker:      adapters.NewInMemoryOwnerLocker(),
		Events:      &RecordingSink{},
		Schedules:   &StubSchedule{Provider: provider},
		Profiles:    persistence.NewProfileRepository(records),
		Prayers:     persistence.NewPrayerLogRepository(records),
		Habits:      persistence.NewHabitLogRepository(records),
		Rewards:     persistence.NewRewardRepository(records),
		Zakat:       persistence.NewZakatRepository(records),
		Collections: persistence.NewCollectionRepository(records),
	}
	kit.Engine = progress.NewEngine(kit.Profiles, kit.Prayers, kit.Habits, kit.Rewards, clock, progress.DefaultStreakScanDays)
	return kit
}

// SeedProfile stores a profile for a new user and returns its id.
func (k *Kit) SeedProfile(t testing.TB, name, city string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	if err := k.Profiles.Save(context.Background(), entity.NewUserProfile(id, name, city, k.Clock.Now())); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return id
}

// SeedPrayers stores a prayer log where every prayer has status.
func (k *Kit) SeedPrayers(t testing.TB, userID uuid.UUID, date string, status entity.PrayerStatus) {
	t.Helper()
	log := entity.NewPrayerLog(date)
	for _, name := range entity.Prayers {
		log.SetEntry(name, entity.PrayerEntry{Status: status})
	}
	if err := k.Prayers.Save(context.Background(), userID, log); err != nil {
		t.Fatalf("failed to seed prayers: %v", err)
	}
}

// Profile returns the stored profile, failing the test when none exists.
func (k *Kit) Profile(t testing.TB, userID uuid.UUID) *entity.UserProfile {
	t.Helper()
	profile, ok := k.Profiles.FindByID(context.Background(), userID)
	if !ok {
		t.Fatal("expected profile to be stored")
	}
	return profile
}

// RecordingSink keeps every tracked event in memory.
type RecordingSink struct {
	mu     sync.Mutex
	events []entity.ActionEvent
	Err    error
}

// Track records the event and returns the configured error.
func (s *RecordingSink) Track(ctx context.Context, event entity.ActionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.Err
}

// Events returns a copy of the recorded events.
func (s *RecordingSink) Events() []entity.ActionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.ActionEvent(nil), s.events...)
}

// Count returns how many events of the type were recorded.
func (s *RecordingSink) Count(eventType entity.EventType) int {
	count := 0
	for _, event := range s.Events() {
		if event.Type == eventType {
			count++
		}
	}
	return count
}

// StubSchedule serves the wrapped provider unless Err is set.
type StubSchedule struct {
	Provider adapter.PrayerTimesProvider
	Err      error
}

// Schedule implements adapter.PrayerTimesProvider.
func (s *StubSchedule) Schedule(ctx context.Context, location adapter.ScheduleLocation, date string) (entity.PrayerSchedule, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Provider.Schedule(ctx, location, date)
}
