package persistence

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// prayerLogRepository implements the adapter.PrayerLogRepository interface.
type prayerLogRepository struct {
	records *Records
}

// NewPrayerLogRepository creates a new prayer log repository instance.
func NewPrayerLogRepository(records *Records) adapter.PrayerLogRepository {
	return &prayerLogRepository{
		records: records,
	}
}

// Get returns the day's prayer log or the default day.
func (r *prayerLogRepository) Get(ctx context.Context, userID uuid.UUID, date string) *entity.PrayerLog {
	log := GetRecord(ctx, r.records, Namespace(userID), PrayerKey(date), *entity.NewPrayerLog(date))
	log.Normalize(date)
	log.Date = date
	return &log
}

// Save writes the day's prayer log.
func (r *prayerLogRepository) Save(ctx context.Context, userID uuid.UUID, log *entity.PrayerLog) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), PrayerKey(log.Date), *log)
	return err
}

// List returns every stored prayer log, oldest first.
func (r *prayerLogRepository) List(ctx context.Context, userID uuid.UUID) []*entity.PrayerLog {
	items := ListRecords[entity.PrayerLog](ctx, r.records, Namespace(userID), KeyPrayerPrefix)
	logs := make([]*entity.PrayerLog, 0, len(items))
	for _, item := range items {
		date, ok := dateFromKey(item.Key, KeyPrayerPrefix)
		if !ok {
			continue
		}
		log := item.Value
		log.Normalize(date)
		log.Date = date
		logs = append(logs, &log)
	}
	return logs
}

// Delete removes the day's prayer log.
func (r *prayerLogRepository) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	return DeleteRecord(ctx, r.records, Namespace(userID), PrayerKey(date))
}

// habitLogRepository implements the adapter.HabitLogRepository interface.
type habitLogRepository struct {
	records *Records
}

// NewHabitLogRepository creates a new habit log repository instance.
func NewHabitLogRepository(records *Records) adapter.HabitLogRepository {
	return &habitLogRepository{
		records: records,
	}
}

// Get returns the day's habit log or the default day.
func (r *habitLogRepository) Get(ctx context.Context, userID uuid.UUID, date string) *entity.HabitLog {
	log := GetRecord(ctx, r.records, Namespace(userID), HabitKey(date), *entity.NewHabitLog(date))
	log.Date = date
	return &log
}

// Save writes the day's habit log.
func (r *habitLogRepository) Save(ctx context.Context, userID uuid.UUID, log *entity.HabitLog) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), HabitKey(log.Date), *log)
	return err
}

// List returns every stored habit log, oldest first.
func (r *habitLogRepository) List(ctx context.Context, userID uuid.UUID) []*entity.HabitLog {
	items := ListRecords[entity.HabitLog](ctx, r.records, Namespace(userID), KeyHabitPrefix)
	logs := make([]*entity.HabitLog, 0, len(items))
	for _, item := range items {
		date, ok := dateFromKey(item.Key, KeyHabitPrefix)
		if !ok {
			continue
		}
		log := item.Value
		log.Date = date
		logs = append(logs, &log)
	}
	return logs
}

// Delete removes the day's habit log.
func (r *habitLogRepository) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	return DeleteRecord(ctx, r.records, Namespace(userID), HabitKey(date))
}

func dateFromKey(key, prefix string) (string, bool) {
	date := strings.TrimPrefix(key, prefix)
	if !valueobject.IsDateKey(date) {
		slog.Warn("Ignoring day log with malformed key", "key", key)
		return "", false
	}
	return date, true
}
