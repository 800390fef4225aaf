package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
)

// Record keys owned by the tracker inside a profile namespace.
const (
	KeyProfile       = "profile"
	KeyPrayerPrefix  = "prayer:"
	KeyHabitPrefix   = "habit:"
	KeyZakatAssets   = "zakat:assets"
	KeyZakatPrices   = "zakat:prices"
	KeyZakatHistory  = "zakat:history"
	KeyBookmarks     = "bookmarks:ayah"
	KeyFavorites     = "favorites:hadith"
	KeyRewardsPrefix = "rewards:"
	KeyPointsArchive = "points:archive"
)

// Namespace returns the record namespace of a profile.
func Namespace(userID uuid.UUID) string {
	return userID.String()
}

// PrayerKey returns the key of a day's prayer log.
func PrayerKey(date string) string {
	return KeyPrayerPrefix + date
}

// HabitKey returns the key of a day's habit log.
func HabitKey(date string) string {
	return KeyHabitPrefix + date
}

// RewardsKey returns the key of a reward kind's already-rewarded set.
func RewardsKey(kind string) string {
	return KeyRewardsPrefix + kind
}

// Records couples a record store with the clock that stamps writes.
type Records struct {
	store adapter.RecordStore
	clock adapter.Clock
}

// NewRecords creates typed record access over store.
func NewRecords(store adapter.RecordStore, clock adapter.Clock) *Records {
	return &Records{
		store: store,
		clock: clock,
	}
}

// Store returns the underlying record store.
func (r *Records) Store() adapter.RecordStore {
	return r.store
}

// GetRecord reads and decodes the record stored under key.
// A missing, unreadable or unparsable record yields def, which is not written back.
func GetRecord[T any](ctx context.Context, r *Records, namespace, key string, def T) T {
	value, _ := LookupRecord(ctx, r, namespace, key, def)
	return value
}

// LookupRecord is GetRecord that also reports whether a valid record was found.
func LookupRecord[T any](ctx context.Context, r *Records, namespace, key string, def T) (T, bool) {
	record, found, err := r.store.Get(ctx, namespace, key)
	if err != nil {
		slog.Error("Failed to read record", "namespace", namespace, "key", key, "error", err)
		return def, false
	}
	if !found {
		return def, false
	}

	var value T
	if err := json.Unmarshal(record.Value, &value); err != nil {
		slog.Warn("Corrupt record ignored", "namespace", namespace, "key", key, "error", err)
		return def, false
	}
	return value, true
}

// SetRecord encodes and writes value under key, returning the value written.
func SetRecord[T any](ctx context.Context, r *Records, namespace, key string, value T) (T, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return value, fmt.Errorf("failed to encode record %s: %w", key, err)
	}
	record := adapter.Record{
		Key:       key,
		Value:     payload,
		UpdatedAt: r.clock.Now().UTC(),
	}
	if err := r.store.Put(ctx, namespace, record); err != nil {
		return value, fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return value, nil
}

// Keyed is a decoded record value together with its key.
type Keyed[T any] struct {
	Key   string
	Value T
}

// ListRecords decodes every record under prefix in key order, skipping corrupt ones.
func ListRecords[T any](ctx context.Context, r *Records, namespace, prefix string) []Keyed[T] {
	records, err := r.store.List(ctx, namespace, prefix)
	if err != nil {
		slog.Error("Failed to list records", "namespace", namespace, "prefix", prefix, "error", err)
		return nil
	}

	values := make([]Keyed[T], 0, len(records))
	for _, record := range records {
		var value T
		if err := json.Unmarshal(record.Value, &value); err != nil {
			slog.Warn("Corrupt record ignored", "namespace", namespace, "key", record.Key, "error", err)
			continue
		}
		values = append(values, Keyed[T]{Key: record.Key, Value: value})
	}
	return values
}

// DeleteRecord removes the record stored under key.
func DeleteRecord(ctx context.Context, r *Records, namespace, key string) error {
	if err := r.store.Delete(ctx, namespace, key); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}
