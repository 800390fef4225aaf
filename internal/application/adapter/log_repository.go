package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// PrayerLogRepository defines the interface for per-day prayer log persistence.
type PrayerLogRepository interface {
	// Get returns the day's log, or a fresh default log when none is stored.
	Get(ctx context.Context, userID uuid.UUID, date string) *entity.PrayerLog

	// Save writes the day's log.
	Save(ctx context.Context, userID uuid.UUID, log *entity.PrayerLog) error

	// List returns every stored prayer log, oldest first.
	List(ctx context.Context, userID uuid.UUID) []*entity.PrayerLog

	// Delete removes the day's log.
	Delete(ctx context.Context, userID uuid.UUID, date string) error
}

// HabitLogRepository defines the interface for per-day habit log persistence.
type HabitLogRepository interface {
	// Get returns the day's log, or a fresh default log when none is stored.
	Get(ctx context.Context, userID uuid.UUID, date string) *entity.HabitLog

	// Save writes the day's log.
	Save(ctx context.Context, userID uuid.UUID, log *entity.HabitLog) error

	// List returns every stored habit log, oldest first.
	List(ctx context.Context, userID uuid.UUID) []*entity.HabitLog

	// Delete removes the day's log.
	Delete(ctx context.Context, userID uuid.UUID, date string) error
}
