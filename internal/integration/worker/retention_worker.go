package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/retention"
)

// RetentionWorker prunes old day logs of every profile.
type RetentionWorker struct {
	runner
	cleanup  *retention.CleanupOldLogsUseCase
	keepDays int
}

// DefaultRetentionConfig returns the default retention worker configuration.
func DefaultRetentionConfig() Config {
	return Config{Interval: 24 * time.Hour}
}

// NewRetentionWorker creates a new retention worker keeping keepDays of logs.
func NewRetentionWorker(store adapter.RecordStore, cleanup *retention.CleanupOldLogsUseCase, keepDays int, config Config) *RetentionWorker {
	if config.Interval <= 0 {
		config = DefaultRetentionConfig()
	}
	w := &RetentionWorker{cleanup: cleanup, keepDays: keepDays}
	w.runner = runner{
		name:     "retention",
		store:    store,
		interval: config.Interval,
		job:      w.pruneProfile,
	}
	return w
}

func (w *RetentionWorker) pruneProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := w.cleanup.Execute(ctx, retention.CleanupOldLogsInput{UserID: userID, KeepDays: w.keepDays})
	return err
}
