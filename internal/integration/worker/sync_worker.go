package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	syncuc "github.com/ibadah-tracker/backend/internal/application/usecase/sync"
)

// SyncWorker merges the remote bundle into every profile and then publishes the merged records.
type SyncWorker struct {
	runner
	pull *syncuc.PullAndMergeUseCase
	push *syncuc.PushBundleUseCase
}

// DefaultSyncConfig returns the default sync worker configuration.
func DefaultSyncConfig() Config {
	return Config{Interval: 5 * time.Minute}
}

// NewSyncWorker creates a new sync worker.
func NewSyncWorker(store adapter.RecordStore, pull *syncuc.PullAndMergeUseCase, push *syncuc.PushBundleUseCase, config Config) *SyncWorker {
	if config.Interval <= 0 {
		config = DefaultSyncConfig()
	}
	w := &SyncWorker{pull: pull, push: push}
	w.runner = runner{
		name:     "sync",
		store:    store,
		interval: config.Interval,
		job:      w.syncProfile,
	}
	return w
}

func (w *SyncWorker) syncProfile(ctx context.Context, userID uuid.UUID) error {
	if _, err := w.pull.Execute(ctx, syncuc.PullAndMergeInput{UserID: userID}); err != nil {
		return err
	}
	_, err := w.push.Execute(ctx, syncuc.PushBundleInput{UserID: userID})
	return err
}
