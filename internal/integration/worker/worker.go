// Package worker runs periodic maintenance over every stored profile.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
)

// Config holds configuration for a periodic worker.
type Config struct {
	Interval time.Duration
}

// profileJob is one worker's work for a single profile.
type profileJob func(ctx context.Context, userID uuid.UUID) error

// runner ticks over every namespace of the record store.
type runner struct {
	name     string
	store    adapter.RecordStore
	interval time.Duration
	job      profileJob
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (r *runner) Start(ctx context.Context) {
	slog.Info("Worker started", "worker", r.name, "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.processAll(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Worker shutting down", "worker", r.name)
			return
		case <-ticker.C:
			r.processAll(ctx)
		}
	}
}

// ProcessNow runs one pass over every profile immediately.
func (r *runner) ProcessNow(ctx context.Context) {
	r.processAll(ctx)
}

func (r *runner) processAll(ctx context.Context) {
	namespaces, err := r.store.Namespaces(ctx)
	if err != nil {
		slog.Error("Failed to list namespaces", "worker", r.name, "error", err)
		return
	}
	if len(namespaces) == 0 {
		return
	}

	slog.Debug("Processing profiles", "worker", r.name, "count", len(namespaces))

	for _, namespace := range namespaces {
		select {
		case <-ctx.Done():
			return
		default:
			r.processOne(ctx, namespace)
		}
	}
}

func (r *runner) processOne(ctx context.Context, namespace string) {
	logger := slog.With("worker", r.name, "namespace", namespace)

	userID, err := uuid.Parse(namespace)
	if err != nil {
		logger.Warn("Skipping namespace that is not a profile id")
		return
	}

	if err := r.job(ctx, userID); err != nil {
		logger.Error("Worker job failed", "error", err)
	}
}
