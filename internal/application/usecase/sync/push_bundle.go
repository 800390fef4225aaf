// Package sync exchanges a profile's records with the sync remote.
package sync

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// PushBundleInput represents the input for exporting a namespace.
type PushBundleInput struct {
	UserID uuid.UUID
}

// PushBundleOutput represents the output of an export.
type PushBundleOutput struct {
	Pushed int `json:"pushed"`
}

// PushBundleUseCase replaces the remote bundle with every local record of the profile.
type PushBundleUseCase struct {
	store  adapter.RecordStore
	remote adapter.SyncRemote
	locker adapter.OwnerLocker
}

// NewPushBundleUseCase creates a new PushBundleUseCase instance.
func NewPushBundleUseCase(store adapter.RecordStore, remote adapter.SyncRemote, locker adapter.OwnerLocker) *PushBundleUseCase {
	return &PushBundleUseCase{
		store:  store,
		remote: remote,
		locker: locker,
	}
}

// Execute pushes the bundle.
func (uc *PushBundleUseCase) Execute(ctx context.Context, input PushBundleInput) (*PushBundleOutput, error) {
	unlock := uc.locker.Lock(input.UserID)
	records, err := uc.store.List(ctx, input.UserID.String(), "")
	unlock()
	if err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeSyncInternalError,
			"failed to read local records",
			err,
		)
	}

	if err := uc.remote.Push(ctx, input.UserID.String(), records); err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeSyncRemoteUnavailable,
			"failed to push records",
			err,
		)
	}

	slog.Debug("Sync bundle pushed", "user_id", input.UserID, "records", len(records))
	return &PushBundleOutput{Pushed: len(records)}, nil
}
