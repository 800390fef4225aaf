package profile

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// ResetAllDataInput represents the input for wiping a profile's data.
type ResetAllDataInput struct {
	UserID uuid.UUID
}

// ResetAllDataUseCase removes every record the profile owns, the profile included.
// A reset marker is left in the namespace so a later sync pull does not restore the wiped records.
type ResetAllDataUseCase struct {
	store  adapter.RecordStore
	engine *progress.Engine
	locker adapter.OwnerLocker
	sink   adapter.AnalyticsSink
}

// NewResetAllDataUseCase creates a new ResetAllDataUseCase instance.
func NewResetAllDataUseCase(
	store adapter.RecordStore,
	engine *progress.Engine,
	locker adapter.OwnerLocker,
	sink adapter.AnalyticsSink,
) *ResetAllDataUseCase {
	return &ResetAllDataUseCase{
		store:  store,
		engine: engine,
		locker: locker,
		sink:   sink,
	}
}

// Execute clears the namespace.
func (uc *ResetAllDataUseCase) Execute(ctx context.Context, input ResetAllDataInput) error {
	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	if err := uc.store.Clear(ctx, input.UserID.String()); err != nil {
		return domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to reset data",
			err,
		)
	}

	now := uc.engine.Now().UTC()
	marker, err := json.Marshal(entity.ResetMarker{ResetAt: now})
	if err != nil {
		return domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to encode reset marker",
			err,
		)
	}
	if err := uc.store.Put(ctx, input.UserID.String(), adapter.Record{
		Key:       entity.ResetMarkerKey,
		Value:     marker,
		UpdatedAt: now,
	}); err != nil {
		return domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to store reset marker",
			err,
		)
	}

	progress.Emit(ctx, uc.sink, entity.NewActionEvent(
		entity.EventDataReset,
		input.UserID,
		uc.engine.Today(),
		uc.engine.Now(),
		nil,
	))
	return nil
}
