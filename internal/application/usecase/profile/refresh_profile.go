package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// RefreshProfileInput represents the input for an explicit refresh.
type RefreshProfileInput struct {
	UserID uuid.UUID
}

// RefreshProfileUseCase recomputes points and streak and returns the fresh snapshot.
type RefreshProfileUseCase struct {
	engine *progress.Engine
	locker adapter.OwnerLocker
}

// NewRefreshProfileUseCase creates a new RefreshProfileUseCase instance.
func NewRefreshProfileUseCase(engine *progress.Engine, locker adapter.OwnerLocker) *RefreshProfileUseCase {
	return &RefreshProfileUseCase{
		engine: engine,
		locker: locker,
	}
}

// Execute performs the refresh.
func (uc *RefreshProfileUseCase) Execute(ctx context.Context, input RefreshProfileInput) (*GetProfileOutput, error) {
	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	profile, err := uc.engine.Refresh(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to refresh profile",
			err,
		)
	}

	return &GetProfileOutput{
		Profile: profile,
		Level:   entity.ProgressFor(profile.TotalPoints),
	}, nil
}
