package collection

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// ToggleFavoriteInput represents the input for toggling a favorite hadith.
type ToggleFavoriteInput struct {
	UserID   uuid.UUID
	HadithID string
}

// ToggleFavoriteOutput represents the output of toggling a favorite hadith.
type ToggleFavoriteOutput struct {
	HadithID  string   `json:"hadith_id"`
	Favorite  bool     `json:"favorite"`
	Favorites []string `json:"favorites"`
}

// ToggleFavoriteUseCase adds a favorite when absent and removes it when present.
type ToggleFavoriteUseCase struct {
	collectionRepo adapter.CollectionRepository
	locker         adapter.OwnerLocker
}

// NewToggleFavoriteUseCase creates a new ToggleFavoriteUseCase instance.
func NewToggleFavoriteUseCase(collectionRepo adapter.CollectionRepository, locker adapter.OwnerLocker) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		collectionRepo: collectionRepo,
		locker:         locker,
	}
}

// Execute performs the toggle.
func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, input ToggleFavoriteInput) (*ToggleFavoriteOutput, error) {
	id := strings.TrimSpace(input.HadithID)
	if id == "" {
		return nil, domainerror.NewCollectionError(
			domainerror.ErrCodeMissingHadithID,
			"hadith_id is required",
			domainerror.ErrMissingHadithID,
		)
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	set := uc.collectionRepo.GetFavorites(ctx, input.UserID)
	if set == nil {
		set = entity.FavoriteSet{}
	}
	favorite := set.Toggle(id)
	if err := uc.collectionRepo.SaveFavorites(ctx, input.UserID, set); err != nil {
		return nil, domainerror.NewCollectionError(
			domainerror.ErrCodeCollectionInternalError,
			"failed to save favorites",
			err,
		)
	}

	return &ToggleFavoriteOutput{
		HadithID:  id,
		Favorite:  favorite,
		Favorites: set.Sorted(),
	}, nil
}
