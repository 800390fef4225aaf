// Package collection contains bookmark and favorite use cases.
package collection

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// ToggleBookmarkInput represents the input for toggling a verse bookmark.
type ToggleBookmarkInput struct {
	UserID uuid.UUID
	Ref    entity.AyahRef
}

// ToggleBookmarkOutput represents the output of toggling a verse bookmark.
type ToggleBookmarkOutput struct {
	Ref        entity.AyahRef   `json:"ref"`
	Bookmarked bool             `json:"bookmarked"`
	Bookmarks  []entity.AyahRef `json:"bookmarks"`
}

// ToggleBookmarkUseCase adds a bookmark when absent and removes it when present.
type ToggleBookmarkUseCase struct {
	collectionRepo adapter.CollectionRepository
	locker         adapter.OwnerLocker
}

// NewToggleBookmarkUseCase creates a new ToggleBookmarkUseCase instance.
func NewToggleBookmarkUseCase(collectionRepo adapter.CollectionRepository, locker adapter.OwnerLocker) *ToggleBookmarkUseCase {
	return &ToggleBookmarkUseCase{
		collectionRepo: collectionRepo,
		locker:         locker,
	}
}

// Execute performs the toggle.
func (uc *ToggleBookmarkUseCase) Execute(ctx context.Context, input ToggleBookmarkInput) (*ToggleBookmarkOutput, error) {
	if !input.Ref.IsValid() {
		return nil, domainerror.NewCollectionError(
			domainerror.ErrCodeInvalidAyahRef,
			"invalid ayah reference",
			domainerror.ErrInvalidAyahRef,
		)
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	set := uc.collectionRepo.GetBookmarks(ctx, input.UserID)
	if set == nil {
		set = entity.BookmarkSet{}
	}
	bookmarked := set.Toggle(input.Ref)
	if err := uc.collectionRepo.SaveBookmarks(ctx, input.UserID, set); err != nil {
		return nil, domainerror.NewCollectionError(
			domainerror.ErrCodeCollectionInternalError,
			"failed to save bookmarks",
			err,
		)
	}

	return &ToggleBookmarkOutput{
		Ref:        input.Ref,
		Bookmarked: bookmarked,
		Bookmarks:  set.Sorted(),
	}, nil
}
