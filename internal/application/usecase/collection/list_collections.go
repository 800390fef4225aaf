package collection

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// ListBookmarksInput represents the input for listing bookmarks.
type ListBookmarksInput struct {
	UserID uuid.UUID
}

// ListBookmarksOutput represents the bookmarks ordered by surah then ayah.
type ListBookmarksOutput struct {
	Bookmarks []entity.AyahRef `json:"bookmarks"`
}

// ListBookmarksUseCase lists verse bookmarks.
type ListBookmarksUseCase struct {
	collectionRepo adapter.CollectionRepository
}

// NewListBookmarksUseCase creates a new ListBookmarksUseCase instance.
func NewListBookmarksUseCase(collectionRepo adapter.CollectionRepository) *ListBookmarksUseCase {
	return &ListBookmarksUseCase{
		collectionRepo: collectionRepo,
	}
}

// Execute lists the bookmarks.
func (uc *ListBookmarksUseCase) Execute(ctx context.Context, input ListBookmarksInput) (*ListBookmarksOutput, error) {
	return &ListBookmarksOutput{
		Bookmarks: uc.collectionRepo.GetBookmarks(ctx, input.UserID).Sorted(),
	}, nil
}

// ListFavoritesInput represents the input for listing favorites.
type ListFavoritesInput struct {
	UserID uuid.UUID
}

// ListFavoritesOutput represents the favorites in lexical order.
type ListFavoritesOutput struct {
	Favorites []string `json:"favorites"`
}

// ListFavoritesUseCase lists favorite hadith ids.
type ListFavoritesUseCase struct {
	collectionRepo adapter.CollectionRepository
}

// NewListFavoritesUseCase creates a new ListFavoritesUseCase instance.
func NewListFavoritesUseCase(collectionRepo adapter.CollectionRepository) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		collectionRepo: collectionRepo,
	}
}

// Execute lists the favorites.
func (uc *ListFavoritesUseCase) Execute(ctx context.Context, input ListFavoritesInput) (*ListFavoritesOutput, error) {
	return &ListFavoritesOutput{
		Favorites: uc.collectionRepo.GetFavorites(ctx, input.UserID).Sorted(),
	}, nil
}
