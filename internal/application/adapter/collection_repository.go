package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// CollectionRepository defines the interface for bookmark and favorite sets.
type CollectionRepository interface {
	GetBookmarks(ctx context.Context, userID uuid.UUID) entity.BookmarkSet
	SaveBookmarks(ctx context.Context, userID uuid.UUID, set entity.BookmarkSet) error

	GetFavorites(ctx context.Context, userID uuid.UUID) entity.FavoriteSet
	SaveFavorites(ctx context.Context, userID uuid.UUID, set entity.FavoriteSet) error
}
