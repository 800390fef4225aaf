package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// collectionRepository implements the adapter.CollectionRepository interface.
type collectionRepository struct {
	records *Records
}

// NewCollectionRepository creates a new bookmark and favorite repository instance.
func NewCollectionRepository(records *Records) adapter.CollectionRepository {
	return &collectionRepository{
		records: records,
	}
}

// GetBookmarks returns the bookmarked verses. Bookmarks are stored as a list.
func (r *collectionRepository) GetBookmarks(ctx context.Context, userID uuid.UUID) entity.BookmarkSet {
	refs := GetRecord(ctx, r.records, Namespace(userID), KeyBookmarks, []entity.AyahRef{})
	set := entity.BookmarkSet{}
	for _, ref := range refs {
		if ref.IsValid() {
			set[ref.Key()] = ref
		}
	}
	return set
}

func (r *collectionRepository) SaveBookmarks(ctx context.Context, userID uuid.UUID, set entity.BookmarkSet) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), KeyBookmarks, set.Sorted())
	return err
}

// GetFavorites returns the favorite hadith ids. Favorites are stored as a list.
func (r *collectionRepository) GetFavorites(ctx context.Context, userID uuid.UUID) entity.FavoriteSet {
	ids := GetRecord(ctx, r.records, Namespace(userID), KeyFavorites, []string{})
	set := entity.FavoriteSet{}
	for _, id := range ids {
		if id != "" {
			set[id] = true
		}
	}
	return set
}

func (r *collectionRepository) SaveFavorites(ctx context.Context, userID uuid.UUID, set entity.FavoriteSet) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), KeyFavorites, set.Sorted())
	return err
}
