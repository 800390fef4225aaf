package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// RewardRepository defines the interface for one-off reward sets and the retention archive.
type RewardRepository interface {
	// GetRewards returns the already-rewarded identifiers of a kind. Missing sets are empty.
	GetRewards(ctx context.Context, userID uuid.UUID, kind entity.RewardKind) entity.RewardSet

	// SaveRewards writes the set of a kind.
	SaveRewards(ctx context.Context, userID uuid.UUID, kind entity.RewardKind, set entity.RewardSet) error

	// GetArchive returns the points folded away by retention cleanup.
	GetArchive(ctx context.Context, userID uuid.UUID) entity.PointsArchive

	// SaveArchive writes the retention archive.
	SaveArchive(ctx context.Context, userID uuid.UUID, archive entity.PointsArchive) error
}
