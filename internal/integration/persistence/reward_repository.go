package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// rewardRepository implements the adapter.RewardRepository interface.
type rewardRepository struct {
	records *Records
}

// NewRewardRepository creates a new reward repository instance.
func NewRewardRepository(records *Records) adapter.RewardRepository {
	return &rewardRepository{
		records: records,
	}
}

// GetRewards returns the already-rewarded set of a kind.
func (r *rewardRepository) GetRewards(ctx context.Context, userID uuid.UUID, kind entity.RewardKind) entity.RewardSet {
	set := GetRecord(ctx, r.records, Namespace(userID), RewardsKey(string(kind)), entity.RewardSet{})
	if set == nil {
		return entity.RewardSet{}
	}
	return set
}

// SaveRewards writes the already-rewarded set of a kind.
func (r *rewardRepository) SaveRewards(ctx context.Context, userID uuid.UUID, kind entity.RewardKind, set entity.RewardSet) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), RewardsKey(string(kind)), set)
	return err
}

// GetArchive returns the points folded away by retention cleanup.
func (r *rewardRepository) GetArchive(ctx context.Context, userID uuid.UUID) entity.PointsArchive {
	return GetRecord(ctx, r.records, Namespace(userID), KeyPointsArchive, entity.PointsArchive{})
}

// SaveArchive writes the retention archive.
func (r *rewardRepository) SaveArchive(ctx context.Context, userID uuid.UUID, archive entity.PointsArchive) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), KeyPointsArchive, archive)
	return err
}
