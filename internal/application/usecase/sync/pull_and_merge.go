package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// Keys merged field by field rather than last-writer-wins.
const (
	profileKey    = "profile"
	rewardsPrefix = "rewards:"
	archiveKey    = "points:archive"
)

// Day log prefixes guarded by the points archive.
var dayLogPrefixes = []string{"prayer:", "habit:"}

// PullAndMergeInput represents the input for importing the remote bundle.
type PullAndMergeInput struct {
	UserID uuid.UUID
}

// PullAndMergeOutput represents the output of an import.
type PullAndMergeOutput struct {
	Pulled        int `json:"pulled"`
	Applied       int `json:"applied"`
	Kept          int `json:"kept"`
	Skipped       int `json:"skipped"`
	TotalPoints   int `json:"total_points"`
	Streak        int `json:"streak"`
	LongestStreak int `json:"longest_streak"`
}

// PullAndMergeUseCase merges the remote bundle into the local records.
// Plain records are last-writer-wins by UpdatedAt. The profile is merged field by field
// and reward sets are unioned so no reward is granted twice.
// Remote records written before the latest reset are dropped, and day logs already folded
// into the points archive are never restored.
type PullAndMergeUseCase struct {
	store  adapter.RecordStore
	remote adapter.SyncRemote
	engine *progress.Engine
	locker adapter.OwnerLocker
}

// NewPullAndMergeUseCase creates a new PullAndMergeUseCase instance.
func NewPullAndMergeUseCase(
	store adapter.RecordStore,
	remote adapter.SyncRemote,
	engine *progress.Engine,
	locker adapter.OwnerLocker,
) *PullAndMergeUseCase {
	return &PullAndMergeUseCase{
		store:  store,
		remote: remote,
		engine: engine,
		locker: locker,
	}
}

// Execute pulls and merges.
func (uc *PullAndMergeUseCase) Execute(ctx context.Context, input PullAndMergeInput) (*PullAndMergeOutput, error) {
	namespace := input.UserID.String()

	remote, err := uc.remote.Pull(ctx, namespace)
	if err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeSyncRemoteUnavailable,
			"failed to pull records",
			err,
		)
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	records, err := uc.store.List(ctx, namespace, "")
	if err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeSyncInternalError,
			"failed to read local records",
			err,
		)
	}
	local := make(map[string]adapter.Record, len(records))
	for _, record := range records {
		local[record.Key] = record
	}

	marker := resetMarkerOf(local[entity.ResetMarkerKey])
	if incoming := resetMarkerOf(findRecord(remote, entity.ResetMarkerKey)); incoming.ResetAt.After(marker.ResetAt) {
		marker = incoming
	}
	archive := archiveOf(local[archiveKey])
	remoteArchive := findRecord(remote, archiveKey)
	if incoming := archiveOf(remoteArchive); incoming.Supersedes(archive) && !marker.Erases(remoteArchive.UpdatedAt) {
		archive = incoming
	}

	output := &PullAndMergeOutput{Pulled: len(remote)}
	for _, incoming := range remote {
		existing, exists := local[incoming.Key]
		if skip(incoming, exists, marker, archive) {
			output.Skipped++
			continue
		}

		merged, changed := merge(input.UserID, existing, incoming, exists)
		if !changed {
			output.Kept++
			continue
		}
		if err := uc.store.Put(ctx, namespace, merged); err != nil {
			return nil, domainerror.NewSyncError(
				domainerror.ErrCodeSyncInternalError,
				"failed to apply merged record",
				err,
			)
		}
		output.Applied++
	}

	profile, err := uc.engine.Refresh(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeSyncInternalError,
			"failed to refresh profile after merge",
			err,
		)
	}
	output.TotalPoints = profile.TotalPoints
	output.Streak = profile.Streak
	output.LongestStreak = profile.LongestStreak

	slog.Info("Sync bundle merged",
		"user_id", input.UserID,
		"pulled", output.Pulled,
		"applied", output.Applied,
		"kept", output.Kept,
		"skipped", output.Skipped,
	)
	return output, nil
}

func findRecord(records []adapter.Record, key string) adapter.Record {
	for _, record := range records {
		if record.Key == key {
			return record
		}
	}
	return adapter.Record{}
}

func resetMarkerOf(record adapter.Record) entity.ResetMarker {
	var marker entity.ResetMarker
	if len(record.Value) > 0 {
		_ = json.Unmarshal(record.Value, &marker)
	}
	return marker
}

func archiveOf(record adapter.Record) entity.PointsArchive {
	var archive entity.PointsArchive
	if len(record.Value) > 0 {
		_ = json.Unmarshal(record.Value, &archive)
	}
	return archive
}

// skip reports whether an incoming record must not reach the local store: it predates the
// latest reset, or it is a day log whose points already live in the archive.
func skip(incoming adapter.Record, exists bool, marker entity.ResetMarker, archive entity.PointsArchive) bool {
	if incoming.Key == entity.ResetMarkerKey {
		return false
	}
	if marker.Erases(incoming.UpdatedAt) {
		return true
	}
	if exists {
		return false
	}
	for _, prefix := range dayLogPrefixes {
		if date, ok := strings.CutPrefix(incoming.Key, prefix); ok {
			return archive.Covers(date)
		}
	}
	return false
}

// merge returns the record to store for key and whether it differs from the local one.
func merge(userID uuid.UUID, local, remote adapter.Record, exists bool) (adapter.Record, bool) {
	if !json.Valid(remote.Value) {
		return local, false
	}
	if !exists || !json.Valid(local.Value) {
		return remote, true
	}

	var merged adapter.Record
	switch {
	case remote.Key == profileKey:
		merged = mergeProfile(userID, local, remote)
	case strings.HasPrefix(remote.Key, rewardsPrefix):
		merged = mergeRewards(local, remote)
	case remote.Key == archiveKey:
		if !archiveOf(remote).Supersedes(archiveOf(local)) {
			return local, false
		}
		merged = remote
	default:
		if !remote.UpdatedAt.After(local.UpdatedAt) {
			return local, false
		}
		merged = remote
	}
	return merged, !bytes.Equal(merged.Value, local.Value)
}

// mergeProfile keeps the newer side's fields, the longest streak of either side and the earliest join date.
func mergeProfile(userID uuid.UUID, local, remote adapter.Record) adapter.Record {
	var mine, theirs entity.UserProfile
	if err := json.Unmarshal(local.Value, &mine); err != nil {
		return remote
	}
	if err := json.Unmarshal(remote.Value, &theirs); err != nil {
		return local
	}

	result, older, base := mine, theirs, local
	if remote.UpdatedAt.After(local.UpdatedAt) {
		result, older, base = theirs, mine, remote
	}
	result.ID = userID
	if older.LongestStreak > result.LongestStreak {
		result.LongestStreak = older.LongestStreak
	}
	if !older.JoinedAt.IsZero() && (result.JoinedAt.IsZero() || older.JoinedAt.Before(result.JoinedAt)) {
		result.JoinedAt = older.JoinedAt
	}
	result.Normalize()

	return encode(base, result)
}

// mergeRewards unions two reward sets. An identifier present on both sides keeps the local points.
func mergeRewards(local, remote adapter.Record) adapter.Record {
	var mine, theirs entity.RewardSet
	if err := json.Unmarshal(local.Value, &mine); err != nil {
		return remote
	}
	if err := json.Unmarshal(remote.Value, &theirs); err != nil {
		return local
	}
	if mine == nil {
		mine = entity.RewardSet{}
	}

	added := false
	for identifier, points := range theirs {
		if _, ok := mine[identifier]; !ok {
			mine[identifier] = points
			added = true
		}
	}
	if !added {
		return local
	}

	base := local
	if remote.UpdatedAt.After(base.UpdatedAt) {
		base.UpdatedAt = remote.UpdatedAt
	}
	return encode(base, mine)
}

func encode(base adapter.Record, value any) adapter.Record {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Failed to encode merged record", "key", base.Key, "error", err)
		return base
	}
	base.Value = payload
	return base
}
