package points_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ibadah-tracker/backend/internal/application/usecase/points"
	"github.com/ibadah-tracker/backend/internal/application/usecase/testkit"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

func TestAwardPointsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("awards once per identifier", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Bilal", "")
		uc := points.NewAwardPointsUseCase(kit.Engine, kit.Locker, kit.Events, points.DefaultMaxRewardPoints)

		input := points.AwardPointsInput{UserID: userID, Kind: entity.RewardSeerahChapter, Identifier: "chapter-3"}
		first, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("award: %v", err)
		}
		if !first.Awarded || first.Points != 10 || first.TotalPoints != 10 {
			t.Fatalf("unexpected first award: %+v", first)
		}

		second, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("award: %v", err)
		}
		if second.Awarded || second.Points != 0 || second.TotalPoints != 10 {
			t.Errorf("expected duplicate to be a no-op, got %+v", second)
		}
		if got := kit.Events.Count(entity.EventRewardGranted); got != 1 {
			t.Errorf("expected 1 reward event, got %d", got)
		}
	})

	t.Run("explicit points override the table", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Bilal", "")
		uc := points.NewAwardPointsUseCase(kit.Engine, kit.Locker, kit.Events, points.DefaultMaxRewardPoints)
		custom := 25

		out, err := uc.Execute(ctx, points.AwardPointsInput{UserID: userID, Kind: entity.RewardIbadahTimer, Identifier: "session-1", Points: &custom})
		if err != nil {
			t.Fatalf("award: %v", err)
		}
		if out.TotalPoints != 25 {
			t.Errorf("expected 25, got %d", out.TotalPoints)
		}
	})

	t.Run("analytics failure does not fail the award", func(t *testing.T) {
		kit := testkit.New(t)
		kit.Events.Err = errors.New("broker down")
		userID := kit.SeedProfile(t, "Bilal", "")
		uc := points.NewAwardPointsUseCase(kit.Engine, kit.Locker, kit.Events, points.DefaultMaxRewardPoints)

		out, err := uc.Execute(ctx, points.AwardPointsInput{UserID: userID, Kind: entity.RewardHadithRead, Identifier: "muslim:1"})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if !out.Awarded {
			t.Error("expected reward to be granted")
		}
	})

	t.Run("validation", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Bilal", "")
		uc := points.NewAwardPointsUseCase(kit.Engine, kit.Locker, kit.Events, points.DefaultMaxRewardPoints)
		negative := -1
		huge := math.MaxInt

		tests := []struct {
			name  string
			input points.AwardPointsInput
			code  domainerror.RewardErrorCode
		}{
			{"unknown kind", points.AwardPointsInput{UserID: userID, Kind: "tahajjud", Identifier: "x"}, domainerror.ErrCodeInvalidRewardKind},
			{"blank identifier", points.AwardPointsInput{UserID: userID, Kind: entity.RewardSurahRead, Identifier: "  "}, domainerror.ErrCodeMissingRewardIdentifier},
			{"negative points", points.AwardPointsInput{UserID: userID, Kind: entity.RewardSurahRead, Identifier: "1", Points: &negative}, domainerror.ErrCodeInvalidRewardPoints},
			{"points above the maximum", points.AwardPointsInput{UserID: userID, Kind: entity.RewardIbadahTimer, Identifier: "2", Points: &huge}, domainerror.ErrCodeInvalidRewardPoints},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)
				var rewardErr *domainerror.RewardError
				if !errors.As(err, &rewardErr) {
					t.Fatalf("expected RewardError, got %v", err)
				}
				if rewardErr.Code != tt.code {
					t.Errorf("expected code %s, got %s", tt.code, rewardErr.Code)
				}
			})
		}
		if got := kit.Profile(t, userID).TotalPoints; got != 0 {
			t.Errorf("expected rejected awards to leave the total at 0, got %d", got)
		}
	})

	t.Run("configured maximum is inclusive", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Bilal", "")
		uc := points.NewAwardPointsUseCase(kit.Engine, kit.Locker, kit.Events, 40)
		limit, over := 40, 41

		out, err := uc.Execute(ctx, points.AwardPointsInput{UserID: userID, Kind: entity.RewardIbadahTimer, Identifier: "a", Points: &limit})
		if err != nil || out.TotalPoints != 40 {
			t.Fatalf("expected 40 awarded, got %+v, %v", out, err)
		}
		_, err = uc.Execute(ctx, points.AwardPointsInput{UserID: userID, Kind: entity.RewardIbadahTimer, Identifier: "b", Points: &over})
		var rewardErr *domainerror.RewardError
		if !errors.As(err, &rewardErr) || rewardErr.Code != domainerror.ErrCodeInvalidRewardPoints {
			t.Errorf("expected %s, got %v", domainerror.ErrCodeInvalidRewardPoints, err)
		}
	})
}

func TestRecalculatePointsUseCase_RepairsDrift(t *testing.T) {
	ctx := context.Background()
	kit := testkit.New(t)
	userID := kit.SeedProfile(t, "Bilal", "")
	kit.SeedPrayers(t, userID, "2024-03-09", entity.PrayerStatusLate)

	profile := kit.Profile(t, userID)
	profile.TotalPoints = 999
	if err := kit.Profiles.Save(ctx, profile); err != nil {
		t.Fatalf("save: %v", err)
	}

	uc := points.NewRecalculatePointsUseCase(kit.Engine, kit.Locker)
	out, err := uc.Execute(ctx, points.RecalculatePointsInput{UserID: userID})
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if out.TotalPoints != 25 {
		t.Errorf("expected 25, got %d", out.TotalPoints)
	}
	if out.Level.Current.Name != "Seeker" {
		t.Errorf("expected Seeker, got %s", out.Level.Current.Name)
	}
	if kit.Profile(t, userID).TotalPoints != 25 {
		t.Error("expected recomputed total to be stored")
	}

	again, err := uc.Execute(ctx, points.RecalculatePointsInput{UserID: userID})
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if again.TotalPoints != out.TotalPoints {
		t.Errorf("expected a second recalculation to agree, got %d and %d", out.TotalPoints, again.TotalPoints)
	}
}

func TestGetPointsUseCase(t *testing.T) {
	ctx := context.Background()
	kit := testkit.New(t)
	userID := kit.SeedProfile(t, "Bilal", "")
	kit.SeedPrayers(t, userID, "2024-03-09", entity.PrayerStatusOnTime)
	if _, err := kit.Engine.Refresh(ctx, userID); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	out, err := points.NewGetPointsUseCase(kit.Engine).Execute(ctx, points.GetPointsInput{UserID: userID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.TotalPoints != 50 || out.Breakdown.Prayers != 50 {
		t.Errorf("expected 50 from prayers, got %+v", out)
	}
	if out.Level.PointsToNext != 50 {
		t.Errorf("expected 50 points to Beginner, got %d", out.Level.PointsToNext)
	}
}
