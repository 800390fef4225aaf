package habit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ibadah-tracker/backend/internal/application/usecase/habit"
	"github.com/ibadah-tracker/backend/internal/application/usecase/testkit"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

func TestToggleHabitUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle adds and removes points", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Khadija", "")
		uc := habit.NewToggleHabitUseCase(kit.Habits, kit.Engine, kit.Locker, kit.Events)
		input := habit.ToggleHabitInput{UserID: userID, Date: testkit.Today, Habit: entity.HabitSadaqah}

		out, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if !out.Done || out.TotalPoints != 3 {
			t.Fatalf("expected done worth 3, got %v/%d", out.Done, out.TotalPoints)
		}

		out, err = uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if out.Done || out.TotalPoints != 0 {
			t.Errorf("expected undone worth 0, got %v/%d", out.Done, out.TotalPoints)
		}
		if kit.Events.Count(entity.EventHabitToggled) != 2 {
			t.Errorf("expected 2 events, got %d", kit.Events.Count(entity.EventHabitToggled))
		}
	})

	t.Run("habit names are case insensitive", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Khadija", "")
		uc := habit.NewToggleHabitUseCase(kit.Habits, kit.Engine, kit.Locker, kit.Events)

		out, err := uc.Execute(ctx, habit.ToggleHabitInput{UserID: userID, Date: testkit.Today, Habit: " Morning_Adhkar "})
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if !out.Log.MorningAdhkar {
			t.Error("expected morning adhkar to be checked")
		}
	})

	t.Run("future day is locked", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Khadija", "")
		uc := habit.NewToggleHabitUseCase(kit.Habits, kit.Engine, kit.Locker, kit.Events)

		out, err := uc.Execute(ctx, habit.ToggleHabitInput{UserID: userID, Date: "2024-03-11", Habit: entity.HabitFasting})
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if !out.Locked || out.Done {
			t.Errorf("expected locked and unchanged, got %+v", out)
		}
		if len(kit.Habits.List(ctx, userID)) != 0 {
			t.Error("expected no habit log to be written")
		}
	})

	t.Run("validation", func(t *testing.T) {
		kit := testkit.New(t)
		userID := kit.SeedProfile(t, "Khadija", "")
		uc := habit.NewToggleHabitUseCase(kit.Habits, kit.Engine, kit.Locker, kit.Events)

		tests := []struct {
			name  string
			input habit.ToggleHabitInput
			code  domainerror.HabitErrorCode
		}{
			{"bad date", habit.ToggleHabitInput{UserID: userID, Date: "2024-02-30", Habit: entity.HabitDua}, domainerror.ErrCodeInvalidHabitDate},
			{"leading space", habit.ToggleHabitInput{UserID: userID, Date: " 2024-03-09", Habit: entity.HabitDua}, domainerror.ErrCodeInvalidHabitDate},
			{"trailing space", habit.ToggleHabitInput{UserID: userID, Date: "2024-03-09 ", Habit: entity.HabitDua}, domainerror.ErrCodeInvalidHabitDate},
			{"padded future day", habit.ToggleHabitInput{UserID: userID, Date: " 2099-01-01", Habit: entity.HabitDua}, domainerror.ErrCodeInvalidHabitDate},
			{"bad habit", habit.ToggleHabitInput{UserID: userID, Date: testkit.Today, Habit: "jogging"}, domainerror.ErrCodeInvalidHabit},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)
				var habitErr *domainerror.HabitError
				if !errors.As(err, &habitErr) {
					t.Fatalf("expected HabitError, got %v", err)
				}
				if habitErr.Code != tt.code {
					t.Errorf("expected code %s, got %s", tt.code, habitErr.Code)
				}
			})
		}
	})
}

func TestGetHabitDayUseCase(t *testing.T) {
	ctx := context.Background()
	kit := testkit.New(t)
	userID := kit.SeedProfile(t, "Khadija", "")

	log := entity.NewHabitLog(testkit.Today)
	log.Set(entity.HabitQuran, true)
	log.Set(entity.HabitDua, true)
	if err := kit.Habits.Save(ctx, userID, log); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := habit.NewGetHabitDayUseCase(kit.Habits).Execute(ctx, habit.GetHabitDayInput{UserID: userID, Date: testkit.Today})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Completed != 2 || out.Total != 6 || out.Points != 6 {
		t.Errorf("unexpected summary: %+v", out)
	}
}
