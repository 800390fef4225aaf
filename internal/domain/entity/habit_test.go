package entity

import "testing"

func TestHabitLog_Toggle(t *testing.T) {
	log := NewHabitLog("2024-03-10")

	if !log.Toggle(HabitQuran) {
		t.Fatal("expected first toggle to check the habit")
	}
	if log.Toggle(HabitQuran) {
		t.Fatal("expected second toggle to uncheck the habit")
	}
	if log.Done(HabitQuran) {
		t.Error("expected quran to be unchecked")
	}
}

func TestHabitLog_Points(t *testing.T) {
	log := NewHabitLog("2024-03-10")
	log.Set(HabitDua, true)
	log.Set(HabitFasting, true)
	log.Set(HabitName("unknown"), true)

	if got := log.CompletedCount(); got != 2 {
		t.Errorf("expected 2 completed, got %d", got)
	}
	if got := log.Points(); got != 2*PointsTable[ActionHabit] {
		t.Errorf("expected %d points, got %d", 2*PointsTable[ActionHabit], got)
	}
}

func TestRewardKind_DefaultPoints(t *testing.T) {
	tests := map[RewardKind]int{
		RewardHadithRead:    2,
		RewardSurahRead:     5,
		RewardSeerahChapter: 10,
		RewardZakatLogged:   15,
		RewardIbadahTimer:   5,
	}
	for kind, expected := range tests {
		t.Run(string(kind), func(t *testing.T) {
			if got := kind.DefaultPoints(); got != expected {
				t.Errorf("expected %d, got %d", expected, got)
			}
		})
	}
}

func TestUserProfile_ApplyStreak(t *testing.T) {
	p := &UserProfile{LongestStreak: 3}

	p.ApplyStreak(5)
	if p.Streak != 5 || p.LongestStreak != 5 {
		t.Errorf("expected 5/5, got %d/%d", p.Streak, p.LongestStreak)
	}

	p.ApplyStreak(0)
	if p.Streak != 0 || p.LongestStreak != 5 {
		t.Errorf("expected 0/5, got %d/%d", p.Streak, p.LongestStreak)
	}
}
