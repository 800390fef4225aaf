package entity

import "testing"

func TestLevels_TableIsOrdered(t *testing.T) {
	if Levels[0].MinPoints != 0 {
		t.Fatalf("expected first level to start at 0, got %d", Levels[0].MinPoints)
	}
	for i := 1; i < len(Levels); i++ {
		if Levels[i].MinPoints <= Levels[i-1].MinPoints {
			t.Errorf("level %s does not increase over %s", Levels[i].Name, Levels[i-1].Name)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		expected string
	}{
		{"zero points", 0, "Seeker"},
		{"just below threshold", 99, "Seeker"},
		{"exactly on threshold", 100, "Beginner"},
		{"exactly on third threshold", 300, "Devoted"},
		{"between thresholds", 1499, "Steadfast"},
		{"top of ladder", 25000, "Muhsin"},
		{"negative clamps to first", -5, "Seeker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentLevel(tt.points); got.Name != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got.Name)
			}
		})
	}
}

func TestProgressFor(t *testing.T) {
	t.Run("halfway to next level", func(t *testing.T) {
		p := ProgressFor(200)
		if p.Current.Name != "Beginner" {
			t.Errorf("expected Beginner, got %s", p.Current.Name)
		}
		if p.Next == nil || p.Next.Name != "Devoted" {
			t.Fatalf("expected next level Devoted, got %+v", p.Next)
		}
		if p.PointsToNext != 100 {
			t.Errorf("expected 100 points to next, got %d", p.PointsToNext)
		}
		if p.PercentToNext != 50 {
			t.Errorf("expected 50%%, got %d", p.PercentToNext)
		}
	})

	t.Run("top level has no next", func(t *testing.T) {
		p := ProgressFor(10000)
		if p.Next != nil {
			t.Errorf("expected no next level, got %+v", p.Next)
		}
		if p.PercentToNext != 100 {
			t.Errorf("expected 100%%, got %d", p.PercentToNext)
		}
	})
}
