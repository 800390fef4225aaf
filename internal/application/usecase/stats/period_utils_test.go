package stats

import (
	"testing"
	"time"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

func TestGeneratePeriodLabel(t *testing.T) {
	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		granularity Granularity
		expected    string
	}{
		{GranularityWeekly, "W12 2024"},
		{GranularityMonthly, "Mar 2024"},
		{GranularityDaily, "2024-03-20"},
	}
	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			if got := GeneratePeriodLabel(date, tt.granularity); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestGeneratePeriodSeries(t *testing.T) {
	r := valueobject.DateRange{Start: "2024-02-28", End: "2024-03-12"}

	t.Run("weekly buckets start on monday and are clipped", func(t *testing.T) {
		periods := GeneratePeriodSeries(r, GranularityWeekly)
		if len(periods) != 3 {
			t.Fatalf("expected 3 weeks, got %d", len(periods))
		}
		if periods[0].Range.Start != "2024-02-28" || periods[0].Range.End != "2024-03-03" {
			t.Errorf("unexpected first week %+v", periods[0].Range)
		}
		if periods[1].Range.Start != "2024-03-04" {
			t.Errorf("expected second week to start on monday, got %s", periods[1].Range.Start)
		}
		if periods[2].Range.End != "2024-03-12" {
			t.Errorf("expected last week clipped to range end, got %s", periods[2].Range.End)
		}
	})

	t.Run("monthly buckets", func(t *testing.T) {
		periods := GeneratePeriodSeries(r, GranularityMonthly)
		if len(periods) != 2 {
			t.Fatalf("expected 2 months, got %d", len(periods))
		}
		if periods[0].Label != "Feb 2024" || periods[0].Range.End != "2024-02-29" {
			t.Errorf("unexpected first month %+v", periods[0])
		}
	})

	t.Run("daily buckets cover every day", func(t *testing.T) {
		if got := len(GeneratePeriodSeries(r, GranularityDaily)); got != 14 {
			t.Errorf("expected 14 days, got %d", got)
		}
	})
}

func TestIntensity(t *testing.T) {
	build := func(statuses ...entity.PrayerStatus) *entity.PrayerLog {
		log := entity.NewPrayerLog("2024-03-10")
		for i, status := range statuses {
			log.SetEntry(entity.Prayers[i], entity.PrayerEntry{Status: status})
		}
		return log
	}
	on, late, missed := entity.PrayerStatusOnTime, entity.PrayerStatusLate, entity.PrayerStatusMissed

	tests := []struct {
		name     string
		log      *entity.PrayerLog
		expected int
	}{
		{"nothing", build(), 0},
		{"only missed", build(missed, missed), 0},
		{"two prayed", build(on, late), 1},
		{"three prayed", build(on, late, late), 2},
		{"four prayed", build(on, on, on, on, missed), 2},
		{"all prayed", build(on, on, on, on, late), 3},
		{"all on time", build(on, on, on, on, on), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intensity(tt.log); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
