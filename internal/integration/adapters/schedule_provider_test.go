package adapters

import (
	"context"
	"testing"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

const testScheduleYAML = `
version: 1
default:
  fajr: "05:00"
  dhuhr: "12:30"
  asr: "15:45"
  maghrib: "18:15"
  isha: "19:45"
cities:
  Cairo:
    times:
      fajr: "04:40"
      isha: "late evening"
    dates:
      "2024-03-10":
        maghrib: "17:59"
      "not-a-date":
        fajr: "01:00"
`

func TestScheduleFileProvider(t *testing.T) {
	ctx := context.Background()
	provider, err := NewScheduleProviderFromYAML([]byte(testScheduleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	t.Run("unknown city uses defaults", func(t *testing.T) {
		s, _ := provider.Schedule(ctx, adapter.ScheduleLocation{City: "Nowhere"}, "2024-03-10")
		if s[entity.PrayerFajr] != "05:00" {
			t.Errorf("expected default fajr, got %s", s[entity.PrayerFajr])
		}
	})

	t.Run("city and date layers override", func(t *testing.T) {
		s, _ := provider.Schedule(ctx, adapter.ScheduleLocation{City: " cairo "}, "2024-03-10")
		if s[entity.PrayerFajr] != "04:40" {
			t.Errorf("expected city fajr, got %s", s[entity.PrayerFajr])
		}
		if s[entity.PrayerMaghrib] != "17:59" {
			t.Errorf("expected date maghrib, got %s", s[entity.PrayerMaghrib])
		}
		if s[entity.PrayerIsha] != "19:45" {
			t.Errorf("expected unparsable city isha to fall back to default, got %s", s[entity.PrayerIsha])
		}
	})

	t.Run("date override applies only to its day", func(t *testing.T) {
		s, _ := provider.Schedule(ctx, adapter.ScheduleLocation{City: "Cairo"}, "2024-03-11")
		if s[entity.PrayerMaghrib] != "18:15" {
			t.Errorf("expected default maghrib, got %s", s[entity.PrayerMaghrib])
		}
	})
}

func TestNewScheduleFileProvider_Bundled(t *testing.T) {
	provider, err := NewScheduleFileProvider("")
	if err != nil {
		t.Fatalf("load bundled schedule: %v", err)
	}
	s, _ := provider.Schedule(context.Background(), adapter.ScheduleLocation{City: "London"}, "2024-03-10")
	for _, name := range entity.Prayers {
		if s[name] == "" {
			t.Errorf("expected bundled time for %s", name)
		}
	}
}
