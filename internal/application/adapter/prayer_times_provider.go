package adapter

import (
	"context"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// ScheduleLocation identifies where prayer times are requested for.
type ScheduleLocation struct {
	City      string
	Latitude  float64
	Longitude float64
}

// PrayerTimesProvider returns the scheduled local "HH:MM" time of each prayer on a given day.
// Prayers absent from the returned schedule have no known time.
type PrayerTimesProvider interface {
	Schedule(ctx context.Context, location ScheduleLocation, date string) (entity.PrayerSchedule, error)
}
