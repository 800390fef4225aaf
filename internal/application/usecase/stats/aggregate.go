package stats

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// DayStats is the aggregate of one calendar day.
type DayStats struct {
	Date            string `json:"date"`
	Points          int    `json:"points"`
	PrayerPoints    int    `json:"prayer_points"`
	HabitPoints     int    `json:"habit_points"`
	Prayed          int    `json:"prayed"`
	OnTime          int    `json:"ontime"`
	Late            int    `json:"late"`
	Missed          int    `json:"missed"`
	HabitsCompleted int    `json:"habits_completed"`
	Complete        bool   `json:"complete"`
	Intensity       int    `json:"intensity"`
}

// PrayerTotals counts the logged statuses of one prayer across a range.
// Total is the number of days on which the prayer was logged with any status other than none.
type PrayerTotals struct {
	OnTime int `json:"ontime"`
	Late   int `json:"late"`
	Missed int `json:"missed"`
	Total  int `json:"total"`
}

// PeriodStats is the aggregate of one bucket of a period series.
type PeriodStats struct {
	Label        string `json:"label"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Points       int    `json:"points"`
	Prayed       int    `json:"prayed"`
	CompleteDays int    `json:"complete_days"`
}

// RangeStats is the aggregate of an inclusive range of days.
type RangeStats struct {
	StartDate      string                             `json:"start_date"`
	EndDate        string                             `json:"end_date"`
	Days           []DayStats                         `json:"days"`
	Prayers        map[entity.PrayerName]PrayerTotals `json:"prayers"`
	Habits         map[entity.HabitName]int           `json:"habits"`
	TotalPoints    int                                `json:"total_points"`
	CompleteDays   int                                `json:"complete_days"`
	CompletionRate float64                            `json:"completion_rate"`
	Periods        []PeriodStats                      `json:"periods,omitempty"`
}

// Intensity buckets a day for heatmap rendering:
// 0 nothing prayed, 1 one or two, 2 three or four, 3 all five, 4 all five on time.
func Intensity(log *entity.PrayerLog) int {
	prayed := log.CountStatus(entity.PrayerStatusOnTime) + log.CountStatus(entity.PrayerStatusLate)
	switch {
	case log.CountStatus(entity.PrayerStatusOnTime) == len(entity.Prayers):
		return 4
	case prayed == len(entity.Prayers):
		return 3
	case prayed >= 3:
		return 2
	case prayed >= 1:
		return 1
	default:
		return 0
	}
}

// summarizeDay derives a day's aggregate from its logs.
func summarizeDay(date string, prayers *entity.PrayerLog, habits *entity.HabitLog) DayStats {
	onTime := prayers.CountStatus(entity.PrayerStatusOnTime)
	late := prayers.CountStatus(entity.PrayerStatusLate)
	day := DayStats{
		Date:            date,
		PrayerPoints:    prayers.Points(),
		HabitPoints:     habits.Points(),
		Prayed:          onTime + late,
		OnTime:          onTime,
		Late:            late,
		Missed:          prayers.CountStatus(entity.PrayerStatusMissed),
		HabitsCompleted: habits.CompletedCount(),
		Complete:        prayers.IsComplete(),
		Intensity:       Intensity(prayers),
	}
	day.Points = day.PrayerPoints + day.HabitPoints
	return day
}

// aggregator reads raw logs on every call; nothing derived is cached.
type aggregator struct {
	prayerRepo adapter.PrayerLogRepository
	habitRepo  adapter.HabitLogRepository
}

// day aggregates a single date.
func (a aggregator) day(ctx context.Context, userID uuid.UUID, date string) DayStats {
	return summarizeDay(date, a.prayerRepo.Get(ctx, userID, date), a.habitRepo.Get(ctx, userID, date))
}

// load reads the prayer and habit logs of r, keyed by date.
func (a aggregator) load(ctx context.Context, userID uuid.UUID, r valueobject.DateRange) (map[string]*entity.PrayerLog, map[string]*entity.HabitLog) {
	prayers := make(map[string]*entity.PrayerLog)
	for _, log := range a.prayerRepo.List(ctx, userID) {
		if r.Contains(log.Date) {
			prayers[log.Date] = log
		}
	}
	habits := make(map[string]*entity.HabitLog)
	for _, log := range a.habitRepo.List(ctx, userID) {
		if r.Contains(log.Date) {
			habits[log.Date] = log
		}
	}
	return prayers, habits
}

// days aggregates every date of r, filling untouched days with defaults.
func days(r valueobject.DateRange, prayers map[string]*entity.PrayerLog, habits map[string]*entity.HabitLog) []DayStats {
	dates := r.Days()
	out := make([]DayStats, 0, len(dates))
	for _, date := range dates {
		p, ok := prayers[date]
		if !ok {
			p = entity.NewPrayerLog(date)
		}
		h, ok := habits[date]
		if !ok {
			h = entity.NewHabitLog(date)
		}
		out = append(out, summarizeDay(date, p, h))
	}
	return out
}

// rangeStats aggregates r and, for a non-empty granularity, buckets it into periods.
func (a aggregator) rangeStats(ctx context.Context, userID uuid.UUID, r valueobject.DateRange, granularity Granularity) *RangeStats {
	prayerLogs, habitLogs := a.load(ctx, userID, r)

	stats := &RangeStats{
		StartDate: r.Start,
		EndDate:   r.End,
		Days:      days(r, prayerLogs, habitLogs),
		Prayers:   make(map[entity.PrayerName]PrayerTotals, len(entity.Prayers)),
		Habits:    make(map[entity.HabitName]int, len(entity.Habits)),
	}
	for _, name := range entity.Prayers {
		stats.Prayers[name] = PrayerTotals{}
	}
	for _, name := range entity.Habits {
		stats.Habits[name] = 0
	}

	for _, log := range prayerLogs {
		for _, name := range entity.Prayers {
			totals := stats.Prayers[name]
			switch log.Entry(name).Status {
			case entity.PrayerStatusOnTime:
				totals.OnTime++
			case entity.PrayerStatusLate:
				totals.Late++
			case entity.PrayerStatusMissed:
				totals.Missed++
			default:
				continue
			}
			totals.Total++
			stats.Prayers[name] = totals
		}
	}
	for _, log := range habitLogs {
		for _, name := range entity.Habits {
			if log.Done(name) {
				stats.Habits[name]++
			}
		}
	}

	prayed := 0
	for _, day := range stats.Days {
		stats.TotalPoints += day.Points
		prayed += day.Prayed
		if day.Complete {
			stats.CompleteDays++
		}
	}
	if n := len(stats.Days); n > 0 {
		rate := float64(prayed) * 100 / float64(n*len(entity.Prayers))
		stats.CompletionRate = math.Round(rate*10) / 10
	}

	if granularity != "" {
		stats.Periods = bucket(stats.Days, GeneratePeriodSeries(r, granularity))
	}
	return stats
}

// bucket sums day rows into their periods.
func bucket(days []DayStats, periods []PeriodInfo) []PeriodStats {
	out := make([]PeriodStats, 0, len(periods))
	for _, period := range periods {
		ps := PeriodStats{
			Label:     period.Label,
			StartDate: period.Range.Start,
			EndDate:   period.Range.End,
		}
		for _, day := range days {
			if !period.Range.Contains(day.Date) {
				continue
			}
			ps.Points += day.Points
			ps.Prayed += day.Prayed
			if day.Complete {
				ps.CompleteDays++
			}
		}
		out = append(out, ps)
	}
	return out
}
