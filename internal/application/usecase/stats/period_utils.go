// Package stats contains aggregation use cases over prayer and habit logs.
package stats

import (
	"fmt"
	"time"

	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// Granularity represents the bucket size of a period series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// IsValid reports whether g is a known granularity.
func (g Granularity) IsValid() bool {
	return g == GranularityDaily || g == GranularityWeekly || g == GranularityMonthly
}

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// GeneratePeriodLabel generates a human-readable label for a period based on granularity.
// Formats:
// - Weekly: "W{iso_week} {year}" (e.g., "W12 2024")
// - Monthly: "{month_abbr} {year}" (e.g., "Mar 2024")
// - Daily: the date key
func GeneratePeriodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("W%d %d", week, year)
	case GranularityMonthly:
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	default:
		return valueobject.DateKey(date)
	}
}

// PeriodInfo holds information about a single period.
type PeriodInfo struct {
	Label string
	Range valueobject.DateRange
}

// GeneratePeriodSeries generates every period overlapping [r.Start, r.End], clipped to the range.
// This ensures continuous data for chart rendering with no gaps.
func GeneratePeriodSeries(r valueobject.DateRange, granularity Granularity) []PeriodInfo {
	start, ok := valueobject.ParseDateKey(r.Start, time.UTC)
	if !ok {
		return nil
	}
	end, ok := valueobject.ParseDateKey(r.End, time.UTC)
	if !ok {
		return nil
	}

	var periods []PeriodInfo
	clip := func(from, to time.Time) valueobject.DateRange {
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		return valueobject.DateRange{Start: valueobject.DateKey(from), End: valueobject.DateKey(to)}
	}

	switch granularity {
	case GranularityWeekly:
		// Start from the Monday of the week containing start
		current := getWeekStartDate(start)
		for !current.After(end) {
			periods = append(periods, PeriodInfo{
				Label: GeneratePeriodLabel(current, GranularityWeekly),
				Range: clip(current, current.AddDate(0, 0, 6)),
			})
			current = current.AddDate(0, 0, 7)
		}

	case GranularityMonthly:
		// Start from the first of the month containing start
		current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		for !current.After(end) {
			periods = append(periods, PeriodInfo{
				Label: GeneratePeriodLabel(current, GranularityMonthly),
				Range: clip(current, current.AddDate(0, 1, -1)),
			})
			current = current.AddDate(0, 1, 0)
		}

	default:
		for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
			periods = append(periods, PeriodInfo{
				Label: GeneratePeriodLabel(current, GranularityDaily),
				Range: clip(current, current),
			})
		}
	}

	return periods
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}
