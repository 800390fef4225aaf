package valueobject

import "time"

// MaxRangeDays bounds every day walk so that corrupted or hostile ranges still terminate.
const MaxRangeDays = 366

// DateRange is an inclusive range of calendar-day keys.
type DateRange struct {
	Start string
	End   string
}

// NewDateRange builds a range, clamping it to the most recent MaxRangeDays days.
// The second result is false when either key is malformed or end is before start.
func NewDateRange(start, end string) (DateRange, bool) {
	days, ok := DaysBetween(start, end)
	if !ok || days < 0 {
		return DateRange{}, false
	}
	if days >= MaxRangeDays {
		start = AddDays(end, -(MaxRangeDays - 1))
	}
	return DateRange{Start: start, End: end}, true
}

// Days lists every date key in the range, oldest first.
func (r DateRange) Days() []string {
	n, ok := DaysBetween(r.Start, r.End)
	if !ok || n < 0 {
		return nil
	}
	if n >= MaxRangeDays {
		n = MaxRangeDays - 1
	}
	days := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		days = append(days, AddDays(r.Start, i))
	}
	return days
}

// Len returns the number of days in the range.
func (r DateRange) Len() int {
	return len(r.Days())
}

// Contains reports whether key lies inside the range.
func (r DateRange) Contains(key string) bool {
	return key >= r.Start && key <= r.End
}

// WeekRange returns the Monday-to-Sunday week containing the given day.
func WeekRange(day time.Time) DateRange {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	start := time.Date(day.Year(), day.Month(), day.Day()-(weekday-1), 0, 0, 0, 0, day.Location())
	return DateRange{Start: DateKey(start), End: DateKey(start.AddDate(0, 0, 6))}
}

// MonthRange returns the full calendar month.
func MonthRange(year int, month time.Month, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return DateRange{Start: DateKey(start), End: DateKey(start.AddDate(0, 1, -1))}
}
