package stats

import (
	"strings"

	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// parseRange validates the bounds of a requested range and clamps it to MaxRangeDays.
func parseRange(start, end string) (valueobject.DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" {
		return valueobject.DateRange{}, domainerror.NewStatsError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end == "" {
		return valueobject.DateRange{}, domainerror.NewStatsError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if err := validateDate(start); err != nil {
		return valueobject.DateRange{}, err
	}
	if err := validateDate(end); err != nil {
		return valueobject.DateRange{}, err
	}

	r, ok := valueobject.NewDateRange(start, end)
	if !ok {
		return valueobject.DateRange{}, domainerror.NewStatsError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return r, nil
}

func validateDate(date string) error {
	if !valueobject.IsDateKey(date) {
		return domainerror.NewStatsError(
			domainerror.ErrCodeInvalidDateFormat,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return nil
}
