package wellness

import (
	"fmt"
	"time"
)

// ParseClock parses an "HH:MM" clock string into fractional hours since
// midnight. Values outside a single day fail with ErrInvalidTimeRange.
func ParseClock(s string) (float64, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid HH:MM clock time", ErrInvalidTimeRange, s)
	}
	return float64(t.Hour()) + float64(t.Minute())/60, nil
}

// clockOnDate anchors an "HH:MM" clock string onto the given date in loc.
func clockOnDate(s string, date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid HH:MM clock time", ErrInvalidTimeRange, s)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
