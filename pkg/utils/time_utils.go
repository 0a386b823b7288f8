package utils

import (
	"fmt"
	"time"
)

// TripDateLayout is the calendar date format stored on every trip day.
const TripDateLayout = "2006-01-02"

func ParseTripDate(s string) (time.Time, error) {
	t, err := time.Parse(TripDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return t, nil
}

// NextTripDate returns the calendar day after prev. An empty or malformed
// prev yields "" so callers can leave the date unset.
func NextTripDate(prev string) string {
	t, err := time.Parse(TripDateLayout, prev)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(TripDateLayout)
}

// TripDates lists days consecutive dates starting at start.
func TripDates(start time.Time, days int) []string {
	out := make([]string, 0, max(days, 0))
	for i := range days {
		out = append(out, start.AddDate(0, 0, i).Format(TripDateLayout))
	}
	return out
}

// FormatRFC3339 renders t in UTC, or "" for the zero time.
func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns the zero time for t <= 0.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0)
}
