package times

import (
	"fmt"
	"math"
	"time"
)

const (
	YearMonthDayLayout = "2006-01-02"
	YearMonthLayout    = "2006-01"
)

const DayDuration = 24 * time.Hour

// MonthKey returns the YYYY-MM ledger key for the given time in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(YearMonthLayout)
}

// DayKey returns the YYYY-MM-DD key for the given time in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format(YearMonthDayLayout)
}

// AddMonths shifts a YYYY-MM key by delta months. Month navigation in both
// directions goes through this.
func AddMonths(key string, delta int) (string, error) {
	t, err := time.Parse(YearMonthLayout, key)
	if err != nil {
		return "", fmt.Errorf("invalid month key %q: %w", key, err)
	}

	return t.AddDate(0, delta, 0).Format(YearMonthLayout), nil
}

// ParseDay parses a YYYY-MM-DD key into a UTC time.
func ParseDay(key string) (time.Time, error) {
	t, err := time.Parse(YearMonthDayLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}

	return t, nil
}

// DaysBetween returns the number of whole days from a to b, rounded up.
// Used for usage-rate prompts where a partial day counts as one.
func DaysBetween(a, b time.Time) int {
	if b.Before(a) {
		a, b = b, a
	}

	return int(math.Ceil(b.Sub(a).Hours() / 24))
}
