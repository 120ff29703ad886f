package times

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey(time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-12", MonthKey(time.Date(2024, 1, 1, 2, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		delta   int
		want    string
		wantErr bool
	}{
		{name: "forward", key: "2024-01", delta: 1, want: "2024-02"},
		{name: "backward across year", key: "2024-01", delta: -1, want: "2023-12"},
		{name: "no-op", key: "2024-06", delta: 0, want: "2024-06"},
		{name: "invalid key", key: "2024/01", delta: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddMonths(tt.key, tt.delta)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, DaysBetween(a, a.AddDate(0, 0, 30)))
	assert.Equal(t, 1, DaysBetween(a, a.Add(3*time.Hour)))
	assert.Equal(t, 30, DaysBetween(a.AddDate(0, 0, 30), a))
	assert.Equal(t, 0, DaysBetween(a, a))
}
