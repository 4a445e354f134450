package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDelayDays(t *testing.T) {
	tests := []struct {
		name     string
		due      *time.Time
		receipt  *time.Time
		pending  bool
		want     int
		wantOK   bool
	}{
		{
			name:    "late by 69 days",
			due:     date(2025, time.April, 20),
			receipt: date(2025, time.June, 28),
			want:    69,
			wantOK:  true,
		},
		{
			name:    "same day is zero",
			due:     date(2025, time.April, 20),
			receipt: date(2025, time.April, 20),
			want:    0,
			wantOK:  true,
		},
		{
			name:    "early is negative",
			due:     date(2025, time.April, 20),
			receipt: date(2025, time.April, 15),
			want:    -5,
			wantOK:  true,
		},
		{name: "missing due date", receipt: date(2025, time.June, 28)},
		{name: "missing receipt date", due: date(2025, time.April, 20)},
		{
			name:    "pending receipt",
			due:     date(2025, time.April, 20),
			receipt: date(2025, time.June, 28),
			pending: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DelayDays(tt.due, tt.receipt, tt.pending)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRejectionRate(t *testing.T) {
	assert.Equal(t, 0.0, RejectionRate(0, 10))
	assert.Equal(t, 0.0, RejectionRate(-1, 10))
	assert.Equal(t, 0.0, RejectionRate(600, 0))
	assert.InDelta(t, 5.0, RejectionRate(200, 10), 1e-9)
	// Inconsistent data (rejected > received) is not validated away.
	assert.InDelta(t, 150.0, RejectionRate(100, 150), 1e-9)
}
