package period

import (
	"regexp"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venperf/backend-go/internal/domain"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		pt   Type
		want string
	}{
		{name: "month zero-padded", date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), pt: Month, want: "2025-03"},
		{name: "december", date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), pt: Month, want: "2025-12"},
		{name: "q1 boundary", date: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), pt: Quarter, want: "2025-Q1"},
		{name: "q2 start", date: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), pt: Quarter, want: "2025-Q2"},
		{name: "q4", date: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), pt: Quarter, want: "2025-Q4"},
		{name: "first half", date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), pt: HalfYear, want: "2025-H1"},
		{name: "second half", date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), pt: HalfYear, want: "2025-H2"},
		{name: "year", date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), pt: Year, want: "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.date, tt.pt))
		})
	}
}

func TestGroupByPeriodQuarterMerge(t *testing.T) {
	records := []domain.PORecord{
		{PODate: date(2025, 1, 15), OrderedQty: 10, OrderValue: 100, UnitRate: 10},
		{PODate: date(2025, 2, 10), OrderedQty: 20, OrderValue: 300, UnitRate: 15},
	}

	buckets := GroupByPeriod(records, Quarter)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2025-Q1", buckets[0].Key)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 30.0, buckets[0].TotalQty)
	assert.Equal(t, 400.0, buckets[0].TotalValue)
	assert.Equal(t, 12.5, buckets[0].AvgRate())
}

func TestGroupByPeriodSkipsUndatedRecords(t *testing.T) {
	records := []domain.PORecord{
		{PODate: nil, OrderedQty: 99},
		{PODate: date(2025, 5, 1), OrderedQty: 1},
	}

	buckets := GroupByPeriod(records, Month)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2025-05", buckets[0].Key)
	assert.Equal(t, 1, buckets[0].Count)
}

func TestGroupByPeriodMonthKeysAscending(t *testing.T) {
	records := []domain.PORecord{
		{PODate: date(2025, 11, 1)},
		{PODate: date(2024, 2, 1)},
		{PODate: date(2025, 3, 1)},
		{PODate: date(2024, 12, 1)},
	}

	buckets := GroupByPeriod(records, Month)
	require.Len(t, buckets, 4)

	keyPattern := regexp.MustCompile(`^\d{4}-\d{2}$`)
	keys := make([]string, 0, len(buckets))
	for _, b := range buckets {
		assert.Regexp(t, keyPattern, b.Key)
		keys = append(keys, b.Key)
	}
	assert.True(t, sort.StringsAreSorted(keys), "bucket keys must ascend: %v", keys)
	assert.Equal(t, []string{"2024-02", "2024-12", "2025-03", "2025-11"}, keys)
}

func TestGroupByPeriodEmpty(t *testing.T) {
	assert.Empty(t, GroupByPeriod(nil, Month))
}

func TestChangePercent(t *testing.T) {
	current := &domain.PeriodBucket{Key: "2025-02", TotalQty: 150, TotalValue: 300, Rates: []float64{30}}
	previous := &domain.PeriodBucket{Key: "2025-01", TotalQty: 100, TotalValue: 200, Rates: []float64{20}}

	assert.InDelta(t, 50.0, ChangePercent(current, previous, MetricQty), 1e-9)
	assert.InDelta(t, 50.0, ChangePercent(current, previous, MetricValue), 1e-9)
	assert.InDelta(t, 50.0, ChangePercent(current, previous, MetricRate), 1e-9)

	// Shrinkage reports a negative change.
	assert.InDelta(t, -50.0, ChangePercent(previous, &domain.PeriodBucket{TotalQty: 200}, MetricQty), 1e-9)
}

func TestChangePercentMissingPrevious(t *testing.T) {
	current := &domain.PeriodBucket{TotalQty: 150}

	assert.Equal(t, 0.0, ChangePercent(current, nil, MetricQty))
	assert.Equal(t, 0.0, ChangePercent(current, &domain.PeriodBucket{}, MetricQty))
	assert.Equal(t, 0.0, ChangePercent(nil, nil, MetricValue))
}

func TestParseType(t *testing.T) {
	assert.Equal(t, Month, ParseType("month"))
	assert.Equal(t, Quarter, ParseType("quarter"))
	assert.Equal(t, HalfYear, ParseType("halfYear"))
	assert.Equal(t, Year, ParseType("year"))
	assert.Equal(t, Month, ParseType("bogus"))
	assert.Equal(t, Month, ParseType(""))
}

func TestAvgRateEmptyBucket(t *testing.T) {
	assert.Equal(t, 0.0, domain.PeriodBucket{}.AvgRate())
}
