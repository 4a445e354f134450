// backend-go/internal/period/period.go
package period

import (
	"fmt"
	"sort"
	"time"

	"github.com/venperf/backend-go/internal/domain"
)

// Type selects the calendar period granularity.
type Type string

const (
	Month    Type = "month"
	Quarter  Type = "quarter"
	HalfYear Type = "halfYear"
	Year     Type = "year"
)

// ParseType maps a query-string value to a period type, defaulting to month.
func ParseType(s string) Type {
	switch Type(s) {
	case Quarter, HalfYear, Year:
		return Type(s)
	default:
		return Month
	}
}

// Metric selects which bucket value a period-over-period change compares.
type Metric string

const (
	MetricQty   Metric = "qty"
	MetricValue Metric = "value"
	MetricRate  Metric = "rate"
)

// Key derives the bucket key for a date. All formats are fixed-width with
// zero-padded components, so lexicographic order is chronological order.
func Key(t time.Time, pt Type) string {
	year := t.Year()
	month := int(t.Month()) // 1-indexed
	switch pt {
	case Quarter:
		return fmt.Sprintf("%04d-Q%d", year, (month-1)/3+1)
	case HalfYear:
		half := 1
		if month > 6 {
			half = 2
		}
		return fmt.Sprintf("%04d-H%d", year, half)
	case Year:
		return fmt.Sprintf("%04d", year)
	default:
		return fmt.Sprintf("%04d-%02d", year, month)
	}
}

// GroupByPeriod buckets records by the calendar period of their PO date.
// Records without a parseable PO date are skipped. Buckets come back sorted
// ascending by key.
func GroupByPeriod(records []domain.PORecord, pt Type) []domain.PeriodBucket {
	index := make(map[string]int)
	var buckets []domain.PeriodBucket

	for _, r := range records {
		if r.PODate == nil {
			continue
		}
		key := Key(*r.PODate, pt)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, domain.PeriodBucket{Key: key})
		}
		buckets[i].Count++
		buckets[i].TotalQty += r.OrderedQty
		buckets[i].TotalValue += r.OrderValue
		buckets[i].Rates = append(buckets[i].Rates, r.UnitRate)
	}

	sort.Slice(buckets, func(a, b int) bool {
		return buckets[a].Key < buckets[b].Key
	})

	return buckets
}

// ChangePercent returns the period-over-period change of one metric as a
// percent. A missing previous bucket, or a previous value of 0, yields 0.
func ChangePercent(current, previous *domain.PeriodBucket, metric Metric) float64 {
	if previous == nil {
		return 0
	}
	prev := metricValue(*previous, metric)
	if prev == 0 {
		return 0
	}
	var cur float64
	if current != nil {
		cur = metricValue(*current, metric)
	}
	return (cur - prev) / prev * 100
}

func metricValue(b domain.PeriodBucket, metric Metric) float64 {
	switch metric {
	case MetricValue:
		return b.TotalValue
	case MetricRate:
		return b.AvgRate()
	default:
		return b.TotalQty
	}
}
