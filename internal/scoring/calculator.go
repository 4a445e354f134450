// backend-go/internal/scoring/calculator.go
package scoring

import (
	"math"
	"time"
)

// DelayDays returns the receipt delay in whole days, rounded up. Positive
// means late, zero or negative means on-time or early. ok is false when either
// date is missing or the receipt is still pending.
func DelayDays(due, receipt *time.Time, pending bool) (int, bool) {
	if due == nil || receipt == nil || pending {
		return 0, false
	}
	diff := receipt.Sub(*due)
	days := int(math.Ceil(diff.Hours() / 24))
	return days, true
}

// RejectionRate returns the rejected share of received quantity as a percent.
// A group with nothing received has a 0% rejection rate.
func RejectionRate(received, rejected float64) float64 {
	if received <= 0 {
		return 0
	}
	return rejected / received * 100
}
