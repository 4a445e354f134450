// backend-go/internal/scoring/engine.go
package scoring

import (
	"math"

	"github.com/venperf/backend-go/internal/domain"
)

// Weights of the three score components. They sum to 100.
const (
	priceWeight    = 30.0
	qualityWeight  = 60.0
	deliveryWeight = 10.0
)

// Engine computes the 100-point performance score for a group of PO records.
type Engine struct {
	cfg domain.ScoreConfig
}

// NewEngine creates a score engine. An unset price mode falls back to flat,
// an unset proportional ceiling falls back to the default reference value.
func NewEngine(cfg domain.ScoreConfig) *Engine {
	if cfg.PriceMode == "" {
		cfg.PriceMode = domain.PriceModeFlat
	}
	if cfg.MaxPOValueReference <= 0 {
		cfg.MaxPOValueReference = domain.DefaultMaxPOValueReference
	}
	return &Engine{cfg: cfg}
}

// Score derives the composite score from a record group. It is a pure function
// of the input list: identical input always produces identical output, and an
// empty group yields the documented defaults rather than an error.
func (e *Engine) Score(records []domain.PORecord) domain.Score {
	var totalValue, totalReceived, totalRejected float64
	for _, r := range records {
		totalValue += r.OrderValue
		totalReceived += r.ReceivedQty
		totalRejected += r.RejectedQty
	}

	priceScore := priceWeight
	if e.cfg.PriceMode == domain.PriceModeProportional {
		priceScore = math.Min(totalValue/e.cfg.MaxPOValueReference, 1) * priceWeight
	}

	rejectionRate := RejectionRate(totalReceived, totalRejected)
	qualityScore := math.Max(0, qualityWeight-2*rejectionRate)

	// Delivery is judged only on orders that carry both a due date and a
	// non-pending receipt date. Same-day delivery is on-time: lateness is
	// strictly receipt > due.
	var datedOrders, delayedOrders int
	for _, r := range records {
		if r.DeliveryDueDate == nil || r.LastReceiptDate == nil || r.ReceiptPending {
			continue
		}
		datedOrders++
		if r.LastReceiptDate.After(*r.DeliveryDueDate) {
			delayedOrders++
		}
	}

	onTimeRate := 100.0
	if datedOrders > 0 {
		onTimeRate = float64(datedOrders-delayedOrders) / float64(datedOrders) * 100
	}
	deliveryScore := onTimeRate / 100 * deliveryWeight

	// Each component rounds independently before summing. Round-of-sum would
	// shift totals by one point and break ranking ties.
	price := int(math.Round(priceScore))
	quality := int(math.Round(qualityScore))
	delivery := int(math.Round(deliveryScore))

	return domain.Score{
		Total:             price + quality + delivery,
		PriceComponent:    price,
		QualityComponent:  quality,
		DeliveryComponent: delivery,
		RejectionRatePct:  roundTo(rejectionRate, 2),
		OnTimeRatePct:     roundTo(onTimeRate, 1),
		TotalOrderValue:   totalValue,
		TotalOrders:       len(records),
		DelayedOrders:     delayedOrders,
	}
}

// ItemStats derives the per-item summary shown on the item detail view. It
// shares the delivery and rejection semantics of Score.
func ItemStats(records []domain.PORecord) domain.ItemStats {
	var totalReceived, totalRejected float64
	var datedOrders, delayedOrders int
	for _, r := range records {
		totalReceived += r.ReceivedQty
		totalRejected += r.RejectedQty
		if r.DeliveryDueDate == nil || r.LastReceiptDate == nil || r.ReceiptPending {
			continue
		}
		datedOrders++
		if r.LastReceiptDate.After(*r.DeliveryDueDate) {
			delayedOrders++
		}
	}

	onTimeRate := 100.0
	if datedOrders > 0 {
		onTimeRate = float64(datedOrders-delayedOrders) / float64(datedOrders) * 100
	}

	return domain.ItemStats{
		TotalOrders:      len(records),
		OnTimeRatePct:    roundTo(onTimeRate, 1),
		RejectionRatePct: roundTo(RejectionRate(totalReceived, totalRejected), 2),
	}
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
