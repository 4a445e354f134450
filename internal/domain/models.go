// backend-go/internal/domain/models.go
package domain

import "time"

// PORecord represents a single purchase-order line from the sheet feed.
type PORecord struct {
	PONo            string     `json:"po_no"`
	PODate          *time.Time `json:"po_date"`
	ItemCode        string     `json:"item_code"`
	ItemDescription string     `json:"item_description"`
	Unit            string     `json:"unit"`
	OrderedQty      float64    `json:"ordered_qty"`
	UnitRate        float64    `json:"unit_rate"`
	OrderValue      float64    `json:"order_value"`
	VendorCode      string     `json:"vendor_code"`
	VendorName      string     `json:"vendor_name"`
	MaterialType    string     `json:"material_type"`
	MaterialGroup   string     `json:"material_group"`
	VendorCity      string     `json:"vendor_city"`
	ReceivedQty     float64    `json:"received_qty"`
	RejectedQty     float64    `json:"rejected_qty"`
	LastReceiptDate *time.Time `json:"last_receipt_date"`
	ReceiptPending  bool       `json:"receipt_pending"`
	DeliveryDueDate *time.Time `json:"delivery_due_date"`
}

// ItemGroup aggregates all PO records sharing an item code.
type ItemGroup struct {
	ItemCode        string     `json:"item_code"`
	ItemDescription string     `json:"item_description"`
	MaterialType    string     `json:"material_type"`
	MaterialGroup   string     `json:"material_group"`
	Unit            string     `json:"unit"`
	TotalOrderValue float64    `json:"total_order_value"`
	TotalOrderedQty float64    `json:"total_ordered_qty"`
	VendorCount     int        `json:"vendor_count"`
	Records         []PORecord `json:"records"`
}

// VendorGroup aggregates all PO records sharing a vendor code, either globally
// or within one item group. Identity fields come from the first-seen record.
type VendorGroup struct {
	VendorCode string     `json:"vendor_code"`
	VendorName string     `json:"vendor_name"`
	VendorCity string     `json:"vendor_city"`
	ItemsCount int        `json:"items_count"`
	Records    []PORecord `json:"records"`
	Score      Score      `json:"score"`
}

// Score is the 100-point composite of price, quality and delivery components.
// Components are rounded to the nearest integer independently before summing.
type Score struct {
	Total             int     `json:"total"`
	PriceComponent    int     `json:"price_component"`
	QualityComponent  int     `json:"quality_component"`
	DeliveryComponent int     `json:"delivery_component"`
	RejectionRatePct  float64 `json:"rejection_rate_pct"`
	OnTimeRatePct     float64 `json:"on_time_rate_pct"`
	TotalOrderValue   float64 `json:"total_order_value"`
	TotalOrders       int     `json:"total_orders"`
	DelayedOrders     int     `json:"delayed_orders"`
}

// ItemStats summarizes the per-item quality/delivery profile shown on the
// item detail view.
type ItemStats struct {
	TotalOrders      int     `json:"total_orders"`
	OnTimeRatePct    float64 `json:"on_time_rate_pct"`
	RejectionRatePct float64 `json:"rejection_rate_pct"`
}

// PeriodBucket aggregates records whose PO date falls in one calendar period.
type PeriodBucket struct {
	Key        string    `json:"key"`
	Count      int       `json:"count"`
	TotalQty   float64   `json:"total_qty"`
	TotalValue float64   `json:"total_value"`
	Rates      []float64 `json:"-"`
}

// AvgRate is the mean unit rate across the bucket, 0 for an empty bucket.
func (b PeriodBucket) AvgRate() float64 {
	if len(b.Rates) == 0 {
		return 0
	}
	var sum float64
	for _, r := range b.Rates {
		sum += r
	}
	return sum / float64(len(b.Rates))
}

// PriceMode selects how the 30-point price component is computed.
type PriceMode string

const (
	// PriceModeFlat awards the full 30 points to every group.
	PriceModeFlat PriceMode = "flat"
	// PriceModeProportional scales the component against a reference ceiling.
	PriceModeProportional PriceMode = "proportional"
)

// DefaultMaxPOValueReference is the proportional-mode ceiling when none is configured.
const DefaultMaxPOValueReference = 200_000_000

// ScoreConfig carries the score engine settings.
type ScoreConfig struct {
	PriceMode           PriceMode
	MaxPOValueReference float64
}
