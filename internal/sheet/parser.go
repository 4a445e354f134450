// backend-go/internal/sheet/parser.go
package sheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/venperf/backend-go/internal/dates"
	"github.com/venperf/backend-go/internal/domain"
)

// Column positions in the sheet feed. Row 0 is a header.
const (
	colPONo = iota
	colPODate
	colItemCode
	colItemDescription
	colUnit
	colOrderedQty
	colUnitRate
	colOrderValue
	colVendorCode
	colVendorName
	colMaterialType
	colMaterialGroup
	colVendorCity
	colReceivedQty
	colRejectedQty
	colLastReceiptDate
	colDeliveryDueDate
)

const pendingMarker = "pending"

// ParseRows maps raw sheet rows onto PO records. The header row is skipped,
// zero-column rows are skipped, and malformed cells degrade to zero values or
// empty strings; no row is ever dropped for bad cell contents.
func ParseRows(rows [][]string) []domain.PORecord {
	if len(rows) == 0 {
		return nil
	}

	records := make([]domain.PORecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		records = append(records, parseRow(row))
	}
	return records
}

func parseRow(row []string) domain.PORecord {
	receiptRaw := cell(row, colLastReceiptDate)
	pending := strings.EqualFold(strings.TrimSpace(receiptRaw), pendingMarker)

	var receiptDate *time.Time
	if !pending {
		receiptDate = dates.Normalize(receiptRaw)
	}

	return domain.PORecord{
		PONo:            cell(row, colPONo),
		PODate:          dates.Normalize(cell(row, colPODate)),
		ItemCode:        cell(row, colItemCode),
		ItemDescription: cell(row, colItemDescription),
		Unit:            cell(row, colUnit),
		OrderedQty:      number(row, colOrderedQty),
		UnitRate:        number(row, colUnitRate),
		OrderValue:      number(row, colOrderValue),
		VendorCode:      cell(row, colVendorCode),
		VendorName:      cell(row, colVendorName),
		MaterialType:    cell(row, colMaterialType),
		MaterialGroup:   cell(row, colMaterialGroup),
		VendorCity:      cell(row, colVendorCity),
		ReceivedQty:     number(row, colReceivedQty),
		RejectedQty:     number(row, colRejectedQty),
		LastReceiptDate: receiptDate,
		ReceiptPending:  pending,
		DeliveryDueDate: dates.Normalize(cell(row, colDeliveryDueDate)),
	}
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func number(row []string, i int) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell(row, i)), 64)
	if err != nil {
		return 0
	}
	return v
}
