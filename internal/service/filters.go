// backend-go/internal/service/filters.go
package service

import (
	"strings"
	"time"

	"github.com/venperf/backend-go/internal/dates"
	"github.com/venperf/backend-go/internal/domain"
)

// FilterItems narrows item groups by search term, material group/type and PO
// date range. Pure function; the input slice is not modified.
func FilterItems(items []domain.ItemGroup, filter *domain.ItemFilter) []domain.ItemGroup {
	if filter == nil {
		return items
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	from := dates.Normalize(filter.DateFrom)
	to := dates.Normalize(filter.DateTo)

	out := make([]domain.ItemGroup, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.ItemCode), search) &&
			!strings.Contains(strings.ToLower(item.ItemDescription), search) {
			continue
		}
		if filter.MaterialGroup != "" && item.MaterialGroup != filter.MaterialGroup {
			continue
		}
		if filter.MaterialType != "" && item.MaterialType != filter.MaterialType {
			continue
		}
		if from != nil && to != nil && !anyRecordInRange(item.Records, from, to) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FilterVendors narrows vendor groups by a search term over name, code and
// city.
func FilterVendors(vendors []domain.VendorGroup, filter *domain.VendorFilter) []domain.VendorGroup {
	if filter == nil || strings.TrimSpace(filter.Search) == "" {
		return vendors
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.VendorGroup, 0, len(vendors))
	for _, v := range vendors {
		if strings.Contains(strings.ToLower(v.VendorName), search) ||
			strings.Contains(strings.ToLower(v.VendorCode), search) ||
			strings.Contains(strings.ToLower(v.VendorCity), search) {
			out = append(out, v)
		}
	}
	return out
}

// anyRecordInRange reports whether at least one record's PO date falls inside
// the inclusive range. Undated records never match.
func anyRecordInRange(records []domain.PORecord, from, to *time.Time) bool {
	for _, r := range records {
		if r.PODate == nil {
			continue
		}
		if !r.PODate.Before(*from) && !r.PODate.After(*to) {
			return true
		}
	}
	return false
}
