// backend-go/internal/aggregate/aggregate.go
package aggregate

import (
	"sort"
	"strings"

	"github.com/venperf/backend-go/internal/domain"
	"github.com/venperf/backend-go/internal/scoring"
)

// vendorPlaceholder marks sheet rows whose PO has not been released to any
// vendor yet. Compared case-insensitively.
const vendorPlaceholder = "po not released"

// Options controls vendor grouping.
type Options struct {
	// ExcludePlaceholders drops records with an empty vendor name/code or the
	// "po not released" placeholder from vendor aggregation. Such records still
	// take part in item aggregation.
	ExcludePlaceholders bool
}

// GroupByItem partitions records by item code. Output order is the insertion
// order of each code's first occurrence; callers sort for display.
func GroupByItem(records []domain.PORecord) []domain.ItemGroup {
	index := make(map[string]int)
	vendors := make(map[string]map[string]struct{})
	var groups []domain.ItemGroup

	for _, r := range records {
		i, ok := index[r.ItemCode]
		if !ok {
			i = len(groups)
			index[r.ItemCode] = i
			vendors[r.ItemCode] = make(map[string]struct{})
			groups = append(groups, domain.ItemGroup{
				ItemCode:        r.ItemCode,
				ItemDescription: r.ItemDescription,
				MaterialType:    r.MaterialType,
				MaterialGroup:   r.MaterialGroup,
				Unit:            r.Unit,
			})
		}
		groups[i].TotalOrderValue += r.OrderValue
		groups[i].TotalOrderedQty += r.OrderedQty
		groups[i].Records = append(groups[i].Records, r)
		vendors[r.ItemCode][r.VendorCode] = struct{}{}
	}

	for i := range groups {
		groups[i].VendorCount = len(vendors[groups[i].ItemCode])
	}

	return groups
}

// GroupByVendor partitions records by vendor code and ranks the groups by
// score, descending. The sort is stable so ties keep input order.
func GroupByVendor(records []domain.PORecord, opts Options, engine *scoring.Engine) []domain.VendorGroup {
	index := make(map[string]int)
	items := make(map[string]map[string]struct{})
	var groups []domain.VendorGroup

	for _, r := range records {
		if opts.ExcludePlaceholders && isPlaceholder(r) {
			continue
		}
		i, ok := index[r.VendorCode]
		if !ok {
			i = len(groups)
			index[r.VendorCode] = i
			items[r.VendorCode] = make(map[string]struct{})
			groups = append(groups, domain.VendorGroup{
				VendorCode: r.VendorCode,
				VendorName: r.VendorName,
				VendorCity: r.VendorCity,
			})
		}
		groups[i].Records = append(groups[i].Records, r)
		items[r.VendorCode][r.ItemCode] = struct{}{}
	}

	for i := range groups {
		groups[i].ItemsCount = len(items[groups[i].VendorCode])
		groups[i].Score = engine.Score(groups[i].Records)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Score.Total > groups[b].Score.Total
	})

	return groups
}

// VendorsForItem ranks the vendors supplying one item group.
func VendorsForItem(item domain.ItemGroup, engine *scoring.Engine) []domain.VendorGroup {
	return GroupByVendor(item.Records, Options{ExcludePlaceholders: true}, engine)
}

func isPlaceholder(r domain.PORecord) bool {
	name := strings.TrimSpace(r.VendorName)
	if name == "" || strings.TrimSpace(r.VendorCode) == "" {
		return true
	}
	return strings.EqualFold(name, vendorPlaceholder)
}
