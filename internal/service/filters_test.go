package service

import (
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

func sampleItems() []domain.ItemGroup {
	return []domain.ItemGroup{
		{
			ItemCode:        "BOLT-M8",
			ItemDescription: "Hex bolt M8",
			MaterialGroup:   "FASTENERS",
			MaterialType:    "RAW",
			Records:         []domain.PORecord{{PODate: date(2025, 1, 15)}},
		},
		{
			ItemCode:        "PLT-10",
			ItemDescription: "Steel plate 10mm",
			MaterialGroup:   "PLATES",
			MaterialType:    "RAW",
			Records:         []domain.PORecord{{PODate: date(2025, 6, 1)}, {PODate: nil}},
		},
		{
			ItemCode:        "GSKT-2",
			ItemDescription: "Gasket rubber",
			MaterialGroup:   "SEALS",
			MaterialType:    "CONSUMABLE",
			Records:         []domain.PORecord{{PODate: nil}},
		},
	}
}

func TestFilterItemsNilFilterReturnsAll(t *testing.T) {
	items := sampleItems()
	assert.Equal(t, items, FilterItems(items, nil))
}

func TestFilterItemsSearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "matches code case-insensitively", search: "bolt-m8", want: []string{"BOLT-M8"}},
		{name: "matches description substring", search: "steel", want: []string{"PLT-10"}},
		{name: "matches code and description", search: "bolt", want: []string{"BOLT-M8"}},
		{name: "whitespace trimmed", search: "  gasket  ", want: []string{"GSKT-2"}},
		{name: "no match", search: "titanium", want: []string{}},
		{name: "empty matches all", search: "", want: []string{"BOLT-M8", "PLT-10", "GSKT-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterItems(sampleItems(), &domain.ItemFilter{Search: tt.search})
			codes := make([]string, 0, len(got))
			for _, item := range got {
				codes = append(codes, item.ItemCode)
			}
			assert.Equal(t, tt.want, codes)
		})
	}
}

func TestFilterItemsByMaterial(t *testing.T) {
	got := FilterItems(sampleItems(), &domain.ItemFilter{MaterialGroup: "PLATES"})
	require.Len(t, got, 1)
	assert.Equal(t, "PLT-10", got[0].ItemCode)

	got = FilterItems(sampleItems(), &domain.ItemFilter{MaterialType: "RAW"})
	assert.Len(t, got, 2)

	got = FilterItems(sampleItems(), &domain.ItemFilter{MaterialType: "RAW", MaterialGroup: "FASTENERS"})
	require.Len(t, got, 1)
	assert.Equal(t, "BOLT-M8", got[0].ItemCode)
}

func TestFilterItemsDateRange(t *testing.T) {
	// Inclusive on both ends; an item stays if any of its records fall inside.
	got := FilterItems(sampleItems(), &domain.ItemFilter{DateFrom: "2025-01-15", DateTo: "2025-01-15"})
	require.Len(t, got, 1)
	assert.Equal(t, "BOLT-M8", got[0].ItemCode)

	got = FilterItems(sampleItems(), &domain.ItemFilter{DateFrom: "2025-01-01", DateTo: "2025-12-31"})
	assert.Len(t, got, 2)

	// Items with only undated records never match a range.
	got = FilterItems(sampleItems(), &domain.ItemFilter{DateFrom: "2020-01-01", DateTo: "2030-01-01"})
	for _, item := range got {
		assert.NotEqual(t, "GSKT-2", item.ItemCode)
	}
}

func TestFilterItemsHalfOpenRangeIgnored(t *testing.T) {
	// A range needs both ends; a lone bound does not filter.
	got := FilterItems(sampleItems(), &domain.ItemFilter{DateFrom: "2025-06-01"})
	assert.Len(t, got, 3)
}

func TestFilterVendors(t *testing.T) {
	vendors := []domain.VendorGroup{
		{VendorCode: "V1", VendorName: "Acme Industries", VendorCity: "Pune"},
		{VendorCode: "V2", VendorName: "Bolt Co", VendorCity: "Mumbai"},
		{VendorCode: "PNE-1", VendorName: "Third Corp", VendorCity: "Nagpur"},
	}

	assert.Equal(t, vendors, FilterVendors(vendors, nil))
	assert.Equal(t, vendors, FilterVendors(vendors, &domain.VendorFilter{Search: "  "}))

	got := FilterVendors(vendors, &domain.VendorFilter{Search: "acme"})
	require.Len(t, got, 1)
	assert.Equal(t, "V1", got[0].VendorCode)

	// City and code are searched too.
	got = FilterVendors(vendors, &domain.VendorFilter{Search: "mumbai"})
	require.Len(t, got, 1)
	assert.Equal(t, "V2", got[0].VendorCode)

	got = FilterVendors(vendors, &domain.VendorFilter{Search: "pne"})
	require.Len(t, got, 1)
	assert.Equal(t, "PNE-1", got[0].VendorCode)
}
