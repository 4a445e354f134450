package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venperf/backend-go/internal/domain"
	"github.com/venperf/backend-go/internal/period"
	"github.com/venperf/backend-go/internal/scoring"
)

func newTestService(records []domain.PORecord) *DashboardService {
	svc := NewDashboardService(scoring.NewEngine(domain.ScoreConfig{}), nil)
	svc.SetRecords(context.Background(), records, time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	return svc
}

func feedRecords() []domain.PORecord {
	return []domain.PORecord{
		{PONo: "PO-1", PODate: date(2025, 1, 15), ItemCode: "BOLT-M8", ItemDescription: "Hex bolt",
			VendorCode: "V1", VendorName: "Acme", OrderValue: 1000, OrderedQty: 100},
		{PONo: "PO-2", PODate: date(2025, 2, 10), ItemCode: "BOLT-M8",
			VendorCode: "V2", VendorName: "Bolt Co", OrderValue: 3000, OrderedQty: 200,
			ReceivedQty: 200, RejectedQty: 100},
		{PONo: "PO-3", PODate: date(2025, 2, 20), ItemCode: "PLT-10", ItemDescription: "Steel plate",
			VendorCode: "", VendorName: "po not released", OrderValue: 500, OrderedQty: 10},
	}
}

func TestServiceItems(t *testing.T) {
	svc := newTestService(feedRecords())

	items := svc.Items(nil)
	require.Len(t, items, 2)
	assert.Equal(t, "BOLT-M8", items[0].ItemCode)
	assert.Equal(t, 4000.0, items[0].TotalOrderValue)

	filtered := svc.Items(&domain.ItemFilter{Search: "plate"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "PLT-10", filtered[0].ItemCode)
}

func TestServiceItemVendors(t *testing.T) {
	svc := newTestService(feedRecords())

	vendors, ok := svc.ItemVendors("BOLT-M8")
	require.True(t, ok)
	require.Len(t, vendors, 2)
	// V2's 50% rejection rate drags its score below V1's.
	assert.Equal(t, "V1", vendors[0].VendorCode)

	_, ok = svc.ItemVendors("NOPE")
	assert.False(t, ok)
}

func TestServiceItemStats(t *testing.T) {
	svc := newTestService(feedRecords())

	stats, ok := svc.ItemStats("BOLT-M8")
	require.True(t, ok)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 50.0, stats.RejectionRatePct)

	_, ok = svc.ItemStats("NOPE")
	assert.False(t, ok)
}

func TestServiceVendorsExcludePlaceholders(t *testing.T) {
	svc := newTestService(feedRecords())

	vendors := svc.Vendors(nil)
	require.Len(t, vendors, 2)
	for _, v := range vendors {
		assert.NotEqual(t, "po not released", v.VendorName)
	}
}

func TestServicePeriodChanges(t *testing.T) {
	svc := newTestService(feedRecords())

	changes := svc.PeriodChanges(period.Month, period.MetricValue)
	require.Len(t, changes, 2)

	assert.Equal(t, "2025-01", changes[0].Key)
	assert.Equal(t, 0.0, changes[0].ChangePct)
	assert.Equal(t, 1000.0, changes[0].Value)

	assert.Equal(t, "2025-02", changes[1].Key)
	assert.InDelta(t, 250.0, changes[1].ChangePct, 1e-9)
	assert.Equal(t, 3500.0, changes[1].Value)
	assert.Equal(t, 1000.0, changes[1].PrevValue)
}

func TestServiceSnapshot(t *testing.T) {
	svc := newTestService(feedRecords())

	snap := svc.Snapshot(context.Background(), nil)
	require.NotNil(t, snap)
	assert.Equal(t, 3, snap.RecordCount)
	assert.Len(t, snap.Items, 2)
	assert.Len(t, snap.Vendors, 2)
	assert.Equal(t, "2025-07-01T12:00:00Z", snap.LastRefresh)
}

func TestServiceSetRecordsReplacesSnapshot(t *testing.T) {
	svc := newTestService(feedRecords())
	require.Len(t, svc.Items(nil), 2)

	svc.SetRecords(context.Background(), nil, time.Now())
	assert.Empty(t, svc.Items(nil))
}
