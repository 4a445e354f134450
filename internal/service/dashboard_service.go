// backend-go/internal/service/dashboard_service.go
package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/venperf/backend-go/internal/aggregate"
	"github.com/venperf/backend-go/internal/cache"
	"github.com/venperf/backend-go/internal/domain"
	"github.com/venperf/backend-go/internal/period"
	"github.com/venperf/backend-go/internal/scoring"
)

// DashboardService owns the current immutable record snapshot and exposes the
// aggregation surface to the API layer. Every read recomputes from the
// snapshot; the redis cache in front is the only memoization.
type DashboardService struct {
	engine *scoring.Engine
	cache  cache.SnapshotCache

	mu        sync.RWMutex
	records   []domain.PORecord
	refreshed time.Time
}

func NewDashboardService(engine *scoring.Engine, snapshotCache cache.SnapshotCache) *DashboardService {
	if snapshotCache == nil {
		snapshotCache = cache.NewNoopSnapshotCache()
	}
	return &DashboardService{
		engine: engine,
		cache:  snapshotCache,
	}
}

// SetRecords swaps in a fresh snapshot and invalidates every cached view.
// The caller hands over ownership of the slice; it is never mutated here.
func (s *DashboardService) SetRecords(ctx context.Context, records []domain.PORecord, fetchedAt time.Time) {
	s.mu.Lock()
	s.records = records
	s.refreshed = fetchedAt
	s.mu.Unlock()

	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to invalidate snapshot cache")
	}
}

func (s *DashboardService) currentRecords() ([]domain.PORecord, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.refreshed
}

// Items returns filtered item groups in first-occurrence order.
func (s *DashboardService) Items(filter *domain.ItemFilter) []domain.ItemGroup {
	records, _ := s.currentRecords()
	return FilterItems(aggregate.GroupByItem(records), filter)
}

// ItemVendors ranks the vendors supplying one item. ok is false when the item
// code is unknown.
func (s *DashboardService) ItemVendors(itemCode string) ([]domain.VendorGroup, bool) {
	item, ok := s.findItem(itemCode)
	if !ok {
		return nil, false
	}
	return aggregate.VendorsForItem(item, s.engine), true
}

// ItemStats summarizes one item group's quality and delivery profile.
func (s *DashboardService) ItemStats(itemCode string) (domain.ItemStats, bool) {
	item, ok := s.findItem(itemCode)
	if !ok {
		return domain.ItemStats{}, false
	}
	return scoring.ItemStats(item.Records), true
}

// Vendors returns the global vendor ranking, placeholder rows excluded.
func (s *DashboardService) Vendors(filter *domain.VendorFilter) []domain.VendorGroup {
	records, _ := s.currentRecords()
	vendors := aggregate.GroupByVendor(records, aggregate.Options{ExcludePlaceholders: true}, s.engine)
	return FilterVendors(vendors, filter)
}

// Periods buckets the snapshot by calendar period.
func (s *DashboardService) Periods(pt period.Type) []domain.PeriodBucket {
	records, _ := s.currentRecords()
	return period.GroupByPeriod(records, pt)
}

// PeriodChanges reports the period-over-period delta of one metric for every
// bucket. The first bucket has no predecessor and reports 0.
func (s *DashboardService) PeriodChanges(pt period.Type, metric period.Metric) []domain.PeriodChange {
	buckets := s.Periods(pt)

	changes := make([]domain.PeriodChange, 0, len(buckets))
	for i := range buckets {
		var previous *domain.PeriodBucket
		var prevValue float64
		if i > 0 {
			previous = &buckets[i-1]
			prevValue = metricOf(buckets[i-1], metric)
		}
		changes = append(changes, domain.PeriodChange{
			Key:       buckets[i].Key,
			Metric:    string(metric),
			ChangePct: period.ChangePercent(&buckets[i], previous, metric),
			Value:     metricOf(buckets[i], metric),
			PrevValue: prevValue,
		})
	}
	return changes
}

// Snapshot assembles the full dashboard payload, going through the redis
// cache when one is configured. Cache failures degrade to recomputation.
func (s *DashboardService) Snapshot(ctx context.Context, filter *domain.ItemFilter) *domain.DashboardSnapshot {
	if cached, ok, err := s.cache.Get(ctx, filter); err != nil {
		log.Error().Err(err).Msg("snapshot cache read failed")
	} else if ok {
		return cached
	}

	records, refreshed := s.currentRecords()
	snapshot := &domain.DashboardSnapshot{
		Items:       FilterItems(aggregate.GroupByItem(records), filter),
		Vendors:     aggregate.GroupByVendor(records, aggregate.Options{ExcludePlaceholders: true}, s.engine),
		RecordCount: len(records),
		LastRefresh: refreshed.UTC().Format(time.RFC3339),
	}

	if err := s.cache.Set(ctx, filter, snapshot); err != nil {
		log.Error().Err(err).Msg("snapshot cache write failed")
	}
	return snapshot
}

func (s *DashboardService) findItem(itemCode string) (domain.ItemGroup, bool) {
	records, _ := s.currentRecords()
	for _, item := range aggregate.GroupByItem(records) {
		if item.ItemCode == itemCode {
			return item, true
		}
	}
	return domain.ItemGroup{}, false
}

func metricOf(b domain.PeriodBucket, metric period.Metric) float64 {
	switch metric {
	case period.MetricValue:
		return b.TotalValue
	case period.MetricRate:
		return b.AvgRate()
	default:
		return b.TotalQty
	}
}
