// backend-go/internal/api/handlers/dashboard_handler.go
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/venperf/backend-go/internal/domain"
	"github.com/venperf/backend-go/internal/period"
	"github.com/venperf/backend-go/internal/service"
)

// Refresher triggers a manual feed refetch.
type Refresher interface {
	RefreshOnce(ctx context.Context) error
}

type DashboardHandler struct {
	dashboard *service.DashboardService
	refresher Refresher
}

func NewDashboardHandler(dashboard *service.DashboardService, refresher Refresher) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, refresher: refresher}
}

// GetItems returns the filtered item listing.
func (h *DashboardHandler) GetItems(c *gin.Context) {
	filter := parseItemFilter(c)
	c.JSON(http.StatusOK, h.dashboard.Items(filter))
}

// GetItemVendors returns the vendor ranking for one item.
func (h *DashboardHandler) GetItemVendors(c *gin.Context) {
	itemCode := c.Param("code")
	vendors, ok := h.dashboard.ItemVendors(itemCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// GetItemStats returns the per-item quality/delivery summary.
func (h *DashboardHandler) GetItemStats(c *gin.Context) {
	itemCode := c.Param("code")
	stats, ok := h.dashboard.ItemStats(itemCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetVendors returns the global vendor ranking.
func (h *DashboardHandler) GetVendors(c *gin.Context) {
	filter := parseVendorFilter(c)
	c.JSON(http.StatusOK, h.dashboard.Vendors(filter))
}

// GetSnapshot returns the full dashboard payload.
func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	filter := parseItemFilter(c)
	c.JSON(http.StatusOK, h.dashboard.Snapshot(c.Request.Context(), filter))
}

// GetPeriods returns the period buckets for the requested granularity.
func (h *DashboardHandler) GetPeriods(c *gin.Context) {
	pt := period.ParseType(c.DefaultQuery("type", "month"))

	buckets := h.dashboard.Periods(pt)
	out := make([]gin.H, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, gin.H{
			"key":         b.Key,
			"count":       b.Count,
			"total_qty":   b.TotalQty,
			"total_value": b.TotalValue,
			"avg_rate":    b.AvgRate(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetPeriodChanges returns period-over-period deltas for one metric.
func (h *DashboardHandler) GetPeriodChanges(c *gin.Context) {
	pt := period.ParseType(c.DefaultQuery("type", "month"))

	metric := period.Metric(c.DefaultQuery("metric", "qty"))
	switch metric {
	case period.MetricQty, period.MetricValue, period.MetricRate:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid metric value"})
		return
	}

	c.JSON(http.StatusOK, h.dashboard.PeriodChanges(pt, metric))
}

// Refresh triggers an immediate feed refetch in the background.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	if h.refresher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no feed configured"})
		return
	}

	go func() {
		if err := h.refresher.RefreshOnce(context.Background()); err != nil {
			log.Error().Err(err).Msg("manual feed refresh failed")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"message": "refresh started"})
}

func parseItemFilter(c *gin.Context) *domain.ItemFilter {
	search := strings.TrimSpace(c.Query("search"))
	group := strings.TrimSpace(c.Query("group"))
	matType := strings.TrimSpace(c.Query("type"))
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))

	if search == "" && group == "" && matType == "" && from == "" && to == "" {
		return nil
	}

	return &domain.ItemFilter{
		Search:        search,
		MaterialGroup: group,
		MaterialType:  matType,
		DateFrom:      from,
		DateTo:        to,
	}
}

func parseVendorFilter(c *gin.Context) *domain.VendorFilter {
	search := strings.TrimSpace(c.Query("search"))
	if search == "" {
		return nil
	}
	return &domain.VendorFilter{Search: search}
}
