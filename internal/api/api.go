// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/venperf/backend-go/internal/api/handlers"
	"github.com/venperf/backend-go/internal/api/middleware"
	"github.com/venperf/backend-go/internal/service"
)

// NewRouter wires the dashboard API.
func NewRouter(dashboard *service.DashboardService, refresher handlers.Refresher, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dashboardHandler := handlers.NewDashboardHandler(dashboard, refresher)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/items", dashboardHandler.GetItems)
		v1.GET("/items/:code/vendors", dashboardHandler.GetItemVendors)
		v1.GET("/items/:code/stats", dashboardHandler.GetItemStats)
		v1.GET("/vendors", dashboardHandler.GetVendors)
		v1.GET("/snapshot", dashboardHandler.GetSnapshot)
		v1.POST("/refresh", dashboardHandler.Refresh)

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/periods", dashboardHandler.GetPeriods)
			analytics.GET("/periods/change", dashboardHandler.GetPeriodChanges)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
