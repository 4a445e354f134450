// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/venperf/backend-go/internal/api"
	"github.com/venperf/backend-go/internal/api/handlers"
	"github.com/venperf/backend-go/internal/cache"
	"github.com/venperf/backend-go/internal/config"
	"github.com/venperf/backend-go/internal/domain"
	"github.com/venperf/backend-go/internal/feed"
	"github.com/venperf/backend-go/internal/scoring"
	"github.com/venperf/backend-go/internal/service"
	"github.com/venperf/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize score engine
	engine := scoring.NewEngine(domain.ScoreConfig{
		PriceMode:           domain.PriceMode(cfg.Score.PriceMode),
		MaxPOValueReference: cfg.Score.MaxPOValueReference,
	})

	// Initialize snapshot cache
	snapshotCache, err := cache.NewSnapshotCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("snapshot cache unavailable, running without cache")
		snapshotCache = cache.NewNoopSnapshotCache()
	}

	dashboard := service.NewDashboardService(engine, snapshotCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start the feed poller when a source is configured
	var poller *feed.Poller
	if source := buildFeedSource(cfg.Feed); source != nil {
		interval := time.Duration(cfg.Feed.PollIntervalSeconds) * time.Second
		poller = feed.NewPoller(source, interval, func(snapshot feed.Snapshot) {
			dashboard.SetRecords(ctx, snapshot.Records, snapshot.FetchedAt)
		})
		go poller.Run(ctx)
	} else {
		logger.Log.Warn().Msg("no feed source configured, serving empty snapshot until refresh")
	}

	// Initialize HTTP server
	var refresher handlers.Refresher
	if poller != nil {
		refresher = poller
	}
	router := api.NewRouter(dashboard, refresher, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

func buildFeedSource(cfg config.FeedConfig) feed.Source {
	if cfg.SheetURL != "" {
		return feed.NewSheetURLSource(cfg.SheetURL)
	}
	if cfg.FilePath != "" {
		return &feed.FileSource{Path: cfg.FilePath}
	}
	return nil
}
