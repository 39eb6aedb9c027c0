package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/cardpricer/internal/clients/ebay"
	"github.com/aristath/cardpricer/internal/clients/pricecharting"
	"github.com/aristath/cardpricer/internal/config"
	"github.com/aristath/cardpricer/internal/database"
	"github.com/aristath/cardpricer/internal/modules/history"
	historyjobs "github.com/aristath/cardpricer/internal/modules/history/jobs"
	"github.com/aristath/cardpricer/internal/modules/pricing"
	"github.com/aristath/cardpricer/internal/scheduler"
	"github.com/aristath/cardpricer/internal/server"
	"github.com/aristath/cardpricer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{Level: "info"})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting cardpricer")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(history.InitSchema); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Keyword sets: file-based when configured, built-in defaults otherwise
	keywords := pricing.DefaultKeywords()
	if cfg.KeywordsPath != "" {
		keywords, err = pricing.LoadKeywords(cfg.KeywordsPath, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load keyword sets")
		}
	}

	// Price sources, in priority order: live sold listings first, catalog
	// as the fallback reference
	sources := []pricing.Source{
		pricing.NewListingsSource(ebay.NewClient(log), keywords, log),
	}
	if cfg.PriceChartingToken != "" {
		catalogClient := pricecharting.NewClient(cfg.PriceChartingToken, log)
		sources = append(sources, pricing.NewCatalogSource(catalogClient, keywords, log))
	} else {
		log.Warn().Msg("PRICECHARTING_TOKEN not set, catalog fallback disabled")
	}

	resolver := pricing.NewResolver(sources, cfg.SourceTimeout, log)

	// Resolution history
	historyRepo := history.NewRepository(db.Conn(), log)

	// Background purge of old history rows
	sched := scheduler.New(log)
	retention := time.Duration(cfg.HistoryRetentionDays) * 24 * time.Hour
	if err := sched.AddJob("@daily", historyjobs.NewPurgeJob(historyRepo, retention, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register purge job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:           cfg.Port,
		Log:            log,
		PricingHandler: pricing.NewHandler(resolver, historyRepo, log),
		HistoryHandler: history.NewHandler(historyRepo, log),
		DevMode:        cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
