package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imRanDan/chess-analytics-tool/internal/api"
	"github.com/imRanDan/chess-analytics-tool/internal/chesscom"
	"github.com/imRanDan/chess-analytics-tool/internal/config"
	"github.com/imRanDan/chess-analytics-tool/internal/db"
	"github.com/imRanDan/chess-analytics-tool/internal/lichess"
	"github.com/imRanDan/chess-analytics-tool/internal/logger"
	"github.com/imRanDan/chess-analytics-tool/internal/repository/sqlite"
	"github.com/imRanDan/chess-analytics-tool/internal/services"
	"github.com/imRanDan/chess-analytics-tool/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Chess Analytics Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("sync_worker_count=%d", cfg.SyncWorkers)
	log.Debug("sync_queue_size=%d", cfg.SyncQueueSize)
	log.Debug("archive_limit=%d", cfg.ArchiveLimit)
	log.Debug("max_concurrent_archive=%d", cfg.MaxConcurrent)
	log.Debug("lichess_max_games=%d", cfg.LichessMax)
	log.Debug("trend_window=%d", cfg.TrendWindow)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	syncPool := worker.NewPool(cfg.SyncWorkers, cfg.SyncQueueSize)

	profileRepo := sqlite.NewProfileRepository(database.DB)
	gameRepo := sqlite.NewGameRepository(database.DB)

	profileService := services.NewProfileService(profileRepo)
	statsService := services.NewStatsService(gameRepo, cfg.TrendWindow)
	insightService := services.NewInsightService(gameRepo, statsService)
	syncService := services.NewSyncService(gameRepo, profileRepo, chesscom.New(), lichess.New(), syncPool, services.SyncOptions{
		ArchiveLimit:  cfg.ArchiveLimit,
		MaxConcurrent: cfg.MaxConcurrent,
		LichessMax:    cfg.LichessMax,
	})

	srv := &api.Server{
		ProfileService: profileService,
		StatsService:   statsService,
		InsightService: insightService,
		SyncService:    syncService,
	}

	ctx, cancel := context.WithCancel(context.Background())
	syncPool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	syncPool.Stop()

	log.Info("===========================================")
	log.Info("Chess Analytics Server Stopped")
	log.Info("===========================================")
}
