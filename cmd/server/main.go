// Package main is the entry point for the Starbuck trading game server.
// It wires the simulation engine, the SQLite persistence services, the
// background scheduler and the HTTP API, then runs until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Lexicon1971/starbuck-trader-game/internal/config"
	"github.com/Lexicon1971/starbuck-trader-game/internal/database"
	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/analytics"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/leaderboard"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/snapshots"
	"github.com/Lexicon1971/starbuck-trader-game/internal/scheduler"
	"github.com/Lexicon1971/starbuck-trader-game/internal/server"
	"github.com/Lexicon1971/starbuck-trader-game/pkg/logger"
)

// historyKeepDays bounds the price history table. Older rows only feed
// long-range charts nobody draws, so they are pruned nightly.
const historyKeepDays = 365

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting Starbuck server")

	// Two-database layout: game.db holds durable session data (snapshots,
	// leaderboard), history.db holds the rebuildable price history.
	gameDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "game.db"),
		Profile: database.ProfileStandard,
		Name:    "game",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open game database")
	}
	defer gameDB.Close()

	historyDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "history.db"),
		Profile: database.ProfileCache,
		Name:    "history",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open history database")
	}
	defer historyDB.Close()

	// Event bus wires the engine, the scheduler and the websocket stream
	// together without any of them knowing about the others.
	eventBus := events.NewBus(log)
	eventManager := events.NewManager(eventBus, log)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng := engine.New(seed, log)

	snapshotSvc, err := snapshots.New(gameDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize snapshot service")
	}

	leaderboardStore, err := leaderboard.NewSQLiteStore(gameDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize leaderboard store")
	}

	analyticsSvc, err := analytics.New(historyDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize analytics service")
	}

	// Observers run after each completed day: analytics records closing
	// prices, the tick publisher pushes the day summary onto the bus.
	eng.AddObserver(analyticsSvc)
	eng.AddObserver(server.NewTickPublisher(eventManager))

	// Background jobs: periodic autosave, nightly history prune, and a
	// database health check on the same nightly cadence.
	sched := scheduler.New(log, eventManager)
	if err := sched.AddJob(cfg.AutosaveSchedule, scheduler.NewAutosaveJob(eng, snapshotSvc, cfg.SnapshotKeep, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule autosave job")
	}
	if err := sched.AddJob(cfg.PruneSchedule, scheduler.NewHistoryPruneJob(eng, analyticsSvc, historyKeepDays, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule history prune job")
	}
	if err := sched.AddJob(cfg.PruneSchedule, scheduler.NewHealthCheckJob(log, gameDB, historyDB)); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule health check job")
	}
	sched.Start()

	srv := server.New(server.Config{
		Log:         log,
		Config:      cfg,
		Port:        cfg.Port,
		DevMode:     cfg.DevMode,
		Engine:      eng,
		GameDB:      gameDB,
		HistoryDB:   historyDB,
		Snapshots:   snapshotSvc,
		Leaderboard: leaderboardStore,
		Analytics:   analyticsSvc,
		EventBus:    eventBus,
		Events:      eventManager,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Int64("seed", seed).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	sched.Stop()
	log.Info().Msg("Scheduler stopped")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
