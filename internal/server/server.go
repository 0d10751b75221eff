// Package server provides the HTTP server and routing for the trading
// simulation.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/config"
	"github.com/Lexicon1971/starbuck-trader-game/internal/database"
	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/analytics"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/leaderboard"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/snapshots"
)

// Config holds server configuration
type Config struct {
	Log         zerolog.Logger
	Config      *config.Config
	Port        int
	DevMode     bool
	Engine      *engine.Engine
	GameDB      *database.DB
	HistoryDB   *database.DB
	Snapshots   *snapshots.Service
	Leaderboard leaderboard.Store
	Analytics   *analytics.Service
	EventBus    *events.Bus
	Events      *events.Manager
}

// Server represents the HTTP server
type Server struct {
	router      *chi.Mux
	server      *http.Server
	log         zerolog.Logger
	cfg         *config.Config
	engine      *engine.Engine
	gameDB      *database.DB
	historyDB   *database.DB
	snapshots   *snapshots.Service
	leaderboard leaderboard.Store
	analytics   *analytics.Service
	eventBus    *events.Bus
	events      *events.Manager
	startupTime time.Time
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		log:         cfg.Log.With().Str("component", "server").Logger(),
		cfg:         cfg.Config,
		engine:      cfg.Engine,
		gameDB:      cfg.GameDB,
		historyDB:   cfg.HistoryDB,
		snapshots:   cfg.Snapshots,
		leaderboard: cfg.Leaderboard,
		analytics:   cfg.Analytics,
		eventBus:    cfg.EventBus,
		events:      cfg.Events,
		startupTime: time.Now(),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Live event stream, upgraded to a websocket
		r.Get("/events/ws", s.handleEventsWS)

		r.Route("/game", func(r chi.Router) {
			r.Post("/new", s.handleNewGame)
			r.Get("/state", s.handleState)
			r.Get("/report", s.handleReport)
		})

		r.Route("/trade", func(r chi.Router) {
			r.Post("/buy", s.handleBuy)
			r.Post("/sell", s.handleSell)
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", s.handleContracts)
			r.Post("/{id}/accept", s.handleAcceptContract)
		})

		r.Route("/logistics", func(r chi.Router) {
			r.Get("/warehouse", s.handleWarehouse)
			r.Post("/ship", s.handleShip)
			r.Post("/claim", s.handleClaim)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/offers", s.handleLoanOffers)
			r.Post("/loans/{id}/accept", s.handleAcceptLoan)
			r.Post("/loans/{id}/repay", s.handleRepayLoan)
			r.Post("/invest", s.handleInvest)
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Get("/shop", s.handleShop)
			r.Post("/buy", s.handleBuyEquipment)
			r.Post("/repair-hull", s.handleRepairHull)
			r.Post("/repair-laser", s.handleRepairLaser)
			r.Post("/expand-cargo", s.handleExpandCargo)
		})

		r.Route("/fabrication", func(r chi.Router) {
			r.Post("/mesh", s.handleFabricateMesh)
			r.Post("/stims", s.handleFabricateStims)
		})

		r.Route("/travel", func(r chi.Router) {
			r.Post("/jump", s.handleJump)
			r.Post("/stay", s.handleStay)
			r.Get("/encounter", s.handleEncounter)
			r.Post("/resolve", s.handleResolveEncounter)
			r.Post("/advance-phase", s.handleAdvancePhase)
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", s.handleLeaderboard)
			r.Post("/", s.handleSubmitScore)
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", s.handleListSnapshots)
			r.Post("/", s.handleSaveSnapshot)
			r.Post("/{id}/restore", s.handleRestoreSnapshot)
			r.Delete("/{id}", s.handleDeleteSnapshot)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/series", s.handleSeries)
			r.Get("/summary", s.handleSummary)
			r.Get("/indicators", s.handleIndicators)
			r.Get("/tips", s.handleTips)
		})

		r.Get("/system/status", s.handleSystemStatus)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
