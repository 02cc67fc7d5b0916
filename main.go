// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/electoral-cartogram/cliparse"
	"github.com/danielhkuo/electoral-cartogram/coordinator"
	"github.com/danielhkuo/electoral-cartogram/dataset"
	"github.com/danielhkuo/electoral-cartogram/db"
	"github.com/danielhkuo/electoral-cartogram/hover"
	"github.com/danielhkuo/electoral-cartogram/locale"
	"github.com/danielhkuo/electoral-cartogram/logger"
	"github.com/danielhkuo/electoral-cartogram/middleware"
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/parties"
	"github.com/danielhkuo/electoral-cartogram/router"
	"github.com/danielhkuo/electoral-cartogram/sessions"
	"github.com/danielhkuo/electoral-cartogram/tally"
)

const sweepInterval = time.Minute

func main() {
	var err error

	// A missing .env is fine; real environment variables still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env", "error", err)
	}
	logger.Setup()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.SeedDir != "" {
		seed, err := dataset.LoadCSVDir(cfg.SeedDir)
		if err != nil {
			slog.Error("seed load failed", "dir", cfg.SeedDir, "error", err)
			os.Exit(1)
		}
		if err := seed.Validate(); err != nil {
			slog.Error("seed data invalid", "dir", cfg.SeedDir, "error", err)
			os.Exit(1)
		}
		if err := db.Import(ctx, dbConn, seed); err != nil {
			slog.Error("seed import failed", "error", err)
			os.Exit(1)
		}
	}

	data, err := db.Load(ctx, dbConn)
	if err != nil {
		slog.Error("dataset load failed", "error", err)
		os.Exit(1)
	}
	if err := data.Validate(); err != nil {
		slog.Error("dataset invalid", "error", err)
		os.Exit(1)
	}

	registry := parties.NewRegistry(data.Parties, cfg.StrictParties)
	if err := registry.Validate(data.PartyIDs()); err != nil {
		slog.Error("party registry incomplete", "error", err)
		os.Exit(1)
	}

	deps := coordinator.Deps{
		Data:       data,
		Parties:    registry,
		Aggregator: tally.New(data.Sets),
		Formatter:  locale.NewFormatter(registry),
		Parliament: cfg.Parliament,
		Clock:      hover.RealClock,
	}
	slog.Info("Dataset ready",
		"ridings", len(data.Ridings),
		"result_sets", len(data.Sets),
		"seats", tally.TotalSeats(deps.Aggregator.Summary()),
	)

	store := sessions.NewStore(func(lang models.Lang) *coordinator.Coordinator {
		return coordinator.New(deps, lang)
	}, cfg.SessionTTL)
	go store.Run(ctx, sweepInterval)

	// Create router
	mux := router.NewRouter(dbConn, deps, store, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
