// Package main is the entry point for Ardentia.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/ardentia/internal/config"
	"github.com/samdwyer/ardentia/internal/game"
	"github.com/samdwyer/ardentia/internal/gamedata"
	"github.com/samdwyer/ardentia/internal/telemetry"
	"github.com/samdwyer/ardentia/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (default ./ardentia.yaml if present)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "ardentia: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Load .env file for local development
	// This makes HONEYCOMB_ARDENTIA_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := telemetry.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown := setupTelemetry(ctx, logger)
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("shutting down telemetry", zap.Error(err))
			}
		}()
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	g, err := game.New(game.ConfigFrom(cfg.Game), catalog, logger)
	if err != nil {
		return fmt.Errorf("initializing game: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Close()

	logger.Info("ardentia started", zap.String("zone", cfg.Game.Zone))
	if err := ui.Run(ctx, g, screen, cfg.Game.TickInterval); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("ardentia stopped")
	return nil
}

// setupTelemetry exports the Honeycomb settings and starts tracing. Failure
// is logged and the game runs without observability.
func setupTelemetry(ctx context.Context, logger *zap.Logger) func(context.Context) error {
	noop := func(context.Context) error { return nil }

	hc, err := telemetry.LoadHoneycombConfig()
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
		return noop
	}
	if err := hc.Apply(); err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
		return noop
	}

	shutdown, err := telemetry.Setup(ctx, uuid.NewString())
	if err != nil {
		logger.Warn("telemetry setup failed; game will run without observability", zap.Error(err))
		return noop
	}
	return shutdown
}
