// Package main is the entry point for mazeman.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazeman/internal/game"
	"github.com/samdwyer/mazeman/internal/telemetry"
)

func main() {
	// A missing or malformed level is fatal; the error names the file
	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

// run starts the game and returns once it exits. Telemetry is flushed
// before returning, including spans that recorded a startup failure.
func run(ctx context.Context) error {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	shutdown, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv())
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
		// No key configured, spans go to the no-op provider
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
