package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/mazeman/internal/maze"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel       = "MAZEMAN_LEVEL"
	EnvCellSize    = "MAZEMAN_CELL_SIZE"
	EnvOriginX     = "MAZEMAN_ORIGIN_X"
	EnvOriginY     = "MAZEMAN_ORIGIN_Y"
	EnvRowsOffset  = "MAZEMAN_ROWS_OFFSET"
	EnvFullRefresh = "MAZEMAN_FULL_REFRESH"
	EnvDropAllDots = "MAZEMAN_DROP_ALL_DOTS"
)

// Config holds game configuration options.
type Config struct {
	// LevelPath is the level file to load. Empty means the bundled level.
	LevelPath string

	// Layout places the grid in world space.
	Layout maze.Layout

	// FullRefresh rebuilds every tile visual each tick instead of
	// only respawning cells that changed.
	FullRefresh bool

	// DropAllDots clears every dot visual when any dot is eaten and lets the
	// same tick's refresh redraw the dots that remain. Off, only the eaten
	// cell's visual is dropped.
	DropAllDots bool
}

// DefaultConfig returns the configuration for the bundled level.
func DefaultConfig() Config {
	return Config{Layout: maze.DefaultLayout()}
}

// ConfigFromEnv overlays MAZEMAN_* environment variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.LevelPath = os.Getenv(EnvLevel)

	floats := []struct {
		env string
		dst *float64
	}{
		{EnvCellSize, &cfg.Layout.CellSize},
		{EnvOriginX, &cfg.Layout.OriginX},
		{EnvOriginY, &cfg.Layout.OriginY},
		{EnvRowsOffset, &cfg.Layout.RowsOffset},
	}
	for _, f := range floats {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s=%q: %w", f.env, v, err)
		}
		*f.dst = parsed
	}
	if cfg.Layout.CellSize <= 0 {
		return cfg, fmt.Errorf("invalid %s: cell size must be positive, got %v", EnvCellSize, cfg.Layout.CellSize)
	}

	bools := []struct {
		env string
		dst *bool
	}{
		{EnvFullRefresh, &cfg.FullRefresh},
		{EnvDropAllDots, &cfg.DropAllDots},
	}
	for _, b := range bools {
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s=%q: %w", b.env, v, err)
		}
		*b.dst = parsed
	}

	return cfg, nil
}
