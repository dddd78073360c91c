// Package config provides YAML-based configuration loading for Numbers.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/vovakirdan/tui-numbers/internal/core"
	engine "github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
)

// AppName names the XDG config and data subdirectories.
const AppName = "numbers"

// NumbersConfig contains all configuration for the game and its front ends.
type NumbersConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Input     InputConfig     `yaml:"input"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Render    RenderConfig    `yaml:"render"`
	Storage   StorageConfig   `yaml:"storage"`
}

// BoardConfig selects the starting layout and neighbour rules.
type BoardConfig struct {
	EdgePolicy string `yaml:"edge_policy"` // "wrap" or "row_bounded"
	Preset     string `yaml:"preset"`      // Preset ID, empty for classic
	PresetDir  string `yaml:"preset_dir"`  // Extra preset directory
}

// InputConfig controls input handling in the terminal UI.
type InputConfig struct {
	DebounceMS int `yaml:"debounce_ms"` // Repeats of the same input inside this window are dropped
}

// AutopilotConfig controls the autopilot pace.
type AutopilotConfig struct {
	StepTicks int `yaml:"step_ticks"` // Ticks between autopilot activations
}

// RenderConfig controls board rendering.
type RenderConfig struct {
	CollapseRows bool `yaml:"collapse_rows"`
}

// StorageConfig locates the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate reports the first invalid setting.
func (c NumbersConfig) Validate() error {
	if _, err := engine.ParseEdgePolicy(c.Board.EdgePolicy); err != nil {
		return fmt.Errorf("config: board.edge_policy: %w", err)
	}
	if c.Input.DebounceMS < 0 {
		return errors.New("config: input.debounce_ms must not be negative")
	}
	if c.Autopilot.StepTicks < 1 {
		return errors.New("config: autopilot.step_ticks must be positive")
	}
	return nil
}

// Debounce returns the input debounce window.
func (c NumbersConfig) Debounce() time.Duration {
	return time.Duration(c.Input.DebounceMS) * time.Millisecond
}

// DBPath returns the configured database path or the XDG default.
func (c NumbersConfig) DBPath() string {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath
	}
	return filepath.Join(xdg.DataHome, AppName, "results.db")
}

// PresetDir returns the configured preset directory or the XDG default.
func (c NumbersConfig) PresetDir() string {
	if c.Board.PresetDir != "" {
		return c.Board.PresetDir
	}
	return filepath.Join(xdg.ConfigHome, AppName, "boards")
}

// Apply copies the game settings into a runtime config.
func (c NumbersConfig) Apply(rc *core.RuntimeConfig) {
	rc.Board = c.Board.Preset
	rc.PresetDir = c.PresetDir()
	rc.EdgePolicy = c.Board.EdgePolicy
	rc.AutopilotTicks = c.Autopilot.StepTicks
	rc.CollapseRows = c.Render.CollapseRows
}
