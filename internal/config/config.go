// Package config provides YAML-based configuration loading for the
// quoridor CLI and terminal front-end.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
)

// Config contains all configuration for a quoridor session.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
	Log   LogConfig   `yaml:"log"`
	UI    UIConfig    `yaml:"ui"`
}

// BoardConfig defines the grid size. Both values count grid cells
// (spaces and wall segments) and must be odd.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// RulesConfig holds the policies the front-end layers over the engine.
type RulesConfig struct {
	VetoBlockingWalls bool `yaml:"veto_blocking_walls"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // used while the TUI owns the terminal
	TracePaths bool   `yaml:"trace_paths"`
}

// UIConfig defines display options for the terminal front-end.
type UIConfig struct {
	ShowPath bool `yaml:"show_path"`
	Colors   bool `yaml:"colors"`
}

// Validate checks the configuration for values the engine would reject.
func (c Config) Validate() error {
	if _, err := quoridor.NewDims(c.Board.Height, c.Board.Width); err != nil {
		return fmt.Errorf("config: board: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log: unknown level %q", c.Log.Level)
	}
	return nil
}
