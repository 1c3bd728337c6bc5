package config

import (
	_ "embed"
)

//go:embed defaults/quoridor.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Height: 9,
			Width:  9,
		},
		Rules: RulesConfig{
			VetoBlockingWalls: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.quoridor/quoridor.log",
		},
		UI: UIConfig{
			Colors: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
