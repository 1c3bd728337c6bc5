// quoridor is a terminal sandbox and toolbox for the Quoridor board engine.
//
// Usage:
//
//	quoridor play            - Open the interactive board
//	quoridor show            - Print an empty board diagram
//	quoridor check <file|->  - Inspect a board diagram
//	quoridor move <file|-> <player> <dir>        - Move a player on a diagram
//	quoridor wall <file|-> <row> <col> <h|v>     - Place a wall on a diagram
//	quoridor config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.quoridor/config.yaml, ./configs/quoridor.yaml)
//	--log-level <level>  - debug, info, warn or error
//	--trace-paths        - Log every path search at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/logging"
)

var (
	// Global flags
	flagConfig     string
	flagLogLevel   string
	flagTracePaths bool

	// Board size flags shared by play and show
	flagHeight int
	flagWidth  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quoridor",
	Short: "Quoridor - a wall-placement board game engine in your terminal",
	Long: `Quoridor drives a two-player board where pawns race to the opposite
side while walls close off routes.

Available commands:
  play     - Interactive board sandbox
  show     - Print an empty board
  check    - Inspect a board diagram: winner and paths
  move     - Move a player on a diagram and print the result
  wall     - Place a wall on a diagram and print the result
  config   - Print the effective configuration

Examples:
  quoridor play
  quoridor play --height 7 --width 7
  quoridor show --height 5 --width 5
  quoridor check board.txt
  quoridor show | quoridor check -
  quoridor show | quoridor move - a south`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagTracePaths, "trace-paths", false, "Log path searches at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(wallCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("trace-paths") {
		cfg.Log.TracePaths = flagTracePaths
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	return cfg, cfg.Validate()
}

// stderrLogger returns the logger for commands that keep the terminal.
func stderrLogger(cfg config.Config) *log.Logger {
	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return logging.Discard()
	}
	return logger
}
