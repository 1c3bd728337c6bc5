package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/core"
	"github.com/vovakirdan/tui-quoridor/internal/logging"
	"github.com/vovakirdan/tui-quoridor/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive board",
	Long: `Open a board in the terminal. Either player can act at any time;
tab selects which one the arrow keys move.

Controls:
  Arrows/WASD  - Move the player, or the wall cursor in wall mode
  Tab          - Switch player
  M            - Toggle move/wall mode
  O            - Rotate wall
  Enter        - Place wall
  U            - Undo
  N            - New board
  P            - Show paths
  ?            - Full help
  Q/Ctrl+C     - Quit

Logs go to log.file while the board is open.

Examples:
  quoridor play
  quoridor play --height 7 --width 11
  quoridor play --config ./my-quoridor.yaml --log-level debug --trace-paths`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeight, "height", 9, "Board height in grid cells (odd)")
	playCmd.Flags().IntVar(&flagWidth, "width", 9, "Board width in grid cells (odd)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs a terminal; use 'quoridor show' or 'quoridor check' instead.")
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.BoardH = cfg.Board.Height
	rc.BoardW = cfg.Board.Width
	rc.VetoBlockingWalls = cfg.Rules.VetoBlockingWalls
	rc.ShowPath = cfg.UI.ShowPath
	rc.Colors = cfg.UI.Colors

	logger, closeLog := fileLogger(cfg)
	defer closeLog()

	opts := []tui.Option{tui.WithLogger(logger)}
	if cfg.Log.TracePaths {
		opts = append(opts, tui.WithPathTracing())
	}

	logger.Info("session started", "height", rc.BoardH, "width", rc.BoardW, "veto", rc.VetoBlockingWalls)
	if runErr := tui.Run(rc, opts...); runErr != nil {
		logger.Error("session failed", "err", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("session ended")
}

// fileLogger opens the configured log file. The board owns the terminal, so
// on failure it warns once on stderr and continues without logging.
func fileLogger(cfg config.Config) (*log.Logger, func()) {
	path, err := config.ExpandHome(cfg.Log.File)
	if err == nil && path != "" {
		logger, f, fileErr := logging.NewFile(path, cfg.Log.Level)
		if fileErr == nil {
			return logger, func() { f.Close() }
		}
		err = fileErr
	}
	if err != nil {
		stderrLogger(cfg).Warn("logging disabled", "err", err)
	}
	return logging.Discard(), func() {}
}
