package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
	"github.com/vovakirdan/tui-quoridor/internal/rules"
)

var flagVeto bool

var wallCmd = &cobra.Command{
	Use:   "wall <file|-> <row> <col> <h|v>",
	Short: "Place a wall on a board diagram",
	Long: `Parse a board diagram, place a three-segment wall starting at the
grid cell row,col and print the resulting diagram. The start cell must be
a wall cell: a horizontal wall on an odd row and even column, a vertical
wall on an even row and odd column.

When rules.veto_blocking_walls is set (or --veto is given), a wall that
leaves either player without a route to their goal row is refused.

Examples:
  quoridor wall board.txt 1 0 h
  quoridor show | quoridor wall - 0 1 v --veto=false`,
	Args: cobra.ExactArgs(4),
	RunE: runWall,
}

func init() {
	wallCmd.Flags().BoolVar(&flagVeto, "veto", true, "Refuse walls that cut a player off")
}

func runWall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("veto") {
		cfg.Rules.VetoBlockingWalls = flagVeto
	}

	row, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("col: %w", err)
	}
	o, err := quoridor.ParseOrientation(args[3])
	if err != nil {
		return err
	}

	b, err := readBoard(cmd, args[0], cfg)
	if err != nil {
		return err
	}
	pos, ok := b.Dims().Position(row, col)
	if !ok {
		return fmt.Errorf("cell (%d,%d) is outside the %dx%d board", row, col, b.Dims().Height, b.Dims().Width)
	}
	if err := rules.ApplyWall(b, pos, o, cfg.Rules.VetoBlockingWalls); err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), b)
}
