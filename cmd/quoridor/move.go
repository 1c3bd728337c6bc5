package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
)

var moveCmd = &cobra.Command{
	Use:   "move <file|-> <player> <dir>",
	Short: "Move a player on a board diagram",
	Long: `Parse a board diagram, move one player a single step and print the
resulting diagram. A rejected move prints the reason and exits non-zero.

Player is a or b. Direction is north/east/south/west, their initials, or
up/right/down/left.

Examples:
  quoridor move board.txt a south
  quoridor show | quoridor move - b up`,
	Args: cobra.ExactArgs(3),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	player, err := quoridor.ParsePlayer(args[1])
	if err != nil {
		return err
	}
	dir, err := quoridor.ParseCardinality(args[2])
	if err != nil {
		return err
	}

	b, err := readBoard(cmd, args[0], cfg)
	if err != nil {
		return err
	}
	if err := b.MovePlayer(player, dir); err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), b)
}

// printResult writes the diagram of b followed by the winner, if any.
func printResult(w io.Writer, b *quoridor.Board) error {
	if _, err := fmt.Fprintln(w, b.String()); err != nil {
		return err
	}
	if winner, ok := b.CheckForWinner(); ok {
		_, err := fmt.Fprintf(w, "Winner: %s\n", winner)
		return err
	}
	return nil
}
