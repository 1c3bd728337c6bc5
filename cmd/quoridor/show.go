package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print an empty board",
	Long: `Print the diagram of a fresh board: '.' spaces, ' ' open wall
segments, 'A' and 'B' the players. The output is accepted by 'check'.

Examples:
  quoridor show
  quoridor show --height 5 --width 7`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagHeight, "height", 9, "Board height in grid cells (odd)")
	showCmd.Flags().IntVar(&flagWidth, "width", 9, "Board width in grid cells (odd)")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return printBoard(cmd.OutOrStdout(), cfg.Board.Height, cfg.Board.Width)
}

func printBoard(w io.Writer, height, width int) error {
	b, err := quoridor.New(height, width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, b.String())
	return err
}
