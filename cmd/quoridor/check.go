package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/logging"
	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
)

var flagDiagram bool

var checkCmd = &cobra.Command{
	Use:   "check <file|->",
	Short: "Inspect a board diagram",
	Long: `Parse a board diagram and report the winner and, for each player,
whether a route to the goal row exists.

Diagram characters:
  .  empty space       X  blocked wall segment
  A  player A          ' ' open wall segment
  B  player B

Examples:
  quoridor check board.txt
  quoridor check board.txt --diagram
  quoridor show | quoridor check -`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagDiagram, "diagram", false, "Print each found path over the board")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	b, err := readBoard(cmd, args[0], cfg)
	if err != nil {
		return err
	}
	return printCheck(cmd.OutOrStdout(), b, flagDiagram)
}

// readBoard parses the diagram in file, or stdin when file is "-".
func readBoard(cmd *cobra.Command, file string, cfg config.Config) (*quoridor.Board, error) {
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}

	var opts []quoridor.Option
	if cfg.Log.TracePaths {
		opts = append(opts, quoridor.WithTracer(logging.NewPathTracer(stderrLogger(cfg), nil)))
	}
	b, err := quoridor.ParseBoard(string(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	return b, nil
}

// printCheck writes the winner and per-player path report for b.
func printCheck(w io.Writer, b *quoridor.Board, diagram bool) error {
	d := b.Dims()
	var sb strings.Builder

	fmt.Fprintf(&sb, "Board %dx%d, %d blocked wall segments\n", d.Height, d.Width, b.BlockedWalls())
	if winner, ok := b.CheckForWinner(); ok {
		fmt.Fprintf(&sb, "Winner: %s\n", winner)
	} else {
		sb.WriteString("Winner: none\n")
	}

	for _, p := range []quoridor.Player{quoridor.PlayerA, quoridor.PlayerB} {
		start := b.PositionOf(p)
		path, found := b.FindPath(start, p)
		if !found {
			fmt.Fprintf(&sb, "Player %s at %s: no path to row %d\n", p, start, p.GoalRow(d))
			continue
		}

		steps := make([]string, len(path))
		for i, pos := range path {
			steps[i] = pos.String()
		}
		fmt.Fprintf(&sb, "Player %s at %s: path in %d moves: %s\n", p, start, len(path)-1, strings.Join(steps, " "))
		if diagram {
			sb.WriteString(b.RenderVisited(path))
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
