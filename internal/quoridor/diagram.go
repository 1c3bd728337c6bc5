package quoridor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDiagram is returned by ParseBoard for text that does not
// describe a valid board.
var ErrMalformedDiagram = errors.New("quoridor: malformed board diagram")

// String renders the board one grid row per line using tile runes.
func (b *Board) String() string {
	return b.render(nil)
}

// RenderVisited renders the board with the given cells drawn as '*'.
func (b *Board) RenderVisited(visited []Position) string {
	marks := make(map[int]bool, len(visited))
	for _, p := range visited {
		if own, err := b.bind(p); err == nil {
			marks[own.Index()] = true
		}
	}
	return b.render(marks)
}

func (b *Board) render(marks map[int]bool) string {
	var sb strings.Builder
	sb.Grow(b.dims.Cells() + b.dims.Height)
	for i, t := range b.tiles {
		if i > 0 && i%b.dims.Width == 0 {
			sb.WriteRune('\n')
		}
		if marks[i] {
			sb.WriteRune('*')
			continue
		}
		sb.WriteRune(t.Rune())
	}
	return sb.String()
}

// ParseBoard reads a diagram in the format produced by String.
// Lines shorter than the widest line are padded with open wall segments, so
// editors stripping trailing whitespace do not break a diagram.
func ParseBoard(text string, opts ...Option) (*Board, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	width := 0
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}

	dims, err := NewDims(len(rows), width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDiagram, err)
	}

	b := &Board{dims: dims, tiles: make([]Tile, dims.Cells())}
	for _, opt := range opts {
		opt(b)
	}

	players := map[Player]int{}
	for row, runes := range rows {
		for col := 0; col < width; col++ {
			r := ' '
			if col < len(runes) {
				r = runes[col]
			}
			t, err := TileFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", row+1, col+1, err)
			}

			pos := dims.MustPosition(row, col)
			if pos.IsSpace() != t.IsSpace() {
				return nil, fmt.Errorf("%w: %q at %s does not match the cell kind", ErrMalformedDiagram, r, pos)
			}
			if p, ok := t.Player(); ok {
				players[p]++
				if p == PlayerA {
					b.posA = pos
				} else {
					b.posB = pos
				}
			}
			b.tiles[pos.Index()] = t
		}
	}

	for _, p := range []Player{PlayerA, PlayerB} {
		if players[p] != 1 {
			return nil, fmt.Errorf("%w: found %d cells for player %s, want 1", ErrMalformedDiagram, players[p], p)
		}
	}
	return b, nil
}
