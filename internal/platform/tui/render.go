package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-quoridor/internal/core"
	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
)

// Board layout on the screen: one title row, then the framed grid.
// Grid cell (row, col) is drawn at (boardX + 2*col, boardY + row); the odd
// screen columns in between are fillers that join horizontal walls.
const (
	boardX = 2
	boardY = 2

	statusLines = 2
)

const (
	glyphSpace   = '·'
	glyphWall    = '█'
	glyphPreview = '▒'
	glyphPath    = '*'
	glyphMove    = '○'
)

// screenSize returns the screen needed to draw a board of the given dims.
func screenSize(d quoridor.Dims) (w, h int) {
	w = core.Max(2*d.Width+3, 64)
	h = d.Height + 3 + statusLines
	return w, h
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// drawBoard draws the framed grid, the optional path overlay, and either the
// acting player's legal moves or the wall cursor preview.
func (m Model) drawBoard(s *core.Screen) {
	s.Clear()
	d := m.board.Dims()

	title := fmt.Sprintf("Quoridor %dx%d", d.Height, d.Width)
	s.DrawTextColor(boardX-2, 0, title, core.ColorStatus)

	s.DrawBox(core.NewRect(boardX-2, boardY-1, 2*d.Width+3, d.Height+2), core.ColorFrame)

	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			pos := d.MustPosition(row, col)
			r, c := cellGlyph(m.board.Tile(pos))
			x, y := cellXY(row, col)
			s.SetCell(x, y, r, c)

			// Join two blocked segments of the same wall row.
			if row%2 == 1 && col+1 < d.Width && m.board.Tile(pos) == quoridor.WallBlocked &&
				m.board.Tile(d.MustPosition(row, col+1)) == quoridor.WallBlocked {
				s.SetCell(x+1, y, glyphWall, core.ColorWall)
			}
		}
	}

	for _, path := range m.paths {
		for _, pos := range path {
			if m.board.Tile(pos).IsOccupied() {
				continue
			}
			x, y := cellXY(pos.Row(), pos.Col())
			s.SetCell(x, y, glyphPath, core.ColorPath)
		}
	}

	if m.mode == ModeMove {
		from := m.board.PositionOf(m.player)
		for _, dir := range m.board.LegalMoves(m.player) {
			dest, err := from.Add(dir.Delta().Doubled())
			if err != nil {
				continue
			}
			x, y := cellXY(dest.Row(), dest.Col())
			s.SetCell(x, y, glyphMove, core.ColorSelected)
		}
	}

	if m.mode == ModeWall {
		color := core.ColorCursor
		if !m.board.CanPlaceWall(m.cursor, m.orientation) {
			color = core.ColorRejected
		}
		for _, pos := range previewCells(m.cursor, m.orientation) {
			x, y := cellXY(pos.Row(), pos.Col())
			s.SetCell(x, y, glyphPreview, color)
			if m.orientation == quoridor.Horizontal && pos != m.cursor {
				s.SetCell(x-1, y, glyphPreview, color)
			}
		}
	}
}

// drawStatus writes the mode line and the message line below the board.
func (m Model) drawStatus(s *core.Screen) {
	y := boardY + m.board.Dims().Height + 1

	mode := "move"
	if m.mode == ModeWall {
		mode = fmt.Sprintf("wall %s @ %s", m.orientation, m.cursor)
	}
	line := fmt.Sprintf("player %s | %s | walls %d", m.player, mode, m.board.BlockedWalls()/3)
	s.DrawTextColor(0, y, line, core.ColorStatus)
	s.SetCell(len("player "), y, []rune(m.player.String())[0], playerColor(m.player))

	switch {
	case m.err != nil:
		s.DrawTextColor(0, y+1, m.err.Error(), core.ColorError)
	default:
		if winner, ok := m.board.CheckForWinner(); ok {
			s.DrawTextCentered(y+1, fmt.Sprintf("Player %s wins!", winner), core.ColorBanner)
		} else if m.status != "" {
			s.DrawTextColor(0, y+1, m.status, core.ColorStatus)
		}
	}
}

func cellXY(row, col int) (x, y int) {
	return boardX + 2*col, boardY + row
}

func cellGlyph(t quoridor.Tile) (rune, core.Color) {
	switch t {
	case quoridor.WallBlocked:
		return glyphWall, core.ColorWall
	case quoridor.SpaceEmpty:
		return glyphSpace, core.ColorSpace
	case quoridor.SpacePlayerA:
		return 'A', core.ColorPlayerA
	case quoridor.SpacePlayerB:
		return 'B', core.ColorPlayerB
	default:
		return ' ', core.ColorDefault
	}
}

func playerColor(p quoridor.Player) core.Color {
	if p == quoridor.PlayerB {
		return core.ColorPlayerB
	}
	return core.ColorPlayerA
}

// previewCells returns the in-bounds cells a wall at pos would cover.
func previewCells(pos quoridor.Position, o quoridor.Orientation) []quoridor.Position {
	cells := []quoridor.Position{pos}
	d := o.Delta()
	if p, err := pos.Add(d); err == nil {
		cells = append(cells, p)
	}
	if p, err := pos.Add(d.Doubled()); err == nil {
		cells = append(cells, p)
	}
	return cells
}
