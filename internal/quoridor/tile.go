package quoridor

import (
	"fmt"
	"strings"
)

// Tile is the content of one grid cell: a space cell (empty or holding a
// player) or a wall-segment cell (open or blocked).
// The zero value is an open wall segment.
type Tile uint8

const (
	WallOpen Tile = iota
	WallBlocked
	SpaceEmpty
	SpacePlayerA
	SpacePlayerB
)

// IsWall reports whether the tile is a wall segment.
func (t Tile) IsWall() bool {
	return t == WallOpen || t == WallBlocked
}

// IsSpace reports whether the tile is a space cell.
func (t Tile) IsSpace() bool {
	return t == SpaceEmpty || t == SpacePlayerA || t == SpacePlayerB
}

// IsOccupied reports whether the tile holds a player or a blocked wall.
func (t Tile) IsOccupied() bool {
	return t == SpacePlayerA || t == SpacePlayerB || t == WallBlocked
}

// Player returns the player standing on the tile, if any.
func (t Tile) Player() (Player, bool) {
	switch t {
	case SpacePlayerA:
		return PlayerA, true
	case SpacePlayerB:
		return PlayerB, true
	}
	return 0, false
}

// Rune returns the single-character form of the tile.
func (t Tile) Rune() rune {
	switch t {
	case WallBlocked:
		return 'X'
	case SpaceEmpty:
		return '.'
	case SpacePlayerA:
		return 'A'
	case SpacePlayerB:
		return 'B'
	default:
		return ' '
	}
}

// String returns the tile rune as a string.
func (t Tile) String() string {
	return string(t.Rune())
}

// tiles lists every variant; TileFromRune derives its table from Rune so the
// two directions cannot drift apart.
var tiles = [...]Tile{WallOpen, WallBlocked, SpaceEmpty, SpacePlayerA, SpacePlayerB}

// TileFromRune parses the single-character form produced by Rune.
func TileFromRune(r rune) (Tile, error) {
	for _, t := range tiles {
		if t.Rune() == r {
			return t, nil
		}
	}
	return 0, &GameError{Kind: KindInvalidTileChar, Char: r}
}

// Player identifies one of the two players.
// A starts on row 0 and advances toward increasing rows; B does the opposite.
type Player uint8

const (
	PlayerA Player = iota
	PlayerB
)

// String returns the player's marker letter.
func (p Player) String() string {
	if p == PlayerB {
		return "B"
	}
	return "A"
}

// ParsePlayer accepts "a" or "b", case-insensitively.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return PlayerA, nil
	case "b":
		return PlayerB, nil
	}
	return 0, fmt.Errorf("quoridor: unknown player %q", s)
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Tile returns the space tile holding this player.
func (p Player) Tile() Tile {
	if p == PlayerB {
		return SpacePlayerB
	}
	return SpacePlayerA
}

// GoalRow returns the row the player must reach to win.
func (p Player) GoalRow(d Dims) int {
	if p == PlayerB {
		return 0
	}
	return d.Height - 1
}
