// Package quoridor implements the board-state engine for a two-player
// Quoridor-style game.
//
// The grid interleaves space cells (even row, even column) with wall-segment
// cells. Players step two cells at a time over the wall segment between two
// spaces; walls block three consecutive wall segments. The engine only answers
// whether an action is legal and applies it. Turn order, wall budgets and the
// "always leave a path" rule are the caller's policy: PlaceWall never consults
// CheckForPath.
//
// This package is UI-agnostic and deterministic. A Board is not safe for
// concurrent use.
package quoridor

import "fmt"

// Board owns the grid and both players' positions.
type Board struct {
	dims   Dims
	tiles  []Tile // row-major, index = row*Width + col
	posA   Position
	posB   Position
	tracer Tracer
}

// Option configures a Board.
type Option func(*Board)

// WithTracer installs a sink that observes path searches.
func WithTracer(t Tracer) Option {
	return func(b *Board) {
		b.tracer = t
	}
}

// New creates a board of the given odd dimensions with every wall segment
// open and both players on the center of their home rows.
func New(height, width int, opts ...Option) (*Board, error) {
	dims, err := NewDims(height, width)
	if err != nil {
		return nil, err
	}

	b := &Board{
		dims:  dims,
		tiles: make([]Tile, dims.Cells()), // zero value is WallOpen
	}
	for row := 0; row < dims.Height; row += 2 {
		for col := 0; col < dims.Width; col += 2 {
			b.tiles[row*dims.Width+col] = SpaceEmpty
		}
	}

	col := startColumn(dims.Width)
	b.posA = dims.MustPosition(0, col)
	b.posB = dims.MustPosition(dims.Height-1, col)
	b.tiles[b.posA.Index()] = SpacePlayerA
	b.tiles[b.posB.Index()] = SpacePlayerB

	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// startColumn returns the center column, shifted left onto a space column
// when the center falls on a wall column.
func startColumn(width int) int {
	col := width / 2
	if col%2 == 1 {
		col--
	}
	return col
}

// SetTracer replaces the path-search tracer. Nil disables tracing.
func (b *Board) SetTracer(t Tracer) {
	b.tracer = t
}

// Dims returns the board dimensions.
func (b *Board) Dims() Dims {
	return b.dims
}

// PositionOf returns the current position of a player.
func (b *Board) PositionOf(p Player) Position {
	if p == PlayerB {
		return b.posB
	}
	return b.posA
}

// Tile returns the tile at pos. It panics if pos lies outside the board,
// like indexing a slice out of range.
func (b *Board) Tile(pos Position) Tile {
	own, err := b.bind(pos)
	if err != nil {
		panic(err)
	}
	return b.tiles[own.Index()]
}

// bind re-expresses pos in this board's dims, failing with an out-of-bounds
// error when it does not fit.
func (b *Board) bind(pos Position) (Position, error) {
	if pos.dims == b.dims {
		return pos, nil
	}
	own, ok := b.dims.Position(pos.row, pos.col)
	if !ok {
		return Position{}, &GameError{Kind: KindTriedToGoOutOfBounds, At: pos}
	}
	return own, nil
}

// MovePlayer steps a player one space in the given direction, over the wall
// segment in between. Jumping over the opponent is not supported: a
// destination held by the other player is blocked.
func (b *Board) MovePlayer(player Player, dir Cardinality) error {
	from := b.PositionOf(player)
	step := dir.Delta()

	wall, err := from.Add(step)
	if err != nil {
		return err
	}
	dest, err := from.Add(step.Doubled())
	if err != nil {
		return err
	}

	wallTile := b.tiles[wall.Index()]
	if !wallTile.IsWall() {
		return &GameError{Kind: KindPositionIsNotWall, At: wall}
	}
	if wallTile.IsOccupied() {
		return &GameError{Kind: KindPositionIsBlocked, At: wall}
	}

	destTile := b.tiles[dest.Index()]
	if !destTile.IsSpace() {
		return &GameError{Kind: KindPositionIsNotSpace, At: dest}
	}
	if destTile.IsOccupied() {
		return &GameError{Kind: KindPositionIsBlocked, At: dest}
	}

	return b.swapSpaces(from, dest, player)
}

// swapSpaces exchanges two space tiles and records the moving player's new position.
func (b *Board) swapSpaces(from, to Position, player Player) error {
	fi, ti := from.Index(), to.Index()
	if !b.tiles[fi].IsSpace() || !b.tiles[ti].IsSpace() {
		return &GameError{Kind: KindSwappingDifferentTileTypes, At: from, Other: to}
	}
	b.tiles[fi], b.tiles[ti] = b.tiles[ti], b.tiles[fi]
	if player == PlayerB {
		b.posB = to
	} else {
		b.posA = to
	}
	return nil
}

// LegalMoves returns the directions MovePlayer would currently accept.
func (b *Board) LegalMoves(player Player) []Cardinality {
	from := b.PositionOf(player)
	moves := make([]Cardinality, 0, 4)
	for _, dir := range Cardinalities() {
		if _, ok := b.step(from, dir); ok {
			moves = append(moves, dir)
		}
	}
	return moves
}

// step applies the adjacency rule shared by moves and path search: the wall
// segment one cell away must be open and the space two cells away must be free.
func (b *Board) step(from Position, dir Cardinality) (Position, bool) {
	d := dir.Delta()
	wall, err := from.Add(d)
	if err != nil {
		return Position{}, false
	}
	dest, err := from.Add(d.Doubled())
	if err != nil {
		return Position{}, false
	}
	w, s := b.tiles[wall.Index()], b.tiles[dest.Index()]
	if !w.IsWall() || w.IsOccupied() || !s.IsSpace() || s.IsOccupied() {
		return Position{}, false
	}
	return dest, true
}

// WallCells returns the three wall segments a wall at pos would cover:
// pos, pos+d and pos+2d, where d is East for horizontal walls and South for
// vertical ones. It fails with the first out-of-bounds, non-wall or blocked cell.
func (b *Board) WallCells(pos Position, o Orientation) ([]Position, error) {
	first, err := b.bind(pos)
	if err != nil {
		return nil, err
	}
	d := o.Delta()
	second, err := first.Add(d)
	if err != nil {
		return nil, err
	}
	third, err := first.Add(d.Doubled())
	if err != nil {
		return nil, err
	}

	cells := []Position{first, second, third}
	for _, c := range cells {
		t := b.tiles[c.Index()]
		if !t.IsWall() {
			return nil, &GameError{Kind: KindPositionIsNotWall, At: c}
		}
		if t.IsOccupied() {
			return nil, &GameError{Kind: KindPositionIsBlocked, At: c}
		}
	}
	return cells, nil
}

// CanPlaceWall reports whether PlaceWall would succeed. It does not mutate the board.
func (b *Board) CanPlaceWall(pos Position, o Orientation) bool {
	_, err := b.WallCells(pos, o)
	return err == nil
}

// PlaceWall blocks three wall segments starting at pos. Either all three are
// blocked or none is. It does not check that both players keep a path to
// their goal row; callers enforcing that rule should try the wall on a Clone
// and consult CheckForPath first.
func (b *Board) PlaceWall(pos Position, o Orientation) error {
	cells, err := b.WallCells(pos, o)
	if err != nil {
		return err
	}
	for _, c := range cells {
		b.tiles[c.Index()] = WallBlocked
	}
	return nil
}

// CheckForWinner scans the goal rows column by column and returns the first
// player found on their goal row.
func (b *Board) CheckForWinner() (Player, bool) {
	last := (b.dims.Height - 1) * b.dims.Width
	for col := 0; col < b.dims.Width; col++ {
		if b.tiles[col] == SpacePlayerB {
			return PlayerB, true
		}
		if b.tiles[last+col] == SpacePlayerA {
			return PlayerA, true
		}
	}
	return 0, false
}

// Clone returns an independent copy of the board. The tracer is shared.
func (b *Board) Clone() *Board {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return &Board{
		dims:   b.dims,
		tiles:  tiles,
		posA:   b.posA,
		posB:   b.posB,
		tracer: b.tracer,
	}
}

// BlockedWalls returns the number of blocked wall segments.
func (b *Board) BlockedWalls() int {
	n := 0
	for _, t := range b.tiles {
		if t == WallBlocked {
			n++
		}
	}
	return n
}

// GoString implements fmt.GoStringer for debugging output.
func (b *Board) GoString() string {
	return fmt.Sprintf("quoridor.Board{%dx%d, A:%s, B:%s}", b.dims.Height, b.dims.Width, b.posA, b.posB)
}
