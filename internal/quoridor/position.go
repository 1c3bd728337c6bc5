package quoridor

import (
	"errors"
	"fmt"
)

// ErrInvalidDims is returned when a board is requested with unusable dimensions.
var ErrInvalidDims = errors.New("quoridor: invalid board dimensions")

// Dims describes the size of a board grid.
// Both dimensions are odd: even/even coordinates are space cells and every
// other coordinate is a wall-segment cell.
type Dims struct {
	Height int
	Width  int
}

// NewDims validates the dimensions once so positions never have to.
func NewDims(height, width int) (Dims, error) {
	switch {
	case height < 3:
		return Dims{}, fmt.Errorf("%w: height %d must be at least 3", ErrInvalidDims, height)
	case width < 1:
		return Dims{}, fmt.Errorf("%w: width %d must be at least 1", ErrInvalidDims, width)
	case height%2 == 0:
		return Dims{}, fmt.Errorf("%w: height %d must be odd", ErrInvalidDims, height)
	case width%2 == 0:
		return Dims{}, fmt.Errorf("%w: width %d must be odd", ErrInvalidDims, width)
	}
	return Dims{Height: height, Width: width}, nil
}

// Cells returns the number of cells in the grid.
func (d Dims) Cells() int {
	return d.Height * d.Width
}

// Position returns the position at (row, col), or false if it lies outside the grid.
func (d Dims) Position(row, col int) (Position, bool) {
	if row < 0 || col < 0 || row >= d.Height || col >= d.Width {
		return Position{}, false
	}
	return Position{row: row, col: col, dims: d}, true
}

// MustPosition is like Position but panics when (row, col) is out of range.
// Intended for coordinates known to be valid, such as fixtures and start squares.
func (d Dims) MustPosition(row, col int) Position {
	p, ok := d.Position(row, col)
	if !ok {
		panic(fmt.Sprintf("quoridor: (%d,%d) is outside a %dx%d grid", row, col, d.Height, d.Width))
	}
	return p
}

// PositionAt converts a linear index back into a position.
// It is the exact inverse of Position.Index.
func (d Dims) PositionAt(index int) (Position, error) {
	if index < 0 || index >= d.Cells() {
		return Position{}, &GameError{Kind: KindIndexToPosition, Index: index}
	}
	return Position{row: index / d.Width, col: index % d.Width, dims: d}, nil
}

// PositionDelta is a signed (row, col) offset.
type PositionDelta struct {
	Row int32
	Col int32
}

// Doubled returns the delta scaled by two, used to step over the wall cell
// between two space cells.
func (d PositionDelta) Doubled() PositionDelta {
	return PositionDelta{Row: d.Row * 2, Col: d.Col * 2}
}

// String returns a string representation of the delta.
func (d PositionDelta) String() string {
	return fmt.Sprintf("(%d,%d)", d.Row, d.Col)
}

// Position is a bounds-checked coordinate on a grid of known Dims.
// Positions are immutable values and may be used as map keys.
type Position struct {
	row  int
	col  int
	dims Dims
}

// Row returns the row index.
func (p Position) Row() int { return p.row }

// Col returns the column index.
func (p Position) Col() int { return p.col }

// Dims returns the grid the position belongs to.
func (p Position) Dims() Dims { return p.dims }

// Tuple returns (row, col).
func (p Position) Tuple() (int, int) {
	return p.row, p.col
}

// Index returns the row-major linear index: row*Width + col.
func (p Position) Index() int {
	return p.row*p.dims.Width + p.col
}

// IsSpace reports whether the position addresses a space cell.
func (p Position) IsSpace() bool {
	return p.row%2 == 0 && p.col%2 == 0
}

// Add returns p offset by d. Results outside the grid fail with
// KindTriedToGoOutOfBounds carrying p and d.
func (p Position) Add(d PositionDelta) (Position, error) {
	return p.offset(int64(d.Row), int64(d.Col), d)
}

// Sub returns p offset by the negation of d.
func (p Position) Sub(d PositionDelta) (Position, error) {
	return p.offset(-int64(d.Row), -int64(d.Col), d)
}

// offset does the arithmetic in int64 so a negative or oversized result is
// observed before it is converted back.
func (p Position) offset(dRow, dCol int64, d PositionDelta) (Position, error) {
	row := int64(p.row) + dRow
	col := int64(p.col) + dCol
	if row < 0 || col < 0 || row >= int64(p.dims.Height) || col >= int64(p.dims.Width) {
		return Position{}, &GameError{Kind: KindTriedToGoOutOfBounds, At: p, Delta: d}
	}
	return Position{row: int(row), col: int(col), dims: p.dims}, nil
}

// StepLeft returns the position one column to the left.
func (p Position) StepLeft() (Position, bool) {
	if p.col == 0 {
		return Position{}, false
	}
	return p.dims.Position(p.row, p.col-1)
}

// StepRight returns the position one column to the right.
func (p Position) StepRight() (Position, bool) {
	return p.dims.Position(p.row, p.col+1)
}

// StepUp returns the position one row up.
func (p Position) StepUp() (Position, bool) {
	if p.row == 0 {
		return Position{}, false
	}
	return p.dims.Position(p.row-1, p.col)
}

// StepDown returns the position one row down.
func (p Position) StepDown() (Position, bool) {
	return p.dims.Position(p.row+1, p.col)
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.row, p.col)
}
