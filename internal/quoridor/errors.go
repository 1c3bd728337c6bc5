package quoridor

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a GameError.
type ErrorKind uint8

const (
	KindInvalidTileChar ErrorKind = iota + 1
	KindIndexToPosition
	KindPositionIsBlocked
	KindPositionIsNotWall
	KindPositionIsNotSpace
	KindSpaceIsOutOfReach // reserved, not produced
	KindTriedToGoOutOfBounds
	KindPositionUnderflow // reserved, not produced
	KindPositionOverflow  // reserved, not produced
	KindSwappingDifferentTileTypes
)

// Sentinels for errors.Is. Every GameError unwraps to the one matching its kind.
var (
	ErrInvalidTileChar            = errors.New("quoridor: invalid tile char")
	ErrIndexToPosition            = errors.New("quoridor: index outside grid")
	ErrPositionIsBlocked          = errors.New("quoridor: position is blocked")
	ErrPositionIsNotWall          = errors.New("quoridor: position is not a wall")
	ErrPositionIsNotSpace         = errors.New("quoridor: position is not a space")
	ErrSpaceIsOutOfReach          = errors.New("quoridor: space is out of reach")
	ErrTriedToGoOutOfBounds       = errors.New("quoridor: tried to go out of bounds")
	ErrPositionUnderflow          = errors.New("quoridor: position underflow")
	ErrPositionOverflow           = errors.New("quoridor: position overflow")
	ErrSwappingDifferentTileTypes = errors.New("quoridor: swapping different tile types")
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidTileChar:
		return "InvalidTileChar"
	case KindIndexToPosition:
		return "IndexToPosition"
	case KindPositionIsBlocked:
		return "PositionIsBlocked"
	case KindPositionIsNotWall:
		return "PositionIsNotWall"
	case KindPositionIsNotSpace:
		return "PositionIsNotSpace"
	case KindSpaceIsOutOfReach:
		return "SpaceIsOutOfReach"
	case KindTriedToGoOutOfBounds:
		return "TriedToGoOutOfBounds"
	case KindPositionUnderflow:
		return "PositionUnderflow"
	case KindPositionOverflow:
		return "PositionOverflow"
	case KindSwappingDifferentTileTypes:
		return "SwappingDifferentTileTypes"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidTileChar:
		return ErrInvalidTileChar
	case KindIndexToPosition:
		return ErrIndexToPosition
	case KindPositionIsBlocked:
		return ErrPositionIsBlocked
	case KindPositionIsNotWall:
		return ErrPositionIsNotWall
	case KindPositionIsNotSpace:
		return ErrPositionIsNotSpace
	case KindSpaceIsOutOfReach:
		return ErrSpaceIsOutOfReach
	case KindTriedToGoOutOfBounds:
		return ErrTriedToGoOutOfBounds
	case KindPositionUnderflow:
		return ErrPositionUnderflow
	case KindPositionOverflow:
		return ErrPositionOverflow
	case KindSwappingDifferentTileTypes:
		return ErrSwappingDifferentTileTypes
	default:
		return nil
	}
}

// GameError is returned by every fallible board operation.
// Only the fields relevant to Kind are set.
type GameError struct {
	Kind  ErrorKind
	At    Position      // offending position
	Other Position      // second position for SwappingDifferentTileTypes
	Delta PositionDelta // offset for the bounds kinds
	Index int           // linear index for IndexToPosition
	Char  rune          // rune for InvalidTileChar
}

func (e *GameError) Error() string {
	switch e.Kind {
	case KindInvalidTileChar:
		return fmt.Sprintf("quoridor: char %q does not correspond to a tile", e.Char)
	case KindIndexToPosition:
		return fmt.Sprintf("quoridor: index %d does not fit inside the grid", e.Index)
	case KindPositionIsBlocked:
		return fmt.Sprintf("quoridor: position %s is occupied", e.At)
	case KindPositionIsNotWall:
		return fmt.Sprintf("quoridor: position %s is not a wall segment", e.At)
	case KindPositionIsNotSpace:
		return fmt.Sprintf("quoridor: position %s is not a space", e.At)
	case KindSpaceIsOutOfReach:
		return fmt.Sprintf("quoridor: position %s is out of reach", e.At)
	case KindTriedToGoOutOfBounds, KindPositionUnderflow, KindPositionOverflow:
		if e.Delta == (PositionDelta{}) {
			return fmt.Sprintf("quoridor: position %s is out of bounds", e.At)
		}
		return fmt.Sprintf("quoridor: position %s + %s is out of bounds", e.At, e.Delta)
	case KindSwappingDifferentTileTypes:
		return fmt.Sprintf("quoridor: position %s is not the same kind of tile as %s", e.At, e.Other)
	default:
		return "quoridor: unknown error"
	}
}

// Unwrap returns the sentinel for the error's kind.
func (e *GameError) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf returns the kind of the first GameError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}
