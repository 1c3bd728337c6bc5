package quoridor

import (
	"fmt"
	"strings"
)

// Cardinality is one of the four compass directions.
// North decreases the row index, South increases it.
type Cardinality uint8

const (
	North Cardinality = iota
	East
	South
	West
)

// Cardinalities returns all directions in declaration order.
func Cardinalities() []Cardinality {
	return []Cardinality{North, East, South, West}
}

// String returns the string representation of a direction.
func (c Cardinality) String() string {
	switch c {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the single-step offset for this direction.
func (c Cardinality) Delta() PositionDelta {
	switch c {
	case North:
		return PositionDelta{Row: -1, Col: 0}
	case East:
		return PositionDelta{Row: 0, Col: 1}
	case South:
		return PositionDelta{Row: 1, Col: 0}
	case West:
		return PositionDelta{Row: 0, Col: -1}
	default:
		return PositionDelta{}
	}
}

// ParseCardinality accepts compass names, their initials and screen words
// (up/down/left/right), case-insensitively.
func ParseCardinality(s string) (Cardinality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up":
		return North, nil
	case "e", "east", "right":
		return East, nil
	case "s", "south", "down":
		return South, nil
	case "w", "west", "left":
		return West, nil
	}
	return 0, fmt.Errorf("quoridor: unknown direction %q", s)
}

// Orientation is the axis along which a three-segment wall is laid.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Delta returns the step between consecutive wall segments.
func (o Orientation) Delta() PositionDelta {
	if o == Vertical {
		return South.Delta()
	}
	return East.Delta()
}

// Rotated returns the other orientation.
func (o Orientation) Rotated() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ParseOrientation accepts "h", "horizontal", "v" and "vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("quoridor: unknown orientation %q", s)
}
