package quoridor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDims(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		wantErr       bool
	}{
		{"5x5", 5, 5, false},
		{"9x9", 9, 9, false},
		{"3x1", 3, 1, false},
		{"even height", 4, 5, true},
		{"even width", 5, 6, true},
		{"height too small", 1, 5, true},
		{"zero width", 5, 0, true},
		{"negative", -3, 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDims(tc.height, tc.width)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.height*tc.width, d.Cells())
		})
	}
}

func TestDimsPositionRejectsOutOfRange(t *testing.T) {
	d := Dims{Height: 5, Width: 5}

	for _, rc := range [][2]int{{5, 0}, {0, 5}, {-1, 0}, {0, -1}, {100, 100}} {
		_, ok := d.Position(rc[0], rc[1])
		assert.False(t, ok, "Position(%d, %d) should fail", rc[0], rc[1])
	}

	p, ok := d.Position(4, 4)
	require.True(t, ok)
	row, col := p.Tuple()
	assert.Equal(t, 4, row)
	assert.Equal(t, 4, col)
}

func TestIndexBijection(t *testing.T) {
	d := Dims{Height: 1001, Width: 101}
	seen := make(map[Position]bool, d.Cells())

	for index := 0; index < d.Cells(); index++ {
		p, err := d.PositionAt(index)
		require.NoError(t, err)
		require.False(t, seen[p], "%s seen twice, again at index %d", p, index)
		seen[p] = true
		require.Equal(t, index, p.Index())
	}

	for row := 0; row < d.Height; row += 37 {
		for col := 0; col < d.Width; col += 7 {
			p := d.MustPosition(row, col)
			back, err := d.PositionAt(p.Index())
			require.NoError(t, err)
			assert.Equal(t, p, back)
		}
	}
}

func TestPositionAtOutOfRange(t *testing.T) {
	d := Dims{Height: 3, Width: 3}
	for _, index := range []int{-1, 9, 10, 99} {
		_, err := d.PositionAt(index)
		require.Error(t, err, "index %d", index)
		assert.ErrorIs(t, err, ErrIndexToPosition)

		var ge *GameError
		require.True(t, errors.As(err, &ge))
		assert.Equal(t, index, ge.Index)
	}
}

func TestPositionAddSub(t *testing.T) {
	d := Dims{Height: 5, Width: 5}
	origin := d.MustPosition(2, 2)

	tests := []struct {
		name    string
		delta   PositionDelta
		sub     bool
		want    [2]int
		wantErr bool
	}{
		{"add east", East.Delta(), false, [2]int{2, 3}, false},
		{"add doubled south", South.Delta().Doubled(), false, [2]int{4, 2}, false},
		{"add doubled north", North.Delta().Doubled(), false, [2]int{0, 2}, false},
		{"sub west", West.Delta(), true, [2]int{2, 3}, false},
		{"add past bottom", PositionDelta{Row: 3}, false, [2]int{}, true},
		{"add past top", PositionDelta{Row: -3}, false, [2]int{}, true},
		{"sub past left", PositionDelta{Col: 3}, true, [2]int{}, true},
		{"huge delta", PositionDelta{Row: math.MaxInt32, Col: math.MinInt32}, false, [2]int{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Position
			var err error
			if tc.sub {
				got, err = origin.Sub(tc.delta)
			} else {
				got, err = origin.Add(tc.delta)
			}

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTriedToGoOutOfBounds)
				var ge *GameError
				require.True(t, errors.As(err, &ge))
				assert.Equal(t, origin, ge.At)
				assert.Equal(t, tc.delta, ge.Delta)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.MustPosition(tc.want[0], tc.want[1]), got)
		})
	}
}

func TestPositionAddAtZeroEdge(t *testing.T) {
	d := Dims{Height: 5, Width: 5}
	corner := d.MustPosition(0, 0)

	_, err := corner.Add(North.Delta())
	assert.ErrorIs(t, err, ErrTriedToGoOutOfBounds)
	_, err = corner.Add(West.Delta())
	assert.ErrorIs(t, err, ErrTriedToGoOutOfBounds)
	_, err = corner.Sub(South.Delta())
	assert.ErrorIs(t, err, ErrTriedToGoOutOfBounds)
}

func TestPositionSteps(t *testing.T) {
	d := Dims{Height: 5, Width: 5}
	corner := d.MustPosition(0, 0)

	_, ok := corner.StepLeft()
	assert.False(t, ok)
	_, ok = corner.StepUp()
	assert.False(t, ok)

	right, ok := corner.StepRight()
	require.True(t, ok)
	assert.Equal(t, d.MustPosition(0, 1), right)

	down, ok := corner.StepDown()
	require.True(t, ok)
	assert.Equal(t, d.MustPosition(1, 0), down)

	far := d.MustPosition(4, 4)
	_, ok = far.StepRight()
	assert.False(t, ok)
	_, ok = far.StepDown()
	assert.False(t, ok)
}

func TestPositionIsSpace(t *testing.T) {
	d := Dims{Height: 5, Width: 5}
	assert.True(t, d.MustPosition(0, 0).IsSpace())
	assert.True(t, d.MustPosition(2, 4).IsSpace())
	assert.False(t, d.MustPosition(1, 0).IsSpace())
	assert.False(t, d.MustPosition(0, 1).IsSpace())
	assert.False(t, d.MustPosition(1, 1).IsSpace())
}

func TestCardinalityDelta(t *testing.T) {
	want := map[Cardinality]PositionDelta{
		North: {Row: -1},
		East:  {Col: 1},
		South: {Row: 1},
		West:  {Col: -1},
	}
	for _, c := range Cardinalities() {
		d := c.Delta()
		assert.Equal(t, want[c], d, "%s", c)
		assert.Equal(t, PositionDelta{Row: d.Row * 2, Col: d.Col * 2}, d.Doubled())
	}
}

func TestParseCardinalityAndOrientation(t *testing.T) {
	for in, want := range map[string]Cardinality{"n": North, "Up": North, "east": East, "DOWN": South, "left": West} {
		got, err := ParseCardinality(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseCardinality("sideways")
	assert.Error(t, err)

	o, err := ParseOrientation("V")
	require.NoError(t, err)
	assert.Equal(t, Vertical, o)
	assert.Equal(t, Horizontal, o.Rotated())
	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)
}
