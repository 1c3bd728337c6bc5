package quoridor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileClassification(t *testing.T) {
	tests := []struct {
		tile     Tile
		wall     bool
		space    bool
		occupied bool
	}{
		{WallOpen, true, false, false},
		{WallBlocked, true, false, true},
		{SpaceEmpty, false, true, false},
		{SpacePlayerA, false, true, true},
		{SpacePlayerB, false, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.tile.String(), func(t *testing.T) {
			assert.Equal(t, tc.wall, tc.tile.IsWall())
			assert.Equal(t, tc.space, tc.tile.IsSpace())
			assert.Equal(t, tc.occupied, tc.tile.IsOccupied())
		})
	}
}

func TestTileRuneRoundTrip(t *testing.T) {
	seen := map[rune]Tile{}
	for _, tile := range tiles {
		r := tile.Rune()
		prev, dup := seen[r]
		require.False(t, dup, "%v and %v share rune %q", prev, tile, r)
		seen[r] = tile

		back, err := TileFromRune(r)
		require.NoError(t, err)
		assert.Equal(t, tile, back)
	}
	assert.Equal(t, map[rune]Tile{
		'A': SpacePlayerA,
		'B': SpacePlayerB,
		'X': WallBlocked,
		' ': WallOpen,
		'.': SpaceEmpty,
	}, seen)
}

func TestTileFromRuneRejectsUnknown(t *testing.T) {
	for _, r := range []rune{'a', 'x', '#', '*', '\t', '0'} {
		_, err := TileFromRune(r)
		require.Error(t, err, "%q", r)
		assert.ErrorIs(t, err, ErrInvalidTileChar)

		var ge *GameError
		require.True(t, errors.As(err, &ge))
		assert.Equal(t, r, ge.Char)
		assert.Equal(t, KindInvalidTileChar, KindOf(err))
	}
}

func TestParsePlayer(t *testing.T) {
	for in, want := range map[string]Player{"a": PlayerA, "A": PlayerA, " b ": PlayerB} {
		got, err := ParsePlayer(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePlayer("c")
	assert.Error(t, err)
}

func TestTilePlayer(t *testing.T) {
	p, ok := SpacePlayerA.Player()
	assert.True(t, ok)
	assert.Equal(t, PlayerA, p)

	p, ok = SpacePlayerB.Player()
	assert.True(t, ok)
	assert.Equal(t, PlayerB, p)

	_, ok = SpaceEmpty.Player()
	assert.False(t, ok)

	assert.Equal(t, SpacePlayerB, PlayerB.Tile())
	assert.Equal(t, PlayerA, PlayerB.Opponent())
	assert.Equal(t, 0, PlayerB.GoalRow(Dims{Height: 9, Width: 9}))
	assert.Equal(t, 8, PlayerA.GoalRow(Dims{Height: 9, Width: 9}))
}

func TestGameErrorMessages(t *testing.T) {
	d := Dims{Height: 5, Width: 5}
	at := d.MustPosition(1, 2)

	tests := []struct {
		err      *GameError
		sentinel error
		contains string
	}{
		{&GameError{Kind: KindPositionIsBlocked, At: at}, ErrPositionIsBlocked, "(1,2) is occupied"},
		{&GameError{Kind: KindPositionIsNotWall, At: at}, ErrPositionIsNotWall, "not a wall"},
		{&GameError{Kind: KindPositionIsNotSpace, At: at}, ErrPositionIsNotSpace, "not a space"},
		{&GameError{Kind: KindSpaceIsOutOfReach, At: at}, ErrSpaceIsOutOfReach, "out of reach"},
		{&GameError{Kind: KindPositionUnderflow, At: at, Delta: PositionDelta{Row: -9}}, ErrPositionUnderflow, "(-9,0)"},
		{&GameError{Kind: KindPositionOverflow, At: at, Delta: PositionDelta{Col: 9}}, ErrPositionOverflow, "out of bounds"},
		{&GameError{Kind: KindSwappingDifferentTileTypes, At: at, Other: d.MustPosition(2, 2)}, ErrSwappingDifferentTileTypes, "(2,2)"},
	}

	for _, tc := range tests {
		t.Run(tc.err.Kind.String(), func(t *testing.T) {
			assert.Contains(t, tc.err.Error(), tc.contains)
			assert.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}
