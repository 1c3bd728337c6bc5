package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
)

func TestApplyWall(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		veto    bool
		row     int
		col     int
		wantErr error
		blocked int
	}{
		{name: "open wall", width: 5, veto: true, row: 1, col: 0, blocked: 3},
		// On a 5x3 board a horizontal wall at (1,0) spans the whole width.
		{name: "sealing wall vetoed", width: 3, veto: true, row: 1, col: 0, wantErr: ErrWallCutsOffPlayer, blocked: 3},
		{name: "sealing wall allowed", width: 3, veto: false, row: 1, col: 0, blocked: 3},
		{name: "illegal wall", width: 3, veto: true, row: 0, col: 0, wantErr: quoridor.ErrPositionIsNotWall, blocked: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := quoridor.New(5, tc.width)
			require.NoError(t, err)

			err = ApplyWall(b, b.Dims().MustPosition(tc.row, tc.col), quoridor.Horizontal, tc.veto)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.blocked, b.BlockedWalls())
		})
	}
}

func TestApplyWallOnCloneKeepsOriginal(t *testing.T) {
	b, err := quoridor.New(5, 3)
	require.NoError(t, err)

	trial := b.Clone()
	err = ApplyWall(trial, b.Dims().MustPosition(1, 0), quoridor.Horizontal, true)
	require.ErrorIs(t, err, ErrWallCutsOffPlayer)
	assert.Contains(t, err.Error(), "player A")
	assert.Equal(t, 0, b.BlockedWalls())
}
