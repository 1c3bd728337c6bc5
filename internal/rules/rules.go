// Package rules holds the policies the front-ends layer over the engine.
// The engine only answers whether a single action is legal; whether a wall
// may cut a player off is decided here.
package rules

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
)

// ErrWallCutsOffPlayer is returned when a wall would leave a player with no
// route to their goal row and blocking walls are vetoed.
var ErrWallCutsOffPlayer = errors.New("wall would cut a player off from their goal row")

// ApplyWall places a wall on b. With veto set it then checks that both
// players still have a path and fails with ErrWallCutsOffPlayer otherwise.
// A vetoed wall stays on b, so callers try walls on a Clone.
func ApplyWall(b *quoridor.Board, pos quoridor.Position, o quoridor.Orientation, veto bool) error {
	if err := b.PlaceWall(pos, o); err != nil {
		return err
	}
	if !veto {
		return nil
	}
	for _, p := range []quoridor.Player{quoridor.PlayerA, quoridor.PlayerB} {
		if !b.CheckForPath(b.PositionOf(p), p) {
			return fmt.Errorf("player %s: %w", p, ErrWallCutsOffPlayer)
		}
	}
	return nil
}
