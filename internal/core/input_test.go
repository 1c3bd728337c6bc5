package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionRotate, "Rotate"},
		{ActionSwitchPlayer, "SwitchPlayer"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}

func TestActionOffset(t *testing.T) {
	tests := []struct {
		action      Action
		dx, dy      int
		directional bool
	}{
		{ActionUp, 0, -1, true},
		{ActionDown, 0, 1, true},
		{ActionLeft, -1, 0, true},
		{ActionRight, 1, 0, true},
		{ActionConfirm, 0, 0, false},
		{ActionNone, 0, 0, false},
	}

	for _, tc := range tests {
		dx, dy := tc.action.Offset()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Offset() = (%d, %d), expected (%d, %d)", tc.action, dx, dy, tc.dx, tc.dy)
		}
		if tc.action.IsDirectional() != tc.directional {
			t.Errorf("%v.IsDirectional() = %v, expected %v", tc.action, tc.action.IsDirectional(), tc.directional)
		}
	}
}
