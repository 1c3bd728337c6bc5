package core

// Action represents a semantic board action, abstracted from physical key presses.
// The front-end maps keys to actions so board logic works with intents.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow - step north or move the wall cursor
	ActionDown                // S, Down arrow
	ActionLeft                // A, Left arrow
	ActionRight               // D, Right arrow
	ActionToggleMode          // M - switch between moving and placing walls
	ActionRotate              // O - rotate the wall cursor
	ActionConfirm             // Enter - place the wall under the cursor
	ActionSwitchPlayer        // Tab - act as the other player
	ActionUndo                // U
	ActionNew                 // N - start a fresh board
	ActionTogglePath          // P - show the path each player's search found
	ActionHelp                // ? - expand key help
	ActionQuit                // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionRotate:
		return "Rotate"
	case ActionConfirm:
		return "Confirm"
	case ActionSwitchPlayer:
		return "SwitchPlayer"
	case ActionUndo:
		return "Undo"
	case ActionNew:
		return "New"
	case ActionTogglePath:
		return "TogglePath"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action is one of the four arrows.
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionRight
}

// Offset returns the screen offset of a directional action:
// dx grows to the right, dy grows downward. Other actions return 0, 0.
func (a Action) Offset() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	}
	return 0, 0
}
