package core

// Color identifies the role of a screen cell. The platform layer maps each
// role to a terminal color, so game rendering never deals with ANSI codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFrame         // board border
	ColorSpace         // empty space cell
	ColorPlayerA
	ColorPlayerB
	ColorWall     // blocked wall segment
	ColorCursor   // wall placement preview that fits
	ColorRejected // wall placement preview that does not fit
	ColorPath     // path overlay
	ColorSelected // legal destinations of the acting player
	ColorStatus   // status line
	ColorError    // error line
	ColorBanner   // winner banner
)
