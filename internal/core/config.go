package core

// RuntimeConfig contains the settings the front-end starts with.
// It is assembled by the CLI from the loaded configuration, flags and the
// terminal size.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters

	BoardH int // Grid height, odd
	BoardW int // Grid width, odd

	VetoBlockingWalls bool // Reject walls that leave a player without a path
	ShowPath          bool // Start with the path overlay on
	Colors            bool // Style cells; false renders plain runes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:           80,
		ScreenH:           24,
		BoardH:            9,
		BoardW:            9,
		VetoBlockingWalls: true,
		Colors:            true,
	}
}
