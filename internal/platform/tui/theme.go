package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-quoridor/internal/core"
)

// Theme maps each screen color role to a lipgloss style.
type Theme struct {
	styles map[core.Color]lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:  lipgloss.NewStyle(),
		core.ColorFrame:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),            // Dim gray
		core.ColorSpace:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),            // Dark gray
		core.ColorPlayerA:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),  // Bright cyan
		core.ColorPlayerB:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		core.ColorWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),            // Bright yellow
		core.ColorCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),             // Lime green
		core.ColorRejected: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),            // Red
		core.ColorPath:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")),            // Medium purple
		core.ColorSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		core.ColorStatus:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		core.ColorBanner:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}}
}

// Style returns the style for a color role, falling back to no styling.
// The zero Theme renders everything unstyled.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
