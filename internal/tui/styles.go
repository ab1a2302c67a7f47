package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"modeshell/internal/state"
)

type palette struct {
	fg, bg, accent, muted lipgloss.Color
}

var palettes = map[state.Theme]palette{
	state.ThemeDark: {
		fg:     lipgloss.Color("#cdd6f4"),
		bg:     lipgloss.Color("#1e1e2e"),
		accent: lipgloss.Color("#89b4fa"),
		muted:  lipgloss.Color("#6c7086"),
	},
	state.ThemeLight: {
		fg:     lipgloss.Color("#4c4f69"),
		bg:     lipgloss.Color("#eff1f5"),
		accent: lipgloss.Color("#1e66f5"),
		muted:  lipgloss.Color("#9ca0b0"),
	},
}

type styles struct {
	box    lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
}

// stylesFor scales the box padding with the zoom factor; a terminal has no
// font size to change.
func stylesFor(s state.ApplicationState) styles {
	p := palettes[s.Theme()]
	padY := int(math.Round(s.ZoomFactor))
	padX := int(math.Round(s.ZoomFactor * 4))

	return styles{
		box: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(padY, padX),
		accent: lipgloss.NewStyle().Foreground(p.accent).Background(p.bg).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(p.muted).Background(p.bg),
	}
}
