// Package state holds the application state record and the pure transition
// function that advances it in response to messages.
package state

import (
	"fmt"
	"math"
)

const (
	// ZoomStep is both the zoom increment and the zoom floor.
	ZoomStep    = 0.1
	ZoomDefault = 1.0
)

// Theme is the resolved display theme.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// ApplicationState is owned by the dispatcher and only changed through Apply.
type ApplicationState struct {
	// DisplayMode is true for dark and false for light. It is never nil
	// after New.
	DisplayMode    *bool
	ZoomFactor     float64
	ShowExitDialog bool
}

// New returns the start-of-process state: dark, unzoomed, no dialog.
func New() ApplicationState {
	dark := true
	return ApplicationState{
		DisplayMode: &dark,
		ZoomFactor:  ZoomDefault,
	}
}

// Theme resolves the display mode. An unset mode is a logic error and panics
// rather than render with an undefined theme.
func (s ApplicationState) Theme() Theme {
	if s.DisplayMode == nil {
		panic("state: display mode must be set before theme resolution")
	}
	if *s.DisplayMode {
		return ThemeDark
	}
	return ThemeLight
}

// ZoomPercent reports the zoom factor as a whole percentage.
func (s ApplicationState) ZoomPercent() int {
	return int(math.Round(s.ZoomFactor * 100))
}

func (s ApplicationState) String() string {
	mode := "unset"
	if s.DisplayMode != nil {
		mode = s.Theme().String()
	}
	return fmt.Sprintf("mode=%s zoom=%.2f exit_dialog=%t", mode, s.ZoomFactor, s.ShowExitDialog)
}

func (s *ApplicationState) zoomIn() {
	s.ZoomFactor = roundZoom(s.ZoomFactor + ZoomStep)
}

func (s *ApplicationState) zoomOut() {
	s.ZoomFactor = math.Max(roundZoom(s.ZoomFactor-ZoomStep), ZoomStep)
}

func (s *ApplicationState) zoomReset() {
	s.ZoomFactor = ZoomDefault
}

// roundZoom keeps repeated steps on the 0.01 grid so they never drift.
func roundZoom(z float64) float64 {
	return math.Round(z*100) / 100
}
