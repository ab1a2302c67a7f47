package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"modeshell/internal/state"
)

// TerminalHost forwards effect requests from the event loop into the
// bubbletea program. Program.Send returns once the program has exited, so
// late effects never block the loop.
type TerminalHost struct {
	program *tea.Program
}

func NewTerminalHost(title string, send func(state.Message), opts ...tea.ProgramOption) *TerminalHost {
	return &TerminalHost{
		program: tea.NewProgram(NewModel(title, send), opts...),
	}
}

// Run blocks until the program exits.
func (h *TerminalHost) Run() error {
	_, err := h.program.Run()
	return err
}

func (h *TerminalHost) Quit() {
	h.program.Quit()
}

func (h *TerminalHost) SetWindowMode(mode state.WindowMode) {
	h.program.Send(windowModeMsg{mode: mode})
}

func (h *TerminalHost) CloseWindow() {
	h.program.Send(closeMsg{})
}

func (h *TerminalHost) QueryWindowMode(reply func(state.WindowMode)) {
	h.program.Send(queryModeMsg{reply: reply})
}

func (h *TerminalHost) Render(s state.ApplicationState) {
	h.program.Send(renderMsg{state: s})
}
