// Package tui is a terminal host for the event loop. The alternate screen
// plays the part of fullscreen and quitting the program closes the window.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"modeshell/internal/dispatch"
	"modeshell/internal/state"
)

// Keys maps terminal key strings onto the core's. Terminals cannot report
// Ctrl with '=' or '0', so the bare keys stand in for the Ctrl shortcuts.
var Keys = dispatch.Keymap{
	"enter":  state.KeyEnter,
	"-":      state.KeyMinus,
	"ctrl+_": state.KeyMinus,
	"=":      state.KeyEqual,
	"+":      state.KeyEqual,
	"0":      state.Key0,
}

type (
	renderMsg     struct{ state state.ApplicationState }
	windowModeMsg struct{ mode state.WindowMode }
	closeMsg      struct{}
	queryModeMsg  struct{ reply func(state.WindowMode) }
)

// Model renders the last state the event loop handed over and turns key
// presses into messages for it.
type Model struct {
	send     func(state.Message)
	title    string
	current  *state.ApplicationState
	altMode  bool
	width    int
	height   int
	quitting bool
}

func NewModel(title string, send func(state.Message)) Model {
	return Model{title: title, send: send}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case renderMsg:
		s := msg.state
		m.current = &s
		return m, nil

	case windowModeMsg:
		return m.setMode(msg.mode)

	case queryModeMsg:
		mode := state.Windowed
		if m.altMode {
			mode = state.Fullscreen
		}
		reply := msg.reply
		return m, func() tea.Msg {
			reply(mode)
			return nil
		}

	case closeMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.send(state.RawEvent{Event: state.OtherEvent{Kind: "resize"}})
		return m, nil

	case tea.KeyMsg:
		m.handleKey(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) setMode(mode state.WindowMode) (tea.Model, tea.Cmd) {
	switch {
	case mode == state.Fullscreen && !m.altMode:
		m.altMode = true
		return m, tea.EnterAltScreen
	case mode != state.Fullscreen && m.altMode:
		m.altMode = false
		return m, tea.ExitAltScreen
	}
	return m, nil
}

func (m Model) dialogShowing() bool {
	return m.current != nil && m.current.ShowExitDialog
}

func (m Model) handleKey(msg tea.KeyMsg) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.send(dispatch.CloseRequested())
		return
	case "alt+enter":
		m.send(Keys.Classify("enter", state.ModAlt))
		return
	case "ctrl+_":
		m.send(Keys.Classify(key, state.ModControl))
		return
	}

	if m.dialogShowing() {
		switch key {
		case "y", "enter":
			m.send(state.ExitConfirmed{Confirmed: true})
			return
		case "n", "esc":
			m.send(state.ExitConfirmed{Confirmed: false})
			return
		}
	} else {
		switch key {
		case "d":
			m.send(state.SetDisplayMode{Dark: true})
			return
		case "l":
			m.send(state.SetDisplayMode{Dark: false})
			return
		}
	}

	switch key {
	case "-", "=", "+", "0":
		m.send(Keys.Classify(key, state.ModControl))
	default:
		m.send(Keys.Classify(key, 0))
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.current == nil {
		return "starting...\n"
	}

	st := stylesFor(*m.current)
	var body string
	if m.current.ShowExitDialog {
		body = m.exitView(st)
	} else {
		body = m.controlsView(st)
	}
	box := st.box.Render(body)

	if m.width == 0 || m.height == 0 {
		return box + "\n"
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) controlsView(st styles) string {
	dark := m.current.Theme() == state.ThemeDark
	radio := func(label string, on bool) string {
		if on {
			return st.accent.Render("(•) " + label)
		}
		return "( ) " + label
	}

	var b strings.Builder
	b.WriteString("Mode:  ")
	b.WriteString(radio("Light", !dark))
	b.WriteString("   ")
	b.WriteString(radio("Dark", dark))
	b.WriteString("\n\n")
	b.WriteString(st.muted.Render(fmt.Sprintf(
		"l/d mode · -/= zoom %d%% · 0 reset · alt+enter fullscreen · q quit",
		m.current.ZoomPercent())))
	return b.String()
}

func (m Model) exitView(st styles) string {
	return "Are you sure you want to exit?\n\n" +
		st.accent.Render("[y] Confirm") + "   " + "[n] Cancel"
}
