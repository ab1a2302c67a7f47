package views

import (
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"modeshell/internal/config"
	"modeshell/internal/dispatch"
	"modeshell/internal/logger"
	"modeshell/internal/state"
)

const component = "DesktopHost"

// Keys maps fyne key names onto the core's. Both Return and the keypad
// Enter count as Enter.
var Keys = dispatch.Keymap{
	string(fyne.KeyReturn): state.KeyEnter,
	string(fyne.KeyEnter):  state.KeyEnter,
	string(fyne.KeyMinus):  state.KeyMinus,
	string(fyne.KeyEqual):  state.KeyEqual,
	string(fyne.Key0):      state.Key0,
}

// DesktopHost runs the core inside a fyne window. Every call from the event
// loop is marshalled onto the fyne main goroutine with fyne.Do and never
// waits for it.
type DesktopHost struct {
	app    fyne.App
	window fyne.Window
	view   *MainView
	logger logger.Logger
	font   fyne.Resource
	send   Sender

	applied *scaledTheme
	stopped atomic.Bool
}

// NewDesktopHost creates the main window from the static window config.
// Missing icon or font files are logged and skipped.
func NewDesktopHost(fyneApp fyne.App, cfg config.WindowConfig, log logger.Logger) *DesktopHost {
	window := fyneApp.NewWindow(cfg.Title)
	window.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	window.CenterOnScreen()
	window.SetMaster()

	h := &DesktopHost{
		app:    fyneApp,
		window: window,
		logger: log,
		send:   func(state.Message) {},
	}

	if cfg.Icon != "" {
		if icon, err := fyne.LoadResourceFromPath(cfg.Icon); err != nil {
			log.Warning(component, "window icon not loaded", map[string]interface{}{
				"path":  cfg.Icon,
				"error": err.Error(),
			})
		} else {
			fyneApp.SetIcon(icon)
			window.SetIcon(icon)
		}
	}
	if cfg.Font != "" {
		if font, err := fyne.LoadResourceFromPath(cfg.Font); err != nil {
			log.Warning(component, "default font not loaded", map[string]interface{}{
				"path":  cfg.Font,
				"error": err.Error(),
			})
		} else {
			h.font = font
		}
	}

	return h
}

// Bind connects window input to send. The close button never closes the
// window directly; it always goes through the event loop.
func (h *DesktopHost) Bind(send Sender) {
	h.send = send
	h.view = NewMainView(h.window, send)

	h.window.SetOnClosed(func() {
		h.stopped.Store(true)
	})
	h.window.SetCloseIntercept(func() {
		h.logger.Info(component, "window close requested", nil)
		h.send(dispatch.CloseRequested())
	})

	canvas := h.window.Canvas()
	for _, b := range Keys.Bound() {
		canvas.AddShortcut(&desktop.CustomShortcut{
			KeyName:  fyne.KeyName(b.HostKey),
			Modifier: fyneModifiers(b.Modifiers),
		}, func(fyne.Shortcut) {
			h.onKey(b.HostKey, b.Modifiers)
		})
	}
	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		h.onKey(string(ev.Name), 0)
	})
}

func (h *DesktopHost) onKey(name string, mods state.Modifiers) {
	h.send(Keys.Classify(name, mods))
}

// Show displays the window and blocks in the fyne run loop.
func (h *DesktopHost) Show() {
	h.window.Show()
	h.app.Run()
}

// do runs fn on the main goroutine unless the window is already gone.
func (h *DesktopHost) do(fn func()) {
	if h.stopped.Load() {
		return
	}
	fyne.Do(fn)
}

func (h *DesktopHost) SetWindowMode(mode state.WindowMode) {
	h.do(func() {
		h.window.SetFullScreen(mode == state.Fullscreen)
	})
}

func (h *DesktopHost) CloseWindow() {
	h.do(func() {
		h.window.Close()
	})
}

func (h *DesktopHost) QueryWindowMode(reply func(state.WindowMode)) {
	h.do(func() {
		mode := state.Windowed
		if h.window.FullScreen() {
			mode = state.Fullscreen
		}
		go reply(mode)
	})
}

func (h *DesktopHost) Render(s state.ApplicationState) {
	h.do(func() {
		h.render(s)
	})
}

func (h *DesktopHost) render(s state.ApplicationState) {
	t := newScaledTheme(s, h.font)
	if !t.same(h.applied) {
		h.applied = t
		h.app.Settings().SetTheme(t)
	}
	if h.view != nil {
		h.view.Update(s)
	}
}

// Quit stops the fyne run loop. It is a no-op once the window has closed.
func (h *DesktopHost) Quit() {
	if h.stopped.Swap(true) {
		return
	}
	h.app.Quit()
}

func fyneModifiers(m state.Modifiers) fyne.KeyModifier {
	var out fyne.KeyModifier
	if m&state.ModShift != 0 {
		out |= fyne.KeyModifierShift
	}
	if m&state.ModControl != 0 {
		out |= fyne.KeyModifierControl
	}
	if m&state.ModAlt != 0 {
		out |= fyne.KeyModifierAlt
	}
	if m&state.ModSuper != 0 {
		out |= fyne.KeyModifierSuper
	}
	return out
}
