package state

// Action is a keyboard-driven transition.
type Action int

const (
	ActionNone Action = iota
	ActionToggleFullscreen
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
)

func (a Action) String() string {
	switch a {
	case ActionToggleFullscreen:
		return "toggle-fullscreen"
	case ActionZoomIn:
		return "zoom-in"
	case ActionZoomOut:
		return "zoom-out"
	case ActionZoomReset:
		return "zoom-reset"
	default:
		return "none"
	}
}

// Shortcuts is matched exactly on key and modifier set.
var Shortcuts = map[KeyPressed]Action{
	{Key: KeyEnter, Modifiers: ModAlt}:     ActionToggleFullscreen,
	{Key: KeyMinus, Modifiers: ModControl}: ActionZoomOut,
	{Key: KeyEqual, Modifiers: ModControl}: ActionZoomIn,
	{Key: Key0, Modifiers: ModControl}:     ActionZoomReset,
}

// ActionFor returns the action bound to k, or ActionNone.
func ActionFor(k KeyPressed) Action {
	return Shortcuts[k]
}

// Apply advances s by one message. It performs no I/O and never fails:
// messages it does not recognise leave the state untouched and yield no
// effect.
func Apply(s ApplicationState, msg Message) (ApplicationState, Effect) {
	switch m := msg.(type) {
	case SetDisplayMode:
		dark := m.Dark
		s.DisplayMode = &dark
		return s, nil

	case FullscreenToggled:
		if m.Current == Fullscreen {
			return s, RequestWindowMode{Mode: Windowed}
		}
		return s, RequestWindowMode{Mode: Fullscreen}

	case ExitConfirmed:
		if m.Confirmed {
			return s, CloseWindow{}
		}
		s.ShowExitDialog = false
		return s, nil

	case RawEvent:
		return applyEvent(s, m.Event)

	default:
		return s, nil
	}
}

func applyEvent(s ApplicationState, ev Event) (ApplicationState, Effect) {
	switch e := ev.(type) {
	case CloseRequested:
		s.ShowExitDialog = true
		return s, nil

	case KeyPressed:
		switch ActionFor(e) {
		case ActionToggleFullscreen:
			return s, QueryWindowModeThen{Then: toggled}
		case ActionZoomOut:
			s.zoomOut()
		case ActionZoomIn:
			s.zoomIn()
		case ActionZoomReset:
			s.zoomReset()
		}
		return s, nil

	default:
		return s, nil
	}
}

func toggled(mode WindowMode) Message {
	return FullscreenToggled{Current: mode}
}
