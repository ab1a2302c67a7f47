package state

// WindowMode is the host window's presentation mode. The host owns it; the
// state record never stores it.
type WindowMode int

const (
	Windowed WindowMode = iota
	Fullscreen
)

func (m WindowMode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Fullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// Key is a host-neutral key name.
type Key string

const (
	KeyEnter Key = "Enter"
	KeyMinus Key = "Minus"
	KeyEqual Key = "Equal"
	Key0     Key = "0"
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	out := ""
	for _, p := range []struct {
		bit  Modifiers
		name string
	}{
		{ModControl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModShift, "Shift"},
		{ModSuper, "Super"},
	} {
		if m&p.bit == 0 {
			continue
		}
		if out != "" {
			out += "+"
		}
		out += p.name
	}
	return out
}

// Event is a raw host event. The set is closed.
type Event interface {
	isEvent()
}

// KeyPressed is a key-down with the exact set of modifiers held.
type KeyPressed struct {
	Key       Key
	Modifiers Modifiers
}

// CloseRequested is the window manager asking the window to close.
type CloseRequested struct{}

// OtherEvent stands for any host event the core does not act on.
type OtherEvent struct {
	Kind string
}

func (KeyPressed) isEvent()     {}
func (CloseRequested) isEvent() {}
func (OtherEvent) isEvent()     {}

// Message is everything the core acts on. The set is closed.
type Message interface {
	isMessage()
}

type RawEvent struct {
	Event Event
}

type SetDisplayMode struct {
	Dark bool
}

// FullscreenToggled carries the window mode the host reported when asked.
type FullscreenToggled struct {
	Current WindowMode
}

type ExitConfirmed struct {
	Confirmed bool
}

func (RawEvent) isMessage()          {}
func (SetDisplayMode) isMessage()    {}
func (FullscreenToggled) isMessage() {}
func (ExitConfirmed) isMessage()     {}

// Effect is a side-effect request for the host. A nil Effect means none.
type Effect interface {
	isEffect()
}

type RequestWindowMode struct {
	Mode WindowMode
}

type CloseWindow struct{}

// QueryWindowModeThen asks the host for the current window mode and feeds
// Then(mode) back in as the next message.
type QueryWindowModeThen struct {
	Then func(WindowMode) Message
}

func (RequestWindowMode) isEffect()   {}
func (CloseWindow) isEffect()         {}
func (QueryWindowModeThen) isEffect() {}
