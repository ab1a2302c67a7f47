package dispatch

import "modeshell/internal/state"

// Keymap translates a host's key names to the core's.
type Keymap map[string]state.Key

// Classify turns a host key press into a message. Keys outside the map pass
// through as an unclassified event and are ignored by the store.
func (km Keymap) Classify(hostKey string, mods state.Modifiers) state.Message {
	k, ok := km[hostKey]
	if !ok {
		return state.RawEvent{Event: state.OtherEvent{Kind: "key " + hostKey}}
	}
	return state.RawEvent{Event: state.KeyPressed{Key: k, Modifiers: mods}}
}

// Bound lists host key names with modifiers that trigger a store action,
// for hosts that must register shortcuts up front.
func (km Keymap) Bound() []Binding {
	var out []Binding
	for hostKey, k := range km {
		for sc := range state.Shortcuts {
			if sc.Key == k {
				out = append(out, Binding{HostKey: hostKey, Modifiers: sc.Modifiers})
			}
		}
	}
	return out
}

type Binding struct {
	HostKey   string
	Modifiers state.Modifiers
}

// CloseRequested is the message every host sends for a window close.
func CloseRequested() state.Message {
	return state.RawEvent{Event: state.CloseRequested{}}
}
