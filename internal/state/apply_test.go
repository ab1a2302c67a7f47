package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(k Key, m Modifiers) Message {
	return RawEvent{Event: KeyPressed{Key: k, Modifiers: m}}
}

var (
	zoomIn    = key(KeyEqual, ModControl)
	zoomOut   = key(KeyMinus, ModControl)
	zoomReset = key(Key0, ModControl)
	altEnter  = key(KeyEnter, ModAlt)
	closeReq  = RawEvent{Event: CloseRequested{}}
)

func applyAll(t *testing.T, s ApplicationState, msgs ...Message) (ApplicationState, []Effect) {
	t.Helper()
	var effects []Effect
	for _, m := range msgs {
		var eff Effect
		s, eff = Apply(s, m)
		if eff != nil {
			effects = append(effects, eff)
		}
	}
	return s, effects
}

func TestNewDefaults(t *testing.T) {
	s := New()

	require.NotNil(t, s.DisplayMode)
	assert.True(t, *s.DisplayMode)
	assert.Equal(t, ThemeDark, s.Theme())
	assert.Equal(t, 1.0, s.ZoomFactor)
	assert.False(t, s.ShowExitDialog)
}

func TestSetDisplayModeThenTheme(t *testing.T) {
	tests := []struct {
		name string
		dark bool
		want Theme
	}{
		{name: "dark", dark: true, want: ThemeDark},
		{name: "light", dark: false, want: ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, eff := Apply(New(), SetDisplayMode{Dark: tt.dark})
			assert.Nil(t, eff)
			assert.Equal(t, tt.want, s.Theme())
		})
	}
}

func TestSetDisplayModeDoesNotAliasPreviousState(t *testing.T) {
	before := New()
	after, _ := Apply(before, SetDisplayMode{Dark: false})

	assert.Equal(t, ThemeDark, before.Theme())
	assert.Equal(t, ThemeLight, after.Theme())
}

func TestThemePanicsWhenUnset(t *testing.T) {
	s := New()
	s.DisplayMode = nil

	assert.Panics(t, func() { _ = s.Theme() })
}

func TestZoomNeverBelowFloor(t *testing.T) {
	s := New()
	for i := 0; i < 50; i++ {
		s, _ = Apply(s, zoomOut)
		assert.GreaterOrEqual(t, s.ZoomFactor, ZoomStep)
	}
	assert.Equal(t, ZoomStep, s.ZoomFactor)
}

func TestZoomScenario(t *testing.T) {
	s, effects := applyAll(t, New(), zoomIn, zoomIn, zoomOut)

	assert.Empty(t, effects)
	assert.Equal(t, 1.1, s.ZoomFactor)
	assert.Equal(t, 110, s.ZoomPercent())
}

func TestZoomResetAfterChanges(t *testing.T) {
	s, _ := applyAll(t, New(), zoomIn, zoomIn, zoomIn, zoomOut, zoomIn)
	require.NotEqual(t, 1.0, s.ZoomFactor)

	s, _ = Apply(s, zoomReset)
	assert.Equal(t, 1.0, s.ZoomFactor)

	s, _ = applyAll(t, s, zoomOut, zoomOut, zoomOut, zoomOut, zoomOut, zoomOut, zoomOut, zoomOut, zoomOut, zoomOut, zoomOut)
	assert.Equal(t, ZoomStep, s.ZoomFactor)

	s, _ = Apply(s, zoomReset)
	assert.Equal(t, 1.0, s.ZoomFactor)
}

func TestShortcutsMatchExactModifiers(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{name: "minus without modifiers", msg: key(KeyMinus, 0)},
		{name: "ctrl shift minus", msg: key(KeyMinus, ModControl|ModShift)},
		{name: "alt equal", msg: key(KeyEqual, ModAlt)},
		{name: "ctrl alt zero", msg: key(Key0, ModControl|ModAlt)},
		{name: "ctrl enter", msg: key(KeyEnter, ModControl)},
		{name: "alt shift enter", msg: key(KeyEnter, ModAlt|ModShift)},
		{name: "unbound key", msg: key(Key("A"), ModControl)},
		{name: "other event", msg: RawEvent{Event: OtherEvent{Kind: "resize"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := New()
			s, eff := Apply(start, tt.msg)
			assert.Nil(t, eff)
			assert.Equal(t, start.ZoomFactor, s.ZoomFactor)
			assert.Equal(t, start.ShowExitDialog, s.ShowExitDialog)
			assert.Equal(t, start.Theme(), s.Theme())
		})
	}
}

func TestAltEnterQueriesWindowMode(t *testing.T) {
	s, eff := Apply(New(), altEnter)

	assert.Equal(t, New().ZoomFactor, s.ZoomFactor)
	query, ok := eff.(QueryWindowModeThen)
	require.True(t, ok, "expected QueryWindowModeThen, got %T", eff)
	require.NotNil(t, query.Then)
	assert.Equal(t, FullscreenToggled{Current: Windowed}, query.Then(Windowed))
	assert.Equal(t, FullscreenToggled{Current: Fullscreen}, query.Then(Fullscreen))
}

func TestFullscreenToggled(t *testing.T) {
	tests := []struct {
		current WindowMode
		want    WindowMode
	}{
		{current: Fullscreen, want: Windowed},
		{current: Windowed, want: Fullscreen},
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			s, eff := Apply(New(), FullscreenToggled{Current: tt.current})
			assert.Equal(t, RequestWindowMode{Mode: tt.want}, eff)
			assert.Equal(t, New().String(), s.String())
		})
	}
}

func TestExitProtocol(t *testing.T) {
	s, eff := Apply(New(), closeReq)
	assert.Nil(t, eff)
	assert.True(t, s.ShowExitDialog)

	s, eff = Apply(s, ExitConfirmed{Confirmed: false})
	assert.Nil(t, eff)
	assert.False(t, s.ShowExitDialog)

	s, _ = Apply(s, closeReq)
	require.True(t, s.ShowExitDialog)
	s, eff = Apply(s, ExitConfirmed{Confirmed: true})
	assert.Equal(t, CloseWindow{}, eff)
	assert.True(t, s.ShowExitDialog, "confirming does not mutate state")
}

func TestExitScenarioYieldsOneClose(t *testing.T) {
	s, effects := applyAll(t, New(), closeReq, ExitConfirmed{Confirmed: false})
	require.Empty(t, effects)
	require.False(t, s.ShowExitDialog)

	s, effects = applyAll(t, s, closeReq, ExitConfirmed{Confirmed: true})
	require.Len(t, effects, 1)
	assert.Equal(t, CloseWindow{}, effects[0])
	assert.True(t, s.ShowExitDialog)
}

func TestDialogDoesNotBlockOtherTransitions(t *testing.T) {
	s, _ := applyAll(t, New(), closeReq, SetDisplayMode{Dark: false}, zoomIn)

	assert.True(t, s.ShowExitDialog)
	assert.Equal(t, ThemeLight, s.Theme())
	assert.Equal(t, 1.1, s.ZoomFactor)
}

func TestModifiersString(t *testing.T) {
	assert.Equal(t, "none", Modifiers(0).String())
	assert.Equal(t, "Ctrl", ModControl.String())
	assert.Equal(t, "Ctrl+Alt+Shift", (ModShift | ModAlt | ModControl).String())
}
