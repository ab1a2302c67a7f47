// Package dispatch runs the single-threaded event loop: it owns the
// application state, feeds messages through state.Apply and hands the
// resulting effects to the host runtime.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"modeshell/internal/logger"
	"modeshell/internal/state"
)

const component = "Dispatcher"

var (
	// ErrStopped is returned by Send once the loop has finished.
	ErrStopped = errors.New("dispatcher stopped")
	// ErrAlreadyRunning is returned by a second call to Run.
	ErrAlreadyRunning = errors.New("dispatcher already running")
)

// Host is the slice of the GUI runtime the core talks to. Implementations
// must not block the caller: effects may complete on a later turn.
type Host interface {
	SetWindowMode(mode state.WindowMode)
	CloseWindow()
	// QueryWindowMode reports the current mode through reply, possibly
	// asynchronously. reply may be called from any goroutine.
	QueryWindowMode(reply func(state.WindowMode))
	Render(s state.ApplicationState)
}

type Option func(*Dispatcher)

// WithInboxSize preallocates room for n queued messages. The queue itself
// is unbounded.
func WithInboxSize(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queue = make([]state.Message, 0, n)
		}
	}
}

type Dispatcher struct {
	host   Host
	logger logger.Logger
	state  state.ApplicationState
	closed bool

	// queue is FIFO for every producer; wake holds at most one pending signal.
	mu      sync.Mutex
	queue   []state.Message
	wake    chan struct{}
	stopped bool
	running atomic.Bool
}

func New(host Host, log logger.Logger, opts ...Option) *Dispatcher {
	if log == nil {
		log = logger.Nop{}
	}
	d := &Dispatcher{
		host:   host,
		logger: log,
		state:  state.New(),
		queue:  make([]state.Message, 0, 64),
		wake:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns a copy of the current state. Only safe from the loop's
// goroutine or after Run has returned.
func (d *Dispatcher) State() state.ApplicationState {
	s := d.state
	if s.DisplayMode != nil {
		dark := *s.DisplayMode
		s.DisplayMode = &dark
	}
	return s
}

// Send queues msg for the loop. It is safe to call from any goroutine and
// never blocks.
func (d *Dispatcher) Send(ctx context.Context, msg state.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.enqueue(msg)
}

// Post queues msg without blocking the caller, so hosts may call it from
// their UI goroutine. Messages from Post and Send are processed in the
// order they were queued.
func (d *Dispatcher) Post(msg state.Message) {
	if err := d.enqueue(msg); err != nil {
		d.logger.Debug(component, "message dropped", map[string]interface{}{
			"message": describe(msg),
			"error":   err.Error(),
		})
	}
}

func (d *Dispatcher) enqueue(msg state.Message) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return ErrStopped
	}
	d.queue = append(d.queue, msg)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	return nil
}

// next pops the oldest queued message.
func (d *Dispatcher) next() (state.Message, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.queue) == 0 {
		return nil, false
	}
	msg := d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]
	return msg, true
}

func (d *Dispatcher) stop() {
	d.mu.Lock()
	d.stopped = true
	d.queue = nil
	d.mu.Unlock()
}

// Run renders the initial state and processes messages until ctx is
// cancelled or a close effect has been issued. A dispatcher runs once;
// later calls return ErrAlreadyRunning.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer d.stop()

	d.logger.Info(component, "event loop started", map[string]interface{}{
		"state": d.state.String(),
	})
	d.host.Render(d.State())

	for {
		for {
			if ctx.Err() != nil {
				break
			}
			msg, ok := d.next()
			if !ok {
				break
			}
			d.Dispatch(msg)
			if d.closed {
				d.logger.Info(component, "event loop finished", nil)
				return nil
			}
		}

		select {
		case <-ctx.Done():
			d.logger.Info(component, "event loop cancelled", nil)
			return ctx.Err()
		case <-d.wake:
		}
	}
}

// Dispatch performs one synchronous step: apply, execute the effect, render.
func (d *Dispatcher) Dispatch(msg state.Message) {
	next, effect := state.Apply(d.state, msg)
	d.state = next

	d.logger.Debug(component, "message applied", map[string]interface{}{
		"message": describe(msg),
		"state":   next.String(),
	})

	if effect != nil {
		d.execute(effect)
	}
	d.host.Render(d.State())
}

func (d *Dispatcher) execute(effect state.Effect) {
	switch e := effect.(type) {
	case state.RequestWindowMode:
		d.logger.Debug(component, "requesting window mode", map[string]interface{}{
			"mode": e.Mode.String(),
		})
		d.host.SetWindowMode(e.Mode)

	case state.CloseWindow:
		d.logger.Info(component, "closing window", nil)
		d.closed = true
		d.host.CloseWindow()

	case state.QueryWindowModeThen:
		then := e.Then
		d.host.QueryWindowMode(func(mode state.WindowMode) {
			d.Post(then(mode))
		})
	}
}

func describe(msg state.Message) string {
	switch m := msg.(type) {
	case state.RawEvent:
		switch e := m.Event.(type) {
		case state.KeyPressed:
			if a := state.ActionFor(e); a != state.ActionNone {
				return fmt.Sprintf("key %s+%s (%s)", e.Modifiers, e.Key, a)
			}
			return fmt.Sprintf("key %s+%s", e.Modifiers, e.Key)
		case state.CloseRequested:
			return "close requested"
		case state.OtherEvent:
			return "event " + e.Kind
		}
		return "raw event"
	case state.SetDisplayMode:
		return fmt.Sprintf("set display mode dark=%t", m.Dark)
	case state.FullscreenToggled:
		return "fullscreen toggled from " + m.Current.String()
	case state.ExitConfirmed:
		return fmt.Sprintf("exit confirmed=%t", m.Confirmed)
	default:
		return fmt.Sprintf("%T", msg)
	}
}
