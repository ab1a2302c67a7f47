package app

import (
	"context"
	"errors"
	"sync"

	"modeshell/internal/dispatch"
	"modeshell/internal/logger"
)

// Lifecycle runs the event loop on its own goroutine for as long as the
// host's run loop is alive.
type Lifecycle struct {
	dispatcher *dispatch.Dispatcher
	logger     logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
	err    error
	once   sync.Once
}

func NewLifecycle(d *dispatch.Dispatcher, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		dispatcher: d,
		logger:     log,
		done:       make(chan struct{}),
	}
}

// Start launches the event loop. onExit runs after the loop returns,
// whatever the reason.
func (l *Lifecycle) Start(ctx context.Context, onExit func()) {
	ctx, l.cancel = context.WithCancel(ctx)

	go func() {
		defer close(l.done)
		err := l.dispatcher.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			l.err = err
			l.logger.Error("Lifecycle", err, nil)
		}
		if onExit != nil {
			onExit()
		}
	}()
}

// Shutdown stops the loop and waits for it. Safe to call more than once.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
		if l.cancel != nil {
			l.cancel()
			<-l.done
		}
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

// Err is the loop's terminal error, if any, once Shutdown has returned.
func (l *Lifecycle) Err() error {
	return l.err
}
