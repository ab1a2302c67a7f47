package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"modeshell/internal/config"
	"modeshell/internal/dispatch"
	"modeshell/internal/logger"
	"modeshell/internal/shutdown"
	"modeshell/internal/state"
	"modeshell/internal/tui"
	"modeshell/internal/views"
)

const (
	AppName = "modeshell"
	AppID   = "io.github.modeshell"
)

// AppVersion is overridden at link time.
var AppVersion = "dev"

// runtimeHost is a dispatch.Host that also owns the process's UI loop.
type runtimeHost interface {
	dispatch.Host
	Run() error
	Quit()
}

type Application struct {
	cfg        config.Config
	logger     logger.Logger
	host       runtimeHost
	dispatcher *dispatch.Dispatcher
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
}

// NewApplication builds the logger, the host named by cfg.UI.Host and the
// event loop between them.
func NewApplication(cfg config.Config, logOut io.Writer) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if logOut == nil {
		logOut = os.Stderr
	}
	log := logger.New(logOut, level, cfg.Log.JSON)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"host":       cfg.UI.Host,
		"go_version": runtime.Version(),
		"window":     fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
	})

	var d *dispatch.Dispatcher
	send := func(m state.Message) { d.Post(m) }

	var host runtimeHost
	switch cfg.UI.Host {
	case config.HostTerminal:
		host = tui.NewTerminalHost(cfg.Window.Title, send)
	default:
		host = newDesktop(cfg.Window, log, send)
	}

	d = dispatch.New(host, log)
	a := &Application{
		cfg:        cfg,
		logger:     log,
		host:       host,
		dispatcher: d,
		lifecycle:  NewLifecycle(d, log),
		shutdown:   shutdown.NewManager(log),
	}
	a.shutdown.Register("host", shutdown.Func(host.Quit))
	a.shutdown.Register("event loop", a.lifecycle)

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

// Run blocks until the window has closed and the event loop has stopped.
func (a *Application) Run(ctx context.Context) error {
	a.shutdown.Listen()
	defer a.shutdown.Shutdown()

	// A confirmed close ends the loop first; make sure the UI follows.
	a.lifecycle.Start(ctx, a.host.Quit)

	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info("Application", "context cancelled, initiating shutdown", nil)
			a.shutdown.Shutdown()
		case <-a.shutdown.Done():
		}
	}()

	a.logger.Info("Application", "UI displayed", nil)
	if err := a.host.Run(); err != nil {
		return fmt.Errorf("%s host: %w", a.cfg.UI.Host, err)
	}

	a.lifecycle.Shutdown()
	return a.lifecycle.Err()
}

// desktop adapts the fyne host to runtimeHost.
type desktop struct {
	*views.DesktopHost
}

func newDesktop(cfg config.WindowConfig, log logger.Logger, send views.Sender) desktop {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := fyneapp.NewWithID(AppID)
	h := views.NewDesktopHost(fyneApp, cfg, log)
	h.Bind(send)
	return desktop{DesktopHost: h}
}

func (d desktop) Run() error {
	d.Show()
	return nil
}
