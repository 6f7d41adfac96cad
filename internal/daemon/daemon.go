// Package daemon runs the window manager: it claims the display, adopts the
// existing windows and feeds X events to the manager until it is stopped.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/mousebind"

	"github.com/blazeneuro/blazewm/internal/config"
	"github.com/blazeneuro/blazewm/internal/hotkeys"
	"github.com/blazeneuro/blazewm/internal/platform"
	"github.com/blazeneuro/blazewm/internal/process"
	"github.com/blazeneuro/blazewm/internal/wm"
	"github.com/blazeneuro/blazewm/internal/x11"
)

var (
	// ErrDisplay is returned when the display cannot be opened.
	ErrDisplay = errors.New("cannot open display")
	// ErrConnectionLost is returned when the server closes the connection
	// while the manager is running.
	ErrConnectionLost = errors.New("connection to display lost")
)

// Daemon owns the display connection and the manager for one session.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	phase  Phase

	conn    *x11.Connection
	manager *wm.Manager
	keys    *hotkeys.Handler
}

// New creates a daemon for cfg. Nothing touches the display until Run.
func New(cfg *config.Config, logger *slog.Logger) *Daemon {
	if logger == nil {
		logger = slog.Default()
	}
	return &Daemon{cfg: cfg, logger: logger}
}

// Phase reports the current lifecycle stage.
func (d *Daemon) Phase() Phase { return d.phase }

func (d *Daemon) setPhase(p Phase) {
	d.logger.Debug("phase change", "from", d.phase, "to", p)
	d.phase = p
}

// Run manages the display until ctx is cancelled or the connection is lost.
// A cancelled ctx is a clean shutdown and returns nil.
func (d *Daemon) Run(ctx context.Context) error {
	d.setPhase(PhaseProbing)
	if err := d.start(); err != nil {
		if d.conn != nil {
			d.conn.Close()
		}
		d.setPhase(PhaseClosed)
		return err
	}

	d.setPhase(PhaseRunning)
	err := d.loop(ctx)

	d.setPhase(PhaseShuttingDown)
	d.conn.Close()
	d.setPhase(PhaseClosed)
	d.logger.Info("window manager stopped")
	return err
}

func (d *Daemon) start() error {
	conn, err := x11.NewConnection(d.cfg.Display)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDisplay, err)
	}
	d.conn = conn

	if err := conn.BecomeManager(); err != nil {
		return err
	}
	if err := conn.SetRootCursor(); err != nil {
		d.logger.Warn("failed to set root cursor", "error", err)
	}
	if err := conn.PublishSupport(d.cfg.WMName); err != nil {
		return fmt.Errorf("failed to publish EWMH support: %w", err)
	}

	move, err := parseButton(conn.XUtil, d.cfg.MoveButton)
	if err != nil {
		return fmt.Errorf("move_button: %w", err)
	}
	resize, err := parseButton(conn.XUtil, d.cfg.ResizeButton)
	if err != nil {
		return fmt.Errorf("resize_button: %w", err)
	}

	backend := platform.NewLinuxBackend(conn, move, resize)
	policy := wm.Policy{
		Struts:    wm.Struts{Top: d.cfg.Struts.Top, Bottom: d.cfg.Struts.Bottom},
		MinWidth:  d.cfg.MinSize.Width,
		MinHeight: d.cfg.MinSize.Height,
		Move:      move,
		Resize:    resize,
		Launcher:  d.cfg.Launcher,
		Terminal:  d.cfg.Terminal,
	}
	spawner := process.NewSpawner(d.logger.With("component", "process"))
	d.manager = wm.New(backend, spawner, policy, d.logger.With("component", "wm"))

	d.keys = hotkeys.NewHandler(conn.XUtil, conn.Root)
	if err := d.keys.Register(d.cfg.Bindings()); err != nil {
		d.logger.Warn("some hotkeys are unavailable", "error", err)
	}

	tops, err := backend.TopLevels()
	if err != nil {
		d.logger.Warn("failed to list existing windows", "error", err)
	}
	adopted := d.manager.Adopt(tops)

	screen, _ := backend.Screen()
	width, height := conn.ScreenSize()
	d.logger.Info("window manager started",
		"name", d.cfg.WMName,
		"screen_width", width,
		"screen_height", height,
		"monitor", fmt.Sprintf("%dx%d+%d+%d", screen.Width, screen.Height, screen.X, screen.Y),
		"adopted", adopted)
	return nil
}

func parseButton(xu *xgbutil.XUtil, s string) (platform.ButtonBinding, error) {
	mods, button, err := mousebind.ParseString(xu, s)
	if err != nil {
		return platform.ButtonBinding{}, fmt.Errorf("invalid button sequence %q: %w", s, err)
	}
	return platform.ButtonBinding{Mods: mods, Button: int(button)}, nil
}

func (d *Daemon) loop(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	events := d.conn.Events(done)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("shutdown requested")
			return nil
		case ev, ok := <-events:
			if !ok {
				return ErrConnectionLost
			}
			if ev.Err != nil {
				d.logger.Warn("protocol error", "error", ev.Err)
				continue
			}
			d.dispatch(ev.Event)
		}
	}
}

// dispatch routes one server event to the manager.
func (d *Daemon) dispatch(event xgb.Event) {
	switch ev := event.(type) {
	case xproto.MapRequestEvent:
		d.manager.MapRequest(platform.WindowID(ev.Window))
	case xproto.ConfigureRequestEvent:
		d.manager.ConfigureRequest(configureRequest(ev))
	case xproto.UnmapNotifyEvent:
		d.manager.Unmap(platform.WindowID(ev.Window))
	case xproto.DestroyNotifyEvent:
		d.manager.Destroy(platform.WindowID(ev.Window))
	case xproto.ButtonPressEvent:
		d.manager.ButtonPress(buttonEvent(d.conn.Root, ev))
	case xproto.ButtonReleaseEvent:
		d.manager.ButtonRelease()
	case xproto.MotionNotifyEvent:
		d.manager.Motion(int(ev.RootX), int(ev.RootY))
	case xproto.KeyPressEvent:
		if action, ok := d.keys.Lookup(ev.State, ev.Detail); ok {
			d.logger.Debug("hotkey", "action", action)
			d.manager.Dispatch(action)
		}
	default:
		// Property changes, client messages and the rest need no action.
	}
}
