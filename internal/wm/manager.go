// Package wm holds the window manager's state and its event handlers. Every
// method is meant to be called from the single event-loop goroutine.
package wm

import (
	"log/slog"

	"github.com/blazeneuro/blazewm/internal/platform"
)

// Spawner starts helper programs without waiting for them.
type Spawner interface {
	Spawn(program string) error
}

// Policy is the fixed placement, drag and helper configuration.
type Policy struct {
	Struts    Struts
	MinWidth  int
	MinHeight int
	Move      platform.ButtonBinding
	Resize    platform.ButtonBinding
	Launcher  string
	Terminal  string
}

// DefaultPolicy matches the BlazeNeuro desktop: a 32px topbar, a 72px dock,
// Alt+button 1 to move and Alt+button 3 to resize.
func DefaultPolicy() Policy {
	const mod1 = 1 << 3
	return Policy{
		Struts:    Struts{Top: 32, Bottom: 72},
		MinWidth:  100,
		MinHeight: 60,
		Move:      platform.ButtonBinding{Mods: mod1, Button: 1},
		Resize:    platform.ButtonBinding{Mods: mod1, Button: 3},
		Launcher:  "blazeneuro-launcher",
		Terminal:  "blazeneuro-terminal",
	}
}

// ButtonEvent is a pointer button press or release. Target is the top-level
// window the pointer was over, or 0 for the bare root window.
type ButtonEvent struct {
	Target platform.WindowID
	Button int
	State  uint16
	RootX  int
	RootY  int
}

// Manager is the window manager context: registry, focus and drag state
// plus the backend used to talk to the display server.
type Manager struct {
	backend platform.Backend
	spawner Spawner
	policy  Policy
	logger  *slog.Logger

	clients *Registry
	focused platform.WindowID
	drag    Drag
}

// New creates a manager with an empty registry.
func New(backend platform.Backend, spawner Spawner, policy Policy, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		backend: backend,
		spawner: spawner,
		policy:  policy,
		logger:  logger,
	}
	m.clients = NewRegistry(backend.SetClientList)
	return m
}

// Clients exposes the registry for inspection.
func (m *Manager) Clients() *Registry { return m.clients }

// Focused returns the focused window, or 0.
func (m *Manager) Focused() platform.WindowID { return m.focused }

// DragState returns a copy of the current drag state.
func (m *Manager) DragState() Drag { return m.drag }

// Adopt manages the windows that were already mapped when the manager
// started. They keep their geometry. It returns the number adopted.
func (m *Manager) Adopt(windows []platform.TopLevel) int {
	adopted := 0
	for _, w := range windows {
		if !w.Viewable || w.OverrideRedirect {
			continue
		}
		typ := m.backend.WindowType(w.ID)
		if typ == platform.WindowTypeDock {
			continue
		}
		geom, err := m.backend.Geometry(w.ID)
		if err != nil {
			m.check("geometry", w.ID, err)
			continue
		}
		if err := m.backend.Manage(w.ID); err != nil {
			m.check("manage", w.ID, err)
			continue
		}
		m.check("set state", w.ID, m.backend.SetState(w.ID, platform.WMStateNormal))
		m.register(&Client{ID: w.ID, Geometry: geom, Type: typ, Mapped: true})
		adopted++
	}
	return adopted
}

// MapRequest places, maps, registers and focuses a new window. Docks are
// mapped as they are and never managed.
func (m *Manager) MapRequest(id platform.WindowID) {
	typ := m.backend.WindowType(id)
	if typ == platform.WindowTypeDock {
		m.logger.Debug("mapping dock unmanaged", "window", id)
		m.check("map", id, m.backend.Map(id))
		return
	}

	if m.clients.Contains(id) {
		m.check("map", id, m.backend.Map(id))
		m.Focus(id)
		return
	}

	screen, err := m.backend.Screen()
	if err != nil {
		m.check("screen", id, err)
		return
	}

	// No usable size means the default size.
	requested, err := m.backend.Geometry(id)
	if err != nil {
		m.logger.Debug("no geometry for new window", "window", id, "error", err)
		requested = platform.Rect{}
	}

	geom := Place(screen, m.policy.Struts, requested)
	m.check("move resize", id, m.backend.MoveResize(id, geom))
	m.check("manage", id, m.backend.Manage(id))
	m.check("set state", id, m.backend.SetState(id, platform.WMStateNormal))
	if err := m.backend.Map(id); err != nil {
		m.check("map", id, err)
		return
	}

	m.register(&Client{ID: id, Geometry: geom, Type: typ, Mapped: true})
	m.logger.Debug("managing window", "window", id, "type", typ,
		"x", geom.X, "y", geom.Y, "width", geom.Width, "height", geom.Height)
	m.Focus(id)
}

// ConfigureRequest applies a client's request unchanged.
func (m *Manager) ConfigureRequest(req platform.ConfigureRequest) {
	m.check("configure", req.Window, m.backend.Configure(req))

	c := m.clients.Get(req.Window)
	if c == nil {
		return
	}
	if req.Mask&platform.ConfigX != 0 {
		c.Geometry.X = req.X
	}
	if req.Mask&platform.ConfigY != 0 {
		c.Geometry.Y = req.Y
	}
	if req.Mask&platform.ConfigWidth != 0 {
		c.Geometry.Width = req.Width
	}
	if req.Mask&platform.ConfigHeight != 0 {
		c.Geometry.Height = req.Height
	}
}

// Unmap forgets a window that was withdrawn by its client.
func (m *Manager) Unmap(id platform.WindowID) {
	if c := m.clients.Get(id); c != nil {
		c.Mapped = false
		m.check("set state", id, m.backend.SetState(id, platform.WMStateWithdrawn))
	}
	m.forget(id)
}

// Destroy forgets a destroyed window.
func (m *Manager) Destroy(id platform.WindowID) {
	m.forget(id)
}

// ButtonPress focuses the clicked client and, with the drag modifier held,
// starts a move or resize. Presses during a drag are ignored.
func (m *Manager) ButtonPress(ev ButtonEvent) {
	if m.drag.Active() {
		return
	}
	if ev.Target == 0 || !m.clients.Contains(ev.Target) {
		return
	}
	m.Activate(ev.Target)

	var mode DragMode
	switch {
	case matches(m.policy.Move, ev):
		mode = DragMoving
	case matches(m.policy.Resize, ev):
		mode = DragResizing
	default:
		return
	}

	start, err := m.backend.Geometry(ev.Target)
	if err != nil {
		m.check("geometry", ev.Target, err)
		start = m.clients.Get(ev.Target).Geometry
	}
	m.drag.Begin(mode, ev.Target, ev.RootX, ev.RootY, start)
	m.logger.Debug("drag started", "window", ev.Target, "mode", mode)
}

func matches(b platform.ButtonBinding, ev ButtonEvent) bool {
	return ev.Button == b.Button && ev.State&b.Mods == b.Mods
}

// ButtonRelease ends any drag, whichever button was released.
func (m *Manager) ButtonRelease() {
	if m.drag.Active() {
		m.logger.Debug("drag finished", "window", m.drag.Target, "mode", m.drag.Mode)
	}
	m.drag.End()
}

// Motion applies pointer motion at root position (x, y) to the active drag.
func (m *Manager) Motion(x, y int) {
	if !m.drag.Active() {
		return
	}
	target := m.drag.Target
	geom := m.drag.Step(x, y, m.policy.MinWidth, m.policy.MinHeight)

	switch m.drag.Mode {
	case DragMoving:
		m.check("move", target, m.backend.Move(target, geom.X, geom.Y))
	case DragResizing:
		m.check("resize", target, m.backend.Resize(target, geom.Width, geom.Height))
	}
	if c := m.clients.Get(target); c != nil {
		c.Geometry = geom
	}
}

func (m *Manager) register(c *Client) {
	if _, err := m.clients.Register(c); err != nil {
		m.check("publish client list", c.ID, err)
	}
}

func (m *Manager) forget(id platform.WindowID) {
	removed, err := m.clients.Unregister(id)
	if err != nil {
		m.check("publish client list", id, err)
	}
	if !removed {
		return
	}
	m.logger.Debug("unmanaged window", "window", id)

	if m.drag.Target == id {
		m.drag.End()
	}
	if m.focused == id {
		m.focused = 0
		m.refocus()
	}
}

// check logs a failed protocol request. Errors after startup are expected when
// clients race the manager, so they never stop the loop.
func (m *Manager) check(op string, id platform.WindowID, err error) {
	if err == nil {
		return
	}
	m.logger.Warn("request failed", "op", op, "window", id, "error", err)
}
