//go:build linux

package platform

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/blazeneuro/blazewm/internal/x11"
)

// LinuxBackend wraps an existing X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn  *x11.Connection
	grabs []x11.ButtonGrab
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11
// connection. Managed windows get passive grabs for each drag binding.
func NewLinuxBackend(conn *x11.Connection, drag ...ButtonBinding) *LinuxBackend {
	grabs := make([]x11.ButtonGrab, 0, len(drag))
	for _, b := range drag {
		grabs = append(grabs, x11.ButtonGrab{Mods: b.Mods, Button: xproto.Button(b.Button)})
	}
	return &LinuxBackend{conn: conn, grabs: grabs}
}

// Screen returns the primary monitor bounds.
func (b *LinuxBackend) Screen() (Rect, error) {
	m := b.conn.PrimaryMonitor()
	return Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}, nil
}

// TopLevels lists the children of the root window.
func (b *LinuxBackend) TopLevels() ([]TopLevel, error) {
	windows, err := b.conn.TopLevels()
	if err != nil {
		return nil, err
	}
	out := make([]TopLevel, 0, len(windows))
	for _, w := range windows {
		if w.ID == b.conn.CheckWindow() {
			continue
		}
		out = append(out, TopLevel{
			ID:               WindowID(w.ID),
			Viewable:         w.Viewable,
			OverrideRedirect: w.OverrideRedirect,
		})
	}
	return out, nil
}

// WindowType classifies a window by its _NET_WM_WINDOW_TYPE.
func (b *LinuxBackend) WindowType(windowID WindowID) WindowType {
	return classifyWindowType(b.conn.WindowTypes(xproto.Window(windowID)))
}

// classifyWindowType picks the first type the manager recognizes; the list is
// in order of preference. Unknown or missing types mean normal.
func classifyWindowType(types []string) WindowType {
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DOCK":
			return WindowTypeDock
		case "_NET_WM_WINDOW_TYPE_DIALOG":
			return WindowTypeDialog
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return WindowTypeNormal
		}
	}
	return WindowTypeNormal
}

// Geometry returns the current window geometry.
func (b *LinuxBackend) Geometry(windowID WindowID) (Rect, error) {
	x, y, w, h, err := b.conn.Geometry(xproto.Window(windowID))
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// SupportsDelete reports WM_DELETE_WINDOW support.
func (b *LinuxBackend) SupportsDelete(windowID WindowID) bool {
	return b.conn.SupportsDelete(xproto.Window(windowID))
}

// Map maps a window.
func (b *LinuxBackend) Map(windowID WindowID) error {
	return b.conn.MapWindow(xproto.Window(windowID))
}

// MoveResize moves and resizes a window to the specified bounds.
func (b *LinuxBackend) MoveResize(windowID WindowID, bounds Rect) error {
	return b.conn.MoveResizeWindow(
		xproto.Window(windowID),
		bounds.X,
		bounds.Y,
		bounds.Width,
		bounds.Height,
	)
}

// Move changes a window's position.
func (b *LinuxBackend) Move(windowID WindowID, x, y int) error {
	return b.conn.MoveWindow(xproto.Window(windowID), x, y)
}

// Resize changes a window's size.
func (b *LinuxBackend) Resize(windowID WindowID, width, height int) error {
	return b.conn.ResizeWindow(xproto.Window(windowID), width, height)
}

// Configure applies a client's configure request verbatim.
func (b *LinuxBackend) Configure(req ConfigureRequest) error {
	mask, values := configureValues(req)
	if mask == 0 {
		return nil
	}
	return b.conn.ConfigureWindow(xproto.Window(req.Window), mask, values)
}

// configureValues builds the value list for req.Mask. Values must appear in
// ascending bit order.
func configureValues(req ConfigureRequest) (uint16, []uint32) {
	var (
		mask   uint16
		values []uint32
	)
	if req.Mask&ConfigX != 0 {
		mask |= ConfigX
		values = append(values, uint32(int32(req.X)))
	}
	if req.Mask&ConfigY != 0 {
		mask |= ConfigY
		values = append(values, uint32(int32(req.Y)))
	}
	if req.Mask&ConfigWidth != 0 {
		mask |= ConfigWidth
		values = append(values, uint32(req.Width))
	}
	if req.Mask&ConfigHeight != 0 {
		mask |= ConfigHeight
		values = append(values, uint32(req.Height))
	}
	if req.Mask&ConfigBorderWidth != 0 {
		mask |= ConfigBorderWidth
		values = append(values, uint32(req.BorderWidth))
	}
	if req.Mask&ConfigSibling != 0 {
		mask |= ConfigSibling
		values = append(values, uint32(req.Sibling))
	}
	if req.Mask&ConfigStackMode != 0 {
		mask |= ConfigStackMode
		values = append(values, uint32(req.StackMode))
	}
	return mask, values
}

// Manage subscribes to client events and installs the drag grabs.
func (b *LinuxBackend) Manage(windowID WindowID) error {
	if err := b.conn.SelectClientEvents(xproto.Window(windowID)); err != nil {
		return err
	}
	return b.conn.GrabButtons(xproto.Window(windowID), b.grabs)
}

// SetState writes WM_STATE.
func (b *LinuxBackend) SetState(windowID WindowID, state WMState) error {
	return b.conn.SetWMState(xproto.Window(windowID), uint(state))
}

// Focus gives windowID the input focus.
func (b *LinuxBackend) Focus(windowID WindowID) error {
	return b.conn.FocusWindow(xproto.Window(windowID))
}

// Raise stacks windowID above its siblings.
func (b *LinuxBackend) Raise(windowID WindowID) error {
	return b.conn.RaiseWindow(xproto.Window(windowID))
}

// SetActiveWindow publishes _NET_ACTIVE_WINDOW.
func (b *LinuxBackend) SetActiveWindow(windowID WindowID) error {
	return b.conn.SetActiveWindow(xproto.Window(windowID))
}

// SetClientList publishes _NET_CLIENT_LIST.
func (b *LinuxBackend) SetClientList(windows []WindowID) error {
	ids := make([]xproto.Window, len(windows))
	for i, w := range windows {
		ids[i] = xproto.Window(w)
	}
	return b.conn.SetClientList(ids)
}

// Close requests graceful window close via WM_DELETE_WINDOW.
func (b *LinuxBackend) Close(windowID WindowID) error {
	return b.conn.SendDelete(xproto.Window(windowID))
}

// Kill forcibly disconnects the client owning windowID.
func (b *LinuxBackend) Kill(windowID WindowID) error {
	return b.conn.KillClient(xproto.Window(windowID))
}
