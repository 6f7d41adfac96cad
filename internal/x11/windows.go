package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xevent"
)

// clientEventMask is selected on every managed window.
const clientEventMask = xproto.EventMaskEnterWindow |
	xproto.EventMaskFocusChange |
	xproto.EventMaskPropertyChange |
	xproto.EventMaskStructureNotify

const dragEventMask = xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// ButtonGrab is a modifier+button combination grabbed on managed windows.
type ButtonGrab struct {
	Mods   uint16
	Button xproto.Button
}

// TopLevel is a child of the root window with the attributes adoption needs.
type TopLevel struct {
	ID               xproto.Window
	Viewable         bool
	OverrideRedirect bool
}

// Geometry returns a window's position relative to its parent and its size.
func (c *Connection) Geometry(windowID xproto.Window) (x, y, width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return int(geom.X), int(geom.Y), int(geom.Width), int(geom.Height), nil
}

// TopLevels lists the children of the root window in stacking order.
func (c *Connection) TopLevels() ([]TopLevel, error) {
	tree, err := xproto.QueryTree(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query tree: %w", err)
	}

	windows := make([]TopLevel, 0, len(tree.Children))
	for _, child := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), child).Reply()
		if err != nil {
			// Destroyed between QueryTree and now.
			continue
		}
		windows = append(windows, TopLevel{
			ID:               child,
			Viewable:         attrs.MapState == xproto.MapStateViewable,
			OverrideRedirect: attrs.OverrideRedirect,
		})
	}
	return windows, nil
}

// MapWindow maps a window.
func (c *Connection) MapWindow(windowID xproto.Window) error {
	return xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check()
}

// ConfigureWindow applies an already ordered value list for mask.
func (c *Connection) ConfigureWindow(windowID xproto.Window, mask uint16, values []uint32) error {
	return xproto.ConfigureWindowChecked(c.XUtil.Conn(), windowID, mask, values).Check()
}

// MoveResizeWindow moves and resizes a window to the specified geometry
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	return c.ConfigureWindow(windowID,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(int32(x)), uint32(int32(y)), uint32(width), uint32(height)},
	)
}

// MoveWindow changes only a window's position.
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) error {
	return c.ConfigureWindow(windowID,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))},
	)
}

// ResizeWindow changes only a window's size.
func (c *Connection) ResizeWindow(windowID xproto.Window, width, height int) error {
	return c.ConfigureWindow(windowID,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)},
	)
}

// RaiseWindow puts a window on top of the stacking order.
func (c *Connection) RaiseWindow(windowID xproto.Window) error {
	return c.ConfigureWindow(windowID, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

// FocusWindow gives a window the input focus, reverting to the pointer root.
func (c *Connection) FocusWindow(windowID xproto.Window) error {
	return xproto.SetInputFocusChecked(
		c.XUtil.Conn(),
		xproto.InputFocusPointerRoot,
		windowID,
		xproto.TimeCurrentTime,
	).Check()
}

// KillClient terminates the connection of the client owning windowID.
func (c *Connection) KillClient(windowID xproto.Window) error {
	return xproto.KillClientChecked(c.XUtil.Conn(), uint32(windowID)).Check()
}

// SelectClientEvents subscribes to the events the manager tracks on a client.
func (c *Connection) SelectClientEvents(windowID xproto.Window) error {
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.CwEventMask,
		[]uint32{clientEventMask},
	).Check()
}

// GrabButtons installs passive grabs for each combination on windowID. Every
// combination is repeated for the lock modifiers in xevent.IgnoreMods so that
// CapsLock or NumLock do not break dragging.
func (c *Connection) GrabButtons(windowID xproto.Window, grabs []ButtonGrab) error {
	for _, g := range grabs {
		for _, ignore := range ignoreMods() {
			err := xproto.GrabButtonChecked(
				c.XUtil.Conn(),
				true,
				windowID,
				uint16(dragEventMask),
				xproto.GrabModeAsync,
				xproto.GrabModeAsync,
				xproto.WindowNone,
				0,
				byte(g.Button),
				g.Mods|ignore,
			).Check()
			if err != nil {
				return fmt.Errorf("failed to grab button %d: %w", g.Button, err)
			}
		}
	}
	return nil
}

func ignoreMods() []uint16 {
	if len(xevent.IgnoreMods) == 0 {
		return []uint16{0}
	}
	return xevent.IgnoreMods
}
