package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// PublishSupport advertises the manager to EWMH-aware clients: the
// _NET_SUPPORTED list and a supporting-check window named wmName.
func (c *Connection) PublishSupport(wmName string) error {
	win, err := xwindow.Create(c.XUtil, c.Root)
	if err != nil {
		return fmt.Errorf("failed to create check window: %w", err)
	}
	c.checkWin = win.Id

	if err := ewmh.SupportingWmCheckSet(c.XUtil, win.Id, win.Id); err != nil {
		return fmt.Errorf("failed to set check on check window: %w", err)
	}
	if err := ewmh.SupportingWmCheckSet(c.XUtil, c.Root, win.Id); err != nil {
		return fmt.Errorf("failed to set check on root: %w", err)
	}
	if err := ewmh.WmNameSet(c.XUtil, win.Id, wmName); err != nil {
		return fmt.Errorf("failed to set wm name: %w", err)
	}
	if err := ewmh.SupportedSet(c.XUtil, SupportedHints); err != nil {
		return fmt.Errorf("failed to set supported hints: %w", err)
	}
	return nil
}

// CheckWindow returns the supporting-check window, or 0 before PublishSupport.
func (c *Connection) CheckWindow() xproto.Window {
	return c.checkWin
}

// SetClientList replaces _NET_CLIENT_LIST in a single property write.
func (c *Connection) SetClientList(windows []xproto.Window) error {
	if windows == nil {
		windows = []xproto.Window{}
	}
	return ewmh.ClientListSet(c.XUtil, windows)
}

// SetActiveWindow sets _NET_ACTIVE_WINDOW; 0 clears it.
func (c *Connection) SetActiveWindow(windowID xproto.Window) error {
	return ewmh.ActiveWindowSet(c.XUtil, windowID)
}

// WindowTypes returns the window's _NET_WM_WINDOW_TYPE list in preference
// order. A window without the property yields an empty list.
func (c *Connection) WindowTypes(windowID xproto.Window) []string {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return nil
	}
	return types
}

// SupportsDelete reports whether WM_PROTOCOLS lists WM_DELETE_WINDOW.
func (c *Connection) SupportsDelete(windowID xproto.Window) bool {
	protocols, err := icccm.WmProtocolsGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, p := range protocols {
		if p == "WM_DELETE_WINDOW" {
			return true
		}
	}
	return false
}

// SetWMState writes the ICCCM WM_STATE property.
func (c *Connection) SetWMState(windowID xproto.Window, state uint) error {
	return icccm.WmStateSet(c.XUtil, windowID, &icccm.WmState{State: state})
}

// SendDelete asks a client to close itself via WM_DELETE_WINDOW.
func (c *Connection) SendDelete(windowID xproto.Window) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   c.Atoms.WmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.Atoms.WmDeleteWindow),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		windowID,
		xproto.EventMaskNoEvent,
		string(ev.Bytes()),
	).Check()
}
