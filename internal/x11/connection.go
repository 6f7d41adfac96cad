package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/BurntSushi/xgbutil/xcursor"
)

// ErrOtherWM is returned when another client already holds substructure
// redirect on the root window.
var ErrOtherWM = errors.New("another window manager is already running")

// rootEventMask is what the manager selects on the root window. Substructure
// redirect is the part only one client may hold.
const rootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskPropertyChange |
	xproto.EventMaskKeyPress

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
	Atoms *Atoms

	checkWin xproto.Window
}

// NewConnection connects to the named display ("" means $DISPLAY) and interns
// the protocol atoms. Both failures are fatal for a window manager.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	// Initialize keybind and mousebind modules (required for grab parsing)
	keybind.Initialize(xu)
	mousebind.Initialize(xu)

	atoms, err := internAtoms(xu)
	if err != nil {
		xu.Conn().Close()
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
		Atoms: atoms,
	}, nil
}

// BecomeManager selects substructure redirect on the root window with a
// checked request. Any error means another manager owns the root.
func (c *Connection) BecomeManager() error {
	err := xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		c.Root,
		xproto.CwEventMask,
		[]uint32{rootEventMask},
	).Check()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOtherWM, err)
	}
	return nil
}

// SetRootCursor shows the standard arrow over the root window.
func (c *Connection) SetRootCursor() error {
	cursor, err := xcursor.CreateCursor(c.XUtil, xcursor.LeftPtr)
	if err != nil {
		return fmt.Errorf("failed to create cursor: %w", err)
	}
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		c.Root,
		xproto.CwCursor,
		[]uint32{uint32(cursor)},
	).Check()
}

// ScreenSize returns the size of the default screen in pixels.
func (c *Connection) ScreenSize() (int, int) {
	screen := c.XUtil.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
