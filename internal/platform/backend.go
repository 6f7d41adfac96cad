package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// WindowType is the EWMH window-type classification the manager cares about.
type WindowType int

const (
	WindowTypeNormal WindowType = iota
	WindowTypeDialog
	WindowTypeDock
)

// String returns the string representation of the window type
func (t WindowType) String() string {
	switch t {
	case WindowTypeNormal:
		return "normal"
	case WindowTypeDialog:
		return "dialog"
	case WindowTypeDock:
		return "dock"
	default:
		return "unknown"
	}
}

// WMState mirrors the ICCCM WM_STATE values the manager writes.
type WMState int

const (
	WMStateWithdrawn WMState = iota
	WMStateNormal
)

// Config value-mask bits, identical to the core protocol's ConfigWindow* bits.
const (
	ConfigX uint16 = 1 << iota
	ConfigY
	ConfigWidth
	ConfigHeight
	ConfigBorderWidth
	ConfigSibling
	ConfigStackMode
)

// ConfigureRequest is a client's request to change its own geometry or
// stacking. Only the fields selected by Mask are meaningful.
type ConfigureRequest struct {
	Window      WindowID
	Mask        uint16
	X           int
	Y           int
	Width       int
	Height      int
	BorderWidth int
	Sibling     WindowID
	StackMode   int
}

// ButtonBinding is a modifier mask plus pointer button.
type ButtonBinding struct {
	Mods   uint16
	Button int
}

// TopLevel describes a child of the root window found at startup.
type TopLevel struct {
	ID               WindowID
	Viewable         bool
	OverrideRedirect bool
}

// Backend abstracts the protocol requests the window manager issues.
type Backend interface {
	// Screen returns the bounds of the primary monitor.
	Screen() (Rect, error)
	TopLevels() ([]TopLevel, error)

	WindowType(windowID WindowID) WindowType
	Geometry(windowID WindowID) (Rect, error)
	SupportsDelete(windowID WindowID) bool

	Map(windowID WindowID) error
	MoveResize(windowID WindowID, bounds Rect) error
	Move(windowID WindowID, x, y int) error
	Resize(windowID WindowID, width, height int) error
	Configure(req ConfigureRequest) error

	// Manage subscribes to the client's events and installs the drag grabs.
	Manage(windowID WindowID) error
	SetState(windowID WindowID, state WMState) error

	Focus(windowID WindowID) error
	Raise(windowID WindowID) error
	SetActiveWindow(windowID WindowID) error
	SetClientList(windows []WindowID) error

	Close(windowID WindowID) error
	Kill(windowID WindowID) error
}
