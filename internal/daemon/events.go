package daemon

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/blazeneuro/blazewm/internal/platform"
	"github.com/blazeneuro/blazewm/internal/wm"
)

// pressTarget returns the top-level window a button press is about. Presses
// delivered to the root carry the top-level under the pointer in child;
// presses from a passive grab on a client arrive on the client itself.
func pressTarget(root, event, child xproto.Window) platform.WindowID {
	if event == root {
		return platform.WindowID(child)
	}
	return platform.WindowID(event)
}

func buttonEvent(root xproto.Window, ev xproto.ButtonPressEvent) wm.ButtonEvent {
	return wm.ButtonEvent{
		Target: pressTarget(root, ev.Event, ev.Child),
		Button: int(ev.Detail),
		State:  ev.State,
		RootX:  int(ev.RootX),
		RootY:  int(ev.RootY),
	}
}

func configureRequest(ev xproto.ConfigureRequestEvent) platform.ConfigureRequest {
	return platform.ConfigureRequest{
		Window:      platform.WindowID(ev.Window),
		Mask:        ev.ValueMask,
		X:           int(ev.X),
		Y:           int(ev.Y),
		Width:       int(ev.Width),
		Height:      int(ev.Height),
		BorderWidth: int(ev.BorderWidth),
		Sibling:     platform.WindowID(ev.Sibling),
		StackMode:   int(ev.StackMode),
	}
}
