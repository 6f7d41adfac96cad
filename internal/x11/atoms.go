package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Atoms holds every EWMH/ICCCM atom the manager uses. It is filled once at
// startup and never modified.
type Atoms struct {
	NetSupported          xproto.Atom
	NetWmName             xproto.Atom
	NetWmState            xproto.Atom
	NetWmStateFullscreen  xproto.Atom
	NetWmWindowType       xproto.Atom
	NetWmWindowTypeDock   xproto.Atom
	NetWmWindowTypeDialog xproto.Atom
	NetWmWindowTypeNormal xproto.Atom
	NetWmStrut            xproto.Atom
	NetWmStrutPartial     xproto.Atom
	NetActiveWindow       xproto.Atom
	NetSupportingWmCheck  xproto.Atom
	NetClientList         xproto.Atom
	WmProtocols           xproto.Atom
	WmDeleteWindow        xproto.Atom
	WmState               xproto.Atom
	Utf8String            xproto.Atom
}

// SupportedHints is the _NET_SUPPORTED list advertised on the root window.
var SupportedHints = []string{
	"_NET_SUPPORTED",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_WINDOW_TYPE",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_WM_STRUT",
	"_NET_WM_STRUT_PARTIAL",
}

func internAtoms(xu *xgbutil.XUtil) (*Atoms, error) {
	a := &Atoms{}
	table := []struct {
		name string
		dst  *xproto.Atom
	}{
		{"_NET_SUPPORTED", &a.NetSupported},
		{"_NET_WM_NAME", &a.NetWmName},
		{"_NET_WM_STATE", &a.NetWmState},
		{"_NET_WM_STATE_FULLSCREEN", &a.NetWmStateFullscreen},
		{"_NET_WM_WINDOW_TYPE", &a.NetWmWindowType},
		{"_NET_WM_WINDOW_TYPE_DOCK", &a.NetWmWindowTypeDock},
		{"_NET_WM_WINDOW_TYPE_DIALOG", &a.NetWmWindowTypeDialog},
		{"_NET_WM_WINDOW_TYPE_NORMAL", &a.NetWmWindowTypeNormal},
		{"_NET_WM_STRUT", &a.NetWmStrut},
		{"_NET_WM_STRUT_PARTIAL", &a.NetWmStrutPartial},
		{"_NET_ACTIVE_WINDOW", &a.NetActiveWindow},
		{"_NET_SUPPORTING_WM_CHECK", &a.NetSupportingWmCheck},
		{"_NET_CLIENT_LIST", &a.NetClientList},
		{"WM_PROTOCOLS", &a.WmProtocols},
		{"WM_DELETE_WINDOW", &a.WmDeleteWindow},
		{"WM_STATE", &a.WmState},
		{"UTF8_STRING", &a.Utf8String},
	}

	for _, entry := range table {
		// xprop caches interned atoms on the XUtil, so later ewmh/icccm
		// helpers reuse these without another round trip.
		atom, err := xprop.Atm(xu, entry.name)
		if err != nil {
			return nil, fmt.Errorf("failed to intern %s: %w", entry.name, err)
		}
		*entry.dst = atom
	}
	return a, nil
}
