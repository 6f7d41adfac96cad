package hotkeys

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Action is what a global hotkey does.
type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionCycle
	ActionLauncher
	ActionTerminal
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionClose:
		return "close"
	case ActionCycle:
		return "cycle"
	case ActionLauncher:
		return "launcher"
	case ActionTerminal:
		return "terminal"
	default:
		return "none"
	}
}

// Binding maps a key sequence such as "Mod1-F4" to an action.
type Binding struct {
	Keys   string
	Action Action
}

// modifierBits are the bits of an event state that are keyboard modifiers;
// the rest are pointer button masks.
const modifierBits = xproto.ModMaskShift | xproto.ModMaskLock | xproto.ModMaskControl |
	xproto.ModMask1 | xproto.ModMask2 | xproto.ModMask3 | xproto.ModMask4 | xproto.ModMask5

type chord struct {
	mods    uint16
	keycode xproto.Keycode
}

// Handler grabs global keyboard shortcuts on the root window and resolves key
// presses back to actions. The table is fixed once Register returns.
type Handler struct {
	xu      *xgbutil.XUtil
	root    xproto.Window
	actions map[chord]Action
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler.
func NewHandler(xu *xgbutil.XUtil, root xproto.Window) *Handler {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:      xu,
		root:    root,
		actions: make(map[chord]Action),
	}
}

// Register grabs every binding on the root window. A binding that cannot be
// parsed or grabbed is skipped; the others are still registered and all the
// failures are returned together.
func (h *Handler) Register(bindings []Binding) error {
	var errs []error
	for _, b := range bindings {
		mods, keycodes, err := keybind.ParseString(h.xu, b.Keys)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid key sequence %q: %w", b.Keys, err))
			continue
		}
		if len(keycodes) == 0 {
			errs = append(errs, fmt.Errorf("key sequence %q maps to no keycode", b.Keys))
			continue
		}
		for _, kc := range keycodes {
			if err := keybind.GrabChecked(h.xu, h.root, mods, kc); err != nil {
				errs = append(errs, fmt.Errorf("failed to grab %q for %s: %w", b.Keys, b.Action, err))
				continue
			}
			h.actions[chord{mods: mods, keycode: kc}] = b.Action
		}
	}
	return errors.Join(errs...)
}

// Lookup resolves a key press to its action.
func (h *Handler) Lookup(state uint16, keycode xproto.Keycode) (Action, bool) {
	a, ok := h.actions[chord{mods: CleanState(state, xevent.IgnoreMods), keycode: keycode}]
	return a, ok
}

// CleanState strips pointer button bits and ignored lock modifiers from an
// event state so it can be compared with a parsed key sequence.
func CleanState(state uint16, ignore []uint16) uint16 {
	state &= modifierBits
	for _, m := range ignore {
		state &^= m
	}
	return state
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	xevent.IgnoreMods = ignoreCombinations(caps, numLock, scrollLock)
}

// ignoreCombinations returns every subset of the distinct non-zero lock masks,
// including the empty one.
func ignoreCombinations(locks ...uint16) []uint16 {
	var base []uint16
	for _, m := range locks {
		if m == 0 {
			continue
		}
		dup := false
		for _, b := range base {
			if b == m {
				dup = true
				break
			}
		}
		if !dup {
			base = append(base, m)
		}
	}

	combos := make([]uint16, 0, 1<<len(base))
	for subset := 0; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		combos = append(combos, mask)
	}
	return combos
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
