package daemon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/blazeneuro/blazewm/internal/config"
	"github.com/blazeneuro/blazewm/internal/platform"
)

func TestPressTarget(t *testing.T) {
	const root = xproto.Window(1)

	tests := []struct {
		name         string
		event, child xproto.Window
		want         platform.WindowID
	}{
		{"root with child", root, 0x400001, 0x400001},
		{"bare root", root, 0, 0},
		{"passive grab on client", 0x600002, 0, 0x600002},
		{"client with subwindow child", 0x600002, 0x600010, 0x600002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pressTarget(root, tt.event, tt.child); got != tt.want {
				t.Fatalf("pressTarget = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestButtonEvent(t *testing.T) {
	ev := xproto.ButtonPressEvent{
		Detail: 3,
		Root:   1,
		Event:  1,
		Child:  0x400001,
		RootX:  640,
		RootY:  -2,
		State:  xproto.ModMask1 | xproto.ModMask2,
	}

	got := buttonEvent(1, ev)
	if got.Target != 0x400001 || got.Button != 3 || got.RootX != 640 || got.RootY != -2 {
		t.Fatalf("unexpected button event %+v", got)
	}
	if got.State != xproto.ModMask1|xproto.ModMask2 {
		t.Fatalf("expected state to be passed through, got %#x", got.State)
	}
}

func TestConfigureRequest(t *testing.T) {
	ev := xproto.ConfigureRequestEvent{
		StackMode:   xproto.StackModeAbove,
		Window:      0x500000,
		Sibling:     0x500001,
		X:           -10,
		Y:           20,
		Width:       300,
		Height:      200,
		BorderWidth: 2,
		ValueMask:   xproto.ConfigWindowX | xproto.ConfigWindowHeight | xproto.ConfigWindowStackMode,
	}

	got := configureRequest(ev)
	want := platform.ConfigureRequest{
		Window:      0x500000,
		Mask:        platform.ConfigX | platform.ConfigHeight | platform.ConfigStackMode,
		X:           -10,
		Y:           20,
		Width:       300,
		Height:      200,
		BorderWidth: 2,
		Sibling:     0x500001,
		StackMode:   xproto.StackModeAbove,
	}
	if got != want {
		t.Fatalf("configureRequest = %+v, want %+v", got, want)
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseUninitialized: "uninitialized",
		PhaseProbing:       "probing",
		PhaseRunning:       "running",
		PhaseShuttingDown:  "shutting-down",
		PhaseClosed:        "closed",
		Phase(42):          "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, got, want)
		}
	}
}

func TestRun_BadDisplay(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display = "not-a-display"
	d := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := d.Run(context.Background())
	if !errors.Is(err, ErrDisplay) {
		t.Fatalf("expected ErrDisplay, got %v", err)
	}
	if d.Phase() != PhaseClosed {
		t.Fatalf("expected closed phase, got %v", d.Phase())
	}
}
