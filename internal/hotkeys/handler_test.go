package hotkeys

import (
	"reflect"
	"sort"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestCleanState(t *testing.T) {
	numLock := uint16(xproto.ModMask2)
	ignore := ignoreCombinations(xproto.ModMaskLock, numLock)

	tests := []struct {
		name  string
		state uint16
		want  uint16
	}{
		{"plain alt", xproto.ModMask1, xproto.ModMask1},
		{"alt with capslock", xproto.ModMask1 | xproto.ModMaskLock, xproto.ModMask1},
		{"alt with numlock", xproto.ModMask1 | numLock, xproto.ModMask1},
		{"alt with both locks", xproto.ModMask1 | numLock | xproto.ModMaskLock, xproto.ModMask1},
		{"alt with button held", xproto.ModMask1 | xproto.KeyButMaskButton1, xproto.ModMask1},
		{"control shift", xproto.ModMaskControl | xproto.ModMaskShift, xproto.ModMaskControl | xproto.ModMaskShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanState(tt.state, ignore); got != tt.want {
				t.Errorf("CleanState(%#x) = %#x, want %#x", tt.state, got, tt.want)
			}
		})
	}
}

func TestIgnoreCombinations(t *testing.T) {
	got := ignoreCombinations(xproto.ModMaskLock, xproto.ModMask2, 0, xproto.ModMask2)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	want := []uint16{0, xproto.ModMaskLock, xproto.ModMask2, xproto.ModMaskLock | xproto.ModMask2}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ignoreCombinations = %v, want %v", got, want)
	}
}

func TestIgnoreCombinations_NoLocks(t *testing.T) {
	got := ignoreCombinations()
	if !reflect.DeepEqual(got, []uint16{0}) {
		t.Fatalf("expected only the empty mask, got %v", got)
	}
}
