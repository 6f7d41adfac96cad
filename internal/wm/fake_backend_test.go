package wm

import (
	"errors"
	"fmt"
	"slices"

	"github.com/blazeneuro/blazewm/internal/platform"
)

// fakeBackend records every request as a short string and answers queries
// from in-memory tables.
type fakeBackend struct {
	screen     platform.Rect
	types      map[platform.WindowID]platform.WindowType
	geometry   map[platform.WindowID]platform.Rect
	deletable  map[platform.WindowID]bool
	topLevels  []platform.TopLevel
	failMap    map[platform.WindowID]bool
	calls      []string
	clientList []platform.WindowID
	publishes  int
	active     platform.WindowID
	states     map[platform.WindowID]platform.WMState
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		screen:    platform.Rect{Width: 1920, Height: 1080},
		types:     make(map[platform.WindowID]platform.WindowType),
		geometry:  make(map[platform.WindowID]platform.Rect),
		deletable: make(map[platform.WindowID]bool),
		failMap:   make(map[platform.WindowID]bool),
		states:    make(map[platform.WindowID]platform.WMState),
	}
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) reset() { f.calls = nil }

func (f *fakeBackend) called(call string) bool {
	return slices.Contains(f.calls, call)
}

func (f *fakeBackend) Screen() (platform.Rect, error) { return f.screen, nil }

func (f *fakeBackend) TopLevels() ([]platform.TopLevel, error) { return f.topLevels, nil }

func (f *fakeBackend) WindowType(id platform.WindowID) platform.WindowType {
	return f.types[id]
}

func (f *fakeBackend) Geometry(id platform.WindowID) (platform.Rect, error) {
	r, ok := f.geometry[id]
	if !ok {
		return platform.Rect{}, errors.New("bad window")
	}
	return r, nil
}

func (f *fakeBackend) SupportsDelete(id platform.WindowID) bool { return f.deletable[id] }

func (f *fakeBackend) Map(id platform.WindowID) error {
	f.record("map %d", id)
	if f.failMap[id] {
		return errors.New("bad window")
	}
	return nil
}

func (f *fakeBackend) MoveResize(id platform.WindowID, r platform.Rect) error {
	f.record("moveresize %d %d,%d %dx%d", id, r.X, r.Y, r.Width, r.Height)
	f.geometry[id] = r
	return nil
}

func (f *fakeBackend) Move(id platform.WindowID, x, y int) error {
	f.record("move %d %d,%d", id, x, y)
	r := f.geometry[id]
	r.X, r.Y = x, y
	f.geometry[id] = r
	return nil
}

func (f *fakeBackend) Resize(id platform.WindowID, w, h int) error {
	f.record("resize %d %dx%d", id, w, h)
	r := f.geometry[id]
	r.Width, r.Height = w, h
	f.geometry[id] = r
	return nil
}

func (f *fakeBackend) Configure(req platform.ConfigureRequest) error {
	f.record("configure %d mask=%#x %d,%d %dx%d", req.Window, req.Mask, req.X, req.Y, req.Width, req.Height)
	return nil
}

func (f *fakeBackend) Manage(id platform.WindowID) error {
	f.record("manage %d", id)
	return nil
}

func (f *fakeBackend) SetState(id platform.WindowID, state platform.WMState) error {
	f.record("state %d %d", id, state)
	f.states[id] = state
	return nil
}

func (f *fakeBackend) Focus(id platform.WindowID) error {
	f.record("focus %d", id)
	return nil
}

func (f *fakeBackend) Raise(id platform.WindowID) error {
	f.record("raise %d", id)
	return nil
}

func (f *fakeBackend) SetActiveWindow(id platform.WindowID) error {
	f.record("active %d", id)
	f.active = id
	return nil
}

func (f *fakeBackend) SetClientList(ids []platform.WindowID) error {
	f.clientList = slices.Clone(ids)
	f.publishes++
	return nil
}

func (f *fakeBackend) Close(id platform.WindowID) error {
	f.record("close %d", id)
	return nil
}

func (f *fakeBackend) Kill(id platform.WindowID) error {
	f.record("kill %d", id)
	return nil
}

type fakeSpawner struct {
	started []string
	err     error
}

func (s *fakeSpawner) Spawn(program string) error {
	if s.err != nil {
		return s.err
	}
	s.started = append(s.started, program)
	return nil
}
