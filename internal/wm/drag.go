package wm

import (
	"github.com/blazeneuro/blazewm/internal/platform"
)

// DragMode is the phase of a modifier-click drag.
type DragMode int

const (
	// DragIdle means no drag is in progress
	DragIdle DragMode = iota
	// DragMoving means pointer motion moves the target
	DragMoving
	// DragResizing means pointer motion resizes the target
	DragResizing
)

// String returns the string representation of the mode
func (m DragMode) String() string {
	switch m {
	case DragIdle:
		return "idle"
	case DragMoving:
		return "moving"
	case DragResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Drag holds the state of the one drag that can be active at a time.
type Drag struct {
	Mode    DragMode
	Target  platform.WindowID
	AnchorX int
	AnchorY int
	Start   platform.Rect
}

// Active reports whether a drag is in progress.
func (d Drag) Active() bool {
	return d.Mode != DragIdle
}

// Begin starts a drag of target from the root pointer position (x, y).
func (d *Drag) Begin(mode DragMode, target platform.WindowID, x, y int, start platform.Rect) {
	d.Mode = mode
	d.Target = target
	d.AnchorX = x
	d.AnchorY = y
	d.Start = start
}

// Step returns the target geometry for the root pointer position (x, y).
// Moving never clamps; resizing never goes below minWidth x minHeight.
func (d *Drag) Step(x, y, minWidth, minHeight int) platform.Rect {
	dx := x - d.AnchorX
	dy := y - d.AnchorY
	r := d.Start

	switch d.Mode {
	case DragMoving:
		r.X = d.Start.X + dx
		r.Y = d.Start.Y + dy
	case DragResizing:
		r.Width = max(minWidth, d.Start.Width+dx)
		r.Height = max(minHeight, d.Start.Height+dy)
	}
	return r
}

// End returns the drag to idle.
func (d *Drag) End() {
	*d = Drag{}
}
