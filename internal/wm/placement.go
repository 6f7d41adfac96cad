package wm

import (
	"github.com/blazeneuro/blazewm/internal/platform"
)

// Struts are the pixels reserved at the screen edges for the topbar and dock.
type Struts struct {
	Top    int
	Bottom int
}

// Available returns the part of screen not covered by the struts.
func (s Struts) Available(screen platform.Rect) platform.Rect {
	height := screen.Height - s.Top - s.Bottom
	if height < 1 {
		height = 1
	}
	return platform.Rect{
		X:      screen.X,
		Y:      screen.Y + s.Top,
		Width:  screen.Width,
		Height: height,
	}
}

// Place computes the initial geometry of a newly mapped window. A requested
// dimension of zero (or less) falls back to two thirds of the available area;
// any dimension is clamped to the available area. The result is centered in
// the area between the struts.
func Place(screen platform.Rect, struts Struts, requested platform.Rect) platform.Rect {
	area := struts.Available(screen)

	width := requested.Width
	if width <= 0 {
		width = area.Width * 2 / 3
	}
	height := requested.Height
	if height <= 0 {
		height = area.Height * 2 / 3
	}

	width = min(width, area.Width)
	height = min(height, area.Height)
	width = max(width, 1)
	height = max(height, 1)

	return platform.Rect{
		X:      area.X + (area.Width-width)/2,
		Y:      area.Y + (area.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
