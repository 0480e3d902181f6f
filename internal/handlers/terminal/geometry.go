package terminal

import (
	"math"

	"github.com/KirkDiggler/spinwheel/internal/wheel"
)

// cellAspect is the height of a terminal cell over its width
const cellAspect = 2.0

// Disc is a wheel rasterised into terminal cells
type Disc struct {
	// Width and Height are in cells
	Width  int
	Height int

	// Radius is in rows; a column is 1/cellAspect of a row
	Radius int

	// segments holds the segment index of every cell, -1 outside the wheel
	segments []int
}

// Rasterise lays frame out in a width x height box, leaving the top row
// for the pointer
func Rasterise(frame *wheel.Frame, width, height int) *Disc {
	radius := (height - 2) / 2
	if maxR := int(float64(width-1) / (2 * cellAspect)); maxR < radius {
		radius = maxR
	}
	if radius < 1 || len(frame.Options) == 0 {
		return &Disc{Width: width, Height: height}
	}

	d := &Disc{
		Width:    width,
		Height:   height,
		Radius:   radius,
		segments: make([]int, width*height),
	}
	for i := range d.segments {
		d.segments[i] = -1
	}

	cx, cy := d.Center()
	r := float64(radius) + 0.5
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x-cx) / cellAspect
			dy := float64(y - cy)
			if dx*dx+dy*dy > r*r {
				continue
			}
			// clockwise from 12 o'clock
			theta := math.Atan2(dx, -dy)
			d.segments[y*width+x] = frame.SegmentAt(theta)
		}
	}

	return d
}

// Center is the cell at the middle of the disc
func (d *Disc) Center() (int, int) {
	return d.Width / 2, 1 + d.Radius
}

// Pointer is the cell of the pointer marker, just above the disc
func (d *Disc) Pointer() (int, int) {
	cx, cy := d.Center()
	return cx, cy - d.Radius - 1
}

// At returns the segment under cell (x, y), or -1
func (d *Disc) At(x, y int) int {
	if d.segments == nil || x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return -1
	}
	return d.segments[y*d.Width+x]
}
