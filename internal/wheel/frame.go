package wheel

import (
	"math"

	"github.com/KirkDiggler/spinwheel/internal/models"
)

var palette = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#96CEB4",
	"#FFEAA7",
	"#DDA0DD",
	"#98D8C8",
	"#F7DC6F",
	"#BB8FCE",
	"#85C1E9",
	"#F8C471",
	"#82E0AA",
	"#F1948A",
	"#85C1E9",
	"#F7DC6F",
	"#D7BDE2",
}

// Colors assigns a palette color per segment, cycling through the palette
func Colors(count int) []string {
	colors := make([]string, count)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}

// Frame is everything a renderer needs for one redraw
type Frame struct {
	// Options are the segments in order, either a snapshot or the live list
	Options []models.Option

	// Colors holds one color per option
	Colors []string

	// Angle is the accumulated wheel angle
	Angle float64

	// Spinning is true while a run is in flight
	Spinning bool
}

// WithAngle returns a copy of the frame rotated to angle
func (f *Frame) WithAngle(angle float64) *Frame {
	c := *f
	c.Angle = angle
	return &c
}

// Segment is one slice of the wheel in screen angles: radians clockwise
// from 12 o'clock, already rotated by the wheel angle
type Segment struct {
	Index int
	Text  string
	Color string
	Start float64
	End   float64
}

// Segments lays out the frame's options around the wheel
func (f *Frame) Segments() []Segment {
	n := len(f.Options)
	if n == 0 {
		return nil
	}

	arc := FullTurn / float64(n)
	segments := make([]Segment, n)
	for i, option := range f.Options {
		start := float64(i)*arc + f.Angle
		segments[i] = Segment{
			Index: i,
			Text:  option.Text,
			Color: f.colorAt(i),
			Start: start,
			End:   start + arc,
		}
	}
	return segments
}

// SegmentAt returns the index of the segment under screen angle theta
// (clockwise from 12 o'clock), or -1 for an empty wheel
func (f *Frame) SegmentAt(theta float64) int {
	n := len(f.Options)
	if n == 0 {
		return -1
	}
	arc := FullTurn / float64(n)
	index := int(math.Floor(Normalize(theta-f.Angle)/arc)) % n
	return index
}

// Selected is the segment currently under the pointer, resolved exactly
// as the final outcome is
func (f *Frame) Selected() int {
	index, err := ResolveIndex(f.Angle, len(f.Options))
	if err != nil {
		return -1
	}
	return index
}

func (f *Frame) colorAt(i int) string {
	if i < len(f.Colors) {
		return f.Colors[i]
	}
	return palette[i%len(palette)]
}

// GlowIntensity is the glow overlay strength for progress in [0, 1]
func GlowIntensity(progress float64) float64 {
	if progress <= 0 || progress >= 1 {
		return 0
	}
	return math.Sin(progress * math.Pi)
}
