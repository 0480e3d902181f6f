package wheel

import (
	"math"

	"github.com/KirkDiggler/spinwheel/internal/models"
)

// Resolve maps the final wheel angle to the index of the selected option.
// The pointer sits at 12 o'clock while segments, drawn clockwise from the
// pointer, rotate with the wheel.
func Resolve(finalAngle float64, options []models.Option) (int, error) {
	return ResolveIndex(finalAngle, len(options))
}

// ResolveIndex is Resolve over a segment count. A pointer exactly on a
// boundary belongs to the segment starting there.
func ResolveIndex(finalAngle float64, segments int) (int, error) {
	if segments < 1 {
		return 0, ErrNoOptions
	}

	arc := FullTurn / float64(segments)
	pointer := Normalize(-Normalize(finalAngle))

	// pointer/arc can still round up to segments; the modulo folds it back
	// onto segment 0.
	index := int(math.Floor(pointer/arc)) % segments
	if index < 0 {
		index += segments
	}
	return index, nil
}

// Normalize folds an angle into [0, 2π)
func Normalize(angle float64) float64 {
	normalized := math.Mod(angle, FullTurn)
	if normalized < 0 {
		normalized += FullTurn
	}
	if normalized >= FullTurn {
		normalized = 0
	}
	return normalized
}
