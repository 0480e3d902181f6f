package terminal

import (
	"testing"

	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameOf(n int, angle float64) *wheel.Frame {
	options := make([]models.Option, n)
	for i := range options {
		options[i] = models.Option{Text: string(rune('A' + i)), Enabled: true}
	}
	return &wheel.Frame{Options: options, Colors: wheel.Colors(n), Angle: angle}
}

func TestRasterise_TopCellIsSelected(t *testing.T) {
	for n := 2; n <= 12; n++ {
		for k := 0; k < 50; k++ {
			// stay clear of segment boundaries
			angle := float64(k)*0.37 + 0.011
			frame := frameOf(n, angle)

			disc := Rasterise(frame, 41, 12)
			require.Greater(t, disc.Radius, 0)

			px, py := disc.Pointer()
			assert.Equal(t, frame.Selected(), disc.At(px, py+1), "n=%d angle=%f", n, angle)
		}
	}
}

func TestRasterise_OutsideIsEmpty(t *testing.T) {
	disc := Rasterise(frameOf(4, 0), 41, 12)

	assert.Equal(t, -1, disc.At(0, 0))
	assert.Equal(t, -1, disc.At(40, 11))
	assert.Equal(t, -1, disc.At(-1, 3))
	assert.Equal(t, -1, disc.At(3, 99))

	cx, cy := disc.Center()
	assert.GreaterOrEqual(t, disc.At(cx, cy), 0)
}

func TestRasterise_PointerSitsAboveDisc(t *testing.T) {
	disc := Rasterise(frameOf(3, 0), 41, 12)

	px, py := disc.Pointer()
	assert.Equal(t, 0, py)
	assert.Equal(t, 20, px)
	assert.Equal(t, -1, disc.At(px, py))
}

func TestRasterise_NarrowBoxLimitsRadius(t *testing.T) {
	disc := Rasterise(frameOf(3, 0), 9, 40)

	assert.Equal(t, 2, disc.Radius)
}

func TestRasterise_EmptyOrTiny(t *testing.T) {
	assert.Equal(t, 0, Rasterise(frameOf(0, 0), 41, 12).Radius)
	assert.Equal(t, 0, Rasterise(frameOf(3, 0), 41, 2).Radius)
	assert.Equal(t, -1, Rasterise(frameOf(0, 0), 41, 12).At(20, 5))
}

func TestRasterise_EverySegmentVisible(t *testing.T) {
	frame := frameOf(8, 0.2)
	disc := Rasterise(frame, 61, 20)

	seen := map[int]bool{}
	for y := 0; y < disc.Height; y++ {
		for x := 0; x < disc.Width; x++ {
			if i := disc.At(x, y); i >= 0 {
				seen[i] = true
			}
		}
	}
	assert.Len(t, seen, 8)
}
