package wheel

import (
	"math"
	"testing"

	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NoOptions(t *testing.T) {
	_, err := Resolve(1.0, nil)
	assert.ErrorIs(t, err, ErrNoOptions)

	_, err = ResolveIndex(1.0, 0)
	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestResolve_UsesOptionOrder(t *testing.T) {
	options := models.OptionsFromLines([]string{"A", "B", "C", "D"})

	index, err := Resolve(math.Pi, options)
	require.NoError(t, err)
	assert.Equal(t, "C", options[index].Text)
}

func TestResolveIndex_AlwaysInRange(t *testing.T) {
	angles := []float64{
		0, -0.0, 1e-300, -1e-300, 1e-16, -1e-16,
		math.Pi, -math.Pi, FullTurn, -FullTurn,
		FullTurn - 1e-15, -FullTurn + 1e-15,
		math.Nextafter(FullTurn, 0), math.Nextafter(-FullTurn, 0),
		12345.6789, -98765.4321, 1e12, -1e12,
	}
	for i := 0; i < 2000; i++ {
		angles = append(angles, float64(i)*0.0317-31.7)
	}

	for n := 1; n <= 100; n++ {
		for _, angle := range angles {
			index, err := ResolveIndex(angle, n)
			require.NoError(t, err)
			require.GreaterOrEqual(t, index, 0, "n=%d angle=%v", n, angle)
			require.Less(t, index, n, "n=%d angle=%v", n, angle)
		}
	}
}

func TestResolveIndex_BoundaryBelongsToNextSegment(t *testing.T) {
	const eps = 1e-9

	tests := []struct {
		name  string
		angle float64
		want  int
	}{
		{"zero angle is segment 0", 0, 0},
		{"full turn is segment 0", FullTurn, 0},
		{"pointer exactly on the 1|2 boundary", math.Pi, 2},
		{"pointer just before the boundary", math.Pi + eps, 1},
		{"pointer just after the boundary", math.Pi - eps, 2},
		{"small clockwise rotation wraps to the last segment", eps, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := ResolveIndex(tt.angle, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, index)
		})
	}
}

func TestResolveIndex_SingleSegment(t *testing.T) {
	for _, angle := range []float64{0, 1, -1, 100} {
		index, err := ResolveIndex(angle, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, index)
	}
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 0.5, Normalize(0.5), 1e-12)
	assert.InDelta(t, FullTurn-0.5, Normalize(-0.5), 1e-12)
	assert.InDelta(t, 1.0, Normalize(FullTurn*3+1), 1e-9)
	for _, angle := range []float64{-1e-300, -1e-17, math.Nextafter(0, -1)} {
		n := Normalize(angle)
		assert.GreaterOrEqual(t, n, 0.0)
		assert.Less(t, n, FullTurn)
	}
}
