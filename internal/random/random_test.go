package random

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/spinwheel/internal/random/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUniformStaysInRange(t *testing.T) {
	r := New(&Config{Seed: 42})

	for i := 0; i < 10000; i++ {
		v := Uniform(r, 0.09, 0.18)
		require.GreaterOrEqual(t, v, 0.09)
		require.Less(t, v, 0.18)
	}
}

func TestSeededRollersRepeat(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestShuffleWalksFromLastIndexDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	gomock.InOrder(
		src.EXPECT().Intn(4).Return(0),
		src.EXPECT().Intn(3).Return(2),
		src.EXPECT().Intn(2).Return(0),
	)

	items := []string{"a", "b", "c", "d"}
	Shuffle(src, items)

	// i=3 swaps with 0: d b c a
	// i=2 swaps with 2: d b c a
	// i=1 swaps with 0: b d c a
	assert.Equal(t, []string{"b", "d", "c", "a"}, items)
}

func TestShuffleShortSlicesUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	var empty []int
	Shuffle(src, empty)
	assert.Empty(t, empty)

	single := []int{1}
	Shuffle(src, single)
	assert.Equal(t, []int{1}, single)
}

func TestShuffleIsUnbiased(t *testing.T) {
	r := New(&Config{Seed: 1234})
	counts := make(map[string]int)
	const runs = 60000

	for i := 0; i < runs; i++ {
		items := []string{"x", "y", "z"}
		Shuffle(r, items)
		counts[strings.Join(items, "")]++
	}

	require.Len(t, counts, 6)
	for perm, n := range counts {
		freq := float64(n) / runs
		assert.InDelta(t, 1.0/6.0, freq, 0.01, "permutation %s", perm)
	}
}
