package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the randomness behind launch velocities and shuffles
//
//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/spinwheel/internal/random Source
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64

	// Intn returns a uniform value in [0, n); n must be positive
	Intn(n int) int
}

// Roller is a Source backed by math/rand, safe for concurrent use
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a uniform value in [0, 1)
func (r *Roller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Intn returns a uniform value in [0, n)
func (r *Roller) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Uniform draws a value uniformly from [min, max)
func Uniform(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Shuffle permutes items in place with Fisher-Yates: walking from the last
// index down to 1, each position swaps with a uniform pick from [0, i].
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i >= 1; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
