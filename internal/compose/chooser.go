package compose

import (
	"math/rand"
	"sync"
	"time"
)

// Chooser is the source of randomness for composition. *rand.Rand satisfies
// it; tests substitute scripted implementations.
type Chooser interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomChooser returns a Chooser safe for use by concurrent handlers.
// A zero seed seeds from the clock.
func NewRandomChooser(seed int64) Chooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}
