package spin

import (
	"math/rand"
	"time"
)

// Random supplies uniform samples in [0, 1).
type Random interface {
	Float64() float64
}

// NewRandom returns a source seeded with seed, or with the current time when
// seed is zero.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
