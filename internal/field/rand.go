package field

import (
	"math/rand"
	"time"
)

// Rand is the random source the field draws launch patterns and colors from.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded generator. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
