package game

import (
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"
)

// NewRand returns the random source for a session. The same non-empty seed
// always produces the same asteroid layouts; an empty seed uses the clock.
func NewRand(seed string) *rand.Rand {
	var s uint64
	if seed == "" {
		s = uint64(time.Now().UnixNano())
	} else {
		s = xxhash.Sum64String(seed)
	}
	return rand.New(rand.NewPCG(s, s>>1))
}
