package selection

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a generator seeded from seed. A zero seed uses the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes s in place with the Fisher-Yates algorithm, so every
// permutation is equally likely. A nil rng uses a time-seeded source.
func Shuffle[T any](s []T, rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(0)
	}
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
