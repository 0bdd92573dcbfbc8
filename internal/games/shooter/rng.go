package shooter

// rng is a deterministic pseudo-random number generator (64-bit LCG).
// Its whole state is one word, so snapshots can carry it.
type rng struct {
	state uint64
}

func newRNG(seed int64) *rng {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &rng{state: s}
}

func (r *rng) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a value in [0, 1). Uses the top 53 bits.
func (r *rng) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}
