package musou

// Rand is the random source for spawn and hazard parameters.
// *math/rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Intn(n int) int
}

// randRange returns a value in [lo, hi], both inclusive.
func randRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
