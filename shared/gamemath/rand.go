package gamemath

// Rand is the random source the simulation draws from. *rand.Rand satisfies
// it; tests pass scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Jitter returns base + U(0, spread).
func Jitter(r Rand, base, spread float64) float64 {
	return base + r.Float64()*spread
}
