package seq_generator

import (
	"math/rand"
	"time"
)

// Nucleotides is the alphabet every generated sequence is drawn from
const Nucleotides = "ACGT"

// Source is the slice of *rand.Rand the generators need
type Source interface {
	Intn(n int) int
}

// NewSource returns the random source for a session.
// A zero seed means "seed from the clock", anything else is reproducible.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// GenerateDNA returns a DNA sequence of exactly length bases, each drawn
// uniformly from A, C, G and T. Callers must pass length > 0.
func GenerateDNA(rng Source, length int) string {
	seq := make([]byte, length)
	for i := 0; i < length; i++ {
		seq[i] = Nucleotides[rng.Intn(len(Nucleotides))]
	}
	return string(seq)
}
