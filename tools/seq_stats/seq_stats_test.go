package seq_stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_Scenario(t *testing.T) {
	comp := Calculate("AAAACCCCGG")

	assert.Equal(t, 10, comp.Length)
	assert.Equal(t, [4]int{4, 4, 2, 0}, comp.Counts)
	assert.InDelta(t, 40.0, comp.Of('A'), 1e-9)
	assert.InDelta(t, 40.0, comp.Of('C'), 1e-9)
	assert.InDelta(t, 20.0, comp.Of('G'), 1e-9)
	assert.InDelta(t, 0.0, comp.Of('T'), 1e-9)
	assert.InDelta(t, 60.0, comp.GC, 1e-9)
	assert.InDelta(t, 1.5, comp.GCATRatio, 1e-9)
}

func TestCalculate_SumsToHundred(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		n := 1 + rnd.Intn(300)
		b := make([]byte, n)
		for j := range b {
			b[j] = Symbols[rnd.Intn(4)]
		}
		comp := Calculate(string(b))
		assert.InEpsilon(t, 100.0, comp.Total(), 1e-9)
	}
}

func TestCalculate_Ratio(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"no A or T", "GCGCCG", 0},
		{"single G", "G", 0},
		{"only AT", "ATTA", 0},
		{"balanced", "ACGT", 1},
		{"one in four", "GAAA", 1.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := Calculate(tt.seq)
			assert.InDelta(t, tt.want, comp.GCATRatio, 1e-12)
			assert.False(t, math.IsNaN(comp.GCATRatio))
			assert.False(t, math.IsInf(comp.GCATRatio, 0))
		})
	}
}

func TestCalculate_RatioMatchesPercentages(t *testing.T) {
	comp := Calculate("AACGTTTGCA")
	want := (comp.Of('C') + comp.Of('G')) / (comp.Of('A') + comp.Of('T'))
	assert.InDelta(t, want, comp.GCATRatio, 1e-12)
}

func TestCalculateChecked(t *testing.T) {
	_, err := CalculateChecked("")
	require.ErrorIs(t, err, ErrEmptySequence)

	comp, err := CalculateChecked("TT")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, comp.Of('T'), 1e-9)
}

func TestOf_UnknownSymbol(t *testing.T) {
	assert.Zero(t, Calculate("ACGT").Of('N'))
}
