// Package seq_stats computes nucleotide composition for a generated sequence.
// Percentages are always taken over the sequence before any label is added.
package seq_stats

import (
	"errors"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Symbols lists the bases in report order
var Symbols = [4]byte{'A', 'C', 'G', 'T'}

var ErrEmptySequence = errors.New("cannot compute composition of an empty sequence")

// Composition is the per-base percentage breakdown of one sequence
type Composition struct {
	Length    int
	Counts    [4]int     // indexed like Symbols
	Percent   [4]float64 // indexed like Symbols
	GC        float64    // C% + G%
	AT        float64    // A% + T%
	GCATRatio float64    // GC / AT, 0 when AT is 0
}

// Calculate returns the composition of seq. seq must be non-empty and
// drawn from A, C, G, T; use CalculateChecked when that is not guaranteed.
func Calculate(seq string) Composition {
	comp := Composition{Length: len(seq)}
	for i, sym := range Symbols {
		comp.Counts[i] = strings.Count(seq, string(sym))
		comp.Percent[i] = float64(comp.Counts[i]) / float64(comp.Length) * 100
	}

	comp.GC = floats.Sum([]float64{comp.Of('C'), comp.Of('G')})
	comp.AT = floats.Sum([]float64{comp.Of('A'), comp.Of('T')})
	if comp.AT != 0 {
		comp.GCATRatio = comp.GC / comp.AT
	}
	return comp
}

// CalculateChecked is Calculate with an error for empty input
func CalculateChecked(seq string) (Composition, error) {
	if len(seq) == 0 {
		return Composition{}, ErrEmptySequence
	}
	return Calculate(seq), nil
}

// Of returns the percentage for a single base, or 0 for anything
// outside A, C, G, T.
func (c Composition) Of(sym byte) float64 {
	for i, s := range Symbols {
		if s == sym {
			return c.Percent[i]
		}
	}
	return 0
}

// Total is the sum of the four base percentages
func (c Composition) Total() float64 {
	return floats.Sum(c.Percent[:])
}
