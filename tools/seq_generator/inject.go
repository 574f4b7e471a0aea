package seq_generator

import "strings"

// InjectLabel splices label into seq at a position drawn uniformly from
// [0, len(seq)] and returns the labeled copy together with that position.
// 0 prepends, len(seq) appends.
func InjectLabel(rng Source, seq, label string) (string, int) {
	pos := rng.Intn(len(seq) + 1)
	return InsertAt(seq, label, pos), pos
}

// InsertAt is the deterministic half of InjectLabel
func InsertAt(seq, label string, pos int) string {
	var out strings.Builder
	out.Grow(len(seq) + len(label))
	out.WriteString(seq[:pos])
	out.WriteString(label)
	out.WriteString(seq[pos:])
	return out.String()
}
