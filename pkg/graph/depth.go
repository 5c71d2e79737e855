package graph

import (
	"cmp"
	"slices"

	"github.com/matzehuels/collatzgraph/pkg/collatz"
)

// MinimumDepths returns, for every value in b, the smallest position index at
// which it appears in any sequence. Unlike [Build], the result does not depend
// on scan order. It is a diagnostic and never drives layout.
func MinimumDepths(b collatz.Batch) map[int]int {
	out := make(map[int]int)
	for _, seq := range b.Sequences {
		for i, v := range seq {
			if d, ok := out[v]; !ok || i < d {
				out[v] = i
			}
		}
	}
	return out
}

// Discrepancy describes a node whose recorded depth is larger than the
// minimum position it was observed at.
type Discrepancy struct {
	Value    int
	Recorded int
	Minimum  int
}

// CompareDepths lists the nodes of g whose recorded depth differs from the
// minimum depth over b, sorted by value. g should have been built from b.
func CompareDepths(g *Graph, b collatz.Batch) []Discrepancy {
	minimum := MinimumDepths(b)
	var out []Discrepancy
	for v, d := range g.depth {
		if m, ok := minimum[v]; ok && m != d {
			out = append(out, Discrepancy{Value: v, Recorded: d, Minimum: m})
		}
	}
	slices.SortFunc(out, func(a, b Discrepancy) int { return cmp.Compare(a.Value, b.Value) })
	return out
}
