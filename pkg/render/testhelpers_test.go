package render

import (
	"testing"

	"github.com/matzehuels/collatzgraph/pkg/collatz"
	"github.com/matzehuels/collatzgraph/pkg/graph"
	"github.com/matzehuels/collatzgraph/pkg/layout"
)

func figureFor(t *testing.T, start, count int, opts ...FigureOption) Figure {
	t.Helper()
	b, err := collatz.Generate(start, count)
	if err != nil {
		t.Fatalf("Generate(%d, %d): %v", start, count, err)
	}
	l, err := layout.Compute(graph.Build(b))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return NewFigure(l, opts...)
}
