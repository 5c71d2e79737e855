package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/collatzgraph/pkg/collatz"
	"github.com/matzehuels/collatzgraph/pkg/errors"
	"github.com/matzehuels/collatzgraph/pkg/graph"
)

func buildGraph(t *testing.T, start, count int) *graph.Graph {
	t.Helper()
	b, err := collatz.Generate(start, count)
	if err != nil {
		t.Fatalf("Generate(%d, %d): %v", start, count, err)
	}
	return graph.Build(b)
}

func TestComputePositions(t *testing.T) {
	g := buildGraph(t, 10, 50)
	l, err := Compute(g)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(l.Nodes) != g.NodeCount() {
		t.Fatalf("positioned %d nodes, graph has %d", len(l.Nodes), g.NodeCount())
	}
	for _, n := range l.Nodes {
		d, _ := g.Depth(n.Value)
		if n.X != n.Value {
			t.Errorf("node %d: x = %d, want %d", n.Value, n.X, n.Value)
		}
		if n.Y != -d {
			t.Errorf("node %d: y = %d, want %d", n.Value, n.Y, -d)
		}
		if p := l.Positions[n.Value]; p.X != n.X || p.Y != n.Y {
			t.Errorf("node %d: Positions = %+v, node = (%v, %v)", n.Value, p, n.X, n.Y)
		}
		if n.Label != graph.Label(n.Value) {
			t.Errorf("node %d: label = %q", n.Value, n.Label)
		}
	}
}

func TestComputeNeverMissesDepthForBuiltGraphs(t *testing.T) {
	for _, r := range []struct{ start, count int }{{1, 1}, {1, 100}, {27, 3}, {500, 20}, {9, 0}} {
		if _, err := Compute(buildGraph(t, r.start, r.count)); err != nil {
			t.Errorf("Compute(Generate(%d, %d)): %v", r.start, r.count, err)
		}
	}
}

func TestComputeSingleOne(t *testing.T) {
	l, err := Compute(buildGraph(t, 1, 1))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(l.Nodes) != 1 || l.Nodes[0].X != 1 || l.Nodes[0].Y != 0 {
		t.Errorf("Nodes = %+v, want single node at (1, 0)", l.Nodes)
	}
	if l.Trace.Len() != 0 || len(l.Edges) != 0 {
		t.Errorf("single node should have no edges, got trace of %d", l.Trace.Len())
	}
}

func TestComputeEdgeTrace(t *testing.T) {
	l, err := Compute(buildGraph(t, 4, 1)) // 4 → 2 → 1
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	wantX := []float64{4, 2, PenLift, 2, 1, PenLift}
	wantY := []float64{0, -1, PenLift, -1, -2, PenLift}
	assertCoords(t, "X", l.Trace.X, wantX)
	assertCoords(t, "Y", l.Trace.Y, wantY)
}

func TestComputeTraceLength(t *testing.T) {
	g := buildGraph(t, 10, 50)
	l, err := Compute(g)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got, want := l.Trace.Len(), 3*g.EdgeCount(); got != want {
		t.Errorf("trace length = %d, want %d", got, want)
	}
	if got := len(l.Trace.Segments()); got != g.EdgeCount() {
		t.Errorf("Segments() = %d, want %d", got, g.EdgeCount())
	}
}

type brokenGraph struct {
	nodes []int
	edges []graph.Edge
	depth map[int]int
}

func (b brokenGraph) Nodes() []int        { return b.nodes }
func (b brokenGraph) Edges() []graph.Edge { return b.edges }
func (b brokenGraph) Depth(v int) (int, bool) {
	d, ok := b.depth[v]
	return d, ok
}

func TestComputeMissingDepth(t *testing.T) {
	tests := []struct {
		name string
		g    brokenGraph
	}{
		{
			name: "node without depth",
			g:    brokenGraph{nodes: []int{2, 1}, depth: map[int]int{2: 0}},
		},
		{
			name: "edge to unknown node",
			g: brokenGraph{
				nodes: []int{2},
				edges: []graph.Edge{{From: 2, To: 1}},
				depth: map[int]int{2: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.g)
			if !errors.Is(err, errors.ErrCodeMissingDepth) {
				t.Fatalf("Compute error = %v, want %s", err, errors.ErrCodeMissingDepth)
			}
			if !errors.IsInvariant(err) {
				t.Error("missing depth should be reported as an invariant violation")
			}
		})
	}
}

func TestBounds(t *testing.T) {
	l, err := Compute(buildGraph(t, 3, 1))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	b := l.Bounds()
	want := Bounds{MinX: 1, MaxX: 16, MinY: -7, MaxY: 0}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
	if b.Width() != 15 || b.Height() != 7 {
		t.Errorf("Width/Height = %v/%v, want 15/7", b.Width(), b.Height())
	}
	if (Layout{}).Bounds() != (Bounds{}) {
		t.Error("empty layout should have zero bounds")
	}
}

func TestNodeCoordinateLists(t *testing.T) {
	l, err := Compute(buildGraph(t, 2, 1))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	xs, ys, labels := l.NodeXs(), l.NodeYs(), l.Labels()
	if len(xs) != 2 || xs[0] != 2 || xs[1] != 1 {
		t.Errorf("NodeXs() = %v, want [2 1]", xs)
	}
	if len(ys) != 2 || ys[0] != 0 || ys[1] != -1 {
		t.Errorf("NodeYs() = %v, want [0 -1]", ys)
	}
	if len(labels) != 2 || labels[0] != "2" || labels[1] != "1" {
		t.Errorf("Labels() = %v, want [2 1]", labels)
	}
}

func assertCoords(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
	for i := range want {
		if math.IsNaN(want[i]) {
			if !IsPenLift(got[i]) {
				t.Errorf("%s[%d] = %v, want pen-lift", name, i, got[i])
			}
			continue
		}
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestComputeSeedAtZeroNotNegativeZero(t *testing.T) {
	l, err := Compute(buildGraph(t, 6, 1))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if ys := l.NodeYs(); math.Signbit(ys[0]) {
		t.Errorf("seed y = %v, want +0 so it formats as 0", ys[0])
	}
}

func TestComputeExactXBeyondFloatPrecision(t *testing.T) {
	// Above 2^53 neighbouring integers share a float64; x must stay exact.
	start := 1<<53 + 1
	l, err := Compute(buildGraph(t, start, 2))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, n := range l.Nodes {
		if n.X != n.Value {
			t.Errorf("node %d has x=%d", n.Value, n.X)
		}
		if p := l.Positions[n.Value]; p.X != n.Value {
			t.Errorf("Positions[%d].X = %d", n.Value, p.X)
		}
	}
	if l.Positions[start].X == l.Positions[start+1].X {
		t.Errorf("seeds %d and %d share an x coordinate", start, start+1)
	}
}
