package layout

import (
	"math"

	"github.com/matzehuels/collatzgraph/pkg/errors"
	"github.com/matzehuels/collatzgraph/pkg/graph"
)

// Source is the read-only view of a graph that layout needs.
// *graph.Graph implements it.
type Source interface {
	Nodes() []int
	Edges() []graph.Edge
	Depth(v int) (int, bool)
}

// Position is a node's place in data coordinates. Both axes are exact
// integers; renderers convert to floating point when they project.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Node is a positioned, labelled node.
type Node struct {
	Value int    `json:"value"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label"`
}

// Layout holds node positions in graph order, the graph's edges and their
// flattened trace. Edges and Trace describe the same steps in the same order.
type Layout struct {
	Nodes     []Node           `json:"nodes"`
	Positions map[int]Position `json:"-"`
	Edges     []graph.Edge     `json:"edges"`
	Trace     Trace            `json:"trace"`
}

// Bounds is the data-space extent of a layout.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Compute places every node of g at (value, -depth) and flattens the edges
// into a pen-lifted trace. It fails with MISSING_DEPTH_ENTRY if a node has no
// depth.
func Compute(g Source) (Layout, error) {
	nodes := g.Nodes()
	l := Layout{
		Nodes:     make([]Node, 0, len(nodes)),
		Positions: make(map[int]Position, len(nodes)),
	}

	for _, v := range nodes {
		d, ok := g.Depth(v)
		if !ok {
			return Layout{}, errors.New(errors.ErrCodeMissingDepth, "node %d has no depth entry", v)
		}
		p := Position{X: v, Y: -d}
		l.Positions[v] = p
		l.Nodes = append(l.Nodes, Node{Value: v, X: p.X, Y: p.Y, Label: graph.Label(v)})
	}

	edges := g.Edges()
	l.Edges = edges
	l.Trace = Trace{
		X: make([]float64, 0, 3*len(edges)),
		Y: make([]float64, 0, 3*len(edges)),
	}
	for _, e := range edges {
		from, ok := l.Positions[e.From]
		if !ok {
			return Layout{}, errors.New(errors.ErrCodeMissingDepth, "edge %d→%d: source %d is not a positioned node", e.From, e.To, e.From)
		}
		to, ok := l.Positions[e.To]
		if !ok {
			return Layout{}, errors.New(errors.ErrCodeMissingDepth, "edge %d→%d: target %d is not a positioned node", e.From, e.To, e.To)
		}
		l.Trace.add(from, to)
	}

	return l, nil
}

// Bounds returns the extent of all node positions. An empty layout yields
// the zero Bounds.
func (l Layout) Bounds() Bounds {
	if len(l.Nodes) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, n := range l.Nodes {
		x, y := float64(n.X), float64(n.Y)
		b.MinX = math.Min(b.MinX, x)
		b.MaxX = math.Max(b.MaxX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxY = math.Max(b.MaxY, y)
	}
	return b
}

// NodeXs returns the x coordinates of all nodes in layout order.
func (l Layout) NodeXs() []float64 {
	out := make([]float64, len(l.Nodes))
	for i, n := range l.Nodes {
		out[i] = float64(n.X)
	}
	return out
}

// NodeYs returns the y coordinates of all nodes in layout order.
func (l Layout) NodeYs() []float64 {
	out := make([]float64, len(l.Nodes))
	for i, n := range l.Nodes {
		out[i] = float64(n.Y)
	}
	return out
}

// Labels returns the labels of all nodes in layout order.
func (l Layout) Labels() []string {
	out := make([]string, len(l.Nodes))
	for i, n := range l.Nodes {
		out[i] = n.Label
	}
	return out
}
