package graph

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/matzehuels/collatzgraph/pkg/collatz"
)

// Edge is a directed Collatz step From → To.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Graph is the union of a batch's trajectories: distinct values as nodes,
// distinct steps as edges, and a recorded depth for every node.
//
// The zero value is not usable; create graphs with [Build].
type Graph struct {
	nodes *linkedhashset.Set // int, first-seen order
	edges *linkedhashset.Set // Edge, first-seen order
	depth map[int]int
}

// Build merges all sequences of b into one graph. Depths follow the
// first-write-wins scan described in the package documentation. Every node of
// the result has a depth entry.
func Build(b collatz.Batch) *Graph {
	g := &Graph{
		nodes: linkedhashset.New(),
		edges: linkedhashset.New(),
		depth: make(map[int]int, b.TotalValues()),
	}
	for _, seq := range b.Sequences {
		g.addSequence(seq)
	}
	return g
}

func (g *Graph) addSequence(seq collatz.Seq) {
	for i, v := range seq {
		g.nodes.Add(v)
		if _, seen := g.depth[v]; !seen {
			g.depth[v] = i
		}
		if i > 0 {
			g.edges.Add(Edge{From: seq[i-1], To: v})
		}
	}
}

// Nodes returns all node values in first-seen order.
// The returned slice is a fresh copy.
func (g *Graph) Nodes() []int {
	vals := g.nodes.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out
}

// Edges returns all edges in first-seen order.
// The returned slice is a fresh copy.
func (g *Graph) Edges() []Edge {
	vals := g.edges.Values()
	out := make([]Edge, len(vals))
	for i, e := range vals {
		out[i] = e.(Edge)
	}
	return out
}

// Depth returns the recorded depth of node v. The boolean is false if v is
// not a node of the graph.
func (g *Graph) Depth(v int) (int, bool) {
	d, ok := g.depth[v]
	return d, ok
}

// DepthMap returns a copy of the value → depth mapping.
func (g *Graph) DepthMap() map[int]int {
	out := make(map[int]int, len(g.depth))
	for k, v := range g.depth {
		out[k] = v
	}
	return out
}

// HasNode reports whether v was visited by any sequence.
func (g *Graph) HasNode(v int) bool { return g.nodes.Contains(v) }

// HasEdge reports whether the step from → to was observed.
func (g *Graph) HasEdge(from, to int) bool { return g.edges.Contains(Edge{From: from, To: to}) }

// NodeCount returns the number of distinct values.
func (g *Graph) NodeCount() int { return g.nodes.Size() }

// EdgeCount returns the number of distinct steps.
func (g *Graph) EdgeCount() int { return g.edges.Size() }

// MaxDepth returns the largest recorded depth, or 0 for an empty graph.
func (g *Graph) MaxDepth() int {
	m := 0
	for _, d := range g.depth {
		m = max(m, d)
	}
	return m
}
