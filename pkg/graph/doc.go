// Package graph merges Collatz trajectories into a single directed graph.
//
// # Overview
//
// Every distinct value visited by any sequence of a batch becomes a node, and
// every observed step a → b becomes a directed edge. Repeated steps collapse
// into one edge; direction is always from the earlier value to the later one.
// Nodes and edges are kept in first-seen order, so enumeration is
// deterministic for a given batch.
//
// The package deliberately offers enumeration only. Nothing in collatzgraph
// needs traversal, so there is no adjacency API.
//
// # Depth
//
// Each node carries a depth used for vertical placement. Depths are assigned
// while scanning sequences in batch order and positions in index order: the
// first time a value is seen, its position index is recorded, and later
// sightings never overwrite it.
//
// This "first write wins" rule is not a shortest distance. When seed 3 is
// scanned before seed 5, value 5 keeps depth 2 (its index in 3's trajectory)
// even though it is the seed of its own sequence. [MinimumDepths] computes
// the per-node minimum for comparison; layout always uses the recorded depth.
//
//	b, _ := collatz.Generate(10, 50)
//	g := graph.Build(b)
//	d, _ := g.Depth(1)
//
// # Serialization
//
// [Graph.Export] returns a JSON-friendly [Document]:
//
//	{
//	  "nodes": [{"value": 6, "depth": 0, "label": "6"}, ...],
//	  "edges": [{"from": 6, "to": 3}, ...]
//	}
//
// # Concurrency
//
// A [Graph] is never mutated after [Build] returns and is safe for concurrent
// reads.
package graph
