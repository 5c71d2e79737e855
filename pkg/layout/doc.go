// Package layout positions the nodes of a merged Collatz graph.
//
// # Positions
//
// Each node is placed at x = its value and y = -depth, so value 1 (and every
// other low-depth value) sits near the bottom and long trajectories climb
// upward. There is no spacing, jitter or collision handling: nodes with
// close values crowd together horizontally, which is accepted as a property
// of the picture.
//
// # Edge Trace
//
// Edges are flattened into a single polyline [Trace] so a renderer can draw
// every segment in one layer. Each edge contributes its two endpoints
// followed by a pen-lift sentinel:
//
//	X: [x(a1), x(b1), NaN, x(a2), x(b2), NaN, ...]
//	Y: [y(a1), y(b1), NaN, y(a2), y(b2), NaN, ...]
//
// The sentinel is NaN in memory and null in JSON. Use [IsPenLift] to test
// for it and [Trace.Segments] to recover the individual segments.
//
// # Invariants
//
// [Compute] requires a depth for every node. Graphs from graph.Build always
// satisfy this; a missing entry is reported as MISSING_DEPTH_ENTRY, which
// indicates a programming fault rather than bad input.
package layout
