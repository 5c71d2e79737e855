// Package pkg provides the libraries behind collatzgraph.
//
// # Overview
//
// Collatzgraph computes the Collatz sequences of a range of seeds, merges
// them into one graph and draws it with 1 at the bottom. The packages are:
//
//  1. [collatz] - sequence and batch generation
//  2. [graph] - the merged graph, first-write-wins depths and graph JSON
//  3. [layout] - positions (x = value, y = -depth) and the pen-lifted edge trace
//  4. [render] - figure model and SVG, Plotly, Graphviz and PDF/PNG sinks
//  5. [pipeline] - orchestration (generate → graph → layout → render)
//  6. [errors] - coded errors
//  7. [observability] - optional instrumentation hooks
//
// # Architecture
//
//	(start, count)
//	      ↓
//	 [collatz] Generate → Batch
//	      ↓
//	 [graph] Build → Graph
//	      ↓
//	 [layout] Compute → Layout
//	      ↓
//	 [render] NewFigure → SVG/PNG/PDF/JSON/HTML/DOT
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Start: 10, Count: 50})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("collatz.svg", result.Artifacts["svg"], 0o644)
package pkg
