// Package render draws positioned Collatz graphs.
//
// # Overview
//
// Rendering is split into a small figure model and a set of sinks. A
// [Figure] is built from a layout.Layout and describes two layers and a
// frame:
//
//   - a line layer: every edge as a thin gray segment, taken from the
//     pen-lifted trace so all segments form one polyline
//   - a marker layer: one marker per node with its decimal label above it
//   - frame options: grid, zero line, axis ticks and legend suppressed,
//     zero margin
//
// # Sinks
//
//   - [RenderSVG]: static SVG, the default output
//   - [RenderPlotly]: Plotly figure JSON with the same traces and layout
//   - [RenderHTML]: a standalone page that displays the Plotly figure
//   - [ToDOT] / [RenderDOT]: Graphviz neato with every node pinned to its
//     layout position
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG using the external rsvg-convert tool
// (from librsvg):
//
//	svg := render.RenderSVG(fig, 1200, 800)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
package render
