package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/collatzgraph/pkg/errors"
)

// pointsPerInch converts marker sizes (pixels ≈ points) to Graphviz inches.
const pointsPerInch = 72.0

// ToDOT converts f to Graphviz DOT for the neato engine. Every node is pinned
// (pos="x,y!") to its projected layout position inside a width×height frame,
// so Graphviz only draws and never rearranges. Edges are undirected lines,
// drawn before nodes.
func ToDOT(f Figure, width, height float64) string {
	p := newProjection(f, width, height)

	var buf bytes.Buffer
	buf.WriteString("digraph collatz {\n")
	buf.WriteString("  layout=neato;\n")
	fmt.Fprintf(&buf, "  inputscale=%.0f;\n", pointsPerInch)
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  forcelabels=true;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, label=\"\", fixedsize=true, width=%.3f, color=%q, fillcolor=%q, fontname=\"sans-serif\", fontsize=%.0f];\n",
		f.Markers.Size/pointsPerInch, f.Markers.Color, f.Markers.Color, f.Markers.FontSize)
	fmt.Fprintf(&buf, "  edge [dir=none, color=%q, penwidth=%.1f];\n", f.Lines.Color, f.Lines.Width)
	buf.WriteString("\n")

	for _, n := range f.Layout.Nodes {
		// Graphviz y grows upward, SVG y downward.
		fmt.Fprintf(&buf, "  \"%d\" [pos=\"%.2f,%.2f!\", xlabel=%q];\n",
			n.Value, p.x(float64(n.X)), height-p.y(float64(n.Y)), n.Label)
	}

	buf.WriteString("\n")
	for _, e := range f.Layout.Edges {
		fmt.Fprintf(&buf, "  \"%d\" -> \"%d\";\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT renders a DOT graph produced by [ToDOT] to SVG using the
// embedded Graphviz neato engine.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return buf.Bytes(), nil
}
