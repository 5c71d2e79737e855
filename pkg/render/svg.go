package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/matzehuels/collatzgraph/pkg/layout"
)

// projection maps data coordinates into an SVG viewport. Data y grows upward,
// SVG y grows downward.
type projection struct {
	bounds layout.Bounds
	left   float64
	top    float64
	sx, sy float64
	cx, cy float64 // used when the data extent is degenerate
}

func newProjection(f Figure, width, height float64) projection {
	// Keep markers and their labels inside the plot area even with zero margin.
	pad := f.Markers.Size + f.Markers.FontSize
	m := f.Frame.Margin
	left, top := m.Left+pad, m.Top+pad
	w := width - m.Left - m.Right - 2*pad
	h := height - m.Top - m.Bottom - 2*pad

	p := projection{bounds: f.Layout.Bounds(), left: left, top: top}
	p.cx, p.cy = left+w/2, top+h/2
	if bw := p.bounds.Width(); bw > 0 {
		p.sx = w / bw
	}
	if bh := p.bounds.Height(); bh > 0 {
		p.sy = h / bh
	}
	return p
}

func (p projection) x(v float64) float64 {
	if p.sx == 0 {
		return p.cx
	}
	return p.left + (v-p.bounds.MinX)*p.sx
}

func (p projection) y(v float64) float64 {
	if p.sy == 0 {
		return p.cy
	}
	return p.top + (p.bounds.MaxY-v)*p.sy
}

// RenderSVG draws f into a width×height SVG document: one pen-lifted path
// for all edges, then a marker and a label per node.
func RenderSVG(f Figure, width, height float64) []byte {
	p := newProjection(f, width, height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if f.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(f.Title))
	}
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")

	renderEdges(&buf, f, p)
	renderNodes(&buf, f, p)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderEdges(buf *bytes.Buffer, f Figure, p projection) {
	d := pathData(f.Layout.Trace, p)
	if d == "" {
		return
	}
	fmt.Fprintf(buf, `  <path class="edges" d="%s" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
		d, f.Lines.Color, f.Lines.Width)
}

// pathData converts a pen-lifted trace into SVG path commands. Every point
// after a pen-lift starts a new subpath with M instead of continuing with L.
func pathData(t layout.Trace, p projection) string {
	var buf bytes.Buffer
	penDown := false
	for i := 0; i < len(t.X) && i < len(t.Y); i++ {
		if layout.IsPenLift(t.X[i]) || layout.IsPenLift(t.Y[i]) {
			penDown = false
			continue
		}
		cmd := "L"
		if !penDown {
			cmd = "M"
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%s%.2f,%.2f", cmd, p.x(t.X[i]), p.y(t.Y[i]))
		penDown = true
	}
	return buf.String()
}

func renderNodes(buf *bytes.Buffer, f Figure, p projection) {
	if len(f.Layout.Nodes) == 0 {
		return
	}
	r := f.Markers.Size / 2
	buf.WriteString(`  <g class="nodes">` + "\n")
	for _, n := range f.Layout.Nodes {
		cx, cy := p.x(float64(n.X)), p.y(float64(n.Y))
		fmt.Fprintf(buf, `    <circle id="node-%d" cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n",
			n.Value, cx, cy, r, f.Markers.Color)
		tx, ty, anchor := labelAnchor(f.Markers, cx, cy)
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="%s" font-family="sans-serif" font-size="%.0f">%s</text>`+"\n",
			tx, ty, anchor, f.Markers.FontSize, html.EscapeString(n.Label))
	}
	buf.WriteString("  </g>\n")
}

// labelAnchor places a label relative to its marker following Plotly's
// textposition vocabulary ("top center", "bottom left", ...).
func labelAnchor(m MarkerStyle, cx, cy float64) (x, y float64, anchor string) {
	gap := m.Size/2 + 2
	x, y, anchor = cx, cy-gap, "middle"

	var vertical, horizontal string
	if parts := strings.Fields(m.TextPosition); len(parts) == 2 {
		vertical, horizontal = parts[0], parts[1]
	}
	switch vertical {
	case "bottom":
		y = cy + gap + m.FontSize
	case "middle":
		y = cy + m.FontSize/3
	}
	switch horizontal {
	case "left":
		x, anchor = cx-gap, "end"
	case "right":
		x, anchor = cx+gap, "start"
	}
	return x, y, anchor
}
