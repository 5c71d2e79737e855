package render

import (
	"fmt"

	"github.com/matzehuels/collatzgraph/pkg/layout"
)

// Default styling, matching the classic Collatz plot.
const (
	DefaultMarkerSize   = 10.0
	DefaultMarkerColor  = "blue"
	DefaultLineWidth    = 1.0
	DefaultLineColor    = "gray"
	DefaultTextPosition = "top center"
	DefaultFontSize     = 10.0
)

// MarkerStyle configures the node layer.
type MarkerStyle struct {
	Size         float64
	Color        string
	FontSize     float64
	TextPosition string
}

// LineStyle configures the edge layer.
type LineStyle struct {
	Width float64
	Color string
}

// Margin is the space between the frame edge and the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Frame holds the layout suppression options of a figure.
type Frame struct {
	ShowGrid     bool
	ShowZeroLine bool
	ShowTicks    bool
	ShowLegend   bool
	Margin       Margin
}

// Figure is a renderable description of a positioned graph.
type Figure struct {
	Layout  layout.Layout
	Markers MarkerStyle
	Lines   LineStyle
	Frame   Frame
	Title   string
}

// FigureOption customizes a Figure.
type FigureOption func(*Figure)

// WithMarkerStyle overrides the node marker style.
func WithMarkerStyle(s MarkerStyle) FigureOption { return func(f *Figure) { f.Markers = s } }

// WithLineStyle overrides the edge line style.
func WithLineStyle(s LineStyle) FigureOption { return func(f *Figure) { f.Lines = s } }

// WithMargin sets the frame margin.
func WithMargin(m Margin) FigureOption { return func(f *Figure) { f.Frame.Margin = m } }

// WithTitle sets a title, used as the SVG <title> and the HTML page title.
func WithTitle(t string) FigureOption { return func(f *Figure) { f.Title = t } }

// NewFigure wraps l with the default styling: blue size-10 markers labelled
// above, 1px gray edges, no grid, zero line, ticks or legend, and no margin.
func NewFigure(l layout.Layout, opts ...FigureOption) Figure {
	f := Figure{
		Layout: l,
		Markers: MarkerStyle{
			Size:         DefaultMarkerSize,
			Color:        DefaultMarkerColor,
			FontSize:     DefaultFontSize,
			TextPosition: DefaultTextPosition,
		},
		Lines: LineStyle{Width: DefaultLineWidth, Color: DefaultLineColor},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// String implements fmt.Stringer.
func (f Figure) String() string {
	return fmt.Sprintf("Figure(%d nodes, %d edges)", len(f.Layout.Nodes), len(f.Layout.Edges))
}
