package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/collatzgraph/pkg/errors"
	"github.com/matzehuels/collatzgraph/pkg/graph"
	"github.com/matzehuels/collatzgraph/pkg/layout"
	"github.com/matzehuels/collatzgraph/pkg/render"
)

// Render generates output artifacts in the requested formats. The SVG sink
// runs at most once; PNG and PDF are converted from its output.
func Render(ctx context.Context, g *graph.Graph, l layout.Layout, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	fig := render.NewFigure(l, render.WithTitle(opts.Title))
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	if opts.NeedsSVG() {
		svg = render.RenderSVG(fig, opts.Width, opts.Height)
	}

	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svg
		case FormatPNG:
			data, err = render.ToPNG(ctx, svg, opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(ctx, svg)
		case FormatJSON:
			data, err = render.RenderPlotly(fig)
		case FormatHTML:
			data, err = render.RenderHTML(fig)
		case FormatGraph:
			data, err = graph.MarshalGraph(g)
		case FormatDOT:
			data = []byte(render.ToDOT(fig, opts.Width, opts.Height))
		case FormatGraphviz:
			data, err = render.RenderDOT(ctx, render.ToDOT(fig, opts.Width, opts.Height))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
