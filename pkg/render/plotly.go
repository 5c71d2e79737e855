package render

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/matzehuels/collatzgraph/pkg/errors"
	"github.com/matzehuels/collatzgraph/pkg/layout"
)

// plotlyCDN is the script loaded by RenderHTML.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

type plotlyFigure struct {
	Data   []plotlyTrace `json:"data"`
	Layout plotlyLayout  `json:"layout"`
}

type plotlyTrace struct {
	Type         string        `json:"type"`
	Mode         string        `json:"mode"`
	X            []*float64    `json:"x"`
	Y            []*float64    `json:"y"`
	Text         []string      `json:"text,omitempty"`
	TextPosition string        `json:"textposition,omitempty"`
	HoverInfo    string        `json:"hoverinfo"`
	Line         *plotlyLine   `json:"line,omitempty"`
	Marker       *plotlyMarker `json:"marker,omitempty"`
}

type plotlyLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type plotlyMarker struct {
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

type plotlyLayout struct {
	Title      string       `json:"title,omitempty"`
	ShowLegend bool         `json:"showlegend"`
	Margin     plotlyMargin `json:"margin"`
	XAxis      plotlyAxis   `json:"xaxis"`
	YAxis      plotlyAxis   `json:"yaxis"`
}

type plotlyMargin struct {
	B float64 `json:"b"`
	L float64 `json:"l"`
	R float64 `json:"r"`
	T float64 `json:"t"`
}

type plotlyAxis struct {
	ShowGrid       bool `json:"showgrid"`
	ZeroLine       bool `json:"zeroline"`
	ShowTickLabels bool `json:"showticklabels"`
}

func toPlotly(f Figure) plotlyFigure {
	l := f.Layout
	axis := plotlyAxis{
		ShowGrid:       f.Frame.ShowGrid,
		ZeroLine:       f.Frame.ShowZeroLine,
		ShowTickLabels: f.Frame.ShowTicks,
	}
	return plotlyFigure{
		Data: []plotlyTrace{
			{
				Type:      "scatter",
				Mode:      "lines",
				X:         layout.Nullable(l.Trace.X),
				Y:         layout.Nullable(l.Trace.Y),
				HoverInfo: "none",
				Line:      &plotlyLine{Width: f.Lines.Width, Color: f.Lines.Color},
			},
			{
				Type:         "scatter",
				Mode:         "markers+text",
				X:            layout.Nullable(l.NodeXs()),
				Y:            layout.Nullable(l.NodeYs()),
				Text:         l.Labels(),
				TextPosition: f.Markers.TextPosition,
				HoverInfo:    "text",
				Marker:       &plotlyMarker{Size: f.Markers.Size, Color: f.Markers.Color},
			},
		},
		Layout: plotlyLayout{
			Title:      f.Title,
			ShowLegend: f.Frame.ShowLegend,
			Margin: plotlyMargin{
				B: f.Frame.Margin.Bottom,
				L: f.Frame.Margin.Left,
				R: f.Frame.Margin.Right,
				T: f.Frame.Margin.Top,
			},
			XAxis: axis,
			YAxis: axis,
		},
	}
}

// RenderPlotly encodes f as a Plotly figure: a "lines" trace for the edges
// (pen-lifts as null) and a "markers+text" trace for the nodes.
func RenderPlotly(f Figure) ([]byte, error) {
	data, err := json.MarshalIndent(toPlotly(f), "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode plotly figure")
	}
	return data, nil
}

var htmlTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="{{.Script}}"></script>
  <style>html, body, #figure { margin: 0; width: 100%; height: 100%; }</style>
</head>
<body>
  <div id="figure"></div>
  <script>
    const fig = {{.Figure}};
    Plotly.newPlot("figure", fig.data, fig.layout, {responsive: true});
  </script>
</body>
</html>
`))

// RenderHTML wraps the Plotly figure in a standalone HTML page.
func RenderHTML(f Figure) ([]byte, error) {
	title := f.Title
	if title == "" {
		title = "Collatz graph"
	}
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, struct {
		Title  string
		Script string
		Figure plotlyFigure
	}{title, plotlyCDN, toPlotly(f)})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render html")
	}
	return buf.Bytes(), nil
}
