package render

import "testing"

func TestNewFigureDefaults(t *testing.T) {
	f := figureFor(t, 6, 1)

	if f.Markers.Size != DefaultMarkerSize || f.Markers.Color != DefaultMarkerColor {
		t.Errorf("markers = %+v, want size %v color %s", f.Markers, DefaultMarkerSize, DefaultMarkerColor)
	}
	if f.Markers.TextPosition != "top center" {
		t.Errorf("TextPosition = %q, want top center", f.Markers.TextPosition)
	}
	if f.Lines.Width != 1 || f.Lines.Color != "gray" {
		t.Errorf("lines = %+v, want 1px gray", f.Lines)
	}
	if f.Frame.ShowGrid || f.Frame.ShowZeroLine || f.Frame.ShowTicks || f.Frame.ShowLegend {
		t.Errorf("frame = %+v, want everything suppressed", f.Frame)
	}
	if f.Frame.Margin != (Margin{}) {
		t.Errorf("margin = %+v, want zero", f.Frame.Margin)
	}
}

func TestFigureOptions(t *testing.T) {
	f := figureFor(t, 6, 1,
		WithMarkerStyle(MarkerStyle{Size: 4, Color: "red", FontSize: 8, TextPosition: "bottom left"}),
		WithLineStyle(LineStyle{Width: 2, Color: "black"}),
		WithMargin(Margin{Top: 5}),
		WithTitle("six"),
	)
	if f.Markers.Color != "red" || f.Lines.Color != "black" || f.Frame.Margin.Top != 5 || f.Title != "six" {
		t.Errorf("options not applied: %+v", f)
	}
	if got := f.String(); got != "Figure(9 nodes, 8 edges)" {
		t.Errorf("String() = %q", got)
	}
}
