package render

import (
	"strings"
	"testing"
)

func TestRenderSVG(t *testing.T) {
	f := figureFor(t, 10, 50)
	svg := string(RenderSVG(f, 1200, 800))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("output does not start with <svg>: %.60s", svg)
	}
	if got, want := strings.Count(svg, "<circle "), len(f.Layout.Nodes); got != want {
		t.Errorf("circles = %d, want %d", got, want)
	}
	if got, want := strings.Count(svg, "<text "), len(f.Layout.Nodes); got != want {
		t.Errorf("labels = %d, want %d", got, want)
	}
	if got := strings.Count(svg, `<path class="edges"`); got != 1 {
		t.Errorf("edge paths = %d, want a single pen-lifted path", got)
	}
	if strings.Contains(svg, "NaN") {
		t.Error("pen-lift sentinel leaked into SVG")
	}
	if !strings.Contains(svg, `stroke="gray"`) || !strings.Contains(svg, `fill="blue"`) {
		t.Error("default colors missing")
	}
}

func TestRenderSVGPenLifts(t *testing.T) {
	f := figureFor(t, 4, 1) // 4 → 2 → 1: two edges
	svg := string(RenderSVG(f, 400, 300))

	start := strings.Index(svg, ` d="`)
	if start < 0 {
		t.Fatal("edge path missing")
	}
	d := svg[start+4:]
	d = d[:strings.Index(d, `"`)]

	if got := strings.Count(d, "M"); got != 2 {
		t.Errorf("move commands = %d, want 2 (one per edge): %s", got, d)
	}
	if got := strings.Count(d, "L"); got != 2 {
		t.Errorf("line commands = %d, want 2: %s", got, d)
	}
}

func TestRenderSVGSingleNode(t *testing.T) {
	f := figureFor(t, 1, 1)
	svg := string(RenderSVG(f, 200, 100))

	if strings.Contains(svg, "<path") {
		t.Error("single node should not draw edges")
	}
	// Degenerate extent collapses to the center of the plot area.
	if !strings.Contains(svg, `cx="100.00" cy="50.00"`) {
		t.Errorf("single node not centered: %s", svg)
	}
	if !strings.Contains(svg, ">1</text>") {
		t.Error("label for node 1 missing")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	f := figureFor(t, 5, 0)
	svg := string(RenderSVG(f, 200, 100))
	if strings.Contains(svg, "<circle") || strings.Contains(svg, "<path") {
		t.Error("empty figure should only contain the background")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
}

func TestRenderSVGTitleEscaped(t *testing.T) {
	svg := string(RenderSVG(figureFor(t, 2, 1, WithTitle("a<b")), 100, 100))
	if !strings.Contains(svg, "<title>a&lt;b</title>") {
		t.Error("title not escaped")
	}
}

func TestLabelAnchor(t *testing.T) {
	m := MarkerStyle{Size: 10, FontSize: 10}
	tests := []struct {
		position   string
		wantAnchor string
		above      bool
	}{
		{"top center", "middle", true},
		{"top left", "end", true},
		{"bottom right", "start", false},
	}
	for _, tt := range tests {
		m.TextPosition = tt.position
		_, y, anchor := labelAnchor(m, 50, 50)
		if anchor != tt.wantAnchor {
			t.Errorf("%s: anchor = %s, want %s", tt.position, anchor, tt.wantAnchor)
		}
		if (y < 50) != tt.above {
			t.Errorf("%s: y = %v, above = %v", tt.position, y, tt.above)
		}
	}
}
