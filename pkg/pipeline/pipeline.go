// Package pipeline runs the Collatz visualization pipeline.
//
// This package implements the complete generate → graph → layout → render
// pipeline used by the CLI. Centralizing it keeps stage order, logging and
// instrumentation identical for every caller.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Generate: compute one Collatz sequence per seed in [start, start+count)
//  2. Graph: merge the sequences into a single graph with first-write-wins depths
//  3. Layout: place every node at (value, -depth) and flatten the edge trace
//  4. Render: produce artifacts in the requested formats
//
// Rendering never touches the filesystem. Writing artifacts is an explicit
// final step left to the caller.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Start:   10,
//	    Count:   50,
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/collatzgraph/pkg/collatz"
	"github.com/matzehuels/collatzgraph/pkg/errors"
	"github.com/matzehuels/collatzgraph/pkg/graph"
	"github.com/matzehuels/collatzgraph/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultStart is the first seed used when none is configured.
	DefaultStart = 10

	// DefaultCount is the number of seeds used when none is configured.
	DefaultCount = 50

	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 1200.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 800.0

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
	FormatJSON     = "json"
	FormatHTML     = "html"
	FormatGraph    = "graph"
	FormatDOT      = "dot"
	FormatGraphviz = "graphviz"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatJSON:     true,
	FormatHTML:     true,
	FormatGraph:    true,
	FormatDOT:      true,
	FormatGraphviz: true,
}

// extensions maps formats to output file extensions.
var extensions = map[string]string{
	FormatSVG:      ".svg",
	FormatPNG:      ".png",
	FormatPDF:      ".pdf",
	FormatJSON:     ".json",
	FormatHTML:     ".html",
	FormatGraph:    ".graph.json",
	FormatDOT:      ".dot",
	FormatGraphviz: ".neato.svg",
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// Extension returns the file extension (with leading dot) for format.
func Extension(format string) string {
	if ext, ok := extensions[format]; ok {
		return ext
	}
	return "." + format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run. Start and Count are
// the only inputs to the computation; the rest configures rendering.
type Options struct {
	// Computation
	Start int `json:"start" toml:"start"`
	Count int `json:"count" toml:"count"`

	// Render options
	Formats []string `json:"formats,omitempty" toml:"formats"`
	Width   float64  `json:"width,omitempty" toml:"width"`
	Height  float64  `json:"height,omitempty" toml:"height"`
	Scale   float64  `json:"scale,omitempty" toml:"scale"`
	Title   string   `json:"title,omitempty" toml:"title"`

	// CompareDepth logs every node whose recorded depth differs from the
	// minimum depth observed in the batch. Diagnostic only.
	CompareDepth bool `json:"compare_depth,omitempty" toml:"compare_depth"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Batch holds the generated sequences in seed order.
	Batch collatz.Batch

	// Graph is the merged Collatz graph.
	Graph *graph.Graph

	// Layout contains node positions and the edge trace.
	Layout layout.Layout

	// Discrepancies is populated when Options.CompareDepth is set.
	Discrepancies []graph.Discrepancy

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeedCount    int
	ValueCount   int
	NodeCount    int
	EdgeCount    int
	MaxDepth     int
	GenerateTime time.Duration
	GraphTime    time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.GenerateTime + s.GraphTime + s.LayoutTime + s.RenderTime
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// Validate checks the computation inputs and output formats without
// applying defaults.
func (o *Options) Validate() error {
	if err := errors.ValidateRange(o.Start, o.Count); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// SetRenderDefaults fills unset render options.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies render defaults and validates. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetRenderDefaults()
	if o.Width < 0 || o.Height < 0 || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "width, height and scale must be positive")
	}
	return o.Validate()
}

// NeedsSVG reports whether any requested format is derived from the SVG sink.
func (o *Options) NeedsSVG() bool {
	for _, f := range o.Formats {
		if f == FormatSVG || f == FormatPNG || f == FormatPDF {
			return true
		}
	}
	return false
}
