package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/collatzgraph/pkg/collatz"
	"github.com/matzehuels/collatzgraph/pkg/graph"
	"github.com/matzehuels/collatzgraph/pkg/layout"
	"github.com/matzehuels/collatzgraph/pkg/observability"
)

// Runner executes the pipeline stages in order.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run computes the graph for [start, start+count) and renders it as SVG
// with default options and no logging.
func Run(ctx context.Context, start, count int) (*Result, error) {
	quiet := log.NewWithOptions(io.Discard, log.Options{})
	return NewRunner(quiet).Execute(ctx, Options{Start: start, Count: count})
}

// Execute runs the complete generate → graph → layout → render pipeline.
// Invalid inputs are rejected before any sequence is computed.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Generate
	genStart := time.Now()
	hooks.OnGenerateStart(ctx, opts.Start, opts.Count)
	b, err := r.Generate(ctx, opts.Start, opts.Count)
	result.Stats.GenerateTime = time.Since(genStart)
	hooks.OnGenerateComplete(ctx, b.Len(), b.TotalValues(), result.Stats.GenerateTime, err)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Batch = b
	result.Stats.SeedCount = b.Len()
	result.Stats.ValueCount = b.TotalValues()

	opts.Logger.Info("generated sequences",
		"seeds", b.Len(),
		"values", b.TotalValues(),
		"duration", result.Stats.GenerateTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Graph
	graphStart := time.Now()
	g := graph.Build(b)
	result.Graph = g
	result.Stats.GraphTime = time.Since(graphStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.MaxDepth = g.MaxDepth()
	hooks.OnGraphComplete(ctx, g.NodeCount(), g.EdgeCount(), result.Stats.GraphTime)

	opts.Logger.Info("built graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"max_depth", g.MaxDepth(),
		"duration", result.Stats.GraphTime)

	if opts.CompareDepth {
		result.Discrepancies = graph.CompareDepths(g, b)
		r.logDiscrepancies(opts.Logger, result.Discrepancies)
	}

	// Stage 3: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, g.NodeCount())
	l, err := layout.Compute(g)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l

	opts.Logger.Info("computed layout",
		"positions", len(l.Nodes),
		"trace_points", l.Trace.Len(),
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(ctx, g, l, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate computes the batch for [start, start+count) unless ctx is
// already done.
func (r *Runner) Generate(ctx context.Context, start, count int) (collatz.Batch, error) {
	if err := ctx.Err(); err != nil {
		return collatz.Batch{}, err
	}
	return collatz.Generate(start, count)
}

func (r *Runner) logDiscrepancies(logger *log.Logger, ds []graph.Discrepancy) {
	if len(ds) == 0 {
		logger.Info("depth comparison", "discrepancies", 0)
		return
	}
	logger.Warn("recorded depth differs from minimum", "nodes", len(ds))
	for _, d := range ds {
		logger.Debug("depth discrepancy",
			"value", d.Value,
			"recorded", d.Recorded,
			"minimum", d.Minimum)
	}
}

// applyLogger sets the runner's logger on opts if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
