package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/collatzgraph/pkg/errors"
	"github.com/matzehuels/collatzgraph/pkg/observability"
	"github.com/matzehuels/collatzgraph/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	start        int     // first seed
	count        int     // number of consecutive seeds
	formats      string  // comma-separated output formats
	output       string  // output file (single format), base path (multiple) or "-" for stdout
	width        float64 // frame width in pixels
	height       float64 // frame height in pixels
	scale        float64 // PNG resolution multiplier
	title        string  // figure title
	compareDepth bool    // log first-write-wins depth discrepancies
	config       string  // TOML config file
}

func defaultRenderOpts() renderOpts {
	return renderOpts{
		start:  pipeline.DefaultStart,
		count:  pipeline.DefaultCount,
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		scale:  pipeline.DefaultScale,
	}
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := defaultRenderOpts()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the merged Collatz graph for a range of seeds",
		Long: `Render the merged Collatz graph for the seeds [start, start+count).

Every value is drawn at x = value and y = -depth, where depth is the position
at which the value was first seen while scanning the sequences in seed order.
Value 1 therefore sits at the bottom of the figure.

Formats:
  svg       static SVG (default)
  png, pdf  converted from SVG with rsvg-convert
  json      Plotly figure JSON
  html      standalone Plotly page
  graph     nodes with depths and edges as JSON
  dot       Graphviz DOT with pinned positions
  graphviz  SVG rendered by Graphviz neato

Values from --config are used for every flag not given on the command line.`,
		Example: `  collatzgraph render
  collatzgraph render --start 1 --count 100 -f svg,json -o collatz
  collatzgraph render --config collatz.toml --compare-depth`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				cfg, err := loadConfig(opts.config)
				if err != nil {
					return err
				}
				cfg.apply(cmd, &opts)
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.start, "start", opts.start, "first seed (>= 1)")
	cmd.Flags().IntVar(&opts.count, "count", opts.count, "number of consecutive seeds (>= 0)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated, default svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().StringVar(&opts.title, "title", "", "figure title")
	cmd.Flags().BoolVar(&opts.compareDepth, "compare-depth", false, "report nodes whose recorded depth exceeds their minimum depth")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// runRender executes the pipeline and then, as a separate final step, writes
// the artifacts. Nothing is written if any stage fails.
func (c *CLI) runRender(ctx context.Context, stdout io.Writer, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	formats := parseFormats(opts.formats)

	if opts.output == "-" && len(formats) > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "stdout output supports a single format, got %d", len(formats))
	}

	popts := pipeline.Options{
		Start:        opts.start,
		Count:        opts.count,
		Formats:      formats,
		Width:        opts.width,
		Height:       opts.height,
		Scale:        opts.scale,
		Title:        opts.title,
		CompareDepth: opts.compareDepth,
		Logger:       logger,
	}
	if err := popts.Validate(); err != nil {
		return err
	}

	var spinner *Spinner
	if needsSpinner(formats) && opts.output != "-" {
		spinner = newSpinner(ctx, "Rendering...")
		spinner.Start()
	}

	result, err := c.newRunner().Execute(ctx, popts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := stdout.Write(result.Artifacts[formats[0]])
		return err
	}

	prog := newProgress(logger)
	paths, err := writeArtifacts(ctx, result.Artifacts, formats, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d artifact(s)", len(paths)))

	printSuccess("Rendered Collatz graph for seeds %d..%d", opts.start, opts.start+opts.count-1)
	for _, p := range paths {
		printFile(p)
	}
	s := result.Stats
	printStats(s.SeedCount, s.NodeCount, s.EdgeCount, s.MaxDepth)
	if opts.compareDepth {
		if n := len(result.Discrepancies); n > 0 {
			printWarning("%d node(s) drawn deeper than their minimum depth", n)
		} else {
			printInfo("every node is drawn at its minimum depth")
		}
	}
	return nil
}

// writeArtifacts writes artifacts in format order and returns the paths.
func writeArtifacts(ctx context.Context, artifacts map[string][]byte, formats []string, opts renderOpts) ([]string, error) {
	hooks := observability.Output()
	var paths []string
	seen := make(map[string]bool, len(formats))

	for _, format := range formats {
		if seen[format] {
			continue
		}
		seen[format] = true

		path := outputPath(opts, format, len(formats))
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				hooks.OnArtifactError(ctx, format, path, err)
				return paths, fmt.Errorf("create directory %s: %w", dir, err)
			}
		}
		data := artifacts[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			hooks.OnArtifactError(ctx, format, path, err)
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		hooks.OnArtifactWritten(ctx, format, path, len(data))
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath derives the file path for format. A single format writes to
// --output as given; multiple formats treat --output as a base path.
func outputPath(opts renderOpts, format string, formatCount int) string {
	if opts.output != "" && formatCount == 1 && filepath.Ext(opts.output) != "" {
		return opts.output
	}
	return basePath(opts) + pipeline.Extension(format)
}

// basePath returns --output without its extension, or a name derived from
// the seed range.
func basePath(opts renderOpts) string {
	if opts.output == "" {
		return fmt.Sprintf("%s_%d_%d", "collatz", opts.start, opts.count)
	}
	return strings.TrimSuffix(opts.output, filepath.Ext(opts.output))
}

// completeFormats offers every supported format for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return pipeline.FormatNames(), cobra.ShellCompDirectiveNoFileComp
}

// needsSpinner reports whether any format runs an external or slow renderer.
func needsSpinner(formats []string) bool {
	for _, f := range formats {
		switch f {
		case pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatGraphviz:
			return true
		}
	}
	return false
}
