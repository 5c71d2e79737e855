package cli

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/collatzgraph/pkg/errors"
)

// fileConfig is the TOML configuration accepted by --config.
//
//	start = 10
//	count = 50
//	formats = ["svg", "json"]
//	output = "collatz"
//	width = 1200
//	height = 800
type fileConfig struct {
	Start        int      `toml:"start"`
	Count        int      `toml:"count"`
	Formats      []string `toml:"formats"`
	Output       string   `toml:"output"`
	Width        float64  `toml:"width"`
	Height       float64  `toml:"height"`
	Scale        float64  `toml:"scale"`
	Title        string   `toml:"title"`
	CompareDepth bool     `toml:"compare_depth"`

	md toml.MetaData
}

// loadConfig reads a TOML config file. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.md = md
	return &cfg, nil
}

// defined reports whether key was present in the file.
func (c *fileConfig) defined(key string) bool {
	return c.md.IsDefined(key)
}

// apply copies file values into opts for every key present in the file whose
// flag was not set explicitly. Flags win over the file; the file wins over
// defaults.
func (c *fileConfig) apply(cmd *cobra.Command, opts *renderOpts) {
	use := func(key, flag string) bool {
		return c.defined(key) && !cmd.Flags().Changed(flag)
	}

	if use("start", "start") {
		opts.start = c.Start
	}
	if use("count", "count") {
		opts.count = c.Count
	}
	if use("formats", "format") {
		opts.formats = strings.Join(c.Formats, ",")
	}
	if use("output", "output") {
		opts.output = c.Output
	}
	if use("width", "width") {
		opts.width = c.Width
	}
	if use("height", "height") {
		opts.height = c.Height
	}
	if use("scale", "scale") {
		opts.scale = c.Scale
	}
	if use("title", "title") {
		opts.title = c.Title
	}
	if use("compare_depth", "compare-depth") {
		opts.compareDepth = c.CompareDepth
	}
}
