package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/collatzgraph/pkg/collatz"
	"github.com/matzehuels/collatzgraph/pkg/errors"
)

// sequenceJSON is the --json form of one trajectory.
type sequenceJSON struct {
	Seed     int   `json:"seed"`
	Steps    int   `json:"steps"`
	Peak     int   `json:"peak"`
	Sequence []int `json:"sequence"`
}

// sequenceCommand creates the sequence command for printing trajectories.
func (c *CLI) sequenceCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sequence N [N...]",
		Short: "Print the Collatz sequence of one or more seeds",
		Example: `  collatzgraph sequence 27
  collatzgraph sequence 6 7 8 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := parseSeeds(args)
			if err != nil {
				return err
			}
			return c.runSequence(cmd.Context(), cmd.OutOrStdout(), seeds, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print sequences as JSON")

	return cmd
}

// parseSeeds converts arguments to seeds, rejecting non-integers and values < 1.
func parseSeeds(args []string) ([]int, error) {
	seeds := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSeed, err, "invalid seed %q", a)
		}
		if err := errors.ValidateSeed(n); err != nil {
			return nil, err
		}
		seeds[i] = n
	}
	return seeds, nil
}

func (c *CLI) runSequence(ctx context.Context, w io.Writer, seeds []int, asJSON bool) error {
	logger := loggerFromContext(ctx)

	seqs := make([]collatz.Seq, 0, len(seeds))
	for _, n := range seeds {
		s, err := collatz.Sequence(n)
		if err != nil {
			return err
		}
		if err := collatz.Verify(s); err != nil {
			return err
		}
		logger.Debug("computed sequence", "seed", n, "steps", s.Steps(), "peak", s.Peak())
		seqs = append(seqs, s)
	}

	if asJSON {
		out := make([]sequenceJSON, len(seqs))
		for i, s := range seqs {
			out[i] = sequenceJSON{Seed: s.Seed(), Steps: s.Steps(), Peak: s.Peak(), Sequence: s}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, s := range seqs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Seed %d", s.Seed())))
		fmt.Fprintln(w, formatTrajectory(s, s.Peak()))
		fmt.Fprintln(w, formatKeyValue("steps", strconv.Itoa(s.Steps())))
		fmt.Fprintln(w, formatKeyValue("peak", strconv.Itoa(s.Peak())))
	}
	return nil
}
