package collatz

import (
	"fmt"

	"github.com/matzehuels/collatzgraph/pkg/errors"
)

// Batch is the set of trajectories for a contiguous seed range.
// Sequences[i] belongs to seed Start+i.
type Batch struct {
	Start     int
	Count     int
	Sequences []Seq
}

// Generate computes one sequence per seed in [start, start+count), in
// increasing seed order. count == 0 yields an empty batch.
func Generate(start, count int) (Batch, error) {
	if err := errors.ValidateRange(start, count); err != nil {
		return Batch{}, err
	}

	b := Batch{
		Start:     start,
		Count:     count,
		Sequences: make([]Seq, 0, count),
	}
	for i := range count {
		seq, err := Sequence(start + i)
		if err != nil {
			return Batch{}, fmt.Errorf("seed %d: %w", start+i, err)
		}
		b.Sequences = append(b.Sequences, seq)
	}
	return b, nil
}

// FromSequences builds a batch from precomputed sequences. Start and Count are
// taken from the first seed and the number of sequences. The sequences are not
// copied or validated; use [Verify] when they come from an untrusted source.
func FromSequences(seqs ...Seq) Batch {
	b := Batch{Count: len(seqs), Sequences: seqs}
	if len(seqs) > 0 {
		b.Start = seqs[0].Seed()
	}
	return b
}

// Len returns the number of sequences in the batch.
func (b Batch) Len() int { return len(b.Sequences) }

// Seeds returns the seed of each sequence, in batch order.
func (b Batch) Seeds() []int {
	seeds := make([]int, len(b.Sequences))
	for i, s := range b.Sequences {
		seeds[i] = s.Seed()
	}
	return seeds
}

// Longest returns the sequence with the most steps. Ties go to the lower seed.
// It returns nil for an empty batch.
func (b Batch) Longest() Seq {
	var longest Seq
	for _, s := range b.Sequences {
		if len(s) > len(longest) {
			longest = s
		}
	}
	return longest
}

// TotalValues returns the number of values across all sequences, counting
// repeats.
func (b Batch) TotalValues() int {
	n := 0
	for _, s := range b.Sequences {
		n += len(s)
	}
	return n
}
