package collatz

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/collatzgraph/pkg/errors"
)

// maxOdd is the largest odd value whose successor 3n+1 still fits in an int.
const maxOdd = (math.MaxInt - 1) / 3

// Seq is a single Collatz trajectory. The first element is the seed and the
// last element is always 1.
type Seq []int

// Seed returns the first value of the sequence, or 0 if it is empty.
func (s Seq) Seed() int {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// Steps returns the number of Collatz steps taken to reach 1.
func (s Seq) Steps() int {
	if len(s) == 0 {
		return 0
	}
	return len(s) - 1
}

// Peak returns the largest value visited.
func (s Seq) Peak() int {
	peak := 0
	for _, v := range s {
		peak = max(peak, v)
	}
	return peak
}

// String formats the sequence as "6 → 3 → 10 → ... → 1".
func (s Seq) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " → ")
}

// Step applies one Collatz step to n. It returns an OVERFLOW error if n is odd
// and 3n+1 does not fit in an int.
func Step(n int) (int, error) {
	if n%2 == 0 {
		return n / 2, nil
	}
	if n > maxOdd {
		return 0, errors.New(errors.ErrCodeOverflow, "3*%d+1 exceeds integer range", n)
	}
	return 3*n + 1, nil
}

// Sequence returns the Collatz trajectory starting at n and ending at 1.
// Sequence(1) is [1].
func Sequence(n int) (Seq, error) {
	if err := errors.ValidateSeed(n); err != nil {
		return nil, err
	}

	var seq Seq
	for n != 1 {
		seq = append(seq, n)
		next, err := Step(n)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeOverflow, err, "sequence from %d", seq[0])
		}
		n = next
	}
	return append(seq, 1), nil
}

// Verify checks that s is a well-formed trajectory: non-empty, every element
// positive, every consecutive pair related by [Step], and 1 appearing only as
// the final element.
func Verify(s Seq) error {
	if len(s) == 0 {
		return errors.New(errors.ErrCodeInvalidSeed, "empty sequence")
	}
	for i, v := range s {
		if v < 1 {
			return errors.New(errors.ErrCodeInvalidSeed, "value %d at index %d is not positive", v, i)
		}
		if v == 1 && i != len(s)-1 {
			return errors.New(errors.ErrCodeInvalidSeed, "1 at index %d before end of sequence", i)
		}
		if i == 0 {
			continue
		}
		want, err := Step(s[i-1])
		if err != nil {
			return err
		}
		if v != want {
			return errors.New(errors.ErrCodeInvalidSeed, "step %d: %d → %d, want %d", i, s[i-1], v, want)
		}
	}
	if s[len(s)-1] != 1 {
		return errors.New(errors.ErrCodeInvalidSeed, "sequence ends at %d, not 1", s[len(s)-1])
	}
	return nil
}
