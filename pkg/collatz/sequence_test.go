package collatz

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/collatzgraph/pkg/errors"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name string
		seed int
		want Seq
	}{
		{"one", 1, Seq{1}},
		{"two", 2, Seq{2, 1}},
		{"three", 3, Seq{3, 10, 5, 16, 8, 4, 2, 1}},
		{"six", 6, Seq{6, 3, 10, 5, 16, 8, 4, 2, 1}},
		{"power of two", 16, Seq{16, 8, 4, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sequence(tt.seed)
			if err != nil {
				t.Fatalf("Sequence(%d): %v", tt.seed, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Sequence(%d) = %v, want %v", tt.seed, got, tt.want)
			}
		})
	}
}

func TestSequenceInvariants(t *testing.T) {
	for n := 1; n <= 1000; n++ {
		seq, err := Sequence(n)
		if err != nil {
			t.Fatalf("Sequence(%d): %v", n, err)
		}
		if seq.Seed() != n {
			t.Fatalf("Sequence(%d) starts at %d", n, seq.Seed())
		}
		if err := Verify(seq); err != nil {
			t.Fatalf("Verify(Sequence(%d)): %v", n, err)
		}
	}
}

func TestSequenceLongTrajectory(t *testing.T) {
	seq, err := Sequence(27)
	if err != nil {
		t.Fatalf("Sequence(27): %v", err)
	}
	if got := seq.Steps(); got != 111 {
		t.Errorf("Steps() = %d, want 111", got)
	}
	if got := seq.Peak(); got != 9232 {
		t.Errorf("Peak() = %d, want 9232", got)
	}
}

func TestSequenceInvalidSeed(t *testing.T) {
	for _, n := range []int{0, -1, math.MinInt} {
		seq, err := Sequence(n)
		if err == nil {
			t.Fatalf("Sequence(%d) = %v, want error", n, seq)
		}
		if !errors.Is(err, errors.ErrCodeInvalidSeed) {
			t.Errorf("Sequence(%d) code = %v, want %v", n, errors.GetCode(err), errors.ErrCodeInvalidSeed)
		}
	}
}

func TestSequenceOverflow(t *testing.T) {
	_, err := Sequence(math.MaxInt)
	if !errors.Is(err, errors.ErrCodeOverflow) {
		t.Fatalf("Sequence(MaxInt) error = %v, want %v", err, errors.ErrCodeOverflow)
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 4},
		{2, 1},
		{7, 22},
		{10, 5},
	}
	for _, tt := range tests {
		got, err := Step(tt.in)
		if err != nil {
			t.Fatalf("Step(%d): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Step(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	// maxOdd is even, so its odd neighbours straddle the overflow boundary.
	if _, err := Step(maxOdd + 1); !errors.Is(err, errors.ErrCodeOverflow) {
		t.Errorf("Step(maxOdd+1) error = %v, want overflow", err)
	}
	if got, err := Step(maxOdd - 1); err != nil || got != math.MaxInt-3 {
		t.Errorf("Step(maxOdd-1) = %d, %v, want %d, nil", got, err, math.MaxInt-3)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		seq     Seq
		wantErr bool
	}{
		{"valid", Seq{6, 3, 10, 5, 16, 8, 4, 2, 1}, false},
		{"single", Seq{1}, false},
		{"empty", Seq{}, true},
		{"wrong step", Seq{6, 4, 2, 1}, true},
		{"no terminal one", Seq{6, 3, 10}, true},
		{"early one", Seq{2, 1, 4, 2, 1}, true},
		{"non-positive", Seq{0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.seq)
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify(%v) error = %v, wantErr %v", tt.seq, err, tt.wantErr)
			}
		})
	}
}

func TestSeqString(t *testing.T) {
	if got, want := (Seq{5, 16, 8}).String(), "5 → 16 → 8"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
