package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/collatzgraph/pkg/errors"
)

func TestParseSeeds(t *testing.T) {
	tests := []struct {
		args []string
		want []int
		code errors.Code
	}{
		{[]string{"1", "27"}, []int{1, 27}, ""},
		{[]string{"0"}, nil, errors.ErrCodeInvalidSeed},
		{[]string{"-4"}, nil, errors.ErrCodeInvalidSeed},
		{[]string{"six"}, nil, errors.ErrCodeInvalidSeed},
	}
	for _, tt := range tests {
		got, err := parseSeeds(tt.args)
		if tt.code != "" {
			if !errors.Is(err, tt.code) {
				t.Errorf("parseSeeds(%v) error = %v, want %s", tt.args, err, tt.code)
			}
			continue
		}
		if err != nil || len(got) != len(tt.want) || got[1] != tt.want[1] {
			t.Errorf("parseSeeds(%v) = %v, %v", tt.args, got, err)
		}
	}
}

func TestSequenceCommandJSON(t *testing.T) {
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"sequence", "27", "6", "--json"})
	root.SetOut(&out)

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("sequence: %v", err)
	}

	var got []sequenceJSON
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sequences, want 2", len(got))
	}
	if got[0].Seed != 27 || got[0].Steps != 111 || got[0].Peak != 9232 {
		t.Errorf("27: %+v", got[0])
	}
	if got[1].Steps != 8 || len(got[1].Sequence) != 9 {
		t.Errorf("6: %+v", got[1])
	}
}

func TestSequenceCommandStyledOutput(t *testing.T) {
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"sequence", "27", "6"})
	root.SetOut(&out)

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("sequence: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Seed 27", "Seed 6", "9232", "111", "steps", "peak"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Seed 27") > strings.Index(got, "Seed 6") {
		t.Error("seeds should print in argument order")
	}
}

func TestSequenceCommandRequiresArgs(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"sequence"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("sequence without seeds should fail")
	}
}
