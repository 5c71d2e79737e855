package pipeline_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/collatzgraph/pkg/pipeline"
)

func ExampleRun() {
	result, err := pipeline.Run(context.Background(), 10, 50)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Stats.SeedCount, result.Stats.NodeCount)
	fmt.Println(len(result.Artifacts["svg"]) > 0)
	// Output:
	// 50 189
	// true
}

func ExampleRun_invalidSeed() {
	_, err := pipeline.Run(context.Background(), 0, 5)
	fmt.Println(err)
	// Output:
	// invalid options: INVALID_SEED: seed must be >= 1, got 0
}
