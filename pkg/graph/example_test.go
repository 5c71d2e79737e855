package graph_test

import (
	"fmt"

	"github.com/matzehuels/collatzgraph/pkg/collatz"
	"github.com/matzehuels/collatzgraph/pkg/graph"
)

func ExampleBuild() {
	b, _ := collatz.Generate(3, 3)
	g := graph.Build(b)

	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Edges:", g.EdgeCount())
	d, _ := g.Depth(5)
	fmt.Println("Depth of 5:", d)
	// Output:
	// Nodes: [3 10 5 16 8 4 2 1]
	// Edges: 7
	// Depth of 5: 2
}

func ExampleCompareDepths() {
	b, _ := collatz.Generate(3, 3)
	g := graph.Build(b)

	for _, d := range graph.CompareDepths(g, b) {
		fmt.Printf("%d: recorded %d, minimum %d\n", d.Value, d.Recorded, d.Minimum)
	}
	// Output:
	// 1: recorded 7, minimum 2
	// 2: recorded 6, minimum 1
	// 4: recorded 5, minimum 0
	// 5: recorded 2, minimum 0
	// 8: recorded 4, minimum 2
	// 16: recorded 3, minimum 1
}
