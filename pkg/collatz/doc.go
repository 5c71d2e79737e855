// Package collatz generates Collatz trajectories.
//
// # Overview
//
// A Collatz step halves an even value and maps an odd value n to 3n+1.
// Repeating the step from any positive seed is conjectured to reach 1; this
// package does not try to prove or disprove that, it simply records the
// values visited until 1 is reached.
//
// # Sequences
//
// [Sequence] computes one trajectory, seed first and the terminal 1 last:
//
//	seq, err := collatz.Sequence(6)
//	// seq == [6 3 10 5 16 8 4 2 1]
//
// Seeds below 1 are rejected with an INVALID_SEED error, and a step that
// would leave the int range is reported as OVERFLOW instead of wrapping.
//
// # Batches
//
// [Generate] computes one independent sequence for every seed in
// [start, start+count). Seeds that happen to lie on another seed's
// trajectory still get their own full sequence:
//
//	b, err := collatz.Generate(10, 50)
//	for i, seq := range b.Sequences {
//	    fmt.Println(b.Start+i, len(seq))
//	}
package collatz
