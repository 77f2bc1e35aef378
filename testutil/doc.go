// Package testutil provides testing utilities for shortfile.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random generator for file contents.
//
//	rng := testutil.NewRNG(seed)
//	blob := rng.Bytes(4096)       // arbitrary bytes, NULs included
//	text := rng.Lines(20, 80)     // newline-terminated text
//	cases := rng.Contents(50, 1<<16)
package testutil
