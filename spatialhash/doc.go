// Package spatialhash provides position-keyed multimaps; meshsimplify uses
// one to weld coincident vertices, matching them by position rather than
// by index.
//
// Per spec.md's design notes: keys are 32-bit hashes of a float32 triple
// with -0.0 normalized to +0.0 before mixing, so bit-identical positions
// (after that one normalization) always collide to the same key. Table is
// an open-chaining multimap: one key may own several values (e.g. several
// vertex indices that happen to share a position before welding).
package spatialhash
