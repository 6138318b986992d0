// Package wire implements the deterministic binary encoding of
// Solution and Stages values, an alternate to the canonical text
// codec (pathfmt), never the only representation (spec.md §1's
// "any serialization toggle").
//
// Encoding uses github.com/fxamacker/cbor/v2 in its deterministic
// "core" mode (cbor.CoreDetEncOptions()), the same call gnark's
// SparseR1CS.WriteTo uses to get reproducible byte output — the
// property spec.md §8 Invariant 6 demands of solve.
package wire
