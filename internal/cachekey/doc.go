// Package cachekey derives a stable, content-addressed digest over a
// request's problem and catalyst (never a path) for cross-process result caching
// (spec.md §3.1 (NEW)). It never participates in search correctness —
// removing the cache changes no solver output, only whether it's
// recomputed.
//
// The digest is a double-SHA256 over the canonical bytes of SOURCE,
// TARGET, catalyst, a recipe-set fingerprint and the repetition count,
// using github.com/btcsuite/btcd/chaincfg/chainhash's DoubleHashH —
// the same construction Bitcoin uses for content-addressed block and
// transaction IDs.
package cachekey
