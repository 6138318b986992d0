// Package verify replays a claimed Path against a claimed source,
// catalyst and target, confirming every step is applicable in sequence
// and the final state matches exactly (spec.md §4.6).
//
// Verification is intentionally independent of how the path was
// produced — it re-derives nothing from the searcher's internal state,
// only from the public Recipe.Apply contract, so it can check a path
// handed in from any source (a cache, a wire message, a human).
package verify
