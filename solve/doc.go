// Package solve is the top-level driver: for a Problem, return the
// paths with minimum catalyst size and, among those, minimum path
// length (spec.md §4.6). It iterates the catalyst enumerator size
// tier by size tier, running one path-search per candidate in the
// current tier (on a bounded worker pool when Options.Parallel is set,
// one after another otherwise), and stops expanding tiers
// once a tier yields any non-empty result.
package solve
