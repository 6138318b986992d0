// Package search implements the path searcher: breadth-first
// exploration of the multiset-rewriting state space, returning every
// shortest rewrite sequence from a start state to a target state
// (spec.md §4.5).
//
// The searcher explores a DAG of states level by level. Each frontier
// level records, per first-seen state, the set of (predecessor state,
// recipe) edges that reached it — there is no cyclic ownership, since
// canonical-byte dedup against every earlier level prevents revisiting
// a state once it has been recorded at a shallower or equal depth
// (spec.md §9). Once the target is first seen at depth d*, exploration
// stops and every distinct edge-sequence from source to target at
// depth d* is reconstructed by walking predecessors back to depth 0.
//
// Equivalence folding: within a level, expanding a specific incoming
// edge whose last recipe was r1, a candidate next recipe r2 is skipped
// if r1 and r2 are independent (disjoint inputs), r2 sorts before r1 in
// catalog order, and r2 was already applicable in the state r1 was
// applied to (so the swapped order exists) — this keeps one canonical
// ordering per
// equivalence class of commuting steps without ever dropping a
// genuinely distinct path.
package search
