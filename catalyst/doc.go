// Package catalyst enumerates candidate catalyst multisets — the extra
// tokens injected into both SOURCE and TARGET to make a path exist —
// in non-decreasing size order, lexicographically within a size, as a
// lazy, deterministic, restartable sequence (spec.md §4.4).
//
// The enumerator applies one pure-arithmetic filter before producing
// anything: if the owning problem.Problem is not Feasible (SOURCE and
// TARGET disagree in size, or the polarity delta is not a multiple of
// 4), no catalyst of any size could help — catalysts are added
// identically to both sides and cancel out of both conditions — so the
// sequence is immediately empty. This never requires search.
package catalyst
