// Package recipe defines the rewrite rules the catalyst solver applies
// to token.Multiset states, and Set, the immutable catalog they're
// drawn from.
//
// A Recipe is either a Folding (one negative token + one positive token
// on each side — polarity-preserving) or an Inversion (the complete
// negative set {E,L,P,X} on one side, the complete positive set
// {G,O,T,Z} on the other — polarity-flipping). Both preserve total
// token count: |inputs| == |outputs|.
//
// Set is a small (typically ~10-rule) slice, queried by linear scan —
// for an 8-symbol alphabet this is faster than any indexing structure
// and keeps the searcher's hot path branch-predictable.
package recipe
