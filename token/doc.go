// Package token defines the fixed 8-symbol alphabet the catalyst solver
// operates over, and Multiset, a fixed-width bag of those symbols.
//
// The alphabet is partitioned into two polarity classes:
//
//	negative: E, L, P, X
//	positive: G, O, T, Z
//
// Multiset is backed by an [8]uint8 array rather than a map: with only
// eight symbols and counts bounded well under 256 in any realistic
// problem, add/sub/contains reduce to eight saturating-checked integer
// operations and canonical encoding is just the raw byte sequence — no
// hashing, no allocation, no map iteration order to fight. This is the
// single most important performance decision in the package.
package token
