package token

import "strings"

// Multiset is a fixed-width bag over the 8-token alphabet. The zero
// value is the empty multiset.
//
// Complexity: every operation below is O(1) — eight fixed array slots,
// no allocation, no map.
type Multiset struct {
	counts [numTokens]uint8
}

// New builds a Multiset from per-token counts, indexed in Alphabet order
// (E,G,L,O,P,T,X,Z). Missing trailing counts default to zero.
func New(counts ...uint8) Multiset {
	var m Multiset
	for i := 0; i < len(counts) && i < numTokens; i++ {
		m.counts[i] = counts[i]
	}
	return m
}

// Of builds a Multiset from a sequence of tokens, counting repeats.
func Of(tokens ...Token) Multiset {
	var m Multiset
	for _, t := range tokens {
		m.counts[t]++
	}
	return m
}

// Parse reads a multiset from a run of uppercase alphabet letters (e.g.
// "EEPL"). Whitespace and the grouping brackets "[" "]" (spec §6, purely
// cosmetic) are ignored. Returns ErrUnknownToken for any other rune.
func Parse(s string) (Multiset, error) {
	var m Multiset
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '[' || c == ']' {
			continue
		}
		t, err := ParseToken(c)
		if err != nil {
			return Multiset{}, err
		}
		m.counts[t]++
	}
	return m, nil
}

// Count returns the number of copies of t in m.
func (m Multiset) Count(t Token) uint8 {
	return m.counts[t]
}

// Size returns the total number of tokens in m.
func (m Multiset) Size() int {
	n := 0
	for _, c := range m.counts {
		n += int(c)
	}
	return n
}

// IsEmpty reports whether m has no tokens at all.
func (m Multiset) IsEmpty() bool {
	return m.Size() == 0
}

// PolarityCounts returns the total count of negative and positive tokens in m.
func (m Multiset) PolarityCounts() (neg, pos int) {
	for _, t := range Alphabet {
		c := int(m.counts[t])
		if t.Polarity() == Negative {
			neg += c
		} else {
			pos += c
		}
	}
	return neg, pos
}

// Contains reports whether m has, pointwise, at least as many of every
// token as other — i.e. other ⊆ m.
func (m Multiset) Contains(other Multiset) bool {
	for i := 0; i < numTokens; i++ {
		if m.counts[i] < other.counts[i] {
			return false
		}
	}
	return true
}

// Add returns m + other, or ErrOverflow if any resulting count would
// exceed 255.
func (m Multiset) Add(other Multiset) (Multiset, error) {
	var out Multiset
	for i := 0; i < numTokens; i++ {
		sum := int(m.counts[i]) + int(other.counts[i])
		if sum > 255 {
			return Multiset{}, ErrOverflow
		}
		out.counts[i] = uint8(sum)
	}
	return out, nil
}

// MustAdd is Add, panicking on overflow. Reserved for call sites where
// the caller has already proven the sum fits (e.g. summing two
// already-validated problem multisets of bounded size); never called
// on raw user input.
func (m Multiset) MustAdd(other Multiset) Multiset {
	out, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return out
}

// Sub returns m - other, or ErrUnderflow if other is not contained in m.
func (m Multiset) Sub(other Multiset) (Multiset, error) {
	if !m.Contains(other) {
		return Multiset{}, ErrUnderflow
	}
	var out Multiset
	for i := 0; i < numTokens; i++ {
		out.counts[i] = m.counts[i] - other.counts[i]
	}
	return out, nil
}

// Scale returns m repeated n times (n·m), or ErrOverflow if any count
// would exceed 255.
func (m Multiset) Scale(n int) (Multiset, error) {
	var out Multiset
	for i := 0; i < numTokens; i++ {
		sum := int(m.counts[i]) * n
		if sum > 255 {
			return Multiset{}, ErrOverflow
		}
		out.counts[i] = uint8(sum)
	}
	return out, nil
}

// CanonicalBytes returns the 8 per-token counts in Alphabet order. Equal
// multisets produce identical byte strings; this is the hash/equality
// key used throughout the solver (BFS state keys, catalyst dedup,
// deterministic result ordering).
func (m Multiset) CanonicalBytes() [numTokens]byte {
	return m.counts
}

// Key returns CanonicalBytes as a string, suitable for use as a Go map key.
func (m Multiset) Key() string {
	b := m.counts
	return string(b[:])
}

// Equal reports whether m and other hold identical counts.
func (m Multiset) Equal(other Multiset) bool {
	return m.counts == other.counts
}

// Less gives a total, deterministic order over multisets: by size, then
// by canonical bytes. Used to break ties between equally-good catalysts
// and paths (spec §3 "Catalyst", "Path").
func (m Multiset) Less(other Multiset) bool {
	ms, os := m.Size(), other.Size()
	if ms != os {
		return ms < os
	}
	return m.Key() < other.Key()
}

// String renders m as a run of uppercase letters in Alphabet order
// (e.g. "EEGL"), matching the canonical text format (spec §6).
func (m Multiset) String() string {
	var b strings.Builder
	for _, t := range Alphabet {
		for i := uint8(0); i < m.counts[t]; i++ {
			b.WriteString(t.String())
		}
	}
	return b.String()
}
