// Package catalyst — see doc.go for the package overview.
package catalyst

import "github.com/arcosphere-go/catalyst/token"

// Catalyst is the multiset injected into both SOURCE and TARGET. It is
// structurally identical to token.Multiset; the distinct name documents
// intent at call sites.
type Catalyst = token.Multiset

const numTokens = 8
