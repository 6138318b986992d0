package cachekey

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/token"
)

// Key is a 32-byte content digest, suitable as a map key or a cache
// backend's primary key.
type Key chainhash.Hash

// String renders Key as hex, matching chainhash.Hash's own String.
func (k Key) String() string {
	return chainhash.Hash(k).String()
}

// ForSolve derives the digest for a solve request: source, target,
// recipes fingerprint and repetitions. Two requests with identical
// fields, regardless of process or machine, hash identically.
func ForSolve(source, target token.Multiset, recipes recipe.Set, repetitions int) Key {
	return digest(source, target, token.Multiset{}, recipes, repetitions)
}

// ForVerify derives the digest for a verify request: source, target,
// catalyst and recipes fingerprint (path itself is not folded in —
// the caller is expected to key the cache on the request, not the
// answer).
func ForVerify(source, target, catalyst token.Multiset, recipes recipe.Set) Key {
	return digest(source, target, catalyst, recipes, 1)
}

func digest(source, target, catalyst token.Multiset, recipes recipe.Set, repetitions int) Key {
	var buf []byte
	appendMultiset := func(m token.Multiset) {
		b := m.CanonicalBytes()
		buf = append(buf, b[:]...)
	}

	appendMultiset(source)
	appendMultiset(target)
	appendMultiset(catalyst)
	buf = append(buf, recipeFingerprint(recipes)...)

	var repBytes [8]byte
	binary.BigEndian.PutUint64(repBytes[:], uint64(repetitions))
	buf = append(buf, repBytes[:]...)

	h := chainhash.DoubleHashH(buf)
	return Key(h)
}

// recipeFingerprint hashes the catalog's own identity: the
// concatenated canonical bytes of every recipe's inputs and outputs,
// in catalog order. Two different recipe sets never collide with the
// same fingerprint as long as their order or contents differ.
func recipeFingerprint(recipes recipe.Set) []byte {
	var buf []byte
	for _, r := range recipes {
		in := r.Inputs.CanonicalBytes()
		out := r.Outputs.CanonicalBytes()
		buf = append(buf, in[:]...)
		buf = append(buf, out[:]...)
	}
	sum := chainhash.HashB(buf)
	return sum
}
