package token

import "errors"

// Sentinel errors for the token package. Callers should match them with
// errors.Is; messages are never the contract, only the sentinel identity.
var (
	// ErrUnknownToken indicates a byte outside the fixed alphabet E,G,L,O,P,T,X,Z.
	ErrUnknownToken = errors.New("token: unknown token letter")

	// ErrOverflow indicates a Multiset.Add would push some token count past
	// the representable maximum (255).
	ErrOverflow = errors.New("token: count overflow")

	// ErrUnderflow indicates a Multiset.Sub was attempted where the
	// subtrahend is not contained in the minuend (some count would go
	// negative).
	ErrUnderflow = errors.New("token: count underflow")
)
