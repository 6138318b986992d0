package token

// Token is one of the eight abstract tokens the solver rewrites.
type Token uint8

// The fixed alphabet, in canonical order. Every byte-encoding, every
// text serialization, and every enumeration in this module walks the
// alphabet in exactly this order.
const (
	E Token = iota
	G
	L
	O
	P
	T
	X
	Z

	numTokens = 8
)

// Alphabet is the canonical token order, matching the letter order
// used throughout the canonical text format (spec §6): E,G,L,O,P,T,X,Z.
var Alphabet = [numTokens]Token{E, G, L, O, P, T, X, Z}

// Polarity classifies a Token as Negative or Positive.
type Polarity uint8

const (
	// Negative tokens: E, L, P, X.
	Negative Polarity = iota
	// Positive tokens: G, O, T, Z.
	Positive
)

// polarityOf is indexed by Token value; see the const block above for
// the index assignment (E=0, G=1, L=2, O=3, P=4, T=5, X=6, Z=7).
var polarityOf = [numTokens]Polarity{
	E: Negative,
	G: Positive,
	L: Negative,
	O: Positive,
	P: Negative,
	T: Positive,
	X: Negative,
	Z: Positive,
}

// Polarity reports whether t is a Negative or Positive token.
func (t Token) Polarity() Polarity {
	return polarityOf[t]
}

var tokenNames = [numTokens]string{"E", "G", "L", "O", "P", "T", "X", "Z"}

// String renders the single uppercase letter for t.
func (t Token) String() string {
	if int(t) >= numTokens {
		return "?"
	}
	return tokenNames[t]
}

// ParseToken resolves a single uppercase letter to its Token, reporting
// ErrUnknownToken if r is not in the alphabet.
func ParseToken(r byte) (Token, error) {
	switch r {
	case 'E':
		return E, nil
	case 'G':
		return G, nil
	case 'L':
		return L, nil
	case 'O':
		return O, nil
	case 'P':
		return P, nil
	case 'T':
		return T, nil
	case 'X':
		return X, nil
	case 'Z':
		return Z, nil
	default:
		return 0, ErrUnknownToken
	}
}
