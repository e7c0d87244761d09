// nucleotide/base.go
package nucleotide

// Base is a concrete, observed nucleotide: exactly one of A, C, G, T.
// It is the "display" half of the representation split: a Symbol is a
// set of possible bases (for computation), a Base is a single known
// one. Every Base embeds into Symbol; only single-bit Symbols project
// back.
type Base uint8

const (
	BaseA Base = Base(A)
	BaseC Base = Base(C)
	BaseG Base = Base(G)
	BaseT Base = Base(T)
)

// Bases lists the four concrete bases in canonical order.
var Bases = [4]Base{BaseA, BaseC, BaseG, BaseT}

// ParseBase maps 'A','C','G','T' to the concrete base. The second
// return is false for anything else, ambiguity codes included.
func ParseBase(r rune) (Base, bool) {
	switch r {
	case 'A':
		return BaseA, true
	case 'C':
		return BaseC, true
	case 'G':
		return BaseG, true
	case 'T':
		return BaseT, true
	default:
		return 0, false
	}
}

// Symbol is the identity embedding of a concrete base into the
// ambiguity alphabet. It is total.
func (b Base) Symbol() Symbol { return Symbol(b) }

// Base projects a Symbol back to a concrete base. It succeeds only
// when exactly one bit is set; an ambiguity code reports false rather
// than guessing.
func (s Symbol) Base() (Base, bool) {
	switch s {
	case A, C, G, T:
		return Base(s), true
	default:
		return 0, false
	}
}

// Complement returns the pairing base: A<->T, C<->G.
func (b Base) Complement() Base {
	switch b {
	case BaseA:
		return BaseT
	case BaseT:
		return BaseA
	case BaseC:
		return BaseG
	default:
		return BaseC
	}
}

func (b Base) String() string { return b.Symbol().String() }

// Code returns the one-letter code for b.
func (b Base) Code() byte { return b.Symbol().Code() }
