// nucleotide/nucleotide.go
package nucleotide

// Symbol is one position of a nucleic-acid sequence, stored as a 4-bit
// set over the concrete bases the position may be (bit0=A bit1=C
// bit2=G bit3=T). A concrete base has exactly one bit set; the IUPAC
// ambiguity codes set two or more.
type Symbol uint8

const (
	A Symbol = 1 << iota
	C
	G
	T
	R = A | G         // purine (A or G)
	Y = C | T         // pyrimidine (C or T)
	K = G | T         // keto (G or T)
	M = A | C         // amino (A or C)
	S = C | G         // strong (C or G)
	W = A | T         // weak (A or T)
	B = C | G | T     // not A
	D = A | G | T     // not C
	H = A | C | T     // not G
	V = A | C | G     // not T
	N = A | C | G | T // any base
)

// Parse maps a one-letter IUPAC code to its Symbol. Anything outside
// the 14 recognized upper-case codes (lower-case included) decodes to
// N: the alphabet is closed, so unknown input means "could be any
// base", never an error. Callers that must reject malformed text
// should run Validate first.
func Parse(r rune) Symbol {
	if r >= 0 && r < 256 {
		if s := symbolOf[byte(r)]; s != 0 {
			return s
		}
	}
	return N
}

// Is reports whether concrete base b is among the possibilities of s.
func (s Symbol) Is(b Base) bool {
	return s&Symbol(b) != 0
}

// Complement returns the Watson-Crick complement: every possible base
// in s maps to its pairing base (A<->T, C<->G) and the result is the
// union of the pairings. Complement is an involution on the 15
// canonical values; S and W are fixed points. The zero mask falls
// through to N like any other unrecognized pattern.
func (s Symbol) Complement() Symbol {
	switch s {
	case A:
		return T
	case C:
		return G
	case G:
		return C
	case T:
		return A
	case R:
		return Y
	case Y:
		return R
	case K:
		return M
	case M:
		return K
	case S:
		return S
	case W:
		return W
	case B:
		return V
	case D:
		return H
	case H:
		return D
	case V:
		return B
	default:
		return N
	}
}

// String renders the possible bases as a slash-joined list, e.g. "A"
// for a concrete base, "A/G" for R, "A/C/G/T" for N. Masks outside
// the 15 canonical values render like N.
func (s Symbol) String() string {
	switch s {
	case A:
		return "A"
	case C:
		return "C"
	case G:
		return "G"
	case T:
		return "T"
	case R:
		return "A/G"
	case Y:
		return "C/T"
	case K:
		return "G/T"
	case M:
		return "A/C"
	case S:
		return "C/G"
	case W:
		return "A/T"
	case B:
		return "C/G/T"
	case D:
		return "A/G/T"
	case H:
		return "A/C/T"
	case V:
		return "A/C/G"
	default:
		return "A/C/G/T"
	}
}

// Code returns the one-letter IUPAC code for s. Masks outside the 15
// canonical values yield 'N'.
func (s Symbol) Code() byte {
	switch s {
	case A:
		return 'A'
	case C:
		return 'C'
	case G:
		return 'G'
	case T:
		return 'T'
	case R:
		return 'R'
	case Y:
		return 'Y'
	case K:
		return 'K'
	case M:
		return 'M'
	case S:
		return 'S'
	case W:
		return 'W'
	case B:
		return 'B'
	case D:
		return 'D'
	case H:
		return 'H'
	case V:
		return 'V'
	default:
		return 'N'
	}
}

// Equal reports structural equality on the underlying mask.
func (s Symbol) Equal(o Symbol) bool { return s == o }
