// strand/strand.go
package strand

import (
	"strings"

	"github.com/rajiv256/robin/nucleotide"
)

// Strand is an ordered, read-only sequence of nucleotide symbols,
// 5'->3'. It is built once from a textual source and never mutated;
// derived forms (complement, reverse complement, concatenation) are
// new strands.
type Strand struct {
	symbols []nucleotide.Symbol
}

// New decodes each rune of text into a symbol, preserving order.
// Decoding is permissive (unknown runes become N); empty input yields
// a zero-length strand.
func New(text string) Strand {
	ss := make([]nucleotide.Symbol, 0, len(text))
	for _, r := range text {
		ss = append(ss, nucleotide.Parse(r))
	}
	return Strand{symbols: ss}
}

// FromSymbols builds a strand from an existing symbol slice. The
// slice is copied so the strand owns its symbols.
func FromSymbols(ss []nucleotide.Symbol) Strand {
	return Strand{symbols: append([]nucleotide.Symbol(nil), ss...)}
}

// Length returns the number of symbols.
func (s Strand) Length() int { return len(s.symbols) }

// At returns the symbol at position i (0-based from the 5' end).
func (s Strand) At(i int) nucleotide.Symbol { return s.symbols[i] }

// Symbols returns a copy of the underlying symbols.
func (s Strand) Symbols() []nucleotide.Symbol {
	return append([]nucleotide.Symbol(nil), s.symbols...)
}

// Equal reports position-wise symbol equality.
func (s Strand) Equal(o Strand) bool {
	if len(s.symbols) != len(o.symbols) {
		return false
	}
	for i := range s.symbols {
		if !s.symbols[i].Equal(o.symbols[i]) {
			return false
		}
	}
	return true
}

// Complement maps the Watson-Crick complement over every position,
// keeping 5'->3' order.
func (s Strand) Complement() Strand {
	out := make([]nucleotide.Symbol, len(s.symbols))
	for i, sym := range s.symbols {
		out[i] = sym.Complement()
	}
	return Strand{symbols: out}
}

// ReverseComplement complements every position and reverses order, so
// the result reads 5'->3' on the opposite strand.
func (s Strand) ReverseComplement() Strand {
	n := len(s.symbols)
	out := make([]nucleotide.Symbol, n)
	for i, sym := range s.symbols {
		out[n-1-i] = sym.Complement()
	}
	return Strand{symbols: out}
}

// Concat returns s followed by o.
func (s Strand) Concat(o Strand) Strand {
	out := make([]nucleotide.Symbol, 0, len(s.symbols)+len(o.symbols))
	out = append(out, s.symbols...)
	out = append(out, o.symbols...)
	return Strand{symbols: out}
}

// String renders the strand as one-letter IUPAC codes.
func (s Strand) String() string {
	var b strings.Builder
	b.Grow(len(s.symbols))
	for _, sym := range s.symbols {
		b.WriteByte(sym.Code())
	}
	return b.String()
}

// Display renders each symbol in its possible-bases form ("A/G" for
// R) joined by sep, e.g. "T G C A C/T A/G" for sep=" ".
func (s Strand) Display(sep string) string {
	parts := make([]string, len(s.symbols))
	for i, sym := range s.symbols {
		parts[i] = sym.String()
	}
	return strings.Join(parts, sep)
}
