// strand/domain.go
package strand

import (
	"fmt"

	"github.com/rajiv256/robin/nucleotide"
)

// Domain is a named sub-region of a DNA strand. Domains are the unit
// of composition: designs refer to them by name, and the starred form
// (name + "*") is the reverse complement.
type Domain struct {
	name string
	seq  Strand
}

// NewDomain builds a named domain from sequence text.
func NewDomain(name, seq string) Domain {
	return Domain{name: name, seq: New(seq)}
}

func (d Domain) Name() string { return d.name }
func (d Domain) Seq() Strand  { return d.seq }
func (d Domain) Length() int  { return d.seq.Length() }

// ReverseComplement returns the starred domain: the reverse complement
// sequence under the name "<name>*".
func (d Domain) ReverseComplement() Domain {
	return Domain{name: d.name + "*", seq: d.seq.ReverseComplement()}
}

// BaseFraction returns the fraction of positions that are exactly the
// concrete base b. Ambiguous positions do not count. Zero-length
// domains report 0.
func (d Domain) BaseFraction(b nucleotide.Base) float64 {
	if d.seq.Length() == 0 {
		return 0
	}
	count := 0
	for _, sym := range d.seq.symbols {
		if sym.Equal(b.Symbol()) {
			count++
		}
	}
	return float64(count) / float64(d.seq.Length())
}

// GCContent returns the fraction of positions that are concretely G
// or C.
func (d Domain) GCContent() float64 {
	return d.BaseFraction(nucleotide.BaseG) + d.BaseFraction(nucleotide.BaseC)
}

// IsPalindromic reports whether the domain equals its own reverse
// complement (the molecular sense of palindrome, so only even lengths
// qualify).
func (d Domain) IsPalindromic() bool {
	return d.seq.Equal(d.seq.ReverseComplement())
}

// MaxRun returns the length of the longest run of one repeated symbol.
func (d Domain) MaxRun() int {
	max, run := 0, 0
	for i, sym := range d.seq.symbols {
		if i > 0 && sym.Equal(d.seq.symbols[i-1]) {
			run++
		} else {
			run = 1
		}
		if run > max {
			max = run
		}
	}
	return max
}

// String renders "name (length)".
func (d Domain) String() string {
	return fmt.Sprintf("%s (%d)", d.name, d.seq.Length())
}
