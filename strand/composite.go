// strand/composite.go
package strand

import "strings"

// Composite is a named strand built from an ordered list of domains,
// 5'->3'. The reverse complement of a composite reverses the domain
// order and stars every domain.
type Composite struct {
	name    string
	domains []Domain
}

// Compose builds a composite strand from domains in 5'->3' order.
func Compose(name string, domains ...Domain) Composite {
	return Composite{name: name, domains: append([]Domain(nil), domains...)}
}

func (c Composite) Name() string { return c.name }

// Domains returns a copy of the ordered domain list.
func (c Composite) Domains() []Domain {
	return append([]Domain(nil), c.domains...)
}

// Length is the total length over all domains.
func (c Composite) Length() int {
	n := 0
	for _, d := range c.domains {
		n += d.Length()
	}
	return n
}

// Flatten concatenates the domain sequences into a single strand.
func (c Composite) Flatten() Strand {
	out := Strand{}
	for _, d := range c.domains {
		out = out.Concat(d.Seq())
	}
	return out
}

// ReverseComplement returns the composite read from the opposite
// strand: domains in reverse order, each starred.
func (c Composite) ReverseComplement() Composite {
	out := make([]Domain, len(c.domains))
	for i, d := range c.domains {
		out[len(c.domains)-1-i] = d.ReverseComplement()
	}
	return Composite{name: c.name + "*", domains: out}
}

// String draws the composite 5'->3' with each domain fenced by
// dashes, e.g. "ø-d1 (3)--d2 (4)-->".
func (c Composite) String() string {
	var b strings.Builder
	b.WriteString("ø")
	for _, d := range c.domains {
		b.WriteString("-")
		b.WriteString(d.String())
		b.WriteString("-")
	}
	b.WriteString("->")
	return b.String()
}
