// internal/library/library.go
package library

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rajiv256/robin/nucleotide"
	"github.com/rajiv256/robin/strand"
)

// Library holds named domain definitions loaded from a YAML file.
// Lookups accept the starred form ("d1*") and resolve it to the
// reverse complement of the named domain.
type Library struct {
	domains map[string]strand.Domain
	order   []string
}

type yamlLibrary struct {
	Domains []yamlDomain `yaml:"domains"`
}

type yamlDomain struct {
	Name string `yaml:"name"`
	Seq  string `yaml:"seq"`
}

// Load reads a domain library from path. Library files are authored
// by hand, so sequences are validated strictly instead of falling
// back to N.
func Load(path string) (*Library, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes and validates a YAML domain library.
func Parse(b []byte) (*Library, error) {
	var yl yamlLibrary
	if err := yaml.Unmarshal(b, &yl); err != nil {
		return nil, fmt.Errorf("parse domain library: %w", err)
	}
	if len(yl.Domains) == 0 {
		return nil, fmt.Errorf("domain library defines no domains")
	}

	lib := &Library{domains: make(map[string]strand.Domain, len(yl.Domains))}
	for i, d := range yl.Domains {
		if d.Name == "" {
			return nil, fmt.Errorf("domain %d: missing name", i+1)
		}
		if strings.HasSuffix(d.Name, "*") {
			return nil, fmt.Errorf("domain %q: starred names are reserved for reverse complements", d.Name)
		}
		if _, dup := lib.domains[d.Name]; dup {
			return nil, fmt.Errorf("domain %q: duplicate definition", d.Name)
		}
		seq := strings.ToUpper(strings.TrimSpace(d.Seq))
		if seq == "" {
			return nil, fmt.Errorf("domain %q: empty sequence", d.Name)
		}
		if err := nucleotide.Validate(seq); err != nil {
			return nil, fmt.Errorf("domain %q: %w", d.Name, err)
		}
		lib.domains[d.Name] = strand.NewDomain(d.Name, seq)
		lib.order = append(lib.order, d.Name)
	}
	return lib, nil
}

// Names lists the defined domains in file order.
func (l *Library) Names() []string {
	return append([]string(nil), l.order...)
}

// Get resolves a domain by name. A trailing "*" yields the reverse
// complement of the named domain.
func (l *Library) Get(name string) (strand.Domain, bool) {
	if base, starred := strings.CutSuffix(name, "*"); starred {
		d, ok := l.domains[base]
		if !ok {
			return strand.Domain{}, false
		}
		return d.ReverseComplement(), true
	}
	d, ok := l.domains[name]
	return d, ok
}

// Compose builds a named composite strand from a list of domain names
// (starred forms allowed).
func (l *Library) Compose(name string, names []string) (strand.Composite, error) {
	ds := make([]strand.Domain, 0, len(names))
	for _, n := range names {
		d, ok := l.Get(n)
		if !ok {
			return strand.Composite{}, fmt.Errorf("unknown domain %q", n)
		}
		ds = append(ds, d)
	}
	return strand.Compose(name, ds...), nil
}
