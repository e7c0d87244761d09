// strand/domain_test.go
package strand

import (
	"math"
	"testing"

	"github.com/rajiv256/robin/nucleotide"
)

func TestDomainReverseComplement(t *testing.T) {
	d := NewDomain("d1", "ATC")
	rc := d.ReverseComplement()
	if rc.Name() != "d1*" {
		t.Errorf("starred name = %q, want d1*", rc.Name())
	}
	if got := rc.Seq().String(); got != "GAT" {
		t.Errorf("d1* sequence = %s, want GAT", got)
	}
	back := rc.ReverseComplement()
	if back.Name() != "d1**" || !back.Seq().Equal(d.Seq()) {
		t.Errorf("double star should restore the sequence")
	}
}

func TestDomainContent(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		gc   float64
	}{
		{"all GC", "GCGC", 1.0},
		{"half", "ATGC", 0.5},
		{"none", "ATAT", 0.0},
		{"ambiguous positions do not count", "SSAT", 0.0},
	}
	for _, tc := range tests {
		d := NewDomain(tc.name, tc.seq)
		if got := d.GCContent(); math.Abs(got-tc.gc) > 1e-9 {
			t.Errorf("%s: GCContent() = %v, want %v", tc.name, got, tc.gc)
		}
	}
	if got := NewDomain("empty", "").GCContent(); got != 0 {
		t.Errorf("empty domain GCContent() = %v, want 0", got)
	}
	if got := NewDomain("d", "AACG").BaseFraction(nucleotide.BaseA); got != 0.5 {
		t.Errorf("BaseFraction(A) = %v, want 0.5", got)
	}
}

func TestDomainPalindrome(t *testing.T) {
	tests := []struct {
		seq  string
		want bool
	}{
		{"GAATTC", true}, // EcoRI site
		{"ACGT", true},
		{"ACGA", false},
		{"AAT", false}, // odd length can never equal its reverse complement
	}
	for _, tc := range tests {
		if got := NewDomain("d", tc.seq).IsPalindromic(); got != tc.want {
			t.Errorf("IsPalindromic(%s) = %v, want %v", tc.seq, got, tc.want)
		}
	}
}

func TestDomainMaxRun(t *testing.T) {
	tests := []struct {
		seq  string
		want int
	}{
		{"", 0},
		{"ACGT", 1},
		{"AAACGG", 3},
		{"ATTTTG", 4},
	}
	for _, tc := range tests {
		if got := NewDomain("d", tc.seq).MaxRun(); got != tc.want {
			t.Errorf("MaxRun(%s) = %d, want %d", tc.seq, got, tc.want)
		}
	}
}

func TestDomainString(t *testing.T) {
	if got := NewDomain("d2", "GCAT").String(); got != "d2 (4)" {
		t.Errorf("String() = %q, want %q", got, "d2 (4)")
	}
}
