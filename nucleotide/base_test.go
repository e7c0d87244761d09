// nucleotide/base_test.go
package nucleotide

import "testing"

func TestBaseEmbedding(t *testing.T) {
	for _, b := range Bases {
		s := b.Symbol()
		got, ok := s.Base()
		if !ok || got != b {
			t.Errorf("round trip through Symbol lost %v (got %v, ok=%v)", b, got, ok)
		}
	}
}

func TestProjectionPartial(t *testing.T) {
	for _, s := range []Symbol{R, Y, K, M, S, W, B, D, H, V, N, 0} {
		if _, ok := s.Base(); ok {
			t.Errorf("%v should not project to a concrete base", s)
		}
	}
}

func TestBaseComplement(t *testing.T) {
	tests := []struct{ in, want Base }{
		{BaseA, BaseT},
		{BaseT, BaseA},
		{BaseC, BaseG},
		{BaseG, BaseC},
	}
	for _, tc := range tests {
		if got := tc.in.Complement(); got != tc.want {
			t.Errorf("Complement(%v) = %v, want %v", tc.in, got, tc.want)
		}
		// agrees with the Symbol-level complement
		if got := tc.in.Symbol().Complement(); got != tc.want.Symbol() {
			t.Errorf("Symbol complement of %v = %v, want %v", tc.in, got, tc.want.Symbol())
		}
	}
}

func TestParseBase(t *testing.T) {
	if b, ok := ParseBase('G'); !ok || b != BaseG {
		t.Errorf("ParseBase('G') = %v, %v", b, ok)
	}
	for _, r := range []rune{'R', 'N', 'a', 'Z'} {
		if _, ok := ParseBase(r); ok {
			t.Errorf("ParseBase(%q) should fail", r)
		}
	}
}
