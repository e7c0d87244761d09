// nucleotide/iupac.go
package nucleotide

import "fmt"

/* -------------------------- IUPAC lookup table -------------------------- */

var symbolOf [256]Symbol // 0 = unrecognized

func init() {
	set := func(c byte, s Symbol) { symbolOf[c] = s }
	set('A', A)
	set('C', C)
	set('G', G)
	set('T', T)
	set('R', R)
	set('Y', Y)
	set('K', K)
	set('M', M)
	set('S', S)
	set('W', W)
	set('B', B)
	set('D', D)
	set('H', H)
	set('V', V)
	set('N', N)
}

/* ---------------------------- strict pre-check --------------------------- */

// ValidCode reports whether r is one of the 15 recognized upper-case
// IUPAC codes. This is the acceptance policy for callers that want to
// reject malformed input before the permissive Parse absorbs it into N.
func ValidCode(r rune) bool {
	return r >= 0 && r < 256 && symbolOf[byte(r)] != 0
}

// Validate checks every rune of text against ValidCode and returns an
// error naming the first offending rune and its 1-based position.
func Validate(text string) error {
	for i, r := range text {
		if !ValidCode(r) {
			return fmt.Errorf("invalid base %q at %d; allowed: A C G T R Y S W K M B D H V N", r, i+1)
		}
	}
	return nil
}
