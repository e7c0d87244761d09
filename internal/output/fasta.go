// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
)

const fastaWidth = 60

// WriteFASTA writes each row's derived sequence as a FASTA record,
// wrapped at 60 columns. Rows without an output sequence are skipped.
func WriteFASTA(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if r.Output == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ">%s\n", r.ID); err != nil {
			return err
		}
		seq := r.Output
		for len(seq) > 0 {
			n := fastaWidth
			if n > len(seq) {
				n = len(seq)
			}
			if _, err := fmt.Fprintln(w, seq[:n]); err != nil {
				return err
			}
			seq = seq[n:]
		}
	}
	return nil
}
