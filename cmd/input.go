// cmd/input.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rajiv256/robin/config"
	"github.com/rajiv256/robin/internal/fasta"
)

// addInputFlags registers the shared sequence-input flags on commands
// that read sequences from arguments or FASTA files.
func addInputFlags(cmd *cobra.Command, files *[]string) {
	cmd.Flags().StringSliceVarP(files, "fasta", "f", nil, "FASTA file(s) to read, '-' for stdin (gzip ok)")
}

// collectInputs gathers input sequences in order: positional
// arguments first (ids seq1, seq2, ...), then FASTA records. Input is
// folded to upper case unless no-fold is set; the decoder itself
// stays permissive either way.
func collectInputs(cmd *cobra.Command, args []string, files []string, cfg *config.Config) ([]fasta.Record, error) {
	var recs []fasta.Record
	for i, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		recs = append(recs, fasta.Record{ID: fmt.Sprintf("seq%d", i+1), Seq: a})
	}
	for _, path := range files {
		fromFile, err := fasta.ReadAllCtx(cmd.Context(), path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		recs = append(recs, fromFile...)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("no input sequences: pass sequences as arguments or via --fasta")
	}
	if !cfg.NoFold {
		for i := range recs {
			recs[i].Seq = strings.ToUpper(recs[i].Seq)
		}
	}
	return recs, nil
}
