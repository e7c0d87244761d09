// cmd/revcomp.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rajiv256/robin/config"
	"github.com/rajiv256/robin/internal/output"
	"github.com/rajiv256/robin/strand"
)

func newRevcompCmd(cfg *config.Config) *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:     "revcomp [sequence...]",
		Aliases: []string{"rc"},
		Short:   "Reverse complement sequences (5'->3' on the opposite strand)",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := collectInputs(cmd, args, files, cfg)
			if err != nil {
				return err
			}

			rows := make([]output.Row, 0, len(recs))
			for _, r := range recs {
				rows = append(rows, output.Row{
					ID:     r.ID,
					Input:  r.Seq,
					Output: strand.New(r.Seq).ReverseComplement().String(),
				})
			}

			switch cfg.Output {
			case "json":
				return output.WriteJSON(cmd.OutOrStdout(), rows)
			case "fasta":
				return output.WriteFASTA(cmd.OutOrStdout(), rows)
			default:
				return output.WriteText(cmd.OutOrStdout(), rows, !cfg.NoHeader)
			}
		},
	}
	addInputFlags(cmd, &files)
	return cmd
}
