// cmd/complement.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajiv256/robin/config"
	"github.com/rajiv256/robin/internal/output"
	"github.com/rajiv256/robin/strand"
)

func newComplementCmd(cfg *config.Config) *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "complement [sequence...]",
		Short: "Render sequences and their Watson-Crick complements",
		Long: `Decodes each sequence one character at a time and prints the decoded
symbols alongside their complements. Ambiguity codes render as the
set of bases they allow, e.g. R as A/G; the complement of R is C/T.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := collectInputs(cmd, args, files, cfg)
			if err != nil {
				return err
			}

			rows := make([]output.Row, 0, len(recs))
			for _, r := range recs {
				s := strand.New(r.Seq)
				rows = append(rows, output.Row{
					ID:         r.ID,
					Input:      r.Seq,
					Result:     s.Display(cfg.Separator),
					Complement: s.Complement().Display(cfg.Separator),
				})
			}

			switch cfg.Output {
			case "json":
				return output.WriteJSON(cmd.OutOrStdout(), rows)
			case "text":
				return output.WriteText(cmd.OutOrStdout(), rows, !cfg.NoHeader)
			default:
				return fmt.Errorf("output format %q not supported by complement", cfg.Output)
			}
		},
	}
	addInputFlags(cmd, &files)
	return cmd
}
