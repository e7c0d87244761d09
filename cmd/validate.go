// cmd/validate.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajiv256/robin/config"
	"github.com/rajiv256/robin/internal/output"
	"github.com/rajiv256/robin/nucleotide"
)

func newValidateCmd(cfg *config.Config) *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "validate [sequence...]",
		Short: "Check sequences against the strict IUPAC whitelist",
		Long: `The decoder itself never rejects input: unknown characters become N.
validate is the strict acceptance layer on top of it, reporting the
first non-IUPAC character in each sequence and exiting non-zero if
any sequence fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := collectInputs(cmd, args, files, cfg)
			if err != nil {
				return err
			}

			invalid := 0
			rows := make([]output.Row, 0, len(recs))
			for _, r := range recs {
				row := output.Row{ID: r.ID, Input: r.Seq, Result: "ok"}
				if verr := nucleotide.Validate(r.Seq); verr != nil {
					row.Result = verr.Error()
					invalid++
				}
				rows = append(rows, row)
			}

			var werr error
			switch cfg.Output {
			case "json":
				werr = output.WriteJSON(cmd.OutOrStdout(), rows)
			case "text":
				werr = output.WriteText(cmd.OutOrStdout(), rows, !cfg.NoHeader)
			default:
				werr = fmt.Errorf("output format %q not supported by validate", cfg.Output)
			}
			if werr != nil {
				return werr
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d sequences failed validation", invalid, len(recs))
			}
			return nil
		},
	}
	addInputFlags(cmd, &files)
	return cmd
}
