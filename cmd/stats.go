// cmd/stats.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajiv256/robin/config"
	"github.com/rajiv256/robin/internal/output"
	"github.com/rajiv256/robin/strand"
)

func newStatsCmd(cfg *config.Config) *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "stats [sequence...]",
		Short: "Per-sequence length, GC content, palindromicity and longest run",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := collectInputs(cmd, args, files, cfg)
			if err != nil {
				return err
			}

			rows := make([]output.StatsRow, 0, len(recs))
			for _, r := range recs {
				d := strand.NewDomain(r.ID, r.Seq)
				rows = append(rows, output.StatsRow{
					ID:          r.ID,
					Length:      d.Length(),
					GCContent:   d.GCContent(),
					Palindromic: d.IsPalindromic(),
					MaxRun:      d.MaxRun(),
				})
			}

			switch cfg.Output {
			case "json":
				return output.WriteJSON(cmd.OutOrStdout(), rows)
			case "text":
				return output.WriteStatsText(cmd.OutOrStdout(), rows, !cfg.NoHeader)
			default:
				return fmt.Errorf("output format %q not supported by stats", cfg.Output)
			}
		},
	}
	addInputFlags(cmd, &files)
	return cmd
}
