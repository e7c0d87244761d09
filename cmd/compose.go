// cmd/compose.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rajiv256/robin/config"
	"github.com/rajiv256/robin/internal/library"
	"github.com/rajiv256/robin/internal/output"
)

func newComposeCmd(cfg *config.Config) *cobra.Command {
	var (
		libPath string
		name    string
	)
	cmd := &cobra.Command{
		Use:   "compose domain [domain...]",
		Short: "Build a strand from named domains in a YAML library",
		Long: `Composes a strand from domains defined in a library file, in the
order given. A trailing star selects a domain's reverse complement,
so "compose d1 d2 d1*" ends with the reverse complement of d1.

Library file format:

  domains:
    - name: d1
      seq: ATC
    - name: d2
      seq: GCAT`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.Load(libPath)
			if err != nil {
				return err
			}
			c, err := lib.Compose(name, args)
			if err != nil {
				return err
			}

			flat := c.Flatten()
			rows := []output.Row{{
				ID:     c.Name(),
				Input:  strings.Join(args, ","),
				Result: c.String(),
				Output: flat.String(),
			}}
			switch cfg.Output {
			case "json":
				return output.WriteJSON(cmd.OutOrStdout(), rows)
			case "text":
				return output.WriteText(cmd.OutOrStdout(), rows, !cfg.NoHeader)
			default:
				return fmt.Errorf("output format %q not supported by compose", cfg.Output)
			}
		},
	}
	cmd.Flags().StringVarP(&libPath, "library", "l", "domains.yaml", "YAML domain library file")
	cmd.Flags().StringVarP(&name, "name", "n", "s", "name for the composed strand")
	return cmd
}
