// Package cmd is for command line interactions with the robin
// nucleotide toolkit.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rajiv256/robin/config"
	"github.com/rajiv256/robin/internal/version"
)

// NewRootCmd builds the robin command tree. Each call wires a fresh
// Viper instance so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	cfg := &config.Config{}
	var cfgFile string

	root := &cobra.Command{
		Use: "robin",
		Short: `Decode, complement and compose nucleotide sequences.
Sequences use the IUPAC one-letter alphabet; unknown characters decode
to N (any base)`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.SetDefaults(v)
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", cfgFile, err)
				}
			} else {
				v.SetConfigName(".robin")
				v.SetConfigType("yaml")
				v.AddConfigPath(".")
				if home, err := os.UserHomeDir(); err == nil {
					v.AddConfigPath(filepath.Clean(home))
				}
				// a missing settings file is fine; defaults apply
				_ = v.ReadInConfig()
			}
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			c, err := config.New(v)
			if err != nil {
				return err
			}
			*cfg = c
			return validOutput(cfg.Output)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default .robin.yaml in . or $HOME)")
	root.PersistentFlags().StringP("output", "o", "text", "output format: text | json")
	root.PersistentFlags().String("separator", " ", "separator between rendered symbols")
	root.PersistentFlags().Bool("no-fold", false, "do not fold input to upper case before decoding")
	root.PersistentFlags().Bool("no-header", false, "suppress header line in text output")

	root.AddCommand(
		newComplementCmd(cfg),
		newRevcompCmd(cfg),
		newValidateCmd(cfg),
		newStatsCmd(cfg),
		newComposeCmd(cfg),
	)
	return root
}

func validOutput(format string) error {
	switch format {
	case "text", "json", "fasta":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or fasta)", format)
	}
}

// Execute runs the root command and maps failure onto an exit code.
// This is called by main.main().
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "robin: %v\n", err)
		return 1
	}
	return 0
}
