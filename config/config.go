// Package config holds app wide settings unmarshalled from Viper
// (defaults, an optional .robin.yaml, and bound command-line flags).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct shared by every command.
type Config struct {
	// Separator between rendered symbols in display output.
	Separator string `mapstructure:"separator"`

	// Output format: text | json (revcomp also accepts fasta).
	Output string `mapstructure:"output"`

	// Keep input case as-is instead of folding to upper case before
	// decoding. Folded input is the permissive default; unfolded
	// lower-case letters decode to N.
	NoFold bool `mapstructure:"no-fold"`

	// Suppress the header line in text output.
	NoHeader bool `mapstructure:"no-header"`
}

// SetDefaults registers the default settings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("separator", " ")
	v.SetDefault("output", "text")
	v.SetDefault("no-fold", false)
	v.SetDefault("no-header", false)
}

// New returns a Config populated from v.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	return c, nil
}
