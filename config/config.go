package config // CLI configuration, filled from flags, env and an optional YAML file

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

var ErrInvalidWidth = errors.New("line width must be greater than zero")

// Options are the settings a session runs with
type Options struct {
	Seed      int64  `mapstructure:"seed"`    // 0 seeds from the clock
	Width     int    `mapstructure:"width"`   // FASTA body line width
	OutDir    string `mapstructure:"out-dir"` // directory for <ID>.fasta, "" is the working dir
	Plot      bool   `mapstructure:"plot"`    // also write <ID>_composition.svg
	Verbose   bool   `mapstructure:"verbose"`
	Benchmark bool   `mapstructure:"benchmark"`
}

// Defaults are applied before flags, env and config file are read
func Defaults() Options {
	return Options{Width: 60}
}

// SetDefaults registers Defaults with v
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("width", d.Width)
	v.SetDefault("out-dir", d.OutDir)
	v.SetDefault("plot", d.Plot)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("benchmark", d.Benchmark)
}

// Load decodes v into Options and validates the result
func Load(v *viper.Viper) (Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidWidth, o.Width)
	}
	return nil
}
