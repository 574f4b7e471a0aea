// Package cmd is for command line interactions with fasta_buddy
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fasta_buddy_go/benchmark"
	"fasta_buddy_go/config"
	"fasta_buddy_go/tools/seq_generator"
	"fasta_buddy_go/tools/session"
	common "fasta_buddy_go/utils"
)

// NewRootCmd builds the fasta_buddy command tree with its own viper instance
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "fasta_buddy",
		Short: "Generate random DNA records with an embedded label",
		Long: `Generate random DNA records with an embedded label

fasta_buddy asks for a sequence length, an ID, a description and a label,
generates a random A/C/G/T sequence, hides the label at a random offset and
appends the record to <ID>.fasta. Composition statistics of the generated
sequence (without the label) are printed after every round.`,
		Version:       config.Main_version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
				}
			}
			opts, err := config.Load(v)
			if err != nil {
				return err
			}
			return runSession(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flags.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flags.Int("width", config.Defaults().Width, "FASTA line width")
	flags.String("out-dir", "", "directory for <ID>.fasta files (default: working directory)")
	flags.Bool("plot", false, "also save a composition bar chart as <ID>_composition.svg")
	flags.BoolP("verbose", "v", false, "debug logging on stderr")
	flags.Bool("benchmark", false, "report time and memory used by the session on stderr")

	config.SetDefaults(v)
	for _, name := range []string{"seed", "width", "out-dir", "plot", "verbose", "benchmark"} {
		v.BindPFlag(name, flags.Lookup(name))
	}
	v.SetEnvPrefix("FASTA_BUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func runSession(cmd *cobra.Command, opts config.Options) error {
	logger := common.NewLogger(cmd.ErrOrStderr(), opts.Verbose)
	logger.V(common.DEBUG).Info("starting session",
		"seed", opts.Seed, "width", opts.Width, "outDir", opts.OutDir, "plot", opts.Plot)

	console := session.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	s := session.New(console, seq_generator.NewSource(opts.Seed), opts, logger)

	var err error
	if opts.Benchmark {
		_, err = benchmark.Run(cmd.ErrOrStderr(), "fasta_buddy session", func() error {
			return s.Run(cmd.Context())
		})
	} else {
		err = s.Run(cmd.Context())
	}
	if err != nil {
		logger.Error(err, "session aborted", "rounds", s.Rounds())
	}
	return err
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
