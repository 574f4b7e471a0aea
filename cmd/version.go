package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fasta_buddy_go/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of fasta_buddy and its tools",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "fasta_buddy - Version Information Menu")
			fmt.Fprintln(out, "Central Executable:")
			fmt.Fprintf(out, "\tfasta_buddy:\t\t%s\n", config.Main_version)
			fmt.Fprintf(out, "\nModular tools:\n")
			fmt.Fprintf(out, "\tSequence Generator:\t%s\n", config.Seq_Generator)
			fmt.Fprintf(out, "\tSequence Statistics:\t%s\n", config.Seq_Stats)
			fmt.Fprintf(out, "\tFASTA Writer:\t\t%s\n", config.FASTA_Writer)
			fmt.Fprintf(out, "\tComposition Plot:\t%s\n", config.Seq_Plot)
			fmt.Fprintf(out, "\tSession:\t\t%s\n", config.Session)
			fmt.Fprintf(out, "\tBenchmark:\t\t%s\n", config.Benchmark)
		},
	}
}
