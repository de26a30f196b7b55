// Command fieldplan plans and persists a maximum-field Ingress overlay
// from a portal list.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := runOptions{agents: 1}
	var verbose bool

	root := &cobra.Command{
		Use:           "fieldplan <input_file> [output_directory] [output_file]",
		Short:         "Plan a maximum-field Ingress overlay from a portal list",
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logInfoLevel
			if verbose {
				level = logDebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.inputFile = args[0]
			opts.outputDirectory = "."
			if len(args) >= 2 {
				opts.outputDirectory = args[1]
			}
			opts.outputFile = "lastPlan.pkl"
			if len(args) >= 3 {
				opts.outputFile = args[2]
			}
			if opts.agents < 1 {
				return fmt.Errorf("fieldplan: -n must be a positive integer, got %d", opts.agents)
			}

			return run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().IntVarP(&opts.agents, "agents", "n", 1, "number of agents")
	root.Flags().BoolVarP(&opts.blueTheme, "blue", "b", false, "use blue rendering theme (default green)")

	return root
}
