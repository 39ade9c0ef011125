// Package cmd implements the beltflow command line. The process
// contract is strict: stdout carries exactly one JSON document (the
// solve result, or the generated sample); every diagnostic goes to
// stderr.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/beltflow/flownet"
)

// Execute builds the root command and runs it against ctx, exiting
// nonzero on any failure.
func Execute(ctx context.Context, version string) {
	rootCmd := newRootCommand(version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCommand(version string) *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "beltflow",
		Short:         "Maximum-throughput solver for belt networks with bounds and node caps",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetOutput(os.Stderr)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.AddCommand(newSolveCommand(), newGenCommand(), newVerifyCommand())

	return rootCmd
}

// decodeProblem reads one JSON problem document from r. A decode
// failure is an ordinary error — it is reported on stderr and exits
// nonzero, never disguised as a domain infeasibility document.
func decodeProblem(r io.Reader) (*flownet.Problem, error) {
	var p flownet.Problem
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode problem: %w", err)
	}

	return &p, nil
}

// writeResult emits the result as a single compact JSON document.
func writeResult(w io.Writer, res *flownet.Result) error {
	if err := json.NewEncoder(w).Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}
