package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/beltflow/flownet"
)

// sampleProblem is the canonical demo network: a three-belt chain with
// a transit cap on A, bottlenecked at 5/min by the A→B belt.
func sampleProblem() *flownet.Problem {
	return &flownet.Problem{
		Edges: []flownet.Edge{
			{From: "S", To: "A", Lo: 0, Hi: 10},
			{From: "A", To: "B", Lo: 0, Hi: 5},
			{From: "B", To: "T", Lo: 0, Hi: 10},
		},
		Sources:  map[string]float64{"S": 10},
		Sink:     "T",
		NodeCaps: map[string]float64{"A": 8, "B": 10},
	}
}

func newGenCommand() *cobra.Command {
	var output string
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a sample problem document, ready to pipe into solve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := json.MarshalIndent(sampleProblem(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode sample: %w", err)
			}
			doc = append(doc, '\n')

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(doc)

				return err
			}

			return os.WriteFile(output, doc, 0o644)
		},
	}
	genCmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return genCmd
}
