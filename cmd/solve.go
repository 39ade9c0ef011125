package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/beltflow/flownet"
)

func newSolveCommand() *cobra.Command {
	var fullDelivery bool
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Read one problem document from stdin, write one result document to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := decodeProblem(cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := flownet.DefaultOptions()
			opts.RequireFullDelivery = fullDelivery
			res, err := flownet.SolveWithOptions(p, opts)
			if err != nil {
				return err
			}
			if res.Status == flownet.StatusInfeasible {
				log.Debugf("network infeasible, deficit %g", res.Deficit.DemandBalance)
			}

			return writeResult(cmd.OutOrStdout(), res)
		},
	}
	solveCmd.Flags().BoolVar(&fullDelivery, "require-full-delivery", false,
		"treat any undelivered supply as infeasibility instead of reporting the deliverable maximum")

	return solveCmd
}
