package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/beltflow/flowcheck"
	"github.com/katalvlaran/beltflow/flownet"
)

func newVerifyCommand() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Solve a problem and independently re-check the emitted flows",
		Long: "Solve the problem read from the given file (or stdin) and re-derive\n" +
			"conservation, bound and cap compliance from the result, sharing no\n" +
			"state with the solver. Exits nonzero on infeasibility or violation.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = io.Reader(f)
			}

			p, err := decodeProblem(in)
			if err != nil {
				return err
			}
			res, err := flownet.Solve(p)
			if err != nil {
				return err
			}
			if err = writeResult(cmd.OutOrStdout(), res); err != nil {
				return err
			}

			if res.Status == flownet.StatusInfeasible {
				return fmt.Errorf("network infeasible: deficit %g", res.Deficit.DemandBalance)
			}
			if err = flowcheck.Validate(p, res); err != nil {
				for _, v := range flowcheck.Check(p, res) {
					log.Error(v)
				}

				return err
			}
			log.Infof("network verified: %g/min delivered across %d belts", res.MaxFlowPerMin, len(res.Flows))

			return nil
		},
	}

	return verifyCmd
}
