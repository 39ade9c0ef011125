package flownet

import "errors"

// Sentinel errors for flownet operations. Only non-domain faults are
// reported as errors; a provably infeasible network is a Result with
// StatusInfeasible and a certificate, never an error. Callers branch
// with errors.Is.
var (
	// ErrNilProblem indicates Solve was handed a nil problem.
	ErrNilProblem = errors.New("flownet: nil problem")
)
