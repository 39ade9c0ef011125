// Package flownet shared numeric constants. Epsilon choices are part of
// the solver contract: inconsistent tolerances silently change
// feasibility conclusions on near-tight inputs, so every comparison site
// names one of these.
package flownet

const (
	// ResidualEps is the tolerance for residual-capacity comparisons.
	// Arcs with remaining capacity ≤ ResidualEps are treated as
	// saturated; it absorbs floating-point drift from repeated
	// subtraction during augmentation.
	ResidualEps = 1e-9

	// PhaseEps is the tolerance for phase-completion comparisons: a
	// max-flow phase succeeds iff its value matches the required total
	// within PhaseEps.
	PhaseEps = 1e-6

	// OutputEps is the output clamp: emitted values with magnitude
	// below OutputEps are zeroed.
	OutputEps = 1e-12

	// roundScale rounds emitted numbers to 9 decimal places.
	roundScale = 1e9
)
