package matching

import "github.com/katalvlaran/bmatch/graph"

// Algorithm is the common shape every b-matching heuristic in this module
// presents to the driver. Implementations hold a *State field rather than
// inherit from one; Prepare wires that State to a concrete Snapshot and b,
// Run performs the heuristic, and Deliver reports the result.
type Algorithm interface {
	// Prepare resets the algorithm against a new Snapshot and color budget
	// b. It returns false if b is unusable for this instance's configuration
	// (for example a bGreedy-Extend instance given b < 2, which leaves no
	// color slot for the extend pass); the driver logs this and skips the
	// instance without invoking Run.
	Prepare(snap *graph.Snapshot, b int) bool

	// Run executes the heuristic to completion against the State set up by
	// Prepare.
	Run()

	// Deliver returns the total weight of the resulting matching.
	Deliver() uint64

	// Name returns the full, human-readable algorithm name used in the
	// console progress table and log messages (e.g. "bGreedy-Color").
	Name() string

	// ShortName returns the compact identifier written to results CSV rows
	// (e.g. "bgreedy_color").
	ShortName() string

	// Threshold returns the global weight threshold this instance was
	// configured with, or 0 if thresholding does not apply to it.
	Threshold() float64

	// SanityCheck reports every invariant violation found in the State
	// Run left behind — non-nil only on a bug, never a normal outcome.
	SanityCheck() []string
}
