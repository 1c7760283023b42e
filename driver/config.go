// Package driver wires a parsed CLI configuration into a concrete list of
// matching.Algorithm instances, runs each of them once per requested b
// value, and reports the results to stdout and to an optional results CSV.
// It contains every piece of the dispatch logic except flag parsing itself,
// which lives in cmd/bmatch so driver stays importable by tests without
// pulling in cobra.
package driver

// Config is the fully-parsed set of options a single invocation runs with.
// cmd/bmatch populates this from cobra/pflag; nothing here reads flags
// directly.
type Config struct {
	GraphFile     string
	ResultsOutput string

	// Family toggles: run a whole algorithm family with its default
	// sub-options, independent of (and overridden by) Algorithms.
	Greedy       bool
	NodeCentered bool
	GPA          bool

	// Algorithms, when non-empty, replaces the family toggles entirely.
	// Each entry is one of the CLI's algorithm names (aliases already
	// resolved to canonical form by cmd/bmatch).
	Algorithms []string

	Bs []int

	ROMACount int // -l; > 0 implies ROMA is used wherever GPA runs.

	Swaps            bool
	SwapsAndNormal   bool
	SwapsReverseSort bool
	GlobalSwaps      bool

	AggregationTypes []string
	Thresholds       []float64

	Seed      int64
	OrderSeed int64

	SanityCheck bool
}

// Canonical algorithm names accepted by -a/--algorithm, after alias
// resolution.
const (
	AlgoNodeCentered  = "nodecentered"
	AlgoBGreedyColor  = "bgreedy-color"
	AlgoBGreedyExtend = "bgreedy-extend"
	AlgoGreedyIt      = "greedy-it"
	AlgoGPAIt         = "gpa-it"
	AlgoKEC           = "k-ec"
)

// algorithmAliases maps every accepted spelling to its canonical name.
var algorithmAliases = map[string]string{
	"nodecentered":   AlgoNodeCentered,
	"bgreedy-color":  AlgoBGreedyColor,
	"bmatching":      AlgoBGreedyColor,
	"bgreedy-extend": AlgoBGreedyExtend,
	"greedy-it":      AlgoGreedyIt,
	"biterative":     AlgoGreedyIt,
	"gpa-it":         AlgoGPAIt,
	"gpa":            AlgoGPAIt,
	"k-ec":           AlgoKEC,
	"k-edgecoloring": AlgoKEC,
}

// CanonicalAlgorithmName resolves one of the CLI's accepted aliases to its
// canonical name, or reports ok=false if name isn't recognized.
func CanonicalAlgorithmName(name string) (string, bool) {
	canon, ok := algorithmAliases[name]
	return canon, ok
}

// aggregationByName maps the CLI's aggregation-type spellings to the
// nodecentered package's Aggregate enum.
var aggregationByName = map[string]int{
	"sum":    0,
	"max":    1,
	"avg":    2,
	"median": 3,
	"bsum":   4,
}
