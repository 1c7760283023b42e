// Package nodecentered implements the Node-Centered b-matching heuristic:
// every vertex is assigned a priority key from an aggregate of its incident
// arc weights, vertices are processed in descending priority, and each
// vertex greedily colors its heaviest remaining uncolored arcs. An optional
// global weight threshold prunes light arcs from the first pass and a
// second pass recovers any arc the threshold blocked that is still
// colorable once every vertex has had its turn.
package nodecentered

import (
	"sort"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/matching"
)

// Aggregate selects how a vertex's incident-edge weights are reduced to a
// single priority key.
type Aggregate int

const (
	Sum Aggregate = iota
	Max
	Avg
	Median
	BSum
)

var aggregateNames = [...]string{"SUM", "MAX", "AVG", "MEDIAN", "B_SUM"}

// Config selects the aggregation mode and the optional global threshold.
type Config struct {
	Aggregate Aggregate
	// Threshold is a multiplier applied to the graph's heaviest single arc;
	// arcs lighter than Threshold*globalMax are skipped in the first pass.
	// A value <= 0 disables thresholding entirely.
	Threshold float64
}

// Instance is one configured run of Node-Centered.
type Instance struct {
	cfg   Config
	state *matching.State
	snap  *graph.Snapshot
	b     int
}

// New returns an unprepared Instance; call Prepare before Run.
func New(cfg Config) *Instance {
	return &Instance{cfg: cfg}
}

// Prepare wires the instance to snap with a budget of b colors.
func (n *Instance) Prepare(snap *graph.Snapshot, b int) bool {
	n.snap = snap
	n.state = matching.NewState(snap, b)
	n.b = b
	return true
}

// Run computes every vertex's priority key, then colors arcs vertex by
// vertex in descending-priority order, falling back to a threshold-recovery
// pass when a threshold was configured.
func (n *Instance) Run() {
	snap := n.snap
	numVertices := snap.NumVertices()

	incident := make([][]graph.ArcID, numVertices)
	nodeKey := make([]int64, numVertices)
	var globalMax int64

	for vi := 0; vi < numVertices; vi++ {
		v := graph.VertexID(vi)
		var arcs []graph.ArcID
		snap.ForEachIncident(v, func(a graph.ArcID) bool {
			if snap.Weight(a) > 0 {
				arcs = append(arcs, a)
			}
			return true
		})
		sort.SliceStable(arcs, func(i, j int) bool {
			return snap.Weight(arcs[i]) > snap.Weight(arcs[j])
		})
		incident[v] = arcs

		if len(arcs) == 0 {
			continue
		}
		if top := snap.Weight(arcs[0]); top > globalMax {
			globalMax = top
		}
		nodeKey[v] = n.aggregate(arcs)
	}

	order := make([]graph.VertexID, numVertices)
	for vi := range order {
		order[vi] = graph.VertexID(vi)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return nodeKey[order[i]] > nodeKey[order[j]]
	})

	var globalThreshold int64
	if n.cfg.Threshold > 0 {
		globalThreshold = int64(n.cfg.Threshold * float64(globalMax))
	}

	numMatched := make([]int, numVertices)
	for _, v := range order {
		for _, a := range incident[v] {
			if numMatched[v] >= n.b || snap.Weight(a) < globalThreshold {
				break
			}
			if n.state.EdgeColor(a) != matching.Uncolored {
				continue
			}
			arc := snap.ArcAt(a)
			color := n.state.MatchingFreeColor(arc.Tail, arc.Head)
			if int(color) >= n.b {
				continue
			}
			_ = n.state.SetEdgeColor(a, color)
			numMatched[arc.Tail]++
			numMatched[arc.Head]++
		}
	}

	if n.cfg.Threshold > 0 {
		n.recoverThresholdedArcs(numMatched)
	}
}

// recoverThresholdedArcs re-scans every arc the first pass skipped purely
// because of the threshold (not because its endpoints were already
// saturated) and greedily colors whichever of them still fit, heaviest
// first.
func (n *Instance) recoverThresholdedArcs(numMatched []int) {
	snap := n.snap
	var leftover []graph.ArcID
	snap.ForEachArc(func(a graph.ArcID) bool {
		if n.state.EdgeColor(a) != matching.Uncolored || snap.Weight(a) == 0 {
			return true
		}
		arc := snap.ArcAt(a)
		if numMatched[arc.Tail] >= n.b || numMatched[arc.Head] >= n.b {
			return true
		}
		leftover = append(leftover, a)
		return true
	})
	sort.SliceStable(leftover, func(i, j int) bool {
		return snap.Weight(leftover[i]) > snap.Weight(leftover[j])
	})

	for _, a := range leftover {
		arc := snap.ArcAt(a)
		if numMatched[arc.Tail] >= n.b || numMatched[arc.Head] >= n.b {
			continue
		}
		color := n.state.MatchingFreeColor(arc.Tail, arc.Head)
		if int(color) >= n.b {
			continue
		}
		_ = n.state.SetEdgeColor(a, color)
		numMatched[arc.Tail]++
		numMatched[arc.Head]++
	}
}

// aggregate reduces arcs' weights to a single priority key under the
// configured Aggregate mode. arcs is already sorted by weight descending.
func (n *Instance) aggregate(arcs []graph.ArcID) int64 {
	snap := n.snap
	if len(arcs) == 1 {
		return snap.Weight(arcs[0])
	}

	switch n.cfg.Aggregate {
	case Max:
		return snap.Weight(arcs[0])
	case Avg:
		var sum int64
		for _, a := range arcs {
			sum += snap.Weight(a)
		}
		return sum / int64(len(arcs))
	case Median:
		mid := len(arcs) / 2
		if len(arcs)%2 != 0 {
			return snap.Weight(arcs[mid])
		}
		return (snap.Weight(arcs[mid]) + snap.Weight(arcs[mid-1])) / 2
	case BSum:
		limit := n.b
		if limit > len(arcs) {
			limit = len(arcs)
		}
		var sum int64
		for _, a := range arcs[:limit] {
			sum += snap.Weight(a)
		}
		return sum
	case Sum:
		fallthrough
	default:
		var sum int64
		for _, a := range arcs {
			sum += snap.Weight(a)
		}
		return sum
	}
}

// Deliver returns the total weight of the resulting matching.
func (n *Instance) Deliver() uint64 { return n.state.Deliver() }

// Name returns the full algorithm name, including the threshold suffix.
func (n *Instance) Name() string {
	name := "node_centered-" + aggregateNames[n.cfg.Aggregate]
	if n.cfg.Threshold > 0 {
		name += " + threshold"
	}
	return name
}

// ShortName returns the compact identifier written to results CSV rows.
func (n *Instance) ShortName() string {
	name := "NC-" + aggregateNames[n.cfg.Aggregate]
	if n.cfg.Threshold > 0 {
		name += "+t"
	}
	return name
}

// Threshold returns the configured global weight threshold, or 0 if none.
func (n *Instance) Threshold() float64 { return n.cfg.Threshold }

// SanityCheck reports every invariant violation found in the resulting
// matching.
func (n *Instance) SanityCheck() []string { return n.state.SanityCheck() }
