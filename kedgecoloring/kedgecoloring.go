// Package kedgecoloring implements k-Edge-Coloring restricted to exactly
// b colors: a direct, incremental proper edge coloring that colors arcs
// one at a time in weight-descending order, falling back to a
// Misra-Gries-style fan rotation whenever no color is immediately free on
// both endpoints. Three independent flags tune the search: trying a
// common free color first, preferring the lightest color class, and
// rotating the whole fan instead of inverting a c-d path.
package kedgecoloring

import (
	"sort"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/matching"
)

// Config selects the three orthogonal search strategies plus the optional
// global-swap pass.
type Config struct {
	CommonColor   bool
	LightestColor bool
	RotateLong    bool
	GlobalSwaps   bool
	ReverseSort   bool
}

// Instance is one configured run of k-Edge-Coloring.
type Instance struct {
	cfg   Config
	snap  *graph.Snapshot
	state *matching.State
	b     int

	matched   []int
	numColors int

	colorWeights   []int64
	colorsByWeight []matching.Color
}

// New returns an unprepared Instance; call Prepare before Run.
func New(cfg Config) *Instance {
	return &Instance{cfg: cfg}
}

// Prepare wires the instance to snap with a budget of b colors.
func (k *Instance) Prepare(snap *graph.Snapshot, b int) bool {
	k.snap = snap
	k.state = matching.NewState(snap, b)
	k.b = b
	k.matched = make([]int, snap.NumVertices())

	if k.cfg.LightestColor {
		k.colorWeights = make([]int64, b)
		k.colorsByWeight = make([]matching.Color, b)
		for i := 0; i < b; i++ {
			k.colorsByWeight[i] = matching.Color(i)
		}
	}
	return true
}

// Run colors arcs one at a time, heaviest first.
func (k *Instance) Run() {
	snap := k.snap

	var edges, zeroWeightArcs []graph.ArcID
	for a := 0; a < snap.NumArcs(); a++ {
		id := graph.ArcID(a)
		if snap.Weight(id) > 0 {
			edges = append(edges, id)
		} else {
			snap.Deactivate(id)
			zeroWeightArcs = append(zeroWeightArcs, id)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return snap.Weight(edges[i]) > snap.Weight(edges[j])
	})

	for _, a := range edges {
		arc := snap.ArcAt(a)
		if k.matched[arc.Tail] >= k.b || k.matched[arc.Head] >= k.b {
			continue
		}

		c, outcome := k.colorEdge(a, arc.Tail)
		if outcome == outcomeRetry {
			c, outcome = k.colorEdge(a, arc.Head)
		}
		if outcome != outcomeSuccess {
			continue
		}

		if int(c)+1 > k.numColors {
			k.numColors = int(c) + 1
		}
		k.matched[arc.Tail]++
		k.matched[arc.Head]++

		if k.cfg.LightestColor {
			k.colorWeights[c] += snap.Weight(a)
			bubbleTowardLightest(k.colorsByWeight, k.colorWeights)
		}
	}

	for _, a := range zeroWeightArcs {
		snap.Activate(a)
	}

	if k.cfg.GlobalSwaps {
		k.state.GlobalSwap(k.cfg.ReverseSort)
	}
}

type outcome int

const (
	outcomeFailed outcome = iota
	outcomeRetry
	outcomeSuccess
)

// colorEdge attempts to color xy, pivoting the fan search at x. It
// returns outcomeRetry when x itself had a candidate color but the fan
// it grew from xy ran out of room on its far endpoint — the caller should
// retry from xy's other endpoint in that case.
func (k *Instance) colorEdge(xy graph.ArcID, x graph.VertexID) (matching.Color, outcome) {
	snap := k.snap
	arc := snap.ArcAt(xy)

	if k.cfg.CommonColor {
		if common := k.state.MatchingFreeColor(arc.Tail, arc.Head); int(common) < k.b {
			_ = k.state.SetEdgeColor(xy, common)
			return common, outcomeSuccess
		}
	}

	c := k.findFreeColor(x)
	if c == matching.Uncolored {
		return matching.Uncolored, outcomeFailed
	}

	fan := k.quickerFan(x, xy)
	far := snap.Other(fan[len(fan)-1], x)
	d := k.findFreeColor(far)
	if d == matching.Uncolored {
		return matching.Uncolored, outcomeRetry
	}

	if !k.cfg.RotateLong || !k.isFreeColor(x, d) {
		if c != d {
			k.invertCdPath(x, c, d)
		}
		widx := -1
		for i, a := range fan {
			if k.isFreeColor(snap.Other(a, x), d) {
				widx = i
				break
			}
		}
		rotateFan(k.state, fan[:widx+1])
		_ = k.state.SetEdgeColor(fan[widx], d)
		return maxColor(c, d), outcomeSuccess
	}

	rotateFan(k.state, fan)
	_ = k.state.SetEdgeColor(fan[len(fan)-1], d)
	return maxColor(c, d), outcomeSuccess
}

// quickerFan grows a fan at x starting with xy, greedily appending any
// remaining colored arc at x whose color is currently free at the fan's
// current tip, and stopping as soon as it reaches a neighbor that already
// has b matchings (no point extending further, since find_free_color on
// that neighbor could never succeed downstream).
func (k *Instance) quickerFan(x graph.VertexID, xy graph.ArcID) []graph.ArcID {
	snap := k.snap
	fan := []graph.ArcID{xy}

	var coloredArcs []graph.ArcID
	snap.ForEachIncident(x, func(a graph.ArcID) bool {
		if k.state.EdgeColor(a) != matching.Uncolored {
			coloredArcs = append(coloredArcs, a)
		}
		return true
	})

	for {
		extended := false
		hitFull := false
		var rest []graph.ArcID
		for _, a := range coloredArcs {
			if !k.isFreeColor(snap.Other(fan[len(fan)-1], x), k.state.EdgeColor(a)) {
				rest = append(rest, a)
				continue
			}
			fan = append(fan, a)
			if k.matched[snap.Other(a, x)] == k.b {
				hitFull = true
				break
			}
			extended = true
		}
		if hitFull || !extended {
			break
		}
		coloredArcs = rest
	}
	return fan
}

// findFreeColor returns the smallest (or, with LightestColor, the
// currently-lightest) color free at u, or matching.Uncolored if none is.
func (k *Instance) findFreeColor(u graph.VertexID) matching.Color {
	if k.cfg.LightestColor {
		for _, c := range k.colorsByWeight {
			if k.isFreeColor(u, c) {
				return c
			}
		}
		return matching.Uncolored
	}
	for c := 0; c < k.b; c++ {
		if k.isFreeColor(u, matching.Color(c)) {
			return matching.Color(c)
		}
	}
	return matching.Uncolored
}

func (k *Instance) isFreeColor(u graph.VertexID, c matching.Color) bool {
	if c == matching.Uncolored {
		return false
	}
	return k.state.Mate(c, u) == graph.NoVertex
}

// invertCdPath walks the alternating c/d-colored path starting at the arc
// currently coloring x in color d, swapping c and d along it.
func (k *Instance) invertCdPath(x graph.VertexID, c, d matching.Color) {
	snap := k.snap
	var path []graph.ArcID
	var newColors []matching.Color
	arcToRecolor, ok := k.state.ArcToMate(d, x)
	nextColor := c
	for ok {
		path = append(path, arcToRecolor)
		newColors = append(newColors, nextColor)
		x = snap.Other(arcToRecolor, x)
		arcToRecolor, ok = k.state.ArcToMate(nextColor, x)
		if nextColor == c {
			nextColor = d
		} else {
			nextColor = c
		}
	}

	for _, a := range path {
		k.state.UnsetEdgeColor(a)
	}
	for i, a := range path {
		_ = k.state.SetEdgeColor(a, newColors[i])
	}
}

// rotateFan shifts every arc's color to its predecessor in fan, leaving
// the last arc Uncolored for the caller to assign.
func rotateFan(state *matching.State, fan []graph.ArcID) {
	if len(fan) == 0 {
		return
	}
	previous := fan[0]
	for i := 1; i < len(fan); i++ {
		cur := fan[i]
		c := state.EdgeColor(cur)
		state.UnsetEdgeColor(cur)
		_ = state.SetEdgeColor(previous, c)
		previous = cur
	}
}

// bubbleTowardLightest re-sorts order (a permutation of colors) by weight
// ascending after the weight of a single color changed, doing just enough
// adjacent swaps to restore the ordering instead of a full re-sort.
func bubbleTowardLightest(order []matching.Color, weight []int64) {
	swapped := false
	for i := 0; i+1 < len(order); i++ {
		if weight[order[i]] > weight[order[i+1]] {
			order[i], order[i+1] = order[i+1], order[i]
			swapped = true
		} else if swapped {
			break
		}
	}
}

func maxColor(a, b matching.Color) matching.Color {
	if a > b {
		return a
	}
	return b
}

// Deliver returns the total weight of the resulting matching.
func (k *Instance) Deliver() uint64 { return k.state.Deliver() }

// Name returns the full algorithm name, reflecting which of the three
// strategy flags are enabled.
func (k *Instance) Name() string {
	cc, lc := k.cfg.CommonColor, k.cfg.LightestColor
	var base string
	switch {
	case k.cfg.RotateLong && cc && lc:
		base = "k-Edge Coloring (CC, LC, RL)"
	case k.cfg.RotateLong && !cc && lc:
		base = "k-Edge Coloring (LC, RL)"
	case k.cfg.RotateLong && cc && !lc:
		base = "k-Edge Coloring (CC, RL)"
	case k.cfg.RotateLong && !cc && !lc:
		base = "k-Edge Coloring (RL)"
	case !k.cfg.RotateLong && cc && lc:
		base = "k-Edge Coloring (CC, LC)"
	case !k.cfg.RotateLong && !cc && lc:
		base = "k-Edge Coloring (LC)"
	case !k.cfg.RotateLong && cc && !lc:
		base = "k-Edge Coloring (CC)"
	default:
		base = "k-Edge Coloring"
	}
	if k.cfg.GlobalSwaps {
		base += " + global swaps"
	}
	return base
}

// ShortName returns the compact identifier written to results CSV rows.
func (k *Instance) ShortName() string {
	cc, lc := k.cfg.CommonColor, k.cfg.LightestColor
	var base string
	switch {
	case k.cfg.RotateLong && cc && lc:
		base = "k-EC+CC-LC-RL"
	case k.cfg.RotateLong && !cc && lc:
		base = "k-EC-LC-RL"
	case k.cfg.RotateLong && cc && !lc:
		base = "k-EC+CC-RL"
	case k.cfg.RotateLong && !cc && !lc:
		base = "k-EC-RL"
	case !k.cfg.RotateLong && cc && lc:
		base = "k-EC+CC-LC"
	case !k.cfg.RotateLong && !cc && lc:
		base = "k-EC-LC"
	case !k.cfg.RotateLong && cc && !lc:
		base = "k-EC+CC"
	default:
		base = "k-EC"
	}
	if k.cfg.GlobalSwaps {
		base += "-swaps-global"
	}
	return base
}

// Threshold always returns 0: k-Edge-Coloring has no weight threshold.
func (k *Instance) Threshold() float64 { return 0 }

// NumColors returns how many distinct colors the completed run used.
func (k *Instance) NumColors() int { return k.numColors }

// SanityCheck reports every invariant violation found in the resulting
// matching.
func (k *Instance) SanityCheck() []string { return k.state.SanityCheck() }
