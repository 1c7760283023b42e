// Package misragries implements Misra-Gries edge coloring: a constructive
// proof of Vizing's theorem that properly colors a graph of maximum degree
// Δ with at most Δ+1 colors. It is used standalone by nothing in this
// module's CLI surface; it is the coloring step inside bgreedy, which
// first carves out a degree-bounded subgraph and hands it here.
//
// Unlike every other algorithm in this module, Misra-Gries does not drive
// a matching.State directly while running: fan rotation recolors edges in
// ways that would violate State's set/unset invariants mid-algorithm. It
// keeps its own scratch edgeColor array and only calls
// matching.State.SetEdgeColor once, via ApplyTo, after the coloring is
// final.
package misragries

import (
	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/matching"
)

// Instance is one run of Misra-Gries over a Snapshot.
type Instance struct {
	snap      *graph.Snapshot
	maxDegree int // override; 0 means compute Δ from the snapshot.

	delta     int
	edgeColor []matching.Color
	maxColor  matching.Color

	freeColor        []bool
	touchedFreeColor []matching.Color

	locallyFreeColor        []bool
	touchedLocallyFreeColor []matching.Color

	touchedPath []graph.VertexID
	visitedPath []bool

	fan       []graph.ArcID
	fanMarked []bool
}

// New returns an unrun Instance.
func New() *Instance { return &Instance{} }

// SetMaxDegree fixes Δ (so the coloring uses at most d+1 colors) instead
// of computing it from the snapshot's actual maximum degree. bgreedy uses
// this to bound the coloring to its target b (or b-1 when extending).
func (m *Instance) SetMaxDegree(d int) { m.maxDegree = d }

// NumColors returns how many colors the completed coloring actually used.
func (m *Instance) NumColors() int { return int(m.maxColor) + 1 }

// EdgeColor returns the color assigned to arc a, or matching.Uncolored if
// a carries no color (after Run, only if a was inactive in the snapshot
// Run was given or was uncolored afterward via Recolor).
func (m *Instance) EdgeColor(a graph.ArcID) matching.Color { return m.edgeColor[a] }

// Recolor overwrites a's color directly in the scratch array, bypassing
// any mate bookkeeping. It exists for bgreedy's postprocess step, which
// drops and relabels whole color classes before anything is copied into a
// matching.State.
func (m *Instance) Recolor(a graph.ArcID, c matching.Color) { m.edgeColor[a] = c }

// Snapshot returns the graph this instance was run over.
func (m *Instance) Snapshot() *graph.Snapshot { return m.snap }

// ApplyTo copies every colored arc into state via SetEdgeColor. state must
// have been constructed with b >= m.NumColors().
func (m *Instance) ApplyTo(state *matching.State) error {
	var err error
	m.snap.ForEachArc(func(a graph.ArcID) bool {
		if c := m.edgeColor[a]; c != matching.Uncolored {
			if e := state.SetEdgeColor(a, c); e != nil {
				err = e
				return false
			}
		}
		return true
	})
	return err
}

// Run colors every active arc of snap.
func (m *Instance) Run(snap *graph.Snapshot) {
	m.snap = snap
	n := snap.NumVertices()

	delta := m.maxDegree
	if delta <= 0 {
		for v := 0; v < n; v++ {
			if d := snap.Degree(graph.VertexID(v), false); d > delta {
				delta = d
			}
		}
	}
	delta++
	m.delta = delta

	m.edgeColor = make([]matching.Color, snap.NumArcs())
	for i := range m.edgeColor {
		m.edgeColor[i] = matching.Uncolored
	}
	m.freeColor = make([]bool, delta)
	m.locallyFreeColor = make([]bool, delta)
	for i := 0; i < delta; i++ {
		m.freeColor[i] = true
		m.locallyFreeColor[i] = true
	}
	m.fanMarked = make([]bool, n)
	m.visitedPath = make([]bool, n)

	for vi := 0; vi < n; vi++ {
		v := graph.VertexID(vi)

		snap.ForEachIncident(v, func(a graph.ArcID) bool {
			if c := m.edgeColor[a]; c != matching.Uncolored {
				m.locallyFreeColor[c] = false
				m.touchedLocallyFreeColor = append(m.touchedLocallyFreeColor, c)
			}
			return true
		})

		snap.ForEachIncident(v, func(a graph.ArcID) bool {
			if m.edgeColor[a] != matching.Uncolored {
				return true
			}
			m.colorOneFan(v, a)
			return true
		})

		for _, c := range m.touchedLocallyFreeColor {
			m.locallyFreeColor[c] = true
		}
		m.touchedLocallyFreeColor = m.touchedLocallyFreeColor[:0]
	}

	m.maxColor = 0
	for a := 0; a < snap.NumArcs(); a++ {
		if c := m.edgeColor[graph.ArcID(a)]; c > m.maxColor {
			m.maxColor = c
		}
	}
}

// colorOneFan colors startArc, the first currently-uncolored arc found
// while scanning s's incident arcs, by building a maximal fan rooted at s
// and starting with startArc, inverting a c-d path if needed, and
// rotating the (possibly shrunk) fan.
func (m *Instance) colorOneFan(s graph.VertexID, startArc graph.ArcID) {
	snap := m.snap
	t := snap.Other(startArc, s)

	m.fan = m.fan[:0]

	markFree := func(a graph.ArcID) bool {
		if c := m.edgeColor[a]; c != matching.Uncolored {
			m.freeColor[c] = false
			m.touchedFreeColor = append(m.touchedFreeColor, c)
		}
		return true
	}
	snap.ForEachIncident(t, markFree)
	m.fanMarked[t] = true
	m.fan = append(m.fan, startArc)

	for {
		sizeBefore := len(m.fan)
		snap.ForEachIncident(s, func(a graph.ArcID) bool {
			target := snap.Other(a, s)
			if m.fanMarked[target] {
				return true
			}
			c := m.edgeColor[a]
			if c == matching.Uncolored || !m.freeColor[c] {
				return true
			}
			for _, el := range m.touchedFreeColor {
				m.freeColor[el] = true
			}
			m.touchedFreeColor = m.touchedFreeColor[:0]
			snap.ForEachIncident(target, markFree)
			m.fan = append(m.fan, a)
			m.fanMarked[target] = true
			return true
		})
		if len(m.fan) == sizeBefore {
			break
		}
	}

	cColor := firstFreeColor(m.locallyFreeColor)
	dColor := firstFreeColor(m.freeColor)

	if !m.locallyFreeColor[dColor] {
		m.invertCdPath(dColor, cColor, s)
		m.locallyFreeColor[dColor] = true
		m.locallyFreeColor[cColor] = false
		m.touchedLocallyFreeColor = append(m.touchedLocallyFreeColor, cColor)

		m.shrinkFan(s, cColor)

		for _, el := range m.touchedPath {
			m.visitedPath[el] = false
		}
		m.touchedPath = m.touchedPath[:0]
	}

	rotArc := m.fan[len(m.fan)-1]
	prev := m.edgeColor[rotArc]
	m.rotateFan()

	if prev != matching.Uncolored {
		m.freeColor[prev] = true
	}
	m.edgeColor[rotArc] = dColor
	m.locallyFreeColor[dColor] = false

	for _, el := range m.touchedFreeColor {
		m.freeColor[el] = true
	}
	m.touchedFreeColor = m.touchedFreeColor[:0]

	for _, a := range m.fan {
		arc := snap.ArcAt(a)
		m.fanMarked[arc.Tail] = false
		m.fanMarked[arc.Head] = false
	}
	m.fanMarked[s] = false
	m.fan = m.fan[:0]

	m.touchedLocallyFreeColor = append(m.touchedLocallyFreeColor, dColor)
}

// shrinkFan drops the fan's suffix starting at the arc colored c, unless the far
// endpoint of the arc just before it lies on the just-inverted cd-path
// (root is that path's first vertex, always s).
func (m *Instance) shrinkFan(root graph.VertexID, c matching.Color) {
	vindex := -1
	for i, a := range m.fan {
		if m.edgeColor[a] == c {
			vindex = i - 1
			break
		}
	}
	if vindex < 0 {
		return
	}

	v := m.snap.Other(m.fan[vindex], root)
	inPath := false
	for _, el := range m.touchedPath {
		if el == v {
			inPath = true
			break
		}
	}
	if inPath {
		return
	}

	for i := vindex + 1; i < len(m.fan); i++ {
		t := m.snap.Other(m.fan[i], root)
		m.fanMarked[t] = false
	}
	m.fan = m.fan[:vindex+1]
}

// invertCdPath walks the simple path of alternating c/d-colored arcs
// starting at start and swaps their colors, recursing away from start
// before recoloring so that each arc takes its new color only after the
// path beyond it has already been walked.
func (m *Instance) invertCdPath(c, d matching.Color, start graph.VertexID) {
	m.visitedPath[start] = true
	m.touchedPath = append(m.touchedPath, start)
	m.snap.ForEachIncident(start, func(a graph.ArcID) bool {
		target := m.snap.Other(a, start)
		if m.edgeColor[a] == c && !m.visitedPath[target] {
			m.invertCdPath(d, c, target)
			m.edgeColor[a] = d
		}
		return true
	})
}

// rotateFan shifts every fan arc's color to its successor's color and
// uncolors the last arc, leaving it ready for the caller to assign d.
func (m *Instance) rotateFan() {
	for i := 0; i < len(m.fan)-1; i++ {
		m.edgeColor[m.fan[i]] = m.edgeColor[m.fan[i+1]]
	}
	m.edgeColor[m.fan[len(m.fan)-1]] = matching.Uncolored
}

func firstFreeColor(colors []bool) matching.Color {
	for i, free := range colors {
		if free {
			return matching.Color(i)
		}
	}
	return matching.Color(len(colors))
}
