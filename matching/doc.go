// Package matching provides the per-algorithm matching state machinery
// shared by every b-matching heuristic: the color/mate bookkeeping
// (State) and the 1-for-2 swap augmentation kernel (Swap, LocalSwap,
// GlobalSwap, ROMA) built on top of it.
//
// State is intentionally a plain composed value, not a base class: each
// algorithm package holds a *State field and calls its methods directly,
// following the "composition over inheritance" layout the rest of this
// module uses for its own shared pieces (graph.Snapshot, State).
package matching
