package matching

import "errors"

// Sentinel errors for the matching package.
var (
	// ErrAlreadyColored indicates SetEdgeColor was called on an arc that
	// already carries a color.
	ErrAlreadyColored = errors.New("matching: arc already colored")

	// ErrEndpointSaturated indicates SetEdgeColor was called with a color
	// already used at one of the arc's endpoints.
	ErrEndpointSaturated = errors.New("matching: endpoint already matched in this color")

	// ErrInvalidColor indicates a color outside [0, b) was requested.
	ErrInvalidColor = errors.New("matching: color out of range")
)

// Color identifies one of the b matchings M_0..M_{b-1}. Uncolored is a
// distinct sentinel value distinguishable from any valid color; -1 is a
// natural choice for a signed Go int and needs no overflow bookkeeping.
type Color int

// Uncolored is the sentinel Color meaning "not assigned to any matching".
const Uncolored Color = -1
