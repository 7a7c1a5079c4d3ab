package interp

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'interp'
func tracer() tracing.Trace {
	return tracing.Select("interp")
}

var (
	// ErrInvalidInput indicates a structural precondition violation in the
	// frame data handed to Build.
	ErrInvalidInput = errors.New("invalid frame input")
	// ErrDegenerateSegment indicates two consecutive frames that are
	// indistinguishable within the tolerance.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
)

// Path is an immutable, speed-weighted parameterization over a sequence
// of rigid-body frames. It owns three co-indexed sequences: a strictly
// increasing path-parameter value, a position and (optionally) an
// orientation per frame. A Path has no mutators and may be queried
// concurrently by any number of readers.
//
// To construct a Path, call Build, or start with Waypoints() and extend
// the sequence.
type Path struct {
	t []float64     // parameter at frame i, strictly increasing, t[0] = 0
	r []r3.Vec      // position of frame i
	q []quat.Number // orientation of frame i, nil if frames carry none
}

// N returns the number of frames on the path.
func (p *Path) N() int {
	return len(p.t)
}

// At returns the parameter value of frame i.
func (p *Path) At(i int) float64 {
	return p.t[i]
}

// Pos returns the position of frame i.
func (p *Path) Pos(i int) r3.Vec {
	return p.r[i]
}

// Orientation returns the orientation of frame i. The second return
// value is false if the path carries no orientation data.
func (p *Path) Orientation(i int) (quat.Number, bool) {
	if p.q == nil {
		return quat.Number{}, false
	}
	return p.q[i], true
}

// HasOrientation is a predicate: do the path's frames carry orientations?
func (p *Path) HasOrientation() bool {
	return p.q != nil
}
