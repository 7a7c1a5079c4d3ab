package interp

import (
	"sort"

	"github.com/tshort/framepath"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// EndParameter returns the parameter value of the last frame.
func (p *Path) EndParameter() float64 {
	return p.t[len(p.t)-1]
}

// Interval locates the segment enclosing parameter t: the index i with
// At(i) <= t < At(i+1). Parameters at or before the first frame select
// segment 0, parameters at or beyond the last frame select the last
// segment, so that interpolation extrapolates along that segment's
// slope instead of rejecting out-of-range queries.
func (p *Path) Interval(t float64) int {
	n := len(p.t)
	if t <= p.t[0] {
		return 0
	}
	if t >= p.t[n-1] {
		return n - 2
	}
	j := sort.Search(n, func(k int) bool { return t < p.t[k] })
	return j - 1
}

// Interpolate returns the frame at parameter t: the position blended
// linearly within the enclosing segment and the orientation blended and
// renormalized. For a path without orientation data the orientation is
// framepath.IdentityQuat. The blend factor is deliberately not clamped,
// so parameters outside [0, EndParameter()] extrapolate.
func (p *Path) Interpolate(t float64) (r3.Vec, quat.Number) {
	i := p.Interval(t)
	fac := (t - p.t[i]) / (p.t[i+1] - p.t[i])
	pos := framepath.Lerp(p.r[i], p.r[i+1], fac)
	if p.q == nil {
		return pos, framepath.IdentityQuat
	}
	return pos, framepath.NlerpQuat(p.q[i], p.q[i+1], fac)
}

// InterpolatePosition is Interpolate without the orientation work, for
// callers which never need orientations.
func (p *Path) InterpolatePosition(t float64) r3.Vec {
	i := p.Interval(t)
	fac := (t - p.t[i]) / (p.t[i+1] - p.t[i])
	return framepath.Lerp(p.r[i], p.r[i+1], fac)
}

// Sample returns count positions spaced uniformly in parameter over the
// whole path, first and last frame included. count must be at least 2.
func Sample(p *Path, count int) []r3.Vec {
	if count < 2 {
		panic("cannot sample path at fewer than 2 positions")
	}
	step := p.EndParameter() / float64(count-1)
	out := make([]r3.Vec, count)
	for k := range out {
		out[k] = p.InterpolatePosition(float64(k) * step)
	}
	return out
}
