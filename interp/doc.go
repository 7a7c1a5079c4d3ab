// Package interp parameterizes and interpolates paths of rigid-body
// frames.
/*

A frame is a 3D position plus an optional orientation quaternion; an
ordered sequence of at least two frames describes a path through space.
Package interp assigns every frame a scalar path parameter: the
parameter starts at 0 and grows per segment by the Euclidean distance
between the segment's frames, divided by the average of their traversal
speeds. Traversing the parameter at uniform rate then approximates
traversing the physical path at the given speeds.

Segments whose endpoints coincide in position fall back to the angle of
the relative rotation between the frames' orientations, so a path may
pause in place and purely rotate. A segment with neither translation nor
rotation offers no basis for a parameter increment and fails the build.

Usage

Build a path from position, orientation and speed sequences:

	path, err := interp.Build(positions,
	    interp.Orientations(quats),
	    interp.Speeds(speeds))

or fluently:

	path, err := interp.Waypoints().
	    At(r3.Vec{}).
	    At(r3.Vec{X: 1}).Speed(2).
	    At(r3.Vec{X: 1, Y: 1}).
	    Build()

A built path is immutable and queried by parameter value:

	pos, q := path.Interpolate(0.5)

Queries locate the enclosing segment by binary search and blend
linearly within it. Parameters outside [0, path.EndParameter()] are not
rejected: they extrapolate along the first or last segment's slope.

BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package interp

import "fmt"

// AsString returns a path's frames -- parameter values and positions --
// as a (debugging) string.
//
// Example, three frames at unit speed:
//
//	(0,0,0)@0 .. (1,0,0)@1 .. (1,1,0)@2
func AsString(p *Path) string {
	var s string
	for i := 0; i < p.N(); i++ {
		if i > 0 {
			s += " .. "
		}
		s += fmt.Sprintf("%s@%.4g", ptstring(p.r[i]), round(p.t[i]))
	}
	return s
}
