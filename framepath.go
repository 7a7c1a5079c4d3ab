/*
Package framepath provides geometric primitives for paths of rigid-body
frames: 3D positions, orientation quaternions, and a small amount of
shared numeric machinery. The actual path parameterization and
interpolation live in sub-package interp.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package framepath

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'framepath'
func tracer() tracing.Trace {
	return tracing.Select("framepath")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// DefaultTolerance is the default tolerance below which a segment is
// considered degenerate: the square root of float64 machine epsilon.
var DefaultTolerance = math.Sqrt(math.Nextafter(1, 2) - 1)

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// Clamp restricts n to [lo, hi].
func Clamp(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// === Positions =============================================================

// Positions are r3.Vec values. Besides the arithmetic gonum provides we
// only need distance and an unclamped linear blend.

// Dist returns the Euclidean distance between a and b.
func Dist(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Lerp blends a towards b by factor fac. The factor is not clamped to
// [0,1]; factors outside that range extrapolate along the line through
// a and b. At fac = 0 the result is a, exactly.
func Lerp(a, b r3.Vec, fac float64) r3.Vec {
	return r3.Add(a, r3.Scale(fac, r3.Sub(b, a)))
}

// === Orientations ==========================================================

// An orientation is a unit quaternion rotating world coordinates into a
// frame's local coordinates.

// IdentityQuat is the neutral orientation (no rotation).
var IdentityQuat = quat.Number{Real: 1}

// Q constructs a quaternion from scalar-last components (x, y, z, w).
func Q(x, y, z, w float64) quat.Number {
	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// RelRotation returns the rotation from the frame oriented by q1 to the
// frame oriented by q2.
func RelRotation(q1, q2 quat.Number) quat.Number {
	return quat.Mul(q2, quat.Conj(q1))
}

// RotationAngle extracts the rotation angle of a unit quaternion from its
// scalar part. The scalar part is clamped to [-1-eps, 1+eps] to guard
// against floating round-off pushing it past 1, which would make acos
// undefined.
func RotationAngle(q quat.Number, eps float64) float64 {
	return 2 * math.Acos(Clamp(q.Real, -1-eps, 1+eps))
}

// NormalizeQuat scales q to unit norm. A (near-)zero quaternion cannot
// be normalized and is returned unchanged.
func NormalizeQuat(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if Is0(n) {
		tracer().Errorf("cannot normalize zero quaternion")
		return q
	}
	return quat.Scale(1/n, q)
}

// NlerpQuat blends q1 towards q2 by factor fac and normalizes the
// result. Like Lerp, the factor is not clamped.
func NlerpQuat(q1, q2 quat.Number, fac float64) quat.Number {
	return NormalizeQuat(quat.Add(q1, quat.Scale(fac, quat.Sub(q2, q1))))
}
