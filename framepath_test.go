package framepath

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if DefaultTolerance <= 0 || DefaultTolerance > 1e-7 {
		t.Errorf("Expected default tolerance near sqrt(machine epsilon), is %g", DefaultTolerance)
	}
}

func TestClamp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if Clamp(2, -1, 1) != 1 || Clamp(-2, -1, 1) != -1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Errorf("Clamp does not restrict to bounds")
	}
}

func TestDist(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := Dist(r3.Vec{X: 1, Y: 2, Z: 2}, r3.Vec{X: 1})
	assert.InDelta(t, math.Sqrt(8), d, 1e-12)
}

func TestLerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := r3.Vec{X: 1, Y: 1}
	b := r3.Vec{X: 3, Y: 1}
	if Lerp(a, b, 0) != a {
		t.Errorf("Expected lerp at 0 to be a, exactly")
	}
	assert.InDelta(t, 2.0, Lerp(a, b, 0.5).X, 1e-12)
	// factors outside [0,1] extrapolate
	assert.InDelta(t, -1.0, Lerp(a, b, -1).X, 1e-12)
	assert.InDelta(t, 5.0, Lerp(a, b, 2).X, 1e-12)
}

func TestQScalarLast(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if Q(0, 0, 0, 1) != IdentityQuat {
		t.Errorf("Expected Q(0,0,0,1) to be the identity orientation")
	}
	q := Q(0.1, 0.2, 0.3, 0.4)
	if q.Imag != 0.1 || q.Jmag != 0.2 || q.Kmag != 0.3 || q.Real != 0.4 {
		t.Errorf("Q component order is not scalar-last: %v", q)
	}
}

func TestRelRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, c := math.Sincos(math.Pi / 4)
	rot := Q(0, 0, s, c)
	rel := RelRotation(IdentityQuat, rot)
	assert.InDelta(t, rot.Real, rel.Real, 1e-12)
	assert.InDelta(t, rot.Kmag, rel.Kmag, 1e-12)
	// a frame relative to itself is no rotation at all
	self := RelRotation(rot, rot)
	assert.InDelta(t, 1.0, self.Real, 1e-12)
	assert.InDelta(t, 0.0, self.Kmag, 1e-12)
}

func TestRotationAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, c := math.Sincos(math.Pi / 4)
	angle := RotationAngle(Q(0, 0, s, c), DefaultTolerance)
	assert.InDelta(t, math.Pi/2, angle, 1e-9)
	if a := RotationAngle(IdentityQuat, DefaultTolerance); a != 0 {
		t.Errorf("Expected identity to have rotation angle 0, got %g", a)
	}
}

func TestNormalizeQuat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := NormalizeQuat(Q(0, 0, 3, 4))
	assert.InDelta(t, 1.0, quat.Abs(q), 1e-12)
	assert.InDelta(t, 0.8, q.Real, 1e-12)
	zero := NormalizeQuat(quat.Number{})
	if zero != (quat.Number{}) {
		t.Errorf("Expected zero quaternion to pass through normalization, got %v", zero)
	}
}

func TestNlerpQuat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, c := math.Sincos(math.Pi / 4)
	rot := Q(0, 0, s, c)
	if NlerpQuat(IdentityQuat, rot, 0) != IdentityQuat {
		t.Errorf("Expected nlerp at 0 to reproduce the first orientation")
	}
	mid := NlerpQuat(IdentityQuat, rot, 0.5)
	assert.InDelta(t, 1.0, quat.Abs(mid), 1e-12)
	shalf, chalf := math.Sincos(math.Pi / 8)
	assert.InDelta(t, chalf, mid.Real, 1e-12)
	assert.InDelta(t, shalf, mid.Kmag, 1e-12)
}
