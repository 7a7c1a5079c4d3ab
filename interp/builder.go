package interp

import (
	"fmt"

	"github.com/tshort/framepath"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// An Option configures a Build call.
type Option func(*config)

type config struct {
	quats  []quat.Number
	speeds []float64
	tol    float64
}

// Orientations supplies one orientation per frame. Orientations are
// all-or-nothing: either every frame has one or none does.
func Orientations(qs []quat.Number) Option {
	return func(cfg *config) {
		cfg.quats = qs
	}
}

// Speeds supplies one traversal speed per frame. Interior speeds must be
// strictly positive; the first and last speed may be zero, signaling
// rest at the path ends. Without this option every speed is 1.
func Speeds(s []float64) Option {
	return func(cfg *config) {
		cfg.speeds = s
	}
}

// Tolerance overrides the length below which two positions are
// considered coincident. Defaults to framepath.DefaultTolerance.
func Tolerance(tol float64) Option {
	return func(cfg *config) {
		cfg.tol = tol
	}
}

// Build constructs the parameterization for an ordered sequence of frame
// positions. The parameter starts at 0 and grows per segment by the
// distance between the segment's frames, divided by the average of their
// speeds. Segments whose positions coincide fall back to the relative
// rotation angle between the frames' orientations; a segment offering
// neither distance nor rotation fails the build with
// ErrDegenerateSegment.
//
// Build validates its input before any computation and returns a
// wrapped ErrInvalidInput naming the violated constraint. On error no
// partial Path is returned. The returned Path holds copies of the input
// sequences.
func Build(positions []r3.Vec, opts ...Option) (*Path, error) {
	cfg := config{tol: framepath.DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(positions, cfg); err != nil {
		return nil, err
	}
	n := len(positions)
	speeds := cfg.speeds
	if speeds == nil {
		speeds = make([]float64, n)
		for i := range speeds {
			speeds[i] = 1
		}
	}
	t := make([]float64, n)
	for i := 1; i < n; i++ {
		inc, err := increment(positions, cfg.quats, speeds, i, cfg.tol)
		if err != nil {
			return nil, err
		}
		t[i] = t[i-1] + inc
	}
	path := &Path{
		t: t,
		r: append([]r3.Vec(nil), positions...),
	}
	if cfg.quats != nil {
		path.q = append([]quat.Number(nil), cfg.quats...)
	}
	tracer().Debugf("built path over %d frames, end parameter %g", n, t[n-1])
	return path, nil
}

// MustBuild is a compatibility helper which panics on build errors.
func MustBuild(positions []r3.Vec, opts ...Option) *Path {
	p, err := Build(positions, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func validate(positions []r3.Vec, cfg config) error {
	if cfg.tol <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalidInput, cfg.tol)
	}
	n := len(positions)
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 frames, got %d", ErrInvalidInput, n)
	}
	if cfg.quats != nil && len(cfg.quats) != n {
		return fmt.Errorf("%w: %d orientations for %d frames", ErrInvalidInput, len(cfg.quats), n)
	}
	if cfg.speeds != nil {
		if len(cfg.speeds) != n {
			return fmt.Errorf("%w: %d speeds for %d frames", ErrInvalidInput, len(cfg.speeds), n)
		}
		if cfg.speeds[0] < 0 {
			return fmt.Errorf("%w: negative speed %g at first frame", ErrInvalidInput, cfg.speeds[0])
		}
		if cfg.speeds[n-1] < 0 {
			return fmt.Errorf("%w: negative speed %g at last frame", ErrInvalidInput, cfg.speeds[n-1])
		}
		for i := 1; i < n-1; i++ {
			if cfg.speeds[i] <= 0 {
				return fmt.Errorf("%w: interior speed must be positive, got %g at frame %d",
					ErrInvalidInput, cfg.speeds[i], i)
			}
		}
	}
	return nil
}

// Parameter increment for the segment between frames i-1 and i.
func increment(r []r3.Vec, q []quat.Number, speeds []float64, i int, tol float64) (float64, error) {
	v := (speeds[i-1] + speeds[i]) / 2
	if d := framepath.Dist(r[i-1], r[i]); d > tol {
		return d / v, nil
	}
	if q == nil {
		return 0, fmt.Errorf("%w between frames %d and %d", ErrDegenerateSegment, i-1, i)
	}
	angle := framepath.RotationAngle(framepath.RelRotation(q[i-1], q[i]), tol)
	if angle < tol {
		return 0, fmt.Errorf("%w between frames %d and %d: positions and orientations coincide",
			ErrDegenerateSegment, i-1, i)
	}
	return angle / v, nil
}

// Seq accumulates frames for a fluent build. The following example
// builds a path of three frames, the middle one traversed at double
// speed:
//
//	path, err := Waypoints().
//	    At(r3.Vec{}).
//	    At(r3.Vec{X: 1}).Speed(2).
//	    At(r3.Vec{X: 1, Y: 1}).
//	    Build()
type Seq struct {
	positions []r3.Vec
	quats     []quat.Number
	speeds    []float64
	oriented  []bool
}

// Waypoints creates an empty frame sequence, to be extended by
// subsequent builder calls.
func Waypoints() *Seq {
	return &Seq{}
}

// At appends a frame at position p, with speed 1 and no orientation.
// Part of builder functionality.
func (s *Seq) At(p r3.Vec) *Seq {
	s.positions = append(s.positions, p)
	s.quats = append(s.quats, framepath.IdentityQuat)
	s.speeds = append(s.speeds, 1)
	s.oriented = append(s.oriented, false)
	return s
}

// Oriented sets the orientation of the frame appended last.
// Part of builder functionality.
func (s *Seq) Oriented(q quat.Number) *Seq {
	if len(s.positions) == 0 {
		panic("cannot orient frame of empty sequence")
	}
	s.quats[len(s.quats)-1] = q
	s.oriented[len(s.oriented)-1] = true
	return s
}

// Speed sets the traversal speed of the frame appended last.
// Part of builder functionality.
func (s *Seq) Speed(v float64) *Seq {
	if len(s.positions) == 0 {
		panic("cannot set speed on empty sequence")
	}
	s.speeds[len(s.speeds)-1] = v
	return s
}

// Build feeds the accumulated frames through Build. Orientations must
// have been given for every frame or for none; a partially oriented
// sequence fails with ErrInvalidInput. Options given here win over the
// accumulated per-frame values.
func (s *Seq) Build(opts ...Option) (*Path, error) {
	oriented := 0
	for _, o := range s.oriented {
		if o {
			oriented++
		}
	}
	if oriented > 0 && oriented < len(s.positions) {
		return nil, fmt.Errorf("%w: %d of %d frames oriented, orientations are all-or-nothing",
			ErrInvalidInput, oriented, len(s.positions))
	}
	all := []Option{Speeds(s.speeds)}
	if oriented > 0 {
		all = append(all, Orientations(s.quats))
	}
	all = append(all, opts...)
	return Build(s.positions, all...)
}
