package beam

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solved(t *testing.T, b *Beam, s Support) *Beam {
	t.Helper()
	_, err := b.Solve(s)
	require.NoError(t, err)
	return b
}

func at(t *testing.T, f func(float64) (float64, error), x float64) float64 {
	t.Helper()
	v, err := f(x)
	require.NoError(t, err)
	return v
}

func TestShear_LoadAtCutIsExcluded(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddPointLoad(2, 12))
	solved(t, b, SimplySupported(6))

	// reactions 8 and 4
	assert.InDelta(t, 0.0, at(t, b.ShearAt, 0), tol, "reaction A sits at the cut")
	assert.InDelta(t, 8.0, at(t, b.ShearAt, 2), tol, "load at the cut is not yet applied")
	assert.InDelta(t, -4.0, at(t, b.ShearAt, 2.0000001), tol)
	assert.InDelta(t, -4.0, at(t, b.ShearAt, 6), tol, "reaction B sits at the cut")
}

func TestShear_StepAtPointLoad(t *testing.T) {
	const (
		force = 15.0
		pos   = 3.7
		eps   = 1e-7
	)
	b := newBeam(t, 10)
	require.NoError(t, b.AddPointLoad(pos, force))
	solved(t, b, SimplySupported(10))

	jump := at(t, b.ShearAt, pos+eps) - at(t, b.ShearAt, pos-eps)
	assert.InDelta(t, -force, jump, 1e-9)

	// the moment stays continuous across a point load
	mjump := at(t, b.MomentAt, pos+eps) - at(t, b.MomentAt, pos-eps)
	assert.InDelta(t, 0.0, mjump, 1e-5)
}

func TestMoment_StepAtConcentratedMoment(t *testing.T) {
	const (
		couple = 12.0
		pos    = 4.0
		eps    = 1e-7
	)
	b := newBeam(t, 8)
	require.NoError(t, b.AddMoment(pos, couple))
	solved(t, b, SimplySupported(8))

	jump := at(t, b.MomentAt, pos+eps) - at(t, b.MomentAt, pos-eps)
	assert.InDelta(t, couple, jump, 1e-5, "clockwise couple raises M after its point")

	// shear is unaffected by the couple itself
	vjump := at(t, b.ShearAt, pos+eps) - at(t, b.ShearAt, pos-eps)
	assert.InDelta(t, 0.0, vjump, 1e-9)

	// the support couple pair: Ra = -C/L, Rb = C/L
	assert.InDelta(t, -couple/8, at(t, b.ShearAt, 1), tol)
	assert.InDelta(t, 0.0, at(t, b.MomentAt, 8), 1e-9)
}

func TestMoment_PartialDistributedLoad(t *testing.T) {
	b := newBeam(t, 10)
	require.NoError(t, b.AddDistributedLoad(2, 6, 3))
	solved(t, b, Cantilever{})

	// reaction 12, fixed moment 12*4 = 48
	// inside the load at x=4: active 2 m, force 6, centroid 3
	m := at(t, b.MomentAt, 4)
	assert.InDelta(t, -48+12*4-6*(4-3), m, tol)

	v := at(t, b.ShearAt, 4)
	assert.InDelta(t, 12-6, v, tol)

	// past the load the whole resultant acts at its centroid
	assert.InDelta(t, 0.0, at(t, b.MomentAt, 8), tol)
	assert.InDelta(t, 0.0, at(t, b.ShearAt, 8), tol)
}

func TestForces_ShearIsMomentSlope(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	const (
		length = 10.0
		h      = 1e-5
	)

	for i := range 20 {
		b := randomBeam(t, rng, length)
		solved(t, b, TwoSupport{A: 1, B: 8})

		for range 25 {
			x := h + rng.Float64()*(length-2*h)
			if nearDiscontinuity(b, TwoSupport{A: 1, B: 8}, x, 2*h) {
				continue
			}
			slope := (at(t, b.MomentAt, x+h) - at(t, b.MomentAt, x-h)) / (2 * h)
			assert.InDelta(t, at(t, b.ShearAt, x), slope, 1e-4, "case %d at x=%g", i, x)
		}
	}
}

func nearDiscontinuity(b *Beam, s TwoSupport, x, d float64) bool {
	near := func(p float64) bool { return math.Abs(p-x) < d }
	if near(s.A) || near(s.B) {
		return true
	}
	for _, p := range b.PointLoads() {
		if near(p.Position) {
			return true
		}
	}
	for _, c := range b.Moments() {
		if near(c.Position) {
			return true
		}
	}
	for _, l := range b.DistributedLoads() {
		if near(l.Start) || near(l.End) {
			return true
		}
	}
	return false
}

func TestSample(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddDistributedLoad(0, 6, 2))
	solved(t, b, SimplySupported(6))

	d, err := b.Sample(DefaultStations)
	require.NoError(t, err)

	require.Len(t, d.X, DefaultStations)
	require.Len(t, d.V, DefaultStations)
	require.Len(t, d.M, DefaultStations)
	assert.Equal(t, 0.0, d.X[0])
	assert.Equal(t, 6.0, d.X[len(d.X)-1])

	for i := 1; i < len(d.X); i++ {
		assert.Greater(t, d.X[i], d.X[i-1])
	}
	for _, i := range []int{0, 57, 250, 499} {
		assert.Equal(t, at(t, b.ShearAt, d.X[i]), d.V[i])
		assert.Equal(t, at(t, b.MomentAt, d.X[i]), d.M[i])
	}

	_, err = b.Sample(1)
	assert.Error(t, err)
}

func TestSampleAt(t *testing.T) {
	b := newBeam(t, 4)
	require.NoError(t, b.AddPointLoad(4, 10))
	solved(t, b, Cantilever{})

	d, err := b.SampleAt([]float64{0, 1, 2, 4})
	require.NoError(t, err)

	want := &Diagram{
		X: []float64{0, 1, 2, 4},
		V: []float64{0, 10, 10, 10},
		M: []float64{-40, -30, -20, 0},
	}
	if diff := cmp.Diff(want, d, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("SampleAt mismatch (-want +got):\n%s", diff)
	}
}

func TestExtremes(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddDistributedLoad(0, 6, 2))
	solved(t, b, SimplySupported(6))

	d, err := b.Sample(601)
	require.NoError(t, err)
	e := d.Extremes()

	assert.InDelta(t, 9.0, e.MaxMoment.Value, 1e-9)
	assert.InDelta(t, 3.0, e.MaxMoment.X, 1e-9)
	assert.InDelta(t, 0.0, e.MinMoment.Value, 1e-9)
	assert.InDelta(t, 6.0-0.02, e.MaxShear.Value, 1e-9)
	assert.InDelta(t, -6.0, e.MinShear.Value, 1e-9)
	assert.Equal(t, e.MaxMoment, e.PeakMoment())
	assert.Equal(t, e.MinShear, e.PeakShear())

	assert.Equal(t, Extremes{}, (&Diagram{}).Extremes())
}

func TestExtremes_OverhangPeakIsHogging(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddPointLoad(6, 10))
	solved(t, b, TwoSupport{A: 1, B: 5})

	d, err := b.Sample(DefaultStations)
	require.NoError(t, err)

	peak := d.Extremes().PeakMoment()
	assert.Less(t, peak.Value, 0.0)
	assert.InDelta(t, -10.0, peak.Value, 0.2)
	assert.InDelta(t, 5.0, peak.X, 0.05)
}
