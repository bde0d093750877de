package beam

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func newBeam(t *testing.T, length float64) *Beam {
	t.Helper()
	b, err := New(length)
	require.NoError(t, err)
	return b
}

func TestSolve_Cantilever(t *testing.T) {
	b := newBeam(t, 4)
	require.NoError(t, b.AddPointLoad(4, 10))

	r, err := b.Solve(Cantilever{End: FixedLeft})
	require.NoError(t, err)

	assert.InDelta(t, 10.0, r.A, tol)
	assert.InDelta(t, 40.0, r.FixedMoment, tol)
	assert.Zero(t, r.B)

	v, err := b.ShearAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, v, tol)

	m, err := b.MomentAt(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m, tol, "free end carries no moment")

	m, err = b.MomentAt(1e-9)
	require.NoError(t, err)
	assert.InDelta(t, -40.0, m, 1e-6)

	m, err = b.MomentAt(0)
	require.NoError(t, err)
	assert.InDelta(t, -40.0, m, tol, "fixed moment is part of the free body at x = 0")
}

func TestSolve_CantileverFixedRight(t *testing.T) {
	b := newBeam(t, 4)
	require.NoError(t, b.AddPointLoad(0, 10))

	r, err := b.Solve(Cantilever{End: FixedRight})
	require.NoError(t, err)

	assert.InDelta(t, 10.0, r.A, tol)
	assert.InDelta(t, -40.0, r.FixedMoment, tol)

	v, err := b.ShearAt(2)
	require.NoError(t, err)
	assert.InDelta(t, -10.0, v, tol)

	m, err := b.MomentAt(2)
	require.NoError(t, err)
	assert.InDelta(t, -20.0, m, tol)

	m, err = b.MomentAt(4)
	require.NoError(t, err)
	assert.InDelta(t, -40.0, m, tol, "moment at the wall equals the reaction moment")
}

func TestSolve_CantileverUniformLoad(t *testing.T) {
	b := newBeam(t, 3)
	require.NoError(t, b.AddDistributedLoad(0, 3, 4))

	r, err := b.Solve(Cantilever{})
	require.NoError(t, err)

	// wL and wL^2/2
	assert.InDelta(t, 12.0, r.A, tol)
	assert.InDelta(t, 18.0, r.FixedMoment, tol)

	m, err := b.MomentAt(3)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m, tol)
}

func TestSolve_SimpleSupportUniformLoad(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddDistributedLoad(0, 6, 2))

	r, err := b.Solve(SimplySupported(6))
	require.NoError(t, err)

	assert.InDelta(t, 6.0, r.A, tol)
	assert.InDelta(t, 6.0, r.B, tol)
	assert.Zero(t, r.FixedMoment)

	v, err := b.ShearAt(3)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, tol)

	m, err := b.MomentAt(3)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, m, tol, "wL^2/8")
}

func TestSolve_Overhang(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddPointLoad(6, 10))

	r, err := b.Solve(TwoSupport{A: 1, B: 5})
	require.NoError(t, err)

	assert.InDelta(t, -2.5, r.A, tol)
	assert.InDelta(t, 12.5, r.B, tol)
	assert.Less(t, r.A, 0.0, "support A is pulled down")

	m, err := b.MomentAt(5)
	require.NoError(t, err)
	assert.InDelta(t, -10.0, m, tol)
	assert.Less(t, m, 0.0)

	v, err := b.ShearAt(5.5)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, v, tol)
}

func TestSolve_DegenerateSupports(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddPointLoad(2, 10))

	_, err := b.Solve(SimplySupported(6))
	require.NoError(t, err)

	_, err = b.Solve(TwoSupport{A: 3, B: 3})
	require.ErrorIs(t, err, ErrDegenerateSupports)

	_, err = b.Reactions()
	assert.ErrorIs(t, err, ErrNotSolved, "stale reactions must be dropped")
	_, err = b.ShearAt(1)
	assert.ErrorIs(t, err, ErrNotSolved)
	_, err = b.MomentAt(1)
	assert.ErrorIs(t, err, ErrNotSolved)
}

func TestSolve_SupportOutOfBounds(t *testing.T) {
	b := newBeam(t, 6)

	_, err := b.Solve(TwoSupport{A: 0, B: 7})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = b.Solve(TwoSupport{A: -1, B: 6})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSolve_ReversedSupportOrder(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddPointLoad(2, 12))

	r, err := b.Solve(TwoSupport{A: 6, B: 0})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, r.A, tol, "A sits at x=6")
	assert.InDelta(t, 8.0, r.B, tol, "B sits at x=0")
}

func TestSolve_Unsolved(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddPointLoad(2, 10))

	_, err := b.ShearAt(1)
	assert.ErrorIs(t, err, ErrNotSolved)
	_, err = b.MomentAt(1)
	assert.ErrorIs(t, err, ErrNotSolved)
	_, err = b.Summary(KiloNewton)
	assert.ErrorIs(t, err, ErrNotSolved)
	_, err = b.Sample(DefaultStations)
	assert.ErrorIs(t, err, ErrNotSolved)
}

func TestSolve_MutationInvalidatesReactions(t *testing.T) {
	mutations := map[string]func(b *Beam) error{
		"point":       func(b *Beam) error { return b.AddPointLoad(1, 1) },
		"distributed": func(b *Beam) error { return b.AddDistributedLoad(1, 2, 1) },
		"moment":      func(b *Beam) error { return b.AddMoment(1, 1) },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			b := newBeam(t, 6)
			_, err := b.Solve(SimplySupported(6))
			require.NoError(t, err)

			require.NoError(t, mutate(b))

			_, err = b.ShearAt(3)
			assert.ErrorIs(t, err, ErrNotSolved)
		})
	}
}

func TestSolve_Idempotent(t *testing.T) {
	b := newBeam(t, 8)
	require.NoError(t, b.AddPointLoad(3, 7.3))
	require.NoError(t, b.AddDistributedLoad(1, 6.5, 2.2))
	require.NoError(t, b.AddMoment(4, -3))

	first, err := b.Solve(TwoSupport{A: 0.5, B: 7})
	require.NoError(t, err)
	second, err := b.Solve(TwoSupport{A: 0.5, B: 7})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSolve_OrderIndependent(t *testing.T) {
	forward := newBeam(t, 8)
	require.NoError(t, forward.AddPointLoad(3, 7))
	require.NoError(t, forward.AddPointLoad(6, -2))
	require.NoError(t, forward.AddDistributedLoad(1, 5, 3))

	backward := newBeam(t, 8)
	require.NoError(t, backward.AddDistributedLoad(1, 5, 3))
	require.NoError(t, backward.AddPointLoad(6, -2))
	require.NoError(t, backward.AddPointLoad(3, 7))

	s := TwoSupport{A: 0, B: 6}
	r1, err := forward.Solve(s)
	require.NoError(t, err)
	r2, err := backward.Solve(s)
	require.NoError(t, err)

	assert.InDelta(t, r1.A, r2.A, tol)
	assert.InDelta(t, r1.B, r2.B, tol)
}

func TestSolve_ZeroLengthDistributedLoadIsInert(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddDistributedLoad(2, 2, 50))

	r, err := b.Solve(SimplySupported(6))
	require.NoError(t, err)
	assert.Zero(t, r.A)
	assert.Zero(t, r.B)

	for _, x := range []float64{0, 2, 3, 6} {
		v, _ := b.ShearAt(x)
		m, _ := b.MomentAt(x)
		assert.Zero(t, v)
		assert.Zero(t, m)
	}
}

// randomBeam builds a reproducible mixed load set
func randomBeam(t *testing.T, rng *rand.Rand, length float64) *Beam {
	t.Helper()
	b := newBeam(t, length)
	for range 4 {
		require.NoError(t, b.AddPointLoad(rng.Float64()*length, rng.Float64()*40-10))
	}
	for range 3 {
		s := rng.Float64() * length
		e := min(s+rng.Float64()*(length-s), length)
		require.NoError(t, b.AddDistributedLoad(s, e, rng.Float64()*10-2))
	}
	for range 2 {
		require.NoError(t, b.AddMoment(rng.Float64()*length, rng.Float64()*20-10))
	}
	return b
}

func TestSolve_GlobalEquilibrium(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	const length = 10.0

	for i := range 50 {
		b := randomBeam(t, rng, length)
		a := rng.Float64() * length / 2
		s := TwoSupport{A: a, B: min(a+1+rng.Float64()*(length-a-1), length)}

		r, err := b.Solve(s)
		require.NoError(t, err, "case %d", i)

		assert.InDelta(t, 0.0, r.A+r.B-b.TotalForce(), 1e-9, "force balance, case %d", i)

		// moment balance about an arbitrary point, clockwise positive
		p := rng.Float64()*2*length - length/2
		sum := b.TotalMomentAbout(p) - r.A*(s.A-p) - r.B*(s.B-p)
		assert.InDelta(t, 0.0, sum, 1e-8, "moment balance about %g, case %d", p, i)
	}

	for i := range 20 {
		b := randomBeam(t, rng, length)
		r, err := b.Solve(Cantilever{})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, r.A-b.TotalForce(), 1e-9, "cantilever force balance, case %d", i)
		assert.InDelta(t, b.TotalMomentAbout(0), r.FixedMoment, 1e-9)
	}
}

func TestSummary(t *testing.T) {
	b := newBeam(t, 6)
	require.NoError(t, b.AddDistributedLoad(0, 6, 2))

	_, err := b.Solve(SimplySupported(6))
	require.NoError(t, err)

	s, err := b.Summary(KiloNewton)
	require.NoError(t, err)
	assert.Equal(t, "reaction_a: 6.00 kN | reaction_b: 6.00 kN", s)

	_, err = b.Solve(Cantilever{})
	require.NoError(t, err)

	s, err = b.Summary(Newton)
	require.NoError(t, err)
	assert.Equal(t, "reaction_a: 12.00 N | fixed_moment: 36.00 N·m", s)
}
