package beam

// ShearAt returns the shear force V(x): the sum of vertical forces left of
// the cut, reactions counted upward and loads downward.
func (b *Beam) ShearAt(x float64) (float64, error) {
	r, err := b.Reactions()
	if err != nil {
		return 0, err
	}
	return b.shear(r, x), nil
}

// MomentAt returns the bending moment M(x) of the free body left of the cut
func (b *Beam) MomentAt(x float64) (float64, error) {
	r, err := b.Reactions()
	if err != nil {
		return 0, err
	}
	return b.moment(r, x), nil
}

func (b *Beam) shear(r Reactions, x float64) float64 {
	var v float64

	switch s := r.Support.(type) {
	case Cantilever:
		if x > s.position(b.Length) {
			v += r.A
		}
	case TwoSupport:
		if x > s.A {
			v += r.A
		}
		if x > s.B {
			v += r.B
		}
	}

	for _, p := range b.points {
		if p.Position < x {
			v -= p.Magnitude
		}
	}
	for _, d := range b.distributed {
		if d.Start < x {
			force, _ := d.active(x)
			v -= force
		}
	}
	return v
}

func (b *Beam) moment(r Reactions, x float64) float64 {
	var m float64

	switch s := r.Support.(type) {
	case Cantilever:
		fixed := s.position(b.Length)
		// a left fixed end belongs to every left free body, x = 0 included
		if s.End == FixedLeft || x > fixed {
			m -= r.FixedMoment
		}
		if x > fixed {
			m += r.A * (x - fixed)
		}
	case TwoSupport:
		if x > s.A {
			m += r.A * (x - s.A)
		}
		if x > s.B {
			m += r.B * (x - s.B)
		}
	}

	for _, p := range b.points {
		if p.Position < x {
			m -= p.Magnitude * (x - p.Position)
		}
	}
	for _, d := range b.distributed {
		if d.Start < x {
			// arm to the centroid of the part left of the cut only
			force, centroid := d.active(x)
			m -= force * (x - centroid)
		}
	}
	for _, c := range b.moments {
		if c.Position < x {
			m += c.Magnitude
		}
	}
	return m
}
