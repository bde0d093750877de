package beam

import (
	"fmt"
)

// Reactions holds the support reactions of a solved beam
type Reactions struct {
	Support     Support
	A           float64 // force at the fixed end or at support A, positive upward
	B           float64 // force at support B, zero for a cantilever
	FixedMoment float64 // reaction moment at the fixed end, zero for two supports
}

// Solve computes the reactions for the given support configuration and
// keeps them for ShearAt and MomentAt. On error the previous reactions are
// discarded.
func (b *Beam) Solve(s Support) (Reactions, error) {
	b.reactions = nil

	force := b.TotalForce()
	r := Reactions{Support: s}

	switch s := s.(type) {
	case Cantilever:
		// the fixed end carries the whole resultant
		r.A = force
		r.FixedMoment = b.TotalMomentAbout(s.position(b.Length))

	case TwoSupport:
		if err := b.checkPosition("support A position", s.A); err != nil {
			return Reactions{}, err
		}
		if err := b.checkPosition("support B position", s.B); err != nil {
			return Reactions{}, err
		}
		span := s.B - s.A
		if span == 0 {
			return Reactions{}, fmt.Errorf("%w: x=%g", ErrDegenerateSupports, s.A)
		}
		// sum of moments about A: Rb*span = moment of the loads about A
		r.B = b.TotalMomentAbout(s.A) / span
		r.A = force - r.B

	default:
		return Reactions{}, fmt.Errorf("unsupported support configuration %T", s)
	}

	b.reactions = &r
	return r, nil
}

// Reactions returns the last solved reactions
func (b *Beam) Reactions() (Reactions, error) {
	if b.reactions == nil {
		return Reactions{}, ErrNotSolved
	}
	return *b.reactions, nil
}

// Summary formats the last solved reactions in the given units
func (b *Beam) Summary(u Units) (string, error) {
	r, err := b.Reactions()
	if err != nil {
		return "", err
	}
	return r.Format(u), nil
}

// Format renders the reactions as labeled values, e.g.
// "reaction_a: 12.50 kN | reaction_b: -3.20 kN"
func (r Reactions) Format(u Units) string {
	if _, ok := r.Support.(Cantilever); ok {
		return fmt.Sprintf("reaction_a: %.2f %s | fixed_moment: %.2f %s", r.A, u.Force, r.FixedMoment, u.Moment)
	}
	return fmt.Sprintf("reaction_a: %.2f %s | reaction_b: %.2f %s", r.A, u.Force, r.B, u.Force)
}
