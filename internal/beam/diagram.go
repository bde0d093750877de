package beam

import (
	"fmt"
	"math"
)

// DefaultStations is the number of sample points used for plotting
const DefaultStations = 500

// Diagram holds V(x) and M(x) sampled at the stations X
type Diagram struct {
	X []float64
	V []float64
	M []float64
}

// Station is a value of V or M and where it occurs
type Station struct {
	X     float64
	Value float64
}

// Extremes holds the peak internal forces of a diagram
type Extremes struct {
	MaxShear  Station
	MinShear  Station
	MaxMoment Station
	MinMoment Station
}

// Sample evaluates V and M at n evenly spaced stations from 0 to L
func (b *Beam) Sample(n int) (*Diagram, error) {
	if n < 2 {
		return nil, fmt.Errorf("at least 2 stations are required, got %d", n)
	}
	xs := make([]float64, n)
	dx := b.Length / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * dx
	}
	xs[n-1] = b.Length
	return b.SampleAt(xs)
}

// SampleAt evaluates V and M at the given positions
func (b *Beam) SampleAt(xs []float64) (*Diagram, error) {
	r, err := b.Reactions()
	if err != nil {
		return nil, err
	}
	d := &Diagram{
		X: append([]float64(nil), xs...),
		V: make([]float64, len(xs)),
		M: make([]float64, len(xs)),
	}
	for i, x := range xs {
		d.V[i] = b.shear(r, x)
		d.M[i] = b.moment(r, x)
	}
	return d, nil
}

// Extremes returns the largest and smallest sampled shear and moment
func (d *Diagram) Extremes() Extremes {
	if len(d.X) == 0 {
		return Extremes{}
	}
	e := Extremes{
		MaxShear:  Station{Value: math.Inf(-1)},
		MinShear:  Station{Value: math.Inf(1)},
		MaxMoment: Station{Value: math.Inf(-1)},
		MinMoment: Station{Value: math.Inf(1)},
	}
	for i, x := range d.X {
		if d.V[i] > e.MaxShear.Value {
			e.MaxShear = Station{X: x, Value: d.V[i]}
		}
		if d.V[i] < e.MinShear.Value {
			e.MinShear = Station{X: x, Value: d.V[i]}
		}
		if d.M[i] > e.MaxMoment.Value {
			e.MaxMoment = Station{X: x, Value: d.M[i]}
		}
		if d.M[i] < e.MinMoment.Value {
			e.MinMoment = Station{X: x, Value: d.M[i]}
		}
	}
	return e
}

// PeakMoment returns the moment with the largest magnitude
func (e Extremes) PeakMoment() Station {
	if math.Abs(e.MinMoment.Value) > math.Abs(e.MaxMoment.Value) {
		return e.MinMoment
	}
	return e.MaxMoment
}

// PeakShear returns the shear with the largest magnitude
func (e Extremes) PeakShear() Station {
	if math.Abs(e.MinShear.Value) > math.Abs(e.MaxShear.Value) {
		return e.MinShear
	}
	return e.MaxShear
}
