// Package beam computes support reactions and shear/moment diagrams of a
// straight statically determinate beam.
//
// Positions are measured from the left end. Downward loads are positive,
// upward reactions are positive, and concentrated moments are clockwise
// positive. Internal forces are taken from the free body left of the cut;
// anything located exactly at the cut is excluded.
package beam

import (
	"math"
	"slices"
)

// Beam holds the geometry, the applied loads and the last solved reactions
type Beam struct {
	Length float64

	points      []PointLoad
	distributed []DistributedLoad
	moments     []ConcentratedMoment

	reactions *Reactions // nil until Solve succeeds
}

// New creates an unloaded beam of the given length
func New(length float64) (*Beam, error) {
	if !(length > 0) || math.IsInf(length, 1) {
		return nil, ErrInvalidLength
	}
	return &Beam{Length: length}, nil
}

// AddPointLoad appends a point load at pos
func (b *Beam) AddPointLoad(pos, magnitude float64) error {
	if err := b.checkPosition("point load position", pos); err != nil {
		return err
	}
	if err := checkFinite(magnitude); err != nil {
		return err
	}
	b.points = append(b.points, PointLoad{Position: pos, Magnitude: magnitude})
	b.reactions = nil
	return nil
}

// AddDistributedLoad appends a uniform load of intensity w over [start, end].
// A zero-length load is accepted and carries no force.
func (b *Beam) AddDistributedLoad(start, end, w float64) error {
	if err := b.checkPosition("distributed load start", start); err != nil {
		return err
	}
	if err := b.checkPosition("distributed load end", end); err != nil {
		return err
	}
	if end < start {
		return &BoundsError{Field: "distributed load end", Value: end, Min: start, Max: b.Length}
	}
	if err := checkFinite(w); err != nil {
		return err
	}
	b.distributed = append(b.distributed, DistributedLoad{Start: start, End: end, Intensity: w})
	b.reactions = nil
	return nil
}

// AddMoment appends a concentrated moment at pos
func (b *Beam) AddMoment(pos, magnitude float64) error {
	if err := b.checkPosition("moment position", pos); err != nil {
		return err
	}
	if err := checkFinite(magnitude); err != nil {
		return err
	}
	b.moments = append(b.moments, ConcentratedMoment{Position: pos, Magnitude: magnitude})
	b.reactions = nil
	return nil
}

// Reset removes every load and the cached reactions
func (b *Beam) Reset() {
	b.points = nil
	b.distributed = nil
	b.moments = nil
	b.reactions = nil
}

// PointLoads returns the point loads in insertion order
func (b *Beam) PointLoads() []PointLoad { return slices.Clone(b.points) }

// DistributedLoads returns the distributed loads in insertion order
func (b *Beam) DistributedLoads() []DistributedLoad { return slices.Clone(b.distributed) }

// Moments returns the concentrated moments in insertion order
func (b *Beam) Moments() []ConcentratedMoment { return slices.Clone(b.moments) }

// TotalForce returns the sum of all applied vertical forces
func (b *Beam) TotalForce() float64 {
	var f float64
	for _, p := range b.points {
		f += p.Magnitude
	}
	for _, d := range b.distributed {
		f += d.Resultant()
	}
	return f
}

// TotalMomentAbout returns the moment of all applied actions about x,
// clockwise positive
func (b *Beam) TotalMomentAbout(x float64) float64 {
	var m float64
	for _, p := range b.points {
		m += p.Magnitude * p.Position
	}
	for _, d := range b.distributed {
		m += d.Resultant() * d.Centroid()
	}
	for _, c := range b.moments {
		m += c.Magnitude
	}
	return m - b.TotalForce()*x
}

func (b *Beam) checkPosition(field string, x float64) error {
	if !(x >= 0 && x <= b.Length) {
		return &BoundsError{Field: field, Value: x, Min: 0, Max: b.Length}
	}
	return nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidLoad
	}
	return nil
}
