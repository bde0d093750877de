// Package diagram draws beam schematics and shear/moment diagrams as text
// and as images.
package diagram

import (
	"github.com/alexiusacademia/beamcalc/internal/beam"
)

// BeamDiagramData holds everything needed to draw a solved beam
type BeamDiagramData struct {
	Title  string
	Length float64 // m

	Support   beam.Support
	Reactions beam.Reactions

	Points      []beam.PointLoad
	Distributed []beam.DistributedLoad
	Moments     []beam.ConcentratedMoment

	// Sampled internal forces
	Diagram  *beam.Diagram
	Extremes beam.Extremes

	Units beam.Units
}

// NewBeamDiagramData samples a solved beam at n stations
func NewBeamDiagramData(b *beam.Beam, n int, u beam.Units) (BeamDiagramData, error) {
	r, err := b.Reactions()
	if err != nil {
		return BeamDiagramData{}, err
	}
	d, err := b.Sample(n)
	if err != nil {
		return BeamDiagramData{}, err
	}
	return BeamDiagramData{
		Length:      b.Length,
		Support:     r.Support,
		Reactions:   r,
		Points:      b.PointLoads(),
		Distributed: b.DistributedLoads(),
		Moments:     b.Moments(),
		Diagram:     d,
		Extremes:    d.Extremes(),
		Units:       u,
	}, nil
}
