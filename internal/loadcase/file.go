// Package loadcase reads beam definitions and turns them into solved-ready beams.
package loadcase

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
)

// LoadFromFile loads a beam definition from a YAML or JSON file
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a beam definition. JSON input is accepted as YAML.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Build creates the beam described by f. When combo is not nil every load
// is scaled by the combination factor of its load case; otherwise loads are
// taken at service level.
func (f *File) Build(combo *nscp.LoadCombination) (*beam.Beam, beam.Support, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}
	b, err := beam.New(f.Length)
	if err != nil {
		return nil, nil, err
	}

	factor := func(c string) float64 {
		if combo == nil {
			return 1
		}
		t, _ := nscp.ParseLoadType(c) // checked by Validate
		return combo.Factor(t)
	}

	for i, p := range f.PointLoads {
		if err := b.AddPointLoad(p.Position, p.Magnitude*factor(p.Case)); err != nil {
			return nil, nil, fmt.Errorf("point load %d: %w", i+1, err)
		}
	}
	for i, d := range f.DistributedLoads {
		if err := b.AddDistributedLoad(d.Start, d.End, d.Intensity*factor(d.Case)); err != nil {
			return nil, nil, fmt.Errorf("distributed load %d: %w", i+1, err)
		}
	}
	for i, m := range f.Moments {
		if err := b.AddMoment(m.Position, m.Magnitude*factor(m.Case)); err != nil {
			return nil, nil, fmt.Errorf("moment %d: %w", i+1, err)
		}
	}

	s, err := f.Support.Resolve(f.Length)
	if err != nil {
		return nil, nil, err
	}
	return b, s, nil
}

// UnitLabels returns the display units of the definition
func (f *File) UnitLabels() beam.Units {
	u, err := beam.ParseUnits(f.Units)
	if err != nil {
		return beam.KiloNewton
	}
	return u
}

// Cases returns the distinct load cases used by the definition
func (f *File) Cases() []nscp.LoadType {
	seen := map[nscp.LoadType]bool{}
	var cases []nscp.LoadType
	add := func(c string) {
		t, err := nscp.ParseLoadType(c)
		if err != nil || seen[t] {
			return
		}
		seen[t] = true
		cases = append(cases, t)
	}
	for _, p := range f.PointLoads {
		add(p.Case)
	}
	for _, d := range f.DistributedLoads {
		add(d.Case)
	}
	for _, m := range f.Moments {
		add(m.Case)
	}
	return cases
}

// Solve builds the beam for combo and solves it for its support
func (f *File) Solve(combo *nscp.LoadCombination) (*beam.Beam, error) {
	b, s, err := f.Build(combo)
	if err != nil {
		return nil, err
	}
	if _, err := b.Solve(s); err != nil {
		return nil, err
	}
	return b, nil
}
