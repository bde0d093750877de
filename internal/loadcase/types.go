package loadcase

import (
	"fmt"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
)

// File is a beam definition as stored in YAML or JSON.
// Lengths are in metres; forces use the unit named by Units.
type File struct {
	Name    string      `yaml:"name,omitempty" json:"name,omitempty"`
	Length  float64     `yaml:"length" json:"length"`
	Units   string      `yaml:"units,omitempty" json:"units,omitempty"` // "kN" (default) or "N"
	Support SupportSpec `yaml:"support" json:"support"`

	Loads `yaml:",inline"`
}

// Loads holds the applied loads of a definition
type Loads struct {
	PointLoads       []PointLoadSpec       `yaml:"point_loads,omitempty" json:"point_loads,omitempty"`
	DistributedLoads []DistributedLoadSpec `yaml:"distributed_loads,omitempty" json:"distributed_loads,omitempty"`
	Moments          []MomentSpec          `yaml:"moments,omitempty" json:"moments,omitempty"`
}

// Count returns the total number of loads
func (l Loads) Count() int {
	return len(l.PointLoads) + len(l.DistributedLoads) + len(l.Moments)
}

// Append adds every load of other after the existing ones
func (l *Loads) Append(other Loads) {
	l.PointLoads = append(l.PointLoads, other.PointLoads...)
	l.DistributedLoads = append(l.DistributedLoads, other.DistributedLoads...)
	l.Moments = append(l.Moments, other.Moments...)
}

// SupportSpec selects the support configuration.
//
//	type: two-support (default), simple, overhang -> supports at A and B
//	type: cantilever                              -> fixed at End (left|right)
type SupportSpec struct {
	Type string   `yaml:"type,omitempty" json:"type,omitempty"`
	End  string   `yaml:"end,omitempty" json:"end,omitempty"`
	A    *float64 `yaml:"a,omitempty" json:"a,omitempty"` // default 0
	B    *float64 `yaml:"b,omitempty" json:"b,omitempty"` // default beam length
}

// PointLoadSpec is a point load with its load case
type PointLoadSpec struct {
	Position  float64 `yaml:"position" json:"position"`
	Magnitude float64 `yaml:"magnitude" json:"magnitude"` // kN, downward positive
	Case      string  `yaml:"case,omitempty" json:"case,omitempty"`
}

// DistributedLoadSpec is a uniform load with its load case
type DistributedLoadSpec struct {
	Start     float64 `yaml:"start" json:"start"`
	End       float64 `yaml:"end" json:"end"`
	Intensity float64 `yaml:"intensity" json:"intensity"` // kN/m, downward positive
	Case      string  `yaml:"case,omitempty" json:"case,omitempty"`
}

// MomentSpec is a concentrated moment with its load case
type MomentSpec struct {
	Position  float64 `yaml:"position" json:"position"`
	Magnitude float64 `yaml:"magnitude" json:"magnitude"` // kN·m, clockwise positive
	Case      string  `yaml:"case,omitempty" json:"case,omitempty"`
}

// ValidationError represents an invalid beam definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks the parts of the definition that do not need a beam:
// length, units, support type and load cases. Geometry is checked by Build.
func (f *File) Validate() error {
	if !(f.Length > 0) {
		return invalid("beam length must be positive, got %g", f.Length)
	}
	if _, err := beam.ParseUnits(f.Units); err != nil {
		return invalid("%v", err)
	}
	if _, err := f.Support.Resolve(f.Length); err != nil {
		return err
	}
	for i, p := range f.PointLoads {
		if _, err := nscp.ParseLoadType(p.Case); err != nil {
			return invalid("point load %d: %v", i+1, err)
		}
	}
	for i, d := range f.DistributedLoads {
		if _, err := nscp.ParseLoadType(d.Case); err != nil {
			return invalid("distributed load %d: %v", i+1, err)
		}
	}
	for i, m := range f.Moments {
		if _, err := nscp.ParseLoadType(m.Case); err != nil {
			return invalid("moment %d: %v", i+1, err)
		}
	}
	return nil
}

// Resolve converts s into a beam support configuration
func (s SupportSpec) Resolve(length float64) (beam.Support, error) {
	switch s.Type {
	case "", "two-support", "simple", "overhang":
		a, b := 0.0, length
		if s.A != nil {
			a = *s.A
		}
		if s.B != nil {
			b = *s.B
		}
		return beam.TwoSupport{A: a, B: b}, nil
	case "cantilever":
		switch s.End {
		case "", "left":
			return beam.Cantilever{End: beam.FixedLeft}, nil
		case "right":
			return beam.Cantilever{End: beam.FixedRight}, nil
		}
		return nil, invalid("cantilever end must be left or right, got %q", s.End)
	}
	return nil, invalid("unknown support type %q", s.Type)
}
