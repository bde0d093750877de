package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexiusacademia/beamcalc/internal/loadcase"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
)

// beamFlags are the beam definition flags shared by solve, envelope and report
type beamFlags struct {
	file      string
	loadsXLSX string

	length  float64 // m
	support string
	end     string
	a, b    float64 // support positions (m)
	units   string

	points  []string
	udls    []string
	moments []string
}

func (f *beamFlags) register(fs *pflag.FlagSet) {
	// Input files
	fs.StringVarP(&f.file, "file", "f", "", "Beam definition file (YAML or JSON)")
	fs.StringVar(&f.loadsXLSX, "loads", "", "XLSX load sheet (rows: kind, a, b, value, case)")

	// Geometry flags
	fs.Float64VarP(&f.length, "length", "L", 0, "Beam length (m) [required without --file]")
	fs.StringVarP(&f.support, "support", "s", "", "Support type: two-support, simple, overhang or cantilever")
	fs.StringVar(&f.end, "end", "", "Fixed end of a cantilever: left or right")
	fs.Float64Var(&f.a, "a", 0, "Position of support A (m)")
	fs.Float64Var(&f.b, "b", 0, "Position of support B (m), default beam length")
	fs.StringVarP(&f.units, "units", "u", "", "Force unit label: kN or N")

	// Load flags
	fs.StringArrayVarP(&f.points, "point", "p", nil, "Point load \"x:P[:case]\" (kN, downward positive)")
	fs.StringArrayVarP(&f.udls, "udl", "w", nil, "Uniform load \"start:end:w[:case]\" (kN/m, downward positive)")
	fs.StringArrayVarP(&f.moments, "moment", "m", nil, "Concentrated moment \"x:M[:case]\" (kN·m, clockwise positive)")
}

// definition assembles the beam definition: the --file first, geometry
// flags on top of it, then flag loads and sheet loads appended in order.
func (f *beamFlags) definition(fs *pflag.FlagSet) (*loadcase.File, error) {
	def := &loadcase.File{}
	if f.file != "" {
		var err error
		if def, err = loadcase.LoadFromFile(f.file); err != nil {
			return nil, err
		}
	}

	if f.file == "" || fs.Changed("length") {
		def.Length = f.length
	}
	if fs.Changed("support") {
		def.Support.Type = f.support
	}
	if fs.Changed("end") {
		def.Support.End = f.end
	}
	if fs.Changed("a") {
		def.Support.A = &f.a
	}
	if fs.Changed("b") {
		def.Support.B = &f.b
	}
	if fs.Changed("units") {
		def.Units = f.units
	}

	for _, s := range f.points {
		v, c, err := parseLoad(s, 2)
		if err != nil {
			return nil, fmt.Errorf("--point %q: %w", s, err)
		}
		def.PointLoads = append(def.PointLoads, loadcase.PointLoadSpec{Position: v[0], Magnitude: v[1], Case: c})
	}
	for _, s := range f.udls {
		v, c, err := parseLoad(s, 3)
		if err != nil {
			return nil, fmt.Errorf("--udl %q: %w", s, err)
		}
		def.DistributedLoads = append(def.DistributedLoads, loadcase.DistributedLoadSpec{Start: v[0], End: v[1], Intensity: v[2], Case: c})
	}
	for _, s := range f.moments {
		v, c, err := parseLoad(s, 2)
		if err != nil {
			return nil, fmt.Errorf("--moment %q: %w", s, err)
		}
		def.Moments = append(def.Moments, loadcase.MomentSpec{Position: v[0], Magnitude: v[1], Case: c})
	}

	if f.loadsXLSX != "" {
		r, err := os.Open(f.loadsXLSX)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		loads, err := loadcase.ReadLoadsXLSX(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.loadsXLSX, err)
		}
		def.Append(loads)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// parseLoad splits "v1:v2[:v3][:case]" into n numbers and an optional case
func parseLoad(s string, n int) ([]float64, string, error) {
	parts := strings.Split(s, ":")
	if len(parts) != n && len(parts) != n+1 {
		return nil, "", fmt.Errorf("expected %d numbers separated by ':' and an optional load case", n)
	}
	values := make([]float64, n)
	for i := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return nil, "", fmt.Errorf("bad number %q", parts[i])
		}
		values[i] = v
	}
	var c string
	if len(parts) == n+1 {
		c = strings.TrimSpace(parts[n])
	}
	return values, c, nil
}

// combinations returns the NSCP combination set
func combinations(simplified bool) []nscp.LoadCombination {
	if simplified {
		return nscp.SimplifiedCombinations
	}
	return nscp.LoadCombinations
}

// findCombination resolves a --combo flag; an empty id means service loads
func findCombination(id string, simplified bool) (*nscp.LoadCombination, error) {
	if id == "" {
		return nil, nil
	}
	c, err := nscp.Find(combinations(simplified), id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
