package beam

import "fmt"

// Units are the labels used when printing results.
// They never change a computed value.
type Units struct {
	Force  string
	Moment string
	Length string
}

var (
	KiloNewton = Units{Force: "kN", Moment: "kN·m", Length: "m"}
	Newton     = Units{Force: "N", Moment: "N·m", Length: "m"}
)

// ParseUnits returns the preset named by its force label ("kN" or "N").
// An empty name selects kilonewtons.
func ParseUnits(name string) (Units, error) {
	switch name {
	case "", "kN", "kn":
		return KiloNewton, nil
	case "N", "n":
		return Newton, nil
	}
	return Units{}, fmt.Errorf("unknown force unit %q (use kN or N)", name)
}
