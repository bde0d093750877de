package beam

import "fmt"

// Support is the support configuration of a beam.
// It is implemented only by Cantilever and TwoSupport.
type Support interface {
	isSupport()
	String() string
}

// End identifies which end of a cantilever is fixed
type End int

const (
	FixedLeft End = iota
	FixedRight
)

func (e End) String() string {
	if e == FixedRight {
		return "right"
	}
	return "left"
}

// Cantilever is a beam rigidly fixed at one end and free at the other
type Cantilever struct {
	End End
}

func (Cantilever) isSupport() {}

func (c Cantilever) String() string {
	return fmt.Sprintf("cantilever fixed %s", c.End)
}

// position returns the coordinate of the fixed end
func (c Cantilever) position(length float64) float64 {
	if c.End == FixedRight {
		return length
	}
	return 0
}

// TwoSupport is a beam on two simple supports at A and B.
// Either support may sit away from the beam ends, giving an overhang.
type TwoSupport struct {
	A float64
	B float64
}

func (TwoSupport) isSupport() {}

func (s TwoSupport) String() string {
	return fmt.Sprintf("two supports at x=%g and x=%g", s.A, s.B)
}

// SimplySupported returns supports at both ends of a beam of the given length
func SimplySupported(length float64) TwoSupport {
	return TwoSupport{A: 0, B: length}
}
