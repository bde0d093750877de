package beam

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a beam is created with a non-positive length
	ErrInvalidLength = errors.New("beam length must be positive")

	// ErrOutOfBounds is returned when a load or support lies outside [0, L]
	// or a distributed load ends before it starts
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidLoad is returned for NaN or infinite load magnitudes
	ErrInvalidLoad = errors.New("load magnitude must be finite")

	// ErrDegenerateSupports is returned when both supports share one position
	ErrDegenerateSupports = errors.New("supports cannot be at the same position")

	// ErrNotSolved is returned when internal forces are requested before a successful Solve
	ErrNotSolved = errors.New("beam has not been solved")
)

// BoundsError describes which value violated the beam geometry
type BoundsError struct {
	Field string  // e.g. "point load position"
	Value float64 // offending value
	Min   float64
	Max   float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s=%.4g outside [%.4g, %.4g]", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrOutOfBounds
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
