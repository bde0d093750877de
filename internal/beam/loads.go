package beam

// Sign convention for every load: a positive magnitude acts downward.

// PointLoad is a concentrated force
type PointLoad struct {
	Position  float64 // distance from the left end
	Magnitude float64 // force, positive downward
}

// DistributedLoad is a uniform load over [Start, End]
type DistributedLoad struct {
	Start     float64
	End       float64
	Intensity float64 // force per unit length, positive downward
}

// Length returns the loaded length
func (d DistributedLoad) Length() float64 {
	return d.End - d.Start
}

// Resultant returns the total force of the load
func (d DistributedLoad) Resultant() float64 {
	return d.Intensity * d.Length()
}

// Centroid returns the point of application of the resultant
func (d DistributedLoad) Centroid() float64 {
	return d.Start + d.Length()/2
}

// active returns the force and centroid of the part of the load left of x
func (d DistributedLoad) active(x float64) (force, centroid float64) {
	length := min(x, d.End) - d.Start
	return d.Intensity * length, d.Start + length/2
}

// ConcentratedMoment is a couple applied at a point
type ConcentratedMoment struct {
	Position  float64
	Magnitude float64 // clockwise positive
}
