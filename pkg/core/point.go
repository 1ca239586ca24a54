package core

// Point represents a position in space (homogeneous w = 1)
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin is the point (0, 0, 0)
var Origin = Point{}

// Subtract returns the vector pointing from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Add moves the point along v
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubtractVector moves the point against v
func (p Point) SubtractVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equal compares two points component-wise within Epsilon
func (p Point) Equal(other Point) bool {
	return FloatEqual(p.X, other.X) && FloatEqual(p.Y, other.Y) && FloatEqual(p.Z, other.Z)
}
