package core

import "math"

// Epsilon is the tolerance used for every approximate comparison and for
// nudging shading points off a surface.
const Epsilon = 1e-5

// FloatEqual reports whether a and b differ by less than Epsilon
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
