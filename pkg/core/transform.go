package core

import "math"

// Translation moves points by (x, y, z) and leaves vectors unchanged
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// UniformScaling scales all three axes by s
func UniformScaling(s float64) Matrix {
	return Scaling(s, s, s)
}

// RotationX rotates counter-clockwise around the X axis (left-handed)
func RotationX(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m[1][1] = c
	m[1][2] = -s
	m[2][1] = s
	m[2][2] = c
	return m
}

// RotationY rotates around the Y axis
func RotationY(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m[0][0] = c
	m[0][2] = s
	m[2][0] = -s
	m[2][2] = c
	return m
}

// RotationZ rotates around the Z axis
func RotationZ(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m[0][0] = c
	m[0][1] = -s
	m[1][0] = s
	m[1][1] = c
	return m
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// Chain composes transforms so that the first argument is applied first.
// Chain(a, b, c) == c * b * a.
func Chain(transforms ...Matrix) Matrix {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// Transform is an invertible matrix with its inverse and inverse-transpose
// computed once, so hot paths never invert.
type Transform struct {
	Matrix           Matrix
	Inverse          Matrix
	InverseTranspose Matrix
}

// NewTransform validates m and caches its inverse
func NewTransform(m Matrix) (Transform, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Transform{Matrix: m, Inverse: inv, InverseTranspose: inv.Transpose()}, nil
}

// IdentityTransform returns the transform that changes nothing
func IdentityTransform() Transform {
	return Transform{Matrix: Identity(), Inverse: Identity(), InverseTranspose: Identity()}
}

// ToLocal maps a world-space point into the transform's local space
func (t Transform) ToLocal(p Point) Point {
	return t.Inverse.MultiplyPoint(p)
}

// RayToLocal maps a world-space ray into local space
func (t Transform) RayToLocal(r Ray) Ray {
	return r.Transform(t.Inverse)
}

// NormalToWorld maps a local-space normal to world space through the
// inverse-transpose and renormalizes it
func (t Transform) NormalToWorld(n Vector) Vector {
	return t.InverseTranspose.MultiplyVector(n).Normalize()
}
