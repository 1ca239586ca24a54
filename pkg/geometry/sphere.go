package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centred on its local origin. Position and size
// come from its transform.
type Sphere struct {
	object
}

// NewSphere creates a unit sphere
func NewSphere(opts ...Option) (*Sphere, error) {
	obj, err := newObject("sphere", opts)
	if err != nil {
		return nil, err
	}
	return &Sphere{object: obj}, nil
}

// NewGlassSphere creates a unit sphere with a glass material
func NewGlassSphere(opts ...Option) (*Sphere, error) {
	return NewSphere(append([]Option{WithMaterial(material.NewGlass(material.Glass))}, opts...)...)
}

// Intersect implements the Shape interface
func (s *Sphere) Intersect(ray core.Ray) []float64 {
	return s.LocalIntersect(s.localRay(ray))
}

// LocalIntersect intersects a ray already in object space
func (s *Sphere) LocalIntersect(ray core.Ray) []float64 {
	// Quadratic equation coefficients: at² + bt + c = 0
	sphereToRay := ray.Origin.Subtract(core.Origin)
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return nil
	}
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
}

// NormalAt implements the Shape interface
func (s *Sphere) NormalAt(worldPoint core.Point) core.Vector {
	return s.worldNormal(s.LocalNormalAt(s.WorldToObject(worldPoint)))
}

// LocalNormalAt returns the object-space normal at an object-space point
func (s *Sphere) LocalNormalAt(p core.Point) core.Vector {
	return p.Subtract(core.Origin)
}
