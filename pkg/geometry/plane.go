package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane (y = 0) in object space
type Plane struct {
	object
}

// NewPlane creates an xz plane
func NewPlane(opts ...Option) (*Plane, error) {
	obj, err := newObject("plane", opts)
	if err != nil {
		return nil, err
	}
	return &Plane{object: obj}, nil
}

// Intersect implements the Shape interface
func (p *Plane) Intersect(ray core.Ray) []float64 {
	return p.LocalIntersect(p.localRay(ray))
}

// LocalIntersect intersects a ray already in object space. Rays parallel to
// or lying in the plane miss it.
func (p *Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// NormalAt implements the Shape interface
func (p *Plane) NormalAt(worldPoint core.Point) core.Vector {
	return p.worldNormal(p.LocalNormalAt(p.WorldToObject(worldPoint)))
}

// LocalNormalAt is constant everywhere on the plane
func (p *Plane) LocalNormalAt(core.Point) core.Vector {
	return core.NewVector(0, 1, 0)
}
