package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis in object space
type Cube struct {
	object
}

// NewCube creates an axis-aligned cube
func NewCube(opts ...Option) (*Cube, error) {
	obj, err := newObject("cube", opts)
	if err != nil {
		return nil, err
	}
	return &Cube{object: obj}, nil
}

// Intersect implements the Shape interface
func (c *Cube) Intersect(ray core.Ray) []float64 {
	return c.LocalIntersect(c.localRay(ray))
}

// LocalIntersect runs the slab test against a ray already in object space
func (c *Cube) LocalIntersect(ray core.Ray) []float64 {
	xtMin, xtMax := CheckAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := CheckAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := CheckAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax || math.IsInf(tMin, 0) || math.IsInf(tMax, 0) {
		return nil
	}
	return []float64{tMin, tMax}
}

// CheckAxis returns where a ray enters and leaves the slab [-1, 1] along one
// axis. A direction within Epsilon of zero is parallel to the slab: the bounds
// become signed infinities chosen by which side of each face the origin lies
// on, so no NaN can reach the min/max reductions.
func CheckAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	if math.Abs(direction) < core.Epsilon {
		tMin, tMax := math.Inf(1), math.Inf(-1)
		if tMinNumerator <= 0 {
			tMin = math.Inf(-1)
		}
		if tMaxNumerator >= 0 {
			tMax = math.Inf(1)
		}
		return tMin, tMax
	}

	tMin := tMinNumerator / direction
	tMax := tMaxNumerator / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// NormalAt implements the Shape interface
func (c *Cube) NormalAt(worldPoint core.Point) core.Vector {
	return c.worldNormal(c.LocalNormalAt(c.WorldToObject(worldPoint)))
}

// LocalNormalAt picks the face whose axis has the largest absolute coordinate
func (c *Cube) LocalNormalAt(p core.Point) core.Vector {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxC := math.Max(ax, math.Max(ay, az))

	switch maxC {
	case ax:
		return core.NewVector(p.X, 0, 0)
	case ay:
		return core.NewVector(0, p.Y, 0)
	}
	return core.NewVector(0, 0, p.Z)
}
