package geometry

import (
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Computations is the shading state derived from one intersection
type Computations struct {
	T      float64
	Object Shape

	Point      core.Point
	OverPoint  core.Point // Point nudged along the normal, for shadow and reflection rays
	UnderPoint core.Point // Point nudged against the normal, for refraction rays

	EyeV     core.Vector
	NormalV  core.Vector // Flipped to face the eye when Inside is set
	ReflectV core.Vector

	Inside bool

	// Refractive indices of the media the ray leaves and enters
	N1, N2 float64
}

// PrepareComputations derives the shading state for a hit without any
// knowledge of the surrounding media. N1 and N2 are both vacuum.
func (i Intersection) PrepareComputations(ray core.Ray) Computations {
	point := ray.Position(i.T)
	eyeV := ray.Direction.Negate()
	normalV := i.Object.NormalAt(point)

	inside := false
	if normalV.Dot(eyeV) < 0 {
		inside = true
		normalV = normalV.Negate()
	}

	offset := normalV.Multiply(core.Epsilon)
	return Computations{
		T:          i.T,
		Object:     i.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.SubtractVector(offset),
		EyeV:       eyeV,
		NormalV:    normalV,
		ReflectV:   ray.Direction.Reflect(normalV),
		Inside:     inside,
		N1:         material.Vacuum,
		N2:         material.Vacuum,
	}
}

// PrepareComputationsWith also resolves N1 and N2 by walking xs, which must be
// sorted and contain i, while tracking which objects the ray is inside.
func (i Intersection) PrepareComputationsWith(ray core.Ray, xs Intersections) Computations {
	comps := i.PrepareComputations(ray)
	comps.N1, comps.N2 = refractiveIndices(i, xs)
	return comps
}

func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = material.Vacuum, material.Vacuum
	var containers []Shape

	current := func() float64 {
		if len(containers) == 0 {
			return material.Vacuum
		}
		return containers[len(containers)-1].Material().RefractiveIndex
	}

	for _, x := range xs {
		isHit := x == hit
		if isHit {
			n1 = current()
		}

		if idx := slices.Index(containers, x.Object); idx >= 0 {
			containers = slices.Delete(containers, idx, idx+1)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = current()
			break
		}
	}
	return n1, n2
}
