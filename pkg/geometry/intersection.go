package geometry

import (
	"cmp"
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection records that a ray crossed Object's surface at parameter T
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates an intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections, usually sorted by T
type Intersections []Intersection

// NewIntersections collects xs and sorts them by ascending T
func NewIntersections(xs ...Intersection) Intersections {
	result := Intersections(xs)
	result.Sort()
	return result
}

// IntersectShape returns every intersection of ray with shape
func IntersectShape(shape Shape, ray core.Ray) Intersections {
	ts := shape.Intersect(ray)
	if len(ts) == 0 {
		return nil
	}
	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: shape}
	}
	return xs
}

// Sort orders the list by ascending T. Equal values keep their relative order.
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Hit returns the intersection with the smallest strictly positive T
func (xs Intersections) Hit() (Intersection, bool) {
	return xs.firstPositive(func(Intersection) bool { return true })
}

// ShadowHit is Hit restricted to shapes that cast shadows
func (xs Intersections) ShadowHit() (Intersection, bool) {
	return xs.firstPositive(func(x Intersection) bool { return x.Object.CastsShadow() })
}

func (xs Intersections) firstPositive(accept func(Intersection) bool) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T <= 0 || !accept(x) {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
