package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// World is the set of shapes and lights a ray can interact with.
// It must not be modified while a render is running.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		Shapes: make([]geometry.Shape, 0),
		Lights: make([]lights.PointLight, 0),
	}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// AddLight appends lights to the world
func (w *World) AddLight(l ...lights.PointLight) {
	w.Lights = append(w.Lights, l...)
}

// Intersect returns every intersection of ray with every shape, sorted by
// ascending T
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.IntersectShape(shape, ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether a shadow-casting shape lies strictly between
// point and light
func (w *World) IsShadowed(light lights.PointLight, point core.Point) bool {
	sample := light.Sample(point)
	xs := w.Intersect(core.NewRay(point, sample.Direction))

	hit, ok := xs.ShadowHit()
	return ok && hit.T < sample.Distance
}
