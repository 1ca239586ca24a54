package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Object is the view of a shape that surface shading needs: a way to map a
// world-space point into the shape's local space.
type Object interface {
	WorldToObject(p core.Point) core.Point
}

// Pattern is a procedural color function evaluated in pattern space
type Pattern interface {
	// PatternAt returns the color at a point already expressed in pattern space
	PatternAt(p core.Point) core.Color

	// Transform returns the pattern's own transform relative to object space
	Transform() core.Transform
}

// PatternAtObject evaluates pattern at a world-space point on obj: the point is
// mapped into object space, then into pattern space. A nil obj is treated as
// having the identity transform.
func PatternAtObject(pattern Pattern, obj Object, worldPoint core.Point) core.Color {
	objectPoint := worldPoint
	if obj != nil {
		objectPoint = obj.WorldToObject(worldPoint)
	}
	patternPoint := pattern.Transform().ToLocal(objectPoint)
	return pattern.PatternAt(patternPoint)
}
