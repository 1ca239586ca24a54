package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an omnidirectional light with no size and no falloff
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Type returns the light type
func (pl PointLight) Type() LightType {
	return LightTypePoint
}

// Sample returns the direction and distance from point to the light
func (pl PointLight) Sample(point core.Point) LightSample {
	toLight := pl.Position.Subtract(point)
	return LightSample{
		Point:     pl.Position,
		Direction: toLight.Normalize(),
		Distance:  toLight.Magnitude(),
		Intensity: pl.Intensity,
	}
}
