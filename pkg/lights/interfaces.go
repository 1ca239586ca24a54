package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// LightSample describes the path from a shading point to a light
type LightSample struct {
	Point     core.Point  // Position of the light
	Direction core.Vector // Unit vector FROM the shading point TO the light
	Distance  float64     // Distance from the shading point to the light
	Intensity core.Color  // Light intensity (no distance falloff)
}
