package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// ColorAt resolves the color seen along ray. remaining bounds the number
	// of secondary rays that may still be spawned along this path.
	ColorAt(ray core.Ray, remaining int) core.Color
}
