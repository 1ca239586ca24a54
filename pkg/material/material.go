package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Common refractive indices
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.5
	Diamond = 2.417
)

// Material holds the Phong surface parameters plus the coefficients that
// drive secondary rays
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	Pattern   Pattern // Optional; overrides Color when set

	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transparent
	RefractiveIndex float64 // 1.0 = vacuum
}

// Default returns the default material: white, ambient 0.1, diffuse 0.9,
// specular 0.9, shininess 200, opaque and non-reflective.
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: Vacuum,
	}
}

// ErrInvalidMaterial is returned (wrapped) by Validate
var ErrInvalidMaterial = errors.New("invalid material")

// Validate checks the coefficients that feed secondary rays: reflective and
// transparency in [0, 1] and a positive refractive index
func (m Material) Validate() error {
	if !(m.Reflective >= 0 && m.Reflective <= 1) {
		return fmt.Errorf("%w: reflective must be in [0, 1], got %g", ErrInvalidMaterial, m.Reflective)
	}
	if !(m.Transparency >= 0 && m.Transparency <= 1) {
		return fmt.Errorf("%w: transparency must be in [0, 1], got %g", ErrInvalidMaterial, m.Transparency)
	}
	if !(m.RefractiveIndex > 0) {
		return fmt.Errorf("%w: refractive index must be positive, got %g", ErrInvalidMaterial, m.RefractiveIndex)
	}
	return nil
}

// NewGlass returns a fully transparent material with the given refractive index
func NewGlass(refractiveIndex float64) Material {
	return Default().WithTransparency(1).WithRefractiveIndex(refractiveIndex)
}

// The With methods return a modified copy; the receiver is never changed.

func (m Material) WithColor(c core.Color) Material {
	m.Color = c
	return m
}

func (m Material) WithAmbient(v float64) Material {
	m.Ambient = v
	return m
}

func (m Material) WithDiffuse(v float64) Material {
	m.Diffuse = v
	return m
}

func (m Material) WithSpecular(v float64) Material {
	m.Specular = v
	return m
}

func (m Material) WithShininess(v float64) Material {
	m.Shininess = v
	return m
}

func (m Material) WithPattern(p Pattern) Material {
	m.Pattern = p
	return m
}

func (m Material) WithReflective(v float64) Material {
	m.Reflective = v
	return m
}

func (m Material) WithTransparency(v float64) Material {
	m.Transparency = v
	return m
}

func (m Material) WithRefractiveIndex(v float64) Material {
	m.RefractiveIndex = v
	return m
}

// ColorAt returns the base surface color at a world-space point on obj
func (m Material) ColorAt(obj Object, worldPoint core.Point) core.Color {
	if m.Pattern != nil {
		return PatternAtObject(m.Pattern, obj, worldPoint)
	}
	return m.Color
}
