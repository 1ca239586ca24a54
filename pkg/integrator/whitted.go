package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive Whitted-style ray tracing: Phong
// direct lighting with hard shadows, plus mirror reflection and refraction
type WhittedIntegrator struct {
	world *scene.World
}

// NewWhittedIntegrator creates a Whitted integrator over world
func NewWhittedIntegrator(world *scene.World) *WhittedIntegrator {
	return &WhittedIntegrator{world: world}
}

// ColorAt implements the Integrator interface. A ray that hits nothing is black.
func (wi *WhittedIntegrator) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := wi.world.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	return wi.ShadeHit(hit.PrepareComputationsWith(ray, xs), remaining)
}

// ShadeHit combines direct lighting from every light with the reflected and
// refracted contributions at a hit
func (wi *WhittedIntegrator) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	mat := comps.Object.Material()

	surface := core.Black
	for _, light := range wi.world.Lights {
		shadowed := wi.world.IsShadowed(light, comps.OverPoint)
		surface = surface.Add(mat.Lighting(comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := wi.ReflectedColor(comps, remaining)
	refracted := wi.RefractedColor(comps, remaining)

	// Fresnel: split energy between reflection and transmission
	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror reflection from the over point
func (wi *WhittedIntegrator) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return wi.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the transmitted ray from the under point. Total
// internal reflection transmits nothing.
func (wi *WhittedIntegrator) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	direction, ok := material.Refract(comps.EyeV, comps.NormalV, comps.N1, comps.N2)
	if !ok {
		return core.Black
	}

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return wi.ColorAt(refractRay, remaining-1).Multiply(transparency)
}

// Schlick returns the fraction of light reflected at the hit surface
func Schlick(comps geometry.Computations) float64 {
	return material.Reflectance(comps.EyeV.Dot(comps.NormalV), comps.N1, comps.N2)
}
