package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShowcaseScene builds a closed room with a patterned floor under a glass
// floor, a mirror sphere, a glass cube and two patterned spheres. The room's
// planes do not cast shadows so the single light can reach inside.
func NewShowcaseScene() (*Scene, error) {
	w := NewWorld()
	b := &shapeBuilder{world: w}

	floorPattern, err := material.NewStripePattern(
		core.NewColor(1, 0.25, 0.25),
		core.NewColor(0.25, 0.25, 1),
		core.RotationY(-math.Pi/8), core.RotationZ(-math.Pi/4), core.UniformScaling(0.125),
	)
	if err != nil {
		return nil, err
	}
	gradient, err := material.NewGradientPattern(
		core.NewColor(1, 0, 0),
		core.NewColor(0, 1, 0),
		core.UniformScaling(2), core.Translation(1, 0, 0), core.RotationZ(math.Pi/4),
	)
	if err != nil {
		return nil, err
	}
	stripes, err := material.NewStripePattern(
		core.NewColor(1, 1, 0),
		core.NewColor(0, 1, 0),
		core.RotationX(math.Pi/4), core.UniformScaling(0.25),
	)
	if err != nil {
		return nil, err
	}

	wall := material.Default().WithColor(core.NewColor(1, 0.9, 0.9)).WithSpecular(0)

	// Room
	b.plane(wall.WithPattern(floorPattern), core.Translation(0, -1, 0))
	b.plane(material.Material{
		Color:           core.NewColor(0, 0, 0.25),
		Ambient:         0,
		Diffuse:         0.1,
		Specular:        1,
		Shininess:       200,
		Reflective:      1,
		Transparency:    1,
		RefractiveIndex: 1.3,
	})
	b.plane(wall, core.Translation(0, 15, 0))
	b.plane(wall, core.RotationX(math.Pi/2), core.RotationY(-math.Pi/2), core.Translation(-15, 0, 0))
	b.plane(wall, core.RotationX(math.Pi/2), core.RotationY(math.Pi/2), core.Translation(15, 0, 0))
	b.plane(wall, core.RotationX(math.Pi/2), core.Translation(0, 0, 15))
	b.plane(wall, core.RotationX(math.Pi/2), core.Translation(0, 0, -15))

	// Mirror sphere
	b.sphere(material.Default().
		WithColor(core.NewColor(0.373, 0.404, 0.55)).
		WithAmbient(0).
		WithDiffuse(0.2).
		WithSpecular(1).
		WithShininess(200).
		WithReflective(0.7),
		core.Translation(-7.5, 2, 5))

	// Patterned glass sphere
	b.sphere(material.NewGlass(material.Glass).
		WithColor(core.NewColor(0.5, 1, 0.1)).
		WithDiffuse(0.01).
		WithSpecular(1).
		WithShininess(300).
		WithReflective(1).
		WithPattern(gradient),
		core.UniformScaling(0.5), core.Translation(1.1, 0.5, -0.5))

	// Striped sphere
	b.sphere(material.Default().
		WithColor(core.NewColor(1, 0.8, 0.1)).
		WithDiffuse(0.7).
		WithSpecular(0.3).
		WithPattern(stripes),
		core.UniformScaling(0.33), core.Translation(-1.5, 0.33, -1))

	// Glass cube
	b.cube(material.NewGlass(material.Glass).
		WithColor(core.Black).
		WithAmbient(0).
		WithDiffuse(0).
		WithSpecular(1).
		WithShininess(300).
		WithReflective(1),
		core.UniformScaling(0.666), core.RotationY(math.Pi/5), core.RotationX(math.Pi/4), core.Translation(-0.75, 1.25, 0.5))

	if b.err != nil {
		return nil, b.err
	}

	w.AddLight(lights.NewPointLight(core.NewPoint(-5, 7.5, -5), core.White))

	cameraConfig := geometry.CameraConfig{
		Width:       1280,
		Height:      720,
		FieldOfView: math.Pi / 3,
		Transform:   geometry.ViewTransform(core.NewPoint(2, 1.5, -5), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)),
		Antialias:   true,
	}
	return New("showcase", w, cameraConfig, DefaultMaxDepth)
}

// shapeBuilder adds shapes to a world and keeps the first construction error
type shapeBuilder struct {
	world *World
	err   error
}

func (b *shapeBuilder) add(shape geometry.Shape, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.world.Add(shape)
}

// plane adds a plane that does not cast shadows
func (b *shapeBuilder) plane(m material.Material, transforms ...core.Matrix) {
	p, err := geometry.NewPlane(geometry.WithMaterial(m), geometry.WithTransform(transforms...), geometry.WithoutShadow())
	b.add(p, err)
}

func (b *shapeBuilder) sphere(m material.Material, transforms ...core.Matrix) {
	s, err := geometry.NewSphere(geometry.WithMaterial(m), geometry.WithTransform(transforms...))
	b.add(s, err)
}

func (b *shapeBuilder) cube(m material.Material, transforms ...core.Matrix) {
	c, err := geometry.NewCube(geometry.WithMaterial(m), geometry.WithTransform(transforms...))
	b.add(c, err)
}
