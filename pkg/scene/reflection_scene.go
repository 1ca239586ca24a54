package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewReflectionScene places three spheres and a cube on a mirror floor
func NewReflectionScene() (*Scene, error) {
	w := NewWorld()
	b := &shapeBuilder{world: w}

	floor, err := geometry.NewPlane(geometry.WithMaterial(material.Default().
		WithColor(core.NewColor(0.2, 0.2, 0.25)).
		WithSpecular(0).
		WithReflective(0.6)))
	b.add(floor, err)

	b.sphere(material.Default().
		WithColor(core.NewColor(0.9, 0.2, 0.2)).
		WithDiffuse(0.7).
		WithSpecular(0.3),
		core.Translation(-1.5, 1, 0.5))
	b.sphere(material.Default().
		WithColor(core.NewColor(0.2, 0.9, 0.3)).
		WithReflective(0.3),
		core.UniformScaling(0.6), core.Translation(0.2, 0.6, -0.8))
	b.sphere(material.NewGlass(material.Glass).
		WithColor(core.Black).
		WithDiffuse(0.1).
		WithReflective(0.9).
		WithShininess(300),
		core.UniformScaling(0.5), core.Translation(1.5, 0.5, -1.5))
	b.cube(material.Default().
		WithColor(core.NewColor(0.3, 0.4, 0.9)).
		WithReflective(0.1),
		core.UniformScaling(0.75), core.RotationY(math.Pi/6), core.Translation(1.75, 0.75, 2))

	if b.err != nil {
		return nil, b.err
	}

	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	cameraConfig := geometry.CameraConfig{
		Width:       640,
		Height:      360,
		FieldOfView: math.Pi / 3,
		Transform:   geometry.ViewTransform(core.NewPoint(0, 2, -6), core.NewPoint(0, 0.75, 0), core.NewVector(0, 1, 0)),
		Antialias:   true,
	}
	return New("reflection", w, cameraConfig, DefaultMaxDepth)
}
