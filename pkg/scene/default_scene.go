package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultWorld creates the reference world: a light at (-10, 10, -10) and
// two concentric spheres, the inner one half the size of the outer
func NewDefaultWorld() (*World, error) {
	outer, err := geometry.NewSphere(geometry.WithMaterial(
		material.Default().
			WithColor(core.NewColor(0.8, 1.0, 0.6)).
			WithDiffuse(0.7).
			WithSpecular(0.2),
	))
	if err != nil {
		return nil, err
	}

	inner, err := geometry.NewSphere(geometry.WithTransform(core.UniformScaling(0.5)))
	if err != nil {
		return nil, err
	}

	w := NewWorld()
	w.Add(outer, inner)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))
	return w, nil
}

// NewDefaultScene views the default world from (0, 0, -5)
func NewDefaultScene() (*Scene, error) {
	world, err := NewDefaultWorld()
	if err != nil {
		return nil, err
	}

	cameraConfig := geometry.CameraConfig{
		Width:       400,
		Height:      400,
		FieldOfView: math.Pi / 3,
		Transform:   geometry.ViewTransform(core.NewPoint(0, 0, -5), core.Origin, core.NewVector(0, 1, 0)),
	}
	return New("default", world, cameraConfig, DefaultMaxDepth)
}
