package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is a renderable primitive. The set of shapes is closed: Sphere, Plane
// and Cube are the only implementations.
type Shape interface {
	// Intersect returns the ray parameters of every crossing of the surface,
	// in ascending order, including negative ones
	Intersect(ray core.Ray) []float64

	// NormalAt returns the unit world-space surface normal at a world-space point
	NormalAt(worldPoint core.Point) core.Vector

	// WorldToObject maps a world-space point into the shape's local space
	WorldToObject(p core.Point) core.Point

	Material() material.Material
	Transform() core.Transform
	CastsShadow() bool

	shape()
}

// Option configures a shape at construction time
type Option func(*shapeConfig)

type shapeConfig struct {
	transforms  []core.Matrix
	material    material.Material
	castsShadow bool
}

// WithTransform appends transforms to the shape. Transforms are applied in the
// order given, across repeated options too.
func WithTransform(transforms ...core.Matrix) Option {
	return func(c *shapeConfig) {
		c.transforms = append(c.transforms, transforms...)
	}
}

// WithMaterial sets the shape's material
func WithMaterial(m material.Material) Option {
	return func(c *shapeConfig) {
		c.material = m
	}
}

// WithoutShadow keeps the shape out of shadow tests. Used for enclosing
// walls and floors that would otherwise block every light.
func WithoutShadow() Option {
	return func(c *shapeConfig) {
		c.castsShadow = false
	}
}

// object holds the state every shape shares
type object struct {
	transform   core.Transform
	material    material.Material
	castsShadow bool
}

func newObject(kind string, opts []Option) (object, error) {
	config := shapeConfig{material: material.Default(), castsShadow: true}
	for _, opt := range opts {
		opt(&config)
	}

	transform, err := core.NewTransform(core.Chain(config.transforms...))
	if err != nil {
		return object{}, fmt.Errorf("%s: invalid transform: %w", kind, err)
	}

	return object{
		transform:   transform,
		material:    config.material,
		castsShadow: config.castsShadow,
	}, nil
}

// Material returns the shape's material
func (o *object) Material() material.Material {
	return o.material
}

// Transform returns the shape's object-to-world transform
func (o *object) Transform() core.Transform {
	return o.transform
}

// CastsShadow reports whether the shape occludes light
func (o *object) CastsShadow() bool {
	return o.castsShadow
}

// WorldToObject implements material.Object
func (o *object) WorldToObject(p core.Point) core.Point {
	return o.transform.ToLocal(p)
}

func (o *object) localRay(ray core.Ray) core.Ray {
	return o.transform.RayToLocal(ray)
}

func (o *object) worldNormal(localNormal core.Vector) core.Vector {
	return o.transform.NormalToWorld(localNormal)
}

func (o *object) shape() {}
