package loaders

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func (v Vec3) point() core.Point   { return core.NewPoint(v[0], v[1], v[2]) }
func (v Vec3) vector() core.Vector { return core.NewVector(v[0], v[1], v[2]) }
func (v Vec3) color() core.Color   { return core.NewColor(v[0], v[1], v[2]) }

// Matrix converts one transform step into a matrix
func (t TransformSpec) Matrix() (core.Matrix, error) {
	want := map[string]int{
		"translate": 3,
		"scale":     3,
		"rotate-x":  1,
		"rotate-y":  1,
		"rotate-z":  1,
		"shear":     6,
	}

	n, ok := want[t.Op]
	if !ok {
		return core.Matrix{}, fmt.Errorf("unknown transform %q", t.Op)
	}
	// A single argument scales uniformly
	if t.Op == "scale" && len(t.Args) == 1 {
		return core.UniformScaling(t.Args[0]), nil
	}
	if len(t.Args) != n {
		return core.Matrix{}, fmt.Errorf("transform %q takes %d arguments, got %d", t.Op, n, len(t.Args))
	}

	a := t.Args
	switch t.Op {
	case "translate":
		return core.Translation(a[0], a[1], a[2]), nil
	case "scale":
		return core.Scaling(a[0], a[1], a[2]), nil
	case "rotate-x":
		return core.RotationX(degToRad(a[0])), nil
	case "rotate-y":
		return core.RotationY(degToRad(a[0])), nil
	case "rotate-z":
		return core.RotationZ(degToRad(a[0])), nil
	}
	return core.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
}

// BuildTransforms converts a transform list into matrices, in application order
func BuildTransforms(specs []TransformSpec) ([]core.Matrix, error) {
	matrices := make([]core.Matrix, 0, len(specs))
	for _, spec := range specs {
		m, err := spec.Matrix()
		if err != nil {
			return nil, err
		}
		matrices = append(matrices, m)
	}
	return matrices, nil
}

// Build creates the pattern
func (p PatternSpec) Build() (material.Pattern, error) {
	transforms, err := BuildTransforms(p.Transforms)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}

	switch p.Type {
	case "stripe":
		return material.NewStripePattern(p.A.color(), p.B.color(), transforms...)
	case "gradient":
		return material.NewGradientPattern(p.A.color(), p.B.color(), transforms...)
	}
	return nil, fmt.Errorf("unknown pattern type %q", p.Type)
}

// Build applies the overrides to the default material
func (m MaterialSpec) Build() (material.Material, error) {
	mat := material.Default()
	if m.Color != nil {
		mat.Color = m.Color.color()
	}
	for _, f := range []struct {
		value *float64
		dst   *float64
	}{
		{m.Ambient, &mat.Ambient},
		{m.Diffuse, &mat.Diffuse},
		{m.Specular, &mat.Specular},
		{m.Shininess, &mat.Shininess},
		{m.Reflective, &mat.Reflective},
		{m.Transparency, &mat.Transparency},
		{m.RefractiveIndex, &mat.RefractiveIndex},
	} {
		if f.value != nil {
			*f.dst = *f.value
		}
	}
	if err := mat.Validate(); err != nil {
		return material.Material{}, err
	}

	if m.Pattern != nil {
		pattern, err := m.Pattern.Build()
		if err != nil {
			return material.Material{}, err
		}
		mat.Pattern = pattern
	}
	return mat, nil
}

// Build creates the shape
func (o ObjectSpec) Build() (geometry.Shape, error) {
	mat, err := o.Material.Build()
	if err != nil {
		return nil, err
	}
	transforms, err := BuildTransforms(o.Transforms)
	if err != nil {
		return nil, err
	}

	opts := []geometry.Option{geometry.WithTransform(transforms...), geometry.WithMaterial(mat)}
	if o.CastsShadow != nil && !*o.CastsShadow {
		opts = append(opts, geometry.WithoutShadow())
	}

	switch o.Type {
	case "sphere":
		return geometry.NewSphere(opts...)
	case "plane":
		return geometry.NewPlane(opts...)
	case "cube":
		return geometry.NewCube(opts...)
	}
	return nil, fmt.Errorf("unknown object type %q", o.Type)
}

// Config converts the camera description into a camera configuration
func (c CameraSpec) Config() geometry.CameraConfig {
	return geometry.CameraConfig{
		Width:       c.Width,
		Height:      c.Height,
		FieldOfView: degToRad(c.FOV),
		Transform:   geometry.ViewTransform(orDefault(c.From, Vec3{0, 0, -5}).point(), orDefault(c.To, Vec3{}).point(), orDefault(c.Up, Vec3{0, 1, 0}).vector()),
		Antialias:   c.Antialias,
	}
}

// BuildShapes creates every object. Errors name the object index and type.
func (f *SceneFile) BuildShapes() ([]geometry.Shape, error) {
	shapes := make([]geometry.Shape, 0, len(f.Objects))
	for i, obj := range f.Objects {
		shape, err := obj.Build()
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, obj.Type, err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// BuildLights creates every light
func (f *SceneFile) BuildLights() []lights.PointLight {
	result := make([]lights.PointLight, 0, len(f.Lights))
	for _, l := range f.Lights {
		result = append(result, lights.NewPointLight(l.Position.point(), l.Intensity.color()))
	}
	return result
}

func orDefault(v *Vec3, fallback Vec3) Vec3 {
	if v == nil {
		return fallback
	}
	return *v
}

func degToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}
