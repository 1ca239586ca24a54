package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// pointPattern colors each point with its own pattern-space coordinates
type pointPattern struct{}

func (pointPattern) PatternAt(p core.Point) core.Color { return core.NewColor(p.X, p.Y, p.Z) }
func (pointPattern) Transform() core.Transform        { return core.IdentityTransform() }

func outerMaterial() material.Material {
	return material.Default().
		WithColor(core.NewColor(0.8, 1.0, 0.6)).
		WithDiffuse(0.7).
		WithSpecular(0.2)
}

// newTestWorld builds the default world with the given sphere materials
func newTestWorld(t *testing.T, outer, inner material.Material) (*scene.World, geometry.Shape, geometry.Shape) {
	t.Helper()
	a, err := geometry.NewSphere(geometry.WithMaterial(outer))
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	b, err := geometry.NewSphere(geometry.WithMaterial(inner), geometry.WithTransform(core.UniformScaling(0.5)))
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}

	w := scene.NewWorld()
	w.Add(a, b)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))
	return w, a, b
}

// must unwraps a constructor result in fixtures whose inputs are known to be valid
func must[S any](s S, err error) S {
	if err != nil {
		panic(err)
	}
	return s
}

func assertColor(t *testing.T, got, expected core.Color, tolerance float64) {
	t.Helper()
	if math.Abs(got.R-expected.R) > tolerance ||
		math.Abs(got.G-expected.G) > tolerance ||
		math.Abs(got.B-expected.B) > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestShadeHit(t *testing.T) {
	w, outer, _ := newTestWorld(t, outerMaterial(), material.Default())
	wi := NewWhittedIntegrator(w)

	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := geometry.NewIntersections(geometry.NewIntersection(4, outer))
	comps := xs[0].PrepareComputationsWith(ray, xs)

	assertColor(t, wi.ShadeHit(comps, 5), core.NewColor(0.38066, 0.47583, 0.2855), 1e-5)
}

func TestShadeHitFromInside(t *testing.T) {
	w, _, inner := newTestWorld(t, outerMaterial(), material.Default())
	w.Lights = []lights.PointLight{lights.NewPointLight(core.NewPoint(0, 0.25, 0), core.White)}
	wi := NewWhittedIntegrator(w)

	ray := core.NewRay(core.Origin, core.NewVector(0, 0, 1))
	xs := geometry.NewIntersections(geometry.NewIntersection(0.5, inner))
	comps := xs[0].PrepareComputationsWith(ray, xs)

	assertColor(t, wi.ShadeHit(comps, 5), core.NewColor(0.90498, 0.90498, 0.90498), 1e-5)
}

func TestShadeHitInShadow(t *testing.T) {
	w := scene.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(0, 0, -10), core.White))
	s1 := must(geometry.NewSphere())
	s2 := must(geometry.NewSphere(geometry.WithTransform(core.Translation(0, 0, 10))))
	w.Add(s1, s2)
	wi := NewWhittedIntegrator(w)

	ray := core.NewRay(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1))
	xs := geometry.NewIntersections(geometry.NewIntersection(4, s2))
	comps := xs[0].PrepareComputationsWith(ray, xs)

	assertColor(t, wi.ShadeHit(comps, 5), core.NewColor(0.1, 0.1, 0.1), 1e-5)
}

func TestShadeHitSumsLights(t *testing.T) {
	w, outer, _ := newTestWorld(t, outerMaterial(), material.Default())
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))
	wi := NewWhittedIntegrator(w)

	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := geometry.NewIntersections(geometry.NewIntersection(4, outer))
	comps := xs[0].PrepareComputationsWith(ray, xs)

	single := core.NewColor(0.38066, 0.47583, 0.2855)
	assertColor(t, wi.ShadeHit(comps, 5), single.Add(single), 1e-4)
}

func TestColorAt(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vector
		expected  core.Color
	}{
		{"ray misses", core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0), core.Black},
		{"ray hits", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), core.NewColor(0.38066, 0.47583, 0.2855)},
	}

	w, _, _ := newTestWorld(t, outerMaterial(), material.Default())
	wi := NewWhittedIntegrator(w)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wi.ColorAt(core.NewRay(tt.origin, tt.direction), 5)
			assertColor(t, got, tt.expected, 1e-5)
		})
	}
}

func TestColorAtIntersectionBehindRay(t *testing.T) {
	innerColor := core.NewColor(0.3, 0.6, 0.9)
	w, _, _ := newTestWorld(t,
		outerMaterial().WithAmbient(1),
		material.Default().WithAmbient(1).WithColor(innerColor))
	wi := NewWhittedIntegrator(w)

	got := wi.ColorAt(core.NewRay(core.NewPoint(0, 0, 0.75), core.NewVector(0, 0, -1)), 5)
	assertColor(t, got, innerColor, 1e-5)
}

func TestReflectedColorNonReflective(t *testing.T) {
	w, _, inner := newTestWorld(t, outerMaterial(), material.Default().WithAmbient(1))
	wi := NewWhittedIntegrator(w)

	ray := core.NewRay(core.Origin, core.NewVector(0, 0, 1))
	comps := geometry.NewIntersection(1, inner).PrepareComputations(ray)

	if got := wi.ReflectedColor(comps, 5); got != core.Black {
		t.Errorf("Expected black, got %v", got)
	}
}

func reflectiveFloorWorld(t *testing.T) (*scene.World, geometry.Shape) {
	t.Helper()
	w, _, _ := newTestWorld(t, outerMaterial(), material.Default())
	floor := must(geometry.NewPlane(
		geometry.WithMaterial(material.Default().WithReflective(0.5)),
		geometry.WithTransform(core.Translation(0, -1, 0)),
	))
	w.Add(floor)
	return w, floor
}

func TestReflectedColor(t *testing.T) {
	w, floor := reflectiveFloorWorld(t)
	wi := NewWhittedIntegrator(w)

	r2 := math.Sqrt(2) / 2
	ray := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -r2, r2))
	comps := geometry.NewIntersection(math.Sqrt(2), floor).PrepareComputations(ray)

	assertColor(t, wi.ReflectedColor(comps, 5), core.NewColor(0.19032, 0.2379, 0.14274), 1e-4)
	assertColor(t, wi.ShadeHit(comps, 5), core.NewColor(0.87677, 0.92436, 0.82918), 1e-4)

	if got := wi.ReflectedColor(comps, 0); got != core.Black {
		t.Errorf("Expected black at depth 0, got %v", got)
	}
}

func TestColorAtMutuallyReflectiveSurfaces(t *testing.T) {
	w := scene.NewWorld()
	w.AddLight(lights.NewPointLight(core.Origin, core.White))
	mirror := material.Default().WithReflective(1)
	lower := must(geometry.NewPlane(geometry.WithMaterial(mirror), geometry.WithTransform(core.Translation(0, -1, 0))))
	upper := must(geometry.NewPlane(geometry.WithMaterial(mirror), geometry.WithTransform(core.Translation(0, 1, 0))))
	w.Add(lower, upper)
	wi := NewWhittedIntegrator(w)

	// Terminates because every bounce spends depth
	got := wi.ColorAt(core.NewRay(core.Origin, core.NewVector(0, 1, 0)), 5)
	if got.R <= 0 {
		t.Errorf("Expected a lit color, got %v", got)
	}
}

func TestRefractedColorOpaque(t *testing.T) {
	w, outer, _ := newTestWorld(t, outerMaterial(), material.Default())
	wi := NewWhittedIntegrator(w)

	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := geometry.NewIntersections(geometry.NewIntersection(4, outer), geometry.NewIntersection(6, outer))
	comps := xs[0].PrepareComputationsWith(ray, xs)

	if got := wi.RefractedColor(comps, 5); got != core.Black {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestRefractedColorAtMaxDepth(t *testing.T) {
	w, outer, _ := newTestWorld(t, outerMaterial().WithTransparency(1).WithRefractiveIndex(1.5), material.Default())
	wi := NewWhittedIntegrator(w)

	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := geometry.NewIntersections(geometry.NewIntersection(4, outer), geometry.NewIntersection(6, outer))
	comps := xs[0].PrepareComputationsWith(ray, xs)

	if got := wi.RefractedColor(comps, 0); got != core.Black {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestRefractedColorTotalInternalReflection(t *testing.T) {
	w, outer, _ := newTestWorld(t, outerMaterial().WithTransparency(1).WithRefractiveIndex(1.5), material.Default())
	wi := NewWhittedIntegrator(w)

	r2 := math.Sqrt(2) / 2
	ray := core.NewRay(core.NewPoint(0, 0, r2), core.NewVector(0, 1, 0))
	xs := geometry.NewIntersections(geometry.NewIntersection(-r2, outer), geometry.NewIntersection(r2, outer))
	comps := xs[1].PrepareComputationsWith(ray, xs)

	if got := wi.RefractedColor(comps, 5); got != core.Black {
		t.Errorf("Expected black under total internal reflection, got %v", got)
	}
}

func TestRefractedColor(t *testing.T) {
	w, a, b := newTestWorld(t,
		outerMaterial().WithAmbient(1).WithPattern(pointPattern{}),
		material.Default().WithTransparency(1).WithRefractiveIndex(1.5))
	wi := NewWhittedIntegrator(w)

	ray := core.NewRay(core.NewPoint(0, 0, 0.1), core.NewVector(0, 1, 0))
	xs := geometry.NewIntersections(
		geometry.NewIntersection(-0.9899, a),
		geometry.NewIntersection(-0.4899, b),
		geometry.NewIntersection(0.4899, b),
		geometry.NewIntersection(0.9899, a),
	)
	comps := xs[2].PrepareComputationsWith(ray, xs)

	assertColor(t, wi.RefractedColor(comps, 5), core.NewColor(0, 0.99888, 0.04725), 1e-3)
}

// glassFloorWorld adds a translucent floor above a red ball
func glassFloorWorld(t *testing.T, floorMaterial material.Material) (*scene.World, geometry.Shape) {
	t.Helper()
	w, _, _ := newTestWorld(t, outerMaterial(), material.Default())
	floor := must(geometry.NewPlane(
		geometry.WithMaterial(floorMaterial),
		geometry.WithTransform(core.Translation(0, -1, 0)),
	))
	ball := must(geometry.NewSphere(
		geometry.WithMaterial(material.Default().WithColor(core.NewColor(1, 0, 0)).WithAmbient(0.5)),
		geometry.WithTransform(core.Translation(0, -3.5, -0.5)),
	))
	w.Add(floor, ball)
	return w, floor
}

func TestShadeHitTransparentMaterial(t *testing.T) {
	w, floor := glassFloorWorld(t, material.Default().WithTransparency(0.5).WithRefractiveIndex(1.5))
	wi := NewWhittedIntegrator(w)

	r2 := math.Sqrt(2) / 2
	ray := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -r2, r2))
	xs := geometry.NewIntersections(geometry.NewIntersection(math.Sqrt(2), floor))
	comps := xs[0].PrepareComputationsWith(ray, xs)

	assertColor(t, wi.ShadeHit(comps, 5), core.NewColor(0.93642, 0.68642, 0.68642), 1e-4)
}

func TestShadeHitSchlickBlend(t *testing.T) {
	w, floor := glassFloorWorld(t, material.Default().
		WithReflective(0.5).
		WithTransparency(0.5).
		WithRefractiveIndex(1.5))
	wi := NewWhittedIntegrator(w)

	r2 := math.Sqrt(2) / 2
	ray := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -r2, r2))
	xs := geometry.NewIntersections(geometry.NewIntersection(math.Sqrt(2), floor))
	comps := xs[0].PrepareComputationsWith(ray, xs)

	assertColor(t, wi.ShadeHit(comps, 5), core.NewColor(0.93391, 0.69643, 0.69243), 1e-4)
}

func TestSchlick(t *testing.T) {
	glass := must(geometry.NewGlassSphere())
	r2 := math.Sqrt(2) / 2

	tests := []struct {
		name     string
		ray      core.Ray
		times    []float64
		index    int
		expected float64
	}{
		{"total internal reflection", core.NewRay(core.NewPoint(0, 0, r2), core.NewVector(0, 1, 0)), []float64{-r2, r2}, 1, 1.0},
		{"perpendicular viewing angle", core.NewRay(core.Origin, core.NewVector(0, 1, 0)), []float64{-1, 1}, 1, 0.04},
		{"small angle with n2 > n1", core.NewRay(core.NewPoint(0, 0.99, -2), core.NewVector(0, 0, 1)), []float64{1.8589}, 0, 0.48873},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs geometry.Intersections
			for _, ti := range tt.times {
				xs = append(xs, geometry.NewIntersection(ti, glass))
			}
			comps := xs[tt.index].PrepareComputationsWith(tt.ray, xs)

			got := Schlick(comps)
			if math.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if got < 0 || got > 1 {
				t.Errorf("Expected reflectance in [0, 1], got %v", got)
			}
		})
	}
}

func TestColorAtIsRepeatable(t *testing.T) {
	s := must(scene.NewShowcaseScene())
	wi := NewWhittedIntegrator(s.World)

	// Glass floor, mirror sphere, glass cube and a wall
	pixels := [][2]int{{640, 650}, {560, 380}, {860, 450}, {100, 100}, {640, 360}}
	for _, p := range pixels {
		ray := s.Camera.CenterRay(p[0], p[1])
		first := wi.ColorAt(ray, s.MaxDepth)
		second := wi.ColorAt(ray, s.MaxDepth)
		if first != second {
			t.Errorf("Pixel %v: expected identical colors, got %v then %v", p, first, second)
		}
	}
}
