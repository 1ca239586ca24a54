package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestNamesAndLookup(t *testing.T) {
	names := Names()
	expected := []string{"default", "reflection", "showcase"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	}

	if _, ok := Lookup("cornell"); ok {
		t.Error("Expected unknown scene lookup to fail")
	}
}

func TestBuiltInScenesBuild(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected name %q, got %q", name, s.Name)
			}
			if s.Camera == nil || s.World == nil {
				t.Fatal("Expected camera and world")
			}
			if len(s.World.Shapes) == 0 || len(s.World.Lights) == 0 {
				t.Errorf("Expected shapes and lights, got %d and %d", len(s.World.Shapes), len(s.World.Lights))
			}
			if s.MaxDepth != DefaultMaxDepth {
				t.Errorf("Expected depth %d, got %d", DefaultMaxDepth, s.MaxDepth)
			}
		})
	}
}

func TestLoadUnknownScene(t *testing.T) {
	_, err := Load("cornell")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestShowcaseScene(t *testing.T) {
	s, err := NewShowcaseScene()
	if err != nil {
		t.Fatalf("NewShowcaseScene failed: %v", err)
	}

	var planes, nonCasters int
	for _, shape := range s.World.Shapes {
		if _, ok := shape.(*geometry.Plane); ok {
			planes++
		}
		if !shape.CastsShadow() {
			nonCasters++
		}
	}
	if len(s.World.Shapes) != 11 {
		t.Errorf("Expected 11 shapes, got %d", len(s.World.Shapes))
	}
	if planes != 7 || nonCasters != 7 {
		t.Errorf("Expected 7 non-shadowing planes, got %d planes and %d non-casters", planes, nonCasters)
	}

	if !s.Camera.Antialias() {
		t.Error("Expected antialiasing")
	}
	if s.Camera.FieldOfView() != math.Pi/3 {
		t.Errorf("Expected fov π/3, got %v", s.Camera.FieldOfView())
	}
	eye := s.Camera.CenterRay(0, 0).Origin
	if !eye.Equal(core.NewPoint(2, 1.5, -5)) {
		t.Errorf("Expected eye at (2, 1.5, -5), got %v", eye)
	}
}

func TestConfigureCamera(t *testing.T) {
	s, err := NewDefaultScene()
	if err != nil {
		t.Fatalf("NewDefaultScene failed: %v", err)
	}

	err = s.ConfigureCamera(func(c *geometry.CameraConfig) {
		c.Width = 32
		c.Height = 16
		c.Antialias = true
	})
	if err != nil {
		t.Fatalf("ConfigureCamera failed: %v", err)
	}
	if s.Camera.Width() != 32 || s.Camera.Height() != 16 || !s.Camera.Antialias() {
		t.Errorf("Expected 32x16 antialiased camera, got %dx%d aa=%v", s.Camera.Width(), s.Camera.Height(), s.Camera.Antialias())
	}
	if s.CameraConfig.Transform != s.Camera.Transform().Matrix {
		t.Error("Expected view transform to be preserved")
	}

	before := s.Camera
	err = s.ConfigureCamera(func(c *geometry.CameraConfig) { c.Width = 0 })
	if !errors.Is(err, geometry.ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
	if s.Camera != before {
		t.Error("Expected a failed reconfiguration to keep the old camera")
	}
}

func TestLoadJSONScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.json")
	content := `{
		"name": "pair",
		"camera": {"width": 20, "height": 10},
		"maxDepth": 2,
		"lights": [{"position": [0, 5, -5], "intensity": [1, 1, 1]}],
		"objects": [{"type": "sphere"}, {"type": "cube", "transforms": [{"op": "translate", "args": [3, 0, 0]}]}]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Name != "pair" || s.MaxDepth != 2 {
		t.Errorf("Expected pair with depth 2, got %q depth %d", s.Name, s.MaxDepth)
	}
	if len(s.World.Shapes) != 2 || len(s.World.Lights) != 1 {
		t.Errorf("Expected 2 shapes and 1 light, got %d and %d", len(s.World.Shapes), len(s.World.Lights))
	}
	if s.Camera.Width() != 20 || s.Camera.Height() != 10 {
		t.Errorf("Expected 20x10 camera, got %dx%d", s.Camera.Width(), s.Camera.Height())
	}
}

func TestLoadJSONSceneSingularTransform(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.json")
	content := `{"objects": [{"type": "cube", "transforms": [{"op": "scale", "args": [1, 1, 0]}]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, core.ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}
}
