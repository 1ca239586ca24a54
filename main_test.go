package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"showcase scene", "showcase", false},
		{"reflection scene", "reflection", false},

		// Scene files
		{"three-spheres file", "scenes/three-spheres.json", false},
		{"glass-cube file", "scenes/glass-cube.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"missing scene file", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %v", tt.sceneType, s.Name)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.Camera == nil {
				t.Fatalf("Expected a camera for scene type '%s'", tt.sceneType)
			}
			if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
				t.Errorf("Expected positive dimensions, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
			}
			if len(s.World.Shapes) == 0 {
				t.Errorf("Expected shapes in scene '%s'", tt.sceneType)
			}
		})
	}
}

func TestCreateSceneUnknownIsErrUnknownScene(t *testing.T) {
	_, err := createScene("nonexistent")
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	on := true

	tests := []struct {
		name     string
		opts     options
		validate func(t *testing.T, s *scene.Scene)
	}{
		{
			name: "zero options keep scene settings",
			opts: options{},
			validate: func(t *testing.T, s *scene.Scene) {
				if s.CameraConfig.Width != 400 || s.CameraConfig.Height != 400 {
					t.Errorf("Expected 400x400, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
				}
				if s.MaxDepth != scene.DefaultMaxDepth {
					t.Errorf("Expected depth %d, got %d", scene.DefaultMaxDepth, s.MaxDepth)
				}
				if s.CameraConfig.Antialias {
					t.Error("Expected antialias to stay off")
				}
			},
		},
		{
			name: "dimensions and depth",
			opts: options{width: 64, height: 32, depth: 8},
			validate: func(t *testing.T, s *scene.Scene) {
				if s.Camera.Width() != 64 || s.Camera.Height() != 32 {
					t.Errorf("Expected 64x32 camera, got %dx%d", s.Camera.Width(), s.Camera.Height())
				}
				if s.MaxDepth != 8 {
					t.Errorf("Expected depth 8, got %d", s.MaxDepth)
				}
			},
		},
		{
			name: "fov in degrees",
			opts: options{fov: 90},
			validate: func(t *testing.T, s *scene.Scene) {
				if math.Abs(s.Camera.FieldOfView()-math.Pi/2) > 1e-12 {
					t.Errorf("Expected fov π/2, got %v", s.Camera.FieldOfView())
				}
			},
		},
		{
			name: "antialias flag",
			opts: options{antialias: &on},
			validate: func(t *testing.T, s *scene.Scene) {
				if !s.Camera.Antialias() {
					t.Error("Expected antialias to be on")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scene.NewDefaultScene()
			if err != nil {
				t.Fatalf("Failed to build scene: %v", err)
			}
			if err := applyOverrides(s, tt.opts); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.validate(t, s)
		})
	}
}

func TestApplyOverridesInvalid(t *testing.T) {
	tests := []struct {
		name   string
		opts   options
		target error
	}{
		{"negative width", options{width: -1}, geometry.ErrInvalidDimensions},
		{"fov beyond 180 degrees", options{fov: 200}, geometry.ErrInvalidFieldOfView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scene.NewDefaultScene()
			if err != nil {
				t.Fatalf("Failed to build scene: %v", err)
			}
			err = applyOverrides(s, tt.opts)
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
			if s.Camera.Width() != 400 {
				t.Errorf("Expected the previous camera to be kept, got width %d", s.Camera.Width())
			}
		})
	}

	s, err := scene.NewDefaultScene()
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	if err := applyOverrides(s, options{depth: -1}); err == nil {
		t.Error("Expected error for negative depth")
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	expected := filepath.Join("output", "showcase", "render_20240309_140507.png")
	if got := outputPath("output", "showcase", now); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestRunWritesPNG(t *testing.T) {
	for _, sequential := range []bool{true, false} {
		dir := t.TempDir()
		opts := options{scene: "default", width: 8, height: 6, sequential: sequential, output: dir}
		if err := run(opts); err != nil {
			t.Fatalf("run failed: %v", err)
		}

		matches, err := filepath.Glob(filepath.Join(dir, "default", "render_*.png"))
		if err != nil {
			t.Fatalf("Glob failed: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("Expected one rendered file, got %d", len(matches))
		}
		info, err := os.Stat(matches[0])
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if info.Size() == 0 {
			t.Error("Expected a non-empty PNG")
		}
	}
}
