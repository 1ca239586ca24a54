package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// DefaultMaxDepth is the recursion budget for reflection and refraction
const DefaultMaxDepth = 5

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *World
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	MaxDepth     int // Recommended recursion depth for this scene
}

// ErrUnknownScene is returned by Load for names that are neither built in
// nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// New creates a scene and builds its camera
func New(name string, world *World, cameraConfig geometry.CameraConfig, maxDepth int) (*Scene, error) {
	s := &Scene{Name: name, World: world, MaxDepth: maxDepth}
	if err := s.SetCamera(cameraConfig); err != nil {
		return nil, err
	}
	return s, nil
}

// SetCamera replaces the scene's camera
func (s *Scene) SetCamera(config geometry.CameraConfig) error {
	camera, err := geometry.NewCamera(config)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.Camera = camera
	s.CameraConfig = config
	return nil
}

// ConfigureCamera applies modify to a copy of the current camera
// configuration and rebuilds the camera from it
func (s *Scene) ConfigureCamera(modify func(*geometry.CameraConfig)) error {
	config := s.CameraConfig
	modify(&config)
	return s.SetCamera(config)
}

// Builder constructs a built-in scene
type Builder func() (*Scene, error)

type builtin struct {
	builder     Builder
	displayName string
	description string
}

var builtins = map[string]builtin{
	"default": {
		builder:     NewDefaultScene,
		displayName: "Default World",
		description: "Two concentric spheres lit from the upper left",
	},
	"showcase": {
		builder:     NewShowcaseScene,
		displayName: "Showcase Room",
		description: "Patterned room with glass floor, mirror sphere and glass cube",
	},
	"reflection": {
		builder:     NewReflectionScene,
		displayName: "Reflections",
		description: "Mirror floor with three spheres and a cube",
	},
}

// Names returns the names of the built-in scenes, sorted
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder for a built-in scene
func Lookup(name string) (Builder, bool) {
	b, ok := builtins[name]
	return b.builder, ok
}

// Load resolves name to a built-in scene or, when it ends in .json, a scene
// file inside roots
func Load(name string, roots ...string) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return NewJSONScene(name, roots...)
	}
	builder, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return builder()
}
