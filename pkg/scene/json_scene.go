package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// NewJSONScene loads a scene file and builds its world and camera. roots
// restricts where the file may live (see loaders.LoadScene).
func NewJSONScene(filename string, roots ...string) (*Scene, error) {
	file, err := loaders.LoadScene(filename, roots...)
	if err != nil {
		return nil, err
	}
	return FromFile(file)
}

// FromFile converts a parsed scene file into a scene
func FromFile(file *loaders.SceneFile) (*Scene, error) {
	shapes, err := file.BuildShapes()
	if err != nil {
		return nil, err
	}

	w := NewWorld()
	w.Add(shapes...)
	w.AddLight(file.BuildLights()...)

	maxDepth := DefaultMaxDepth
	if file.MaxDepth != nil {
		maxDepth = *file.MaxDepth
	}
	return New(file.Name, w, file.Camera.Config(), maxDepth)
}
