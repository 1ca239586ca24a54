package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Vec3 is a JSON triple used for points, vectors and colors
type Vec3 [3]float64

// SceneFile is the parsed form of a JSON scene description
type SceneFile struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Group       string       `json:"group,omitempty"`
	Camera      CameraSpec   `json:"camera"`
	MaxDepth    *int         `json:"maxDepth,omitempty"` // nil until defaults are applied; 0 is direct lighting only
	Lights      []LightSpec  `json:"lights"`
	Objects     []ObjectSpec `json:"objects"`
}

// CameraSpec places the camera. Angles are in degrees.
type CameraSpec struct {
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	FOV       float64 `json:"fov,omitempty"`
	From      *Vec3   `json:"from,omitempty"`
	To        *Vec3   `json:"to,omitempty"`
	Up        *Vec3   `json:"up,omitempty"`
	Antialias bool    `json:"antialias,omitempty"`
}

// LightSpec describes a point light
type LightSpec struct {
	Position  Vec3 `json:"position"`
	Intensity Vec3 `json:"intensity"`
}

// TransformSpec is one step of a transform list. Rotations are in degrees.
type TransformSpec struct {
	Op   string    `json:"op"` // translate, scale, rotate-x, rotate-y, rotate-z, shear
	Args []float64 `json:"args"`
}

// PatternSpec describes a stripe or gradient pattern
type PatternSpec struct {
	Type       string          `json:"type"` // stripe or gradient
	A          Vec3            `json:"a"`
	B          Vec3            `json:"b"`
	Transforms []TransformSpec `json:"transforms,omitempty"`
}

// MaterialSpec overrides fields of the default material. Absent fields keep
// their defaults.
type MaterialSpec struct {
	Color           *Vec3        `json:"color,omitempty"`
	Ambient         *float64     `json:"ambient,omitempty"`
	Diffuse         *float64     `json:"diffuse,omitempty"`
	Specular        *float64     `json:"specular,omitempty"`
	Shininess       *float64     `json:"shininess,omitempty"`
	Reflective      *float64     `json:"reflective,omitempty"`
	Transparency    *float64     `json:"transparency,omitempty"`
	RefractiveIndex *float64     `json:"refractiveIndex,omitempty"`
	Pattern         *PatternSpec `json:"pattern,omitempty"`
}

// ObjectSpec describes one shape
type ObjectSpec struct {
	Type        string          `json:"type"` // sphere, plane or cube
	Transforms  []TransformSpec `json:"transforms,omitempty"`
	Material    MaterialSpec    `json:"material"`
	CastsShadow *bool           `json:"castsShadow,omitempty"`
}

// Defaults applied to fields a scene file leaves out
const (
	DefaultWidth    = 400
	DefaultHeight   = 225
	DefaultFOV      = 60.0
	DefaultMaxDepth = 5
)

// ParseScene decodes a JSON scene from reader and fills in defaults.
// Unknown fields are rejected so typos do not silently fall back to defaults.
func ParseScene(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	file.applyDefaults()
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// DefaultRoots returns the directories scene files are loaded from when the
// caller names none: ./scenes and the temp directory (for tests)
func DefaultRoots() []string {
	return []string{"scenes", os.TempDir()}
}

// LoadScene loads and parses a JSON scene file. The file must lie inside one
// of roots, or inside DefaultRoots when roots is empty.
func LoadScene(filename string, roots ...string) (*SceneFile, error) {
	if len(roots) == 0 {
		roots = DefaultRoots()
	}
	if err := validateFilePath(filename, roots); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if scene.Name == "" {
		scene.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return scene, nil
}

func (f *SceneFile) applyDefaults() {
	if f.Camera.Width == 0 {
		f.Camera.Width = DefaultWidth
	}
	if f.Camera.Height == 0 {
		f.Camera.Height = DefaultHeight
	}
	if f.Camera.FOV == 0 {
		f.Camera.FOV = DefaultFOV
	}
	if f.Camera.From == nil {
		f.Camera.From = &Vec3{0, 0, -5}
	}
	if f.Camera.To == nil {
		f.Camera.To = &Vec3{0, 0, 0}
	}
	if f.Camera.Up == nil {
		f.Camera.Up = &Vec3{0, 1, 0}
	}
	if f.MaxDepth == nil {
		depth := DefaultMaxDepth
		f.MaxDepth = &depth
	}
}

func (f *SceneFile) validate() error {
	if f.Camera.Width < 0 || f.Camera.Height < 0 {
		return fmt.Errorf("camera dimensions must be positive, got %dx%d", f.Camera.Width, f.Camera.Height)
	}
	if f.Camera.FOV <= 0 || f.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180) degrees, got %g", f.Camera.FOV)
	}
	if *f.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative, got %d", *f.MaxDepth)
	}
	for i, obj := range f.Objects {
		switch obj.Type {
		case "sphere", "plane", "cube":
		default:
			return fmt.Errorf("object %d: unknown type %q", i, obj.Type)
		}
	}
	return nil
}

// validateFilePath validates a file path for security issues
func validateFilePath(filename string, roots []string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)

	if !withinAny(cleanPath, roots) {
		return fmt.Errorf("file path must be inside %s", strings.Join(roots, " or "))
	}

	if !strings.EqualFold(filepath.Ext(cleanPath), ".json") {
		return fmt.Errorf("invalid file type: only .json files are allowed")
	}

	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	return nil
}

// withinAny reports whether path resolves to a location inside one of roots
func withinAny(path string, roots []string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absRoot, absPath)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return true
	}
	return false
}
