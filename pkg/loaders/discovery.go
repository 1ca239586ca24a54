package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// SceneMetadata is the header information of a scene file on disk
type SceneMetadata struct {
	Path        string
	Name        string
	Description string
	Group       string
}

// ListScenes scans dir for *.json scene files and returns their metadata
// sorted by name. Files that fail to parse are skipped and reported in the
// returned warnings; a missing directory yields an empty list.
func ListScenes(dir string) ([]SceneMetadata, []error, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return []SceneMetadata{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneMetadata{}
	var warnings []error
	for _, path := range files {
		file, err := LoadScene(path, dir)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		scenes = append(scenes, SceneMetadata{
			Path:        path,
			Name:        file.Name,
			Description: file.Description,
			Group:       file.Group,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, warnings, nil
}
