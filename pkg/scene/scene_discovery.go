package scene

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Value accepted by Load
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const builtInGroup = "Built-in Scenes"

// ListBuiltInScenes describes the built-in scenes, sorted by name
func ListBuiltInScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		b := builtins[name]
		scenes = append(scenes, SceneInfo{
			ID:          name,
			Name:        name,
			DisplayName: b.displayName,
			Description: b.description,
			Group:       builtInGroup,
			Type:        "builtin",
		})
	}
	return scenes
}

// ListJSONScenes scans dir for scene files. Files that fail to load are
// reported through warn and skipped.
func ListJSONScenes(dir string, warn func(error)) ([]SceneInfo, error) {
	files, warnings, err := loaders.ListScenes(dir)
	if err != nil {
		return nil, err
	}
	if warn != nil {
		for _, w := range warnings {
			warn(w)
		}
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, f := range files {
		base := strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
		group := f.Group
		if group == "" {
			group = "Scene Files"
		}
		// Unnamed files are named after the file itself
		displayName := f.Name
		if f.Name == base {
			displayName = titleCase(base)
		}
		scenes = append(scenes, SceneInfo{
			ID:          f.Path,
			Name:        f.Name,
			DisplayName: displayName,
			Description: f.Description,
			Group:       group,
			Type:        "json",
			FilePath:    f.Path,
		})
	}
	return scenes, nil
}

// ListAllScenes returns both built-in and scene-file scenes, grouped by category
func ListAllScenes(dir string, warn func(error)) (ScenesResponse, error) {
	var response ScenesResponse

	jsonScenes, err := ListJSONScenes(dir, warn)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(ListBuiltInScenes(), jsonScenes...)

	// Group scenes by their Group field
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if group, exists := groupMap[builtInGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtInGroup, Scenes: group})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-room" -> "Glass Room"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
