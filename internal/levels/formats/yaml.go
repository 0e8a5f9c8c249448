// Package formats provides pluggable board file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/gridmind/internal/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a board file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Enemies  []YAMLEnemy       `yaml:"enemies,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLEnemy represents an enemy and its patrol route.
type YAMLEnemy struct {
	Patrol []YAMLPoint `yaml:"patrol"`
}

// YAMLPoint represents a single waypoint in board coordinates.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Level represents a parsed board ready for use.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Patrols  [][]core.Coord
	Metadata map[string]string
}

// ParseYAML parses a YAML board file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("board %s: missing rows", yl.ID)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	level := Level{
		ID:       yl.ID,
		Name:     name,
		Rows:     yl.Rows,
		Metadata: yl.Metadata,
	}

	for i, e := range yl.Enemies {
		if len(e.Patrol) == 0 {
			return Level{}, fmt.Errorf("board %s: enemy %d has an empty patrol", yl.ID, i)
		}
		route := make([]core.Coord, len(e.Patrol))
		for j, p := range e.Patrol {
			route[j] = core.C(p.X, p.Y)
		}
		level.Patrols = append(level.Patrols, route)
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
