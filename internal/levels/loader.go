// Package levels provides board file loading for gridmind.
// This package depends on board but board does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
	"github.com/vovakirdan/gridmind/internal/levels/formats"
)

var (
	ErrLevelNotFound = errors.New("levels: board not found")
	ErrBadWaypoint   = errors.New("levels: patrol waypoint is not walkable")
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete board definition.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Patrols  [][]core.Coord
	Metadata map[string]string
	FilePath string
}

// ToBoard builds a fresh board from the level, with one patrol per enemy route.
// Each call returns an independent board.
func (l *Level) ToBoard() (*board.Board, error) {
	b, err := board.Parse(l.Rows)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", l.ID, err)
	}
	for i, route := range l.Patrols {
		for _, wp := range route {
			cell := b.Cell(wp)
			if cell == nil || !cell.Walkable {
				return nil, fmt.Errorf("%w: board %s enemy %d at %s", ErrBadWaypoint, l.ID, i, wp)
			}
		}
		b.AddEnemy(board.NewPatrol(b, route...))
	}
	return b, nil
}

// Loader handles loading boards from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for boards under root on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the boards compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all board files.
// Returns boards sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.load(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single board file from disk, outside of any loader root.
func LoadFile(filePath string) (Level, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", filePath, err)
	}
	return decode(data, filePath)
}

func (l *Loader) load(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return decode(data, path.Join(l.Root, p))
}

func decode(data []byte, filePath string) (Level, error) {
	ext := strings.ToLower(path.Ext(filePath))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", filePath, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Patrols:  parsed.Patrols,
		Metadata: parsed.Metadata,
		FilePath: filePath,
	}, nil
}

// LoadByID loads a specific board by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all board IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve finds a board by file path or by ID, trying the given loaders in order.
func Resolve(ref string, loaders ...*Loader) (Level, error) {
	if isSupportedExtension(strings.ToLower(path.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			return LoadFile(ref)
		}
	}
	for _, l := range loaders {
		lvl, err := l.LoadByID(ref)
		if err == nil {
			return lvl, nil
		}
		if !errors.Is(err, ErrLevelNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return Level{}, err
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, ref)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
