// Package levels provides level loading functionality for Neon Pulse.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/levels/formats"
)

// DefaultID is the level played when none is selected.
const DefaultID = "neon_pulse"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	core.Level
	Metadata map[string]string
	FilePath string // Empty for built-in levels
}

// Builtin reports whether the level ships with the binary.
func (l *Level) Builtin() bool {
	return l.FilePath == ""
}

// Source returns a short description of where the level came from.
func (l *Level) Source() string {
	if l.Builtin() {
		return "built-in"
	}
	return l.FilePath
}

// Meta returns a free-form metadata value such as "author" or "difficulty",
// or "-" when the level file does not set it.
func (l *Level) Meta(key string) string {
	if v := l.Metadata[key]; v != "" {
		return v
	}
	return "-"
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	level, err := parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// LoadByID loads a specific level by ID.
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

	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// Builtin returns the levels embedded in the binary, sorted by ID.
func Builtin() ([]Level, error) {
	var levels []Level
	err := fs.WalkDir(builtinFS, "builtin", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return err
		}
		level, err := parse(data, filepath.Ext(path))
		if err != nil {
			return fmt.Errorf("built-in %s: %w", path, err)
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	sortByID(levels)
	return levels, nil
}

// Default returns the built-in default level.
func Default() (Level, error) {
	return Find(DefaultID, "")
}

// Find looks a level up by ID, first in dir (when set) and then among the
// built-in levels, so a file can override a built-in level of the same ID.
func Find(id, dir string) (Level, error) {
	if dir != "" {
		if lvl, err := NewLoader(dir).LoadByID(id); err == nil {
			return lvl, nil
		}
	}
	builtin, err := Builtin()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range builtin {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// All returns built-in levels followed by the levels in dir. A directory level
// replaces a built-in one with the same ID. A missing dir is not an error.
func All(dir string) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return levels, nil
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range extra {
		replaced := false
		for i := range levels {
			if levels[i].ID == lvl.ID {
				levels[i] = lvl
				replaced = true
				break
			}
		}
		if !replaced {
			levels = append(levels, lvl)
		}
	}
	return levels, nil
}

// parse routes to the format parser and validates the result.
func parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, err
	}
	if err := Validate(&parsed.Level); err != nil {
		return Level{}, err
	}
	return Level{Level: parsed.Level, Metadata: parsed.Metadata}, nil
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
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
