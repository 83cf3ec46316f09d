// Package levels loads level definitions from disk or from the embedded
// sample set. This package depends on formats, kinds and world; the
// simulation depends on it, never the other way round.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/levels/formats"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// ErrCorruptLevelData is re-exported from formats.
var ErrCorruptLevelData = formats.ErrCorruptLevelData

// ActorPlacement is one entry of a level's actor list.
type ActorPlacement = formats.Placement

//go:embed data
var builtinFS embed.FS

// Level is a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Tiles    []uint16
	Attrs    []world.Attr
	Actors   []ActorPlacement
	FilePath string
}

// Map builds the tile grid for the level.
func (l *Level) Map() (*world.Map, error) {
	m, err := world.NewMap(l.Width, l.Height, l.Attrs)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	if err := m.LoadTiles(l.Tiles); err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return m, nil
}

// PlayerStart returns the first player placement, or the top-left interior
// corner when the level has none.
func (l *Level) PlayerStart() (x, y int) {
	for _, a := range l.Actors {
		if a.Kind == kinds.KindPlayer {
			return a.X, a.Y
		}
	}
	return 1, 1
}

func fromParsed(p formats.Level, filePath string) Level {
	id := p.ID
	if id == "" {
		base := path.Base(filepath.ToSlash(filePath))
		id = strings.TrimSuffix(base, path.Ext(base))
	}
	name := p.Name
	if name == "" {
		name = id
	}
	return Level{
		ID:       id,
		Name:     name,
		Width:    p.Width,
		Height:   p.Height,
		Tiles:    p.Tiles,
		Attrs:    p.Attrs,
		Actors:   p.Actors,
		FilePath: filePath,
	}
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
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}
		lvl, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(out)
	return out, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	parsed, err := formats.Parse(data, filepath.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	return fromParsed(parsed, p), nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return findID(all, id)
}

// Builtin returns the embedded sample levels.
func Builtin() ([]Level, error) {
	var out []Level
	err := fs.WalkDir(builtinFS, "data", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}
		data, err := builtinFS.ReadFile(p)
		if err != nil {
			return err
		}
		parsed, err := formats.Parse(data, path.Ext(p))
		if err != nil {
			return fmt.Errorf("parsing embedded %s: %w", p, err)
		}
		out = append(out, fromParsed(parsed, p))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByID(out)
	return out, nil
}

// Resolve finds a level by ID among the embedded levels and, if dir is not
// empty, the levels under dir. A path to an existing file is loaded
// directly.
func Resolve(ref, dir string) (Level, error) {
	if st, err := os.Stat(ref); err == nil && !st.IsDir() {
		return NewLoader(filepath.Dir(ref)).LoadFile(ref)
	}
	all, err := Builtin()
	if err != nil {
		return Level{}, err
	}
	if dir != "" {
		extra, err := NewLoader(dir).LoadAll()
		if err != nil {
			return Level{}, err
		}
		all = append(extra, all...)
	}
	return findID(all, ref)
}

func findID(all []Level, id string) (Level, error) {
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

func sortByID(ls []Level) {
	sort.Slice(ls, func(i, j int) bool {
		return ls[i].ID < ls[j].ID
	})
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
