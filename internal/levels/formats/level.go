// Package formats provides the level file parsers: YAML and TOML text maps
// and the packed binary layout.
package formats

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// ErrCorruptLevelData is returned when a level's actor list does not fit
// inside the bounds its header declares, or the data is otherwise unusable.
var ErrCorruptLevelData = errors.New("corrupt level data")

// Placement is one entry of a level's actor list.
type Placement struct {
	Kind kinds.Kind
	X, Y int
	// Contents is what an item box releases; zero selects the box default.
	Contents kinds.Kind
}

// Level is a parsed level ready for use.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Tiles  []uint16 // row-major
	Attrs  []world.Attr
	Actors []Placement
}

// textLevel is the shared shape of the YAML and TOML files.
type textLevel struct {
	ID     string              `yaml:"id" toml:"id"`
	Name   string              `yaml:"name" toml:"name"`
	Legend map[string]textTile `yaml:"legend" toml:"legend"`
	Rows   []string            `yaml:"rows" toml:"rows"`
	Actors []textPlacement     `yaml:"actors" toml:"actors"`
}

type textTile struct {
	Tile  uint16   `yaml:"tile" toml:"tile"`
	Attrs []string `yaml:"attrs" toml:"attrs"`
}

type textPlacement struct {
	Kind     string `yaml:"kind" toml:"kind"`
	X        int    `yaml:"x" toml:"x"`
	Y        int    `yaml:"y" toml:"y"`
	Contains string `yaml:"contains,omitempty" toml:"contains,omitempty"`
}

func (tl textLevel) build() (Level, error) {
	if len(tl.Rows) == 0 {
		return Level{}, fmt.Errorf("%w: level %q has no rows", ErrCorruptLevelData, tl.ID)
	}

	legend := make(map[rune]uint16, len(tl.Legend))
	maxTile := uint16(0)
	for key, tt := range tl.Legend {
		runes := []rune(key)
		if len(runes) != 1 {
			return Level{}, fmt.Errorf("legend key %q must be a single character", key)
		}
		if tt.Tile == 0 {
			return Level{}, fmt.Errorf("legend %q: tile 0 is reserved for empty space", key)
		}
		legend[runes[0]] = tt.Tile
		if tt.Tile > maxTile {
			maxTile = tt.Tile
		}
	}

	attrs := make([]world.Attr, int(maxTile)+1)
	// Sorted for stable error messages.
	keys := make([]string, 0, len(tl.Legend))
	for k := range tl.Legend {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tt := tl.Legend[k]
		a, ok := world.ParseAttr(tt.Attrs)
		if !ok {
			return Level{}, fmt.Errorf("legend %q: unknown attribute in %v", k, tt.Attrs)
		}
		attrs[tt.Tile] |= a
	}

	width := 0
	for _, row := range tl.Rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	height := len(tl.Rows)

	tiles := make([]uint16, width*height)
	for y, row := range tl.Rows {
		for x, r := range []rune(row) {
			if r == ' ' || r == '.' {
				continue
			}
			idx, ok := legend[r]
			if !ok {
				return Level{}, fmt.Errorf("row %d: character %q not in legend", y, r)
			}
			tiles[y*width+x] = idx
		}
	}

	actors := make([]Placement, 0, len(tl.Actors))
	for i, tp := range tl.Actors {
		k, ok := kinds.ByName(strings.ToLower(tp.Kind))
		if !ok {
			return Level{}, fmt.Errorf("actor %d: unknown kind %q", i, tp.Kind)
		}
		p := Placement{Kind: k, X: tp.X, Y: tp.Y}
		if tp.Contains != "" {
			c, ok := kinds.ByName(strings.ToLower(tp.Contains))
			if !ok {
				return Level{}, fmt.Errorf("actor %d: unknown contents %q", i, tp.Contains)
			}
			p.Contents = c
		}
		actors = append(actors, p)
	}

	return Level{
		ID:     tl.ID,
		Name:   tl.Name,
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Attrs:  attrs,
		Actors: actors,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml", ".dn2"}
}

// Parse dispatches on a file extension.
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	case ".dn2":
		return ParseBinary(data)
	}
	return Level{}, fmt.Errorf("unsupported level format %q", ext)
}
