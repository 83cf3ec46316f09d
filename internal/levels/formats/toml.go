package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a TOML level file. Keys the level shape does not know
// are rejected so typos in hand-written maps surface early.
func ParseTOML(data []byte) (Level, error) {
	var tl textLevel
	md, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Level{}, fmt.Errorf("toml decode: unknown keys %v", undecoded)
	}
	return tl.build()
}
