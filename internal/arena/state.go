package arena

import "fmt"

// State is a deep copy of an arena used by quick-saves.
type State struct {
	Capacity  int     `msgpack:"cap"`
	MaxChunks int     `msgpack:"max"`
	Used      []byte  `msgpack:"used"`
	Chunks    []Chunk `msgpack:"chunks"`
}

// State captures the allocated prefix and the chunk table.
func (a *Arena) State() State {
	used := make([]byte, a.top)
	copy(used, a.buf[:a.top])
	return State{
		Capacity:  len(a.buf),
		MaxChunks: a.maxChunks,
		Used:      used,
		Chunks:    a.Chunks(),
	}
}

// Restore replaces the arena contents with a captured state.
// The caps must match the arena the state was taken from.
func (a *Arena) Restore(s State) error {
	if s.Capacity != len(a.buf) || s.MaxChunks != a.maxChunks {
		return fmt.Errorf("arena: restore %d bytes/%d chunks into %d bytes/%d chunks",
			s.Capacity, s.MaxChunks, len(a.buf), a.maxChunks)
	}
	if len(s.Used) > len(a.buf) || len(s.Chunks) > a.maxChunks {
		return fmt.Errorf("arena: restore state exceeds caps: %w", ErrResourceExhausted)
	}

	clear(a.buf)
	copy(a.buf, s.Used)
	a.top = len(s.Used)
	a.chunks = append(a.chunks[:0], s.Chunks...)
	return nil
}
