// Package arena implements the stack-discipline memory manager the
// simulation borrows its level-time buffers from.
//
// One buffer is allocated up front. Chunks are bump-allocated from it and
// tagged with a ChunkType. Individual chunks are never freed; the only
// release is ReleaseTop, which pops the contiguous run of top-most chunks of
// one type. Byte capacity and chunk count are separate caps.
package arena

import (
	"errors"
	"fmt"
)

// ErrResourceExhausted classifies every arena failure. Callers treat it as
// fatal for the current level load or frame.
var ErrResourceExhausted = errors.New("exceeded memory limits")

var (
	// ErrOutOfMemory is returned when a chunk does not fit in the remaining bytes.
	ErrOutOfMemory = fmt.Errorf("out of memory: %w", ErrResourceExhausted)

	// ErrTooManyChunks is returned when the chunk table is full.
	ErrTooManyChunks = fmt.Errorf("too many chunks: %w", ErrResourceExhausted)
)

// ChunkType tags a chunk with its purpose for bulk bookkeeping.
type ChunkType uint8

const (
	ChunkCommon ChunkType = iota
	ChunkMap
	ChunkActors
	ChunkLevelActorList
	ChunkDoorCache
)

// String returns the chunk type name.
func (t ChunkType) String() string {
	switch t {
	case ChunkCommon:
		return "common"
	case ChunkMap:
		return "map"
	case ChunkActors:
		return "actors"
	case ChunkLevelActorList:
		return "level-actor-list"
	case ChunkDoorCache:
		return "door-cache"
	default:
		return "unknown"
	}
}

// Chunk describes one allocation.
type Chunk struct {
	Offset int
	Size   int
	Type   ChunkType
}

// Handle is an opaque reference to a chunk. The zero Handle is invalid.
type Handle struct {
	Index  int // 1-based chunk index, 0 = none
	Offset int
	Size   int
}

// Valid reports whether the handle refers to a chunk.
func (h Handle) Valid() bool {
	return h.Index > 0
}

// Arena is a fixed-size bump allocator.
type Arena struct {
	buf       []byte
	top       int
	chunks    []Chunk
	maxChunks int
}

// New creates an arena of capacity bytes holding at most maxChunks chunks.
func New(capacity, maxChunks int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	if maxChunks < 0 {
		maxChunks = 0
	}
	return &Arena{
		buf:       make([]byte, capacity),
		chunks:    make([]Chunk, 0, maxChunks),
		maxChunks: maxChunks,
	}
}

// PushChunk allocates size bytes tagged with t. The memory is zeroed.
// A failed push leaves the arena untouched.
func (a *Arena) PushChunk(size int, t ChunkType) (Handle, error) {
	if size < 0 {
		return Handle{}, fmt.Errorf("arena: negative chunk size %d", size)
	}
	if len(a.chunks) >= a.maxChunks {
		return Handle{}, fmt.Errorf("arena: push %s chunk (%d in use): %w", t, len(a.chunks), ErrTooManyChunks)
	}
	if size > len(a.buf)-a.top {
		return Handle{}, fmt.Errorf("arena: push %s chunk of %d bytes (%d free): %w", t, size, a.Free(), ErrOutOfMemory)
	}

	c := Chunk{Offset: a.top, Size: size, Type: t}
	clear(a.buf[c.Offset : c.Offset+size])
	a.chunks = append(a.chunks, c)
	a.top += size

	return Handle{Index: len(a.chunks), Offset: c.Offset, Size: size}, nil
}

// ReleaseTop pops the contiguous run of top-most chunks tagged t and
// returns how many were released. Chunks of t below a chunk of another
// type stay allocated.
func (a *Arena) ReleaseTop(t ChunkType) int {
	n := 0
	for len(a.chunks) > 0 && a.chunks[len(a.chunks)-1].Type == t {
		last := a.chunks[len(a.chunks)-1]
		a.top = last.Offset
		a.chunks = a.chunks[:len(a.chunks)-1]
		n++
	}
	return n
}

// Reset releases every chunk.
func (a *Arena) Reset() {
	a.top = 0
	a.chunks = a.chunks[:0]
}

// Bytes returns the memory of a chunk, or nil if the handle is stale.
func (a *Arena) Bytes(h Handle) []byte {
	if !a.Owns(h) {
		return nil
	}
	return a.buf[h.Offset : h.Offset+h.Size]
}

// Owns reports whether h still refers to a live chunk of this arena.
func (a *Arena) Owns(h Handle) bool {
	if !h.Valid() || h.Index > len(a.chunks) {
		return false
	}
	c := a.chunks[h.Index-1]
	return c.Offset == h.Offset && c.Size == h.Size
}

// Capacity returns the total byte capacity.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Used returns the number of allocated bytes.
func (a *Arena) Used() int {
	return a.top
}

// Free returns the number of unallocated bytes.
func (a *Arena) Free() int {
	return len(a.buf) - a.top
}

// ChunkCount returns the number of live chunks.
func (a *Arena) ChunkCount() int {
	return len(a.chunks)
}

// MaxChunks returns the chunk cap.
func (a *Arena) MaxChunks() int {
	return a.maxChunks
}

// Chunks returns a copy of the chunk table, bottom first.
func (a *Arena) Chunks() []Chunk {
	out := make([]Chunk, len(a.chunks))
	copy(out, a.chunks)
	return out
}
