package formats

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// Binary layout, all words little-endian uint16:
//
//	0   magic "DN2L"
//	4   width
//	6   height
//	8   attribute count
//	10  actor list size in words (4 words per placement)
//	12  attribute table
//	..  actor list: kind, x, y, contents
//	..  tile grid, row-major
const (
	binaryMagic      = "DN2L"
	binaryHeaderSize = 12
	wordsPerActor    = 4
)

// ParseBinary parses a packed level. The ID is left empty; the loader fills
// it from the file name.
func ParseBinary(data []byte) (Level, error) {
	if len(data) < binaryHeaderSize || string(data[:4]) != binaryMagic {
		return Level{}, fmt.Errorf("%w: missing header", ErrCorruptLevelData)
	}
	word := func(off int) int {
		return int(binary.LittleEndian.Uint16(data[off:]))
	}
	width, height := word(4), word(6)
	attrCount, actorWords := word(8), word(10)

	if width == 0 || height == 0 {
		return Level{}, fmt.Errorf("%w: empty map %dx%d", ErrCorruptLevelData, width, height)
	}

	attrStart := binaryHeaderSize
	actorStart := attrStart + attrCount*2
	actorEnd := actorStart + actorWords*2
	if actorStart > len(data) || actorEnd > len(data) {
		return Level{}, fmt.Errorf("%w: actor list of %d words overflows %d byte file",
			ErrCorruptLevelData, actorWords, len(data))
	}
	if actorWords%wordsPerActor != 0 {
		return Level{}, fmt.Errorf("%w: actor list size %d is not a multiple of %d",
			ErrCorruptLevelData, actorWords, wordsPerActor)
	}
	tileEnd := actorEnd + width*height*2
	if tileEnd > len(data) {
		return Level{}, fmt.Errorf("%w: tile grid truncated", ErrCorruptLevelData)
	}

	lvl := Level{
		Width:  width,
		Height: height,
		Attrs:  make([]world.Attr, attrCount),
		Tiles:  make([]uint16, width*height),
	}
	for i := range lvl.Attrs {
		lvl.Attrs[i] = world.Attr(word(attrStart + i*2))
	}
	for off := actorStart; off < actorEnd; off += wordsPerActor * 2 {
		p := Placement{
			Kind:     kinds.Kind(word(off)),
			X:        word(off + 2),
			Y:        word(off + 4),
			Contents: kinds.Kind(word(off + 6)),
		}
		if !p.Kind.Valid() || (p.Contents != kinds.KindNone && !p.Contents.Valid()) {
			return Level{}, fmt.Errorf("%w: bad kind %d at offset %d", ErrCorruptLevelData, p.Kind, off)
		}
		lvl.Actors = append(lvl.Actors, p)
	}
	for i := range lvl.Tiles {
		lvl.Tiles[i] = uint16(word(actorEnd + i*2))
	}
	return lvl, nil
}

// EncodeBinary packs a level into the binary layout. Every value must fit
// a 16-bit word.
func EncodeBinary(lvl Level) ([]byte, error) {
	if len(lvl.Tiles) != lvl.Width*lvl.Height {
		return nil, fmt.Errorf("encode: %d tiles for %dx%d map", len(lvl.Tiles), lvl.Width, lvl.Height)
	}
	w := &wordWriter{}
	w.buf.WriteString(binaryMagic)
	w.put("width", lvl.Width)
	w.put("height", lvl.Height)
	w.put("attribute count", len(lvl.Attrs))
	w.put("actor list size", len(lvl.Actors)*wordsPerActor)
	for _, a := range lvl.Attrs {
		w.put("attribute", int(a))
	}
	for i, p := range lvl.Actors {
		w.put(fmt.Sprintf("actor %d kind", i), int(p.Kind))
		w.put(fmt.Sprintf("actor %d x", i), p.X)
		w.put(fmt.Sprintf("actor %d y", i), p.Y)
		w.put(fmt.Sprintf("actor %d contents", i), int(p.Contents))
	}
	for _, t := range lvl.Tiles {
		w.put("tile", int(t))
	}
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

// wordWriter appends little-endian words and keeps the first error.
type wordWriter struct {
	buf bytes.Buffer
	err error
}

func (w *wordWriter) put(field string, v int) {
	if w.err != nil {
		return
	}
	if v < 0 || v > math.MaxUint16 {
		w.err = fmt.Errorf("%w: %s %d does not fit a word", ErrCorruptLevelData, field, v)
		return
	}
	if err := binary.Write(&w.buf, binary.LittleEndian, uint16(v)); err != nil { //#nosec G115 -- range checked above
		w.err = fmt.Errorf("encode %s: %w", field, err)
	}
}
