package wad

import (
	"encoding/binary"
	"fmt"
)

// pictureHeaderSize covers width, height, left offset and top offset, all int16.
const pictureHeaderSize = 8

// postEnd terminates the post list of a picture column.
const postEnd = 0xff

// The doom picture (image) format, used for wall patches, sprites and menu graphics.
type Picture struct {
	Name                  string // Useful for debugging
	Width, Height         int
	LeftOffset, TopOffset int // Allows soulspheres, weapons and keys to float
	Columns               []Column
}

// Rather than implement column posts, set each column to transparent and fill in post data.
type Column []byte

// Picture reads and decodes a picture lump. Pixels not covered by a post are set to transparent.
func (w *Archive) Picture(name string, transparent byte) (*Picture, error) {
	lump, err := w.Lump(name)
	if err != nil {
		return nil, err
	}
	return DecodePicture(name, lump, transparent)
}

// DecodePicture decodes the column/post picture format.
func DecodePicture(name string, lump []byte, transparent byte) (*Picture, error) {
	if len(lump) < pictureHeaderSize {
		return nil, fmt.Errorf("%w: picture %s is %d bytes", ErrOutOfBounds, name, len(lump))
	}
	width := int(int16(binary.LittleEndian.Uint16(lump[0:])))
	height := int(int16(binary.LittleEndian.Uint16(lump[2:])))
	pic := &Picture{
		Name:       name,
		Width:      width,
		Height:     height,
		LeftOffset: int(int16(binary.LittleEndian.Uint16(lump[4:]))),
		TopOffset:  int(int16(binary.LittleEndian.Uint16(lump[6:]))),
	}
	if width < 0 || height < 0 || pictureHeaderSize+width*4 > len(lump) {
		return nil, fmt.Errorf("%w: picture %s is %dx%d in %d bytes", ErrOutOfBounds, name, width, height, len(lump))
	}

	// Initialise rectangular picture space to transparent
	pic.Columns = make([]Column, width)
	for i := range pic.Columns {
		pic.Columns[i] = make(Column, height)
		for j := range pic.Columns[i] {
			pic.Columns[i][j] = transparent
		}
	}

	// For each column offset, expand out the posts into columns
	for x := range pic.Columns {
		offset := int(binary.LittleEndian.Uint32(lump[pictureHeaderSize+x*4:]))
		for {
			if offset >= len(lump) {
				return nil, fmt.Errorf("%w: picture %s column %d runs past end", ErrOutOfBounds, name, x)
			}
			topDelta := int(lump[offset])
			if topDelta == postEnd {
				break
			}
			if offset+3 > len(lump) {
				return nil, fmt.Errorf("%w: picture %s column %d post header", ErrOutOfBounds, name, x)
			}
			numPixels := int(lump[offset+1])
			start := offset + 3 // Skip delta, length and padding
			if start+numPixels+1 > len(lump) || topDelta+numPixels > height {
				return nil, fmt.Errorf("%w: picture %s column %d post at %d", ErrOutOfBounds, name, x, topDelta)
			}
			copy(pic.Columns[x][topDelta:], lump[start:start+numPixels])
			offset = start + numPixels + 1 // Trailing padding
		}
	}
	return pic, nil
}

// Scaled returns a nearest-neighbour resized copy of the picture. Scaling an empty picture
// gives a fully transparent one.
func (p *Picture) Scaled(width, height int) *Picture {
	width, height = max(width, 0), max(height, 0)
	pic := Picture{
		Name:       p.Name,
		Width:      width,
		Height:     height,
		LeftOffset: p.LeftOffset * width / max(p.Width, 1),
		TopOffset:  p.TopOffset * height / max(p.Height, 1),
		Columns:    make([]Column, width),
	}
	for x := range pic.Columns {
		pic.Columns[x] = make(Column, height)
		if p.Width == 0 || p.Height == 0 {
			for y := range pic.Columns[x] {
				pic.Columns[x][y] = TransparentIndex
			}
			continue
		}
		for y := range pic.Columns[x] {
			pic.Columns[x][y] = p.Columns[x*p.Width/width][y*p.Height/height]
		}
	}
	return &pic
}
