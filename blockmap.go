package wad

import (
	"encoding/binary"
	"fmt"
)

const (
	blockmapHeaderSize = 8
	blockListEnd       = 0xffff
)

// Blockmap is level data created from the axis aligned bounding box of the map: a rectangular
// array of 128 unit blocks, each listing the linedefs that cross it. Used to speed up collision
// detection by spatial subdivision in 2D.
type Blockmap struct {
	OriginX, OriginY    int
	NumColumns, NumRows int
	Blocks              [][]int // Linedef indexes per block, row major from the origin
}

// Block returns the linedefs of the block at column x, row y.
func (b *Blockmap) Block(x, y int) []int {
	if x < 0 || y < 0 || x >= b.NumColumns || y >= b.NumRows {
		return nil
	}
	return b.Blocks[y*b.NumColumns+x]
}

// DecodeBlockmap decodes the level's BLOCKMAP lump. Block lists begin with a 0 marker that
// is dropped, and end at 0xffff.
func (l *Level) DecodeBlockmap() (*Blockmap, error) {
	lump := l.Blockmap
	if len(lump) < blockmapHeaderSize {
		return nil, fmt.Errorf("%w: level %s BLOCKMAP is %d bytes", ErrOutOfBounds, l.Name, len(lump))
	}
	word := func(i int) uint16 { return binary.LittleEndian.Uint16(lump[2*i:]) }

	bm := &Blockmap{
		OriginX:    int(int16(word(0))),
		OriginY:    int(int16(word(1))),
		NumColumns: int(int16(word(2))),
		NumRows:    int(int16(word(3))),
	}
	numBlocks := bm.NumColumns * bm.NumRows
	numWords := len(lump) / 2
	if bm.NumColumns < 0 || bm.NumRows < 0 || 4+numBlocks > numWords {
		return nil, fmt.Errorf("%w: level %s BLOCKMAP has %dx%d blocks in %d bytes",
			ErrOutOfBounds, l.Name, bm.NumColumns, bm.NumRows, len(lump))
	}

	// Populate block lists
	bm.Blocks = make([][]int, numBlocks)
	for b := range bm.Blocks {
		i := int(word(4 + b))
		if i < numWords && word(i) == 0 {
			i++
		}
		lines := make([]int, 0)
		for ; ; i++ {
			if i >= numWords {
				return nil, fmt.Errorf("%w: level %s BLOCKMAP block %d is unterminated", ErrOutOfBounds, l.Name, b)
			}
			n := word(i)
			if n == blockListEnd {
				break
			}
			lines = append(lines, int(n))
		}
		bm.Blocks[b] = lines
	}
	logger().Printf("Read %v blocks", len(bm.Blocks))
	return bm, nil
}
