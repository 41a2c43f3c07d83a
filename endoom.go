package wad

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const EndoomWidth, EndoomHeight = 80, 25

// ENDOOM consists of 4000 bytes representing an 80x25 text block exactly as stored in VGA video
// memory. Every character is stored as two bytes: the first byte is the character in code page
// 437; the second byte gives color information.
// Bits 0-3 give the foreground color, 4-6 give the background color, and bit 7 is a 'blink'
// flag. The colors are standard DOS text-mode colors.
type Endoom [EndoomWidth * EndoomHeight * 2]byte

// Endoom reads the ENDOOM lump
func (w *Archive) Endoom() (*Endoom, error) {
	logger().Println("Loading ENDOOM ...")
	lump, err := w.Lump("ENDOOM")
	if err != nil {
		return nil, err
	}
	var endoom Endoom
	if len(lump) < len(endoom) {
		return nil, fmt.Errorf("%w: ENDOOM is %d bytes, want %d", ErrUnexpectedRecordSize, len(lump), len(endoom))
	}
	copy(endoom[:], lump)
	return &endoom, nil
}

// Char returns the character at row, col decoded from code page 437.
func (e *Endoom) Char(row, col int) rune {
	return charmap.CodePage437.DecodeByte(e[(row*EndoomWidth+col)*2])
}

// Attr returns the foreground and background colors and blink flag at row, col.
func (e *Endoom) Attr(row, col int) (fg, bg uint8, blink bool) {
	a := e[(row*EndoomWidth+col)*2+1]
	return a & 0x0f, (a >> 4) & 0x07, a&0x80 != 0
}

// Text renders the screen as 25 lines of UTF-8 with trailing spaces removed.
func (e *Endoom) Text() string {
	var sb strings.Builder
	line := make([]rune, EndoomWidth)
	for row := 0; row < EndoomHeight; row++ {
		for col := range line {
			line[col] = e.Char(row, col)
		}
		sb.WriteString(strings.TrimRight(string(line), " \x00"))
		sb.WriteByte('\n')
	}
	return sb.String()
}
