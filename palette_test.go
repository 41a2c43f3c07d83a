package wad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuarthighley/wadrec/internal/testutil"
)

func TestPalettes(t *testing.T) {
	playpal := make([]byte, NumPalettes*256*3)
	for i := range playpal {
		playpal[i] = byte(i)
	}
	colormap := make([]byte, NumColorMaps*256)
	for m := 0; m < NumColorMaps; m++ {
		colormap[m*256+1] = byte(m)
	}

	w := openBuilder(t, testutil.NewBuilder(IWAD).Add("PLAYPAL", playpal).Add("COLORMAP", colormap))

	pals, err := w.Palettes()
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 1, 2}, pals[0][0])
	assert.Equal(t, RGB{3, 4, 5}, pals[0][1])
	last := (13*256 + 255) * 3
	assert.Equal(t, RGB{byte(last), byte(last + 1), byte(last + 2)}, pals[13][255])

	maps, err := w.ColorMaps()
	require.NoError(t, err)
	assert.Equal(t, byte(33), maps[33][1])
	assert.Equal(t, byte(0), maps[33][0])
}

func TestPalettesShort(t *testing.T) {
	w := openBuilder(t, testutil.NewBuilder(IWAD).Add("PLAYPAL", make([]byte, 768)).Add("COLORMAP", make([]byte, 256)))

	_, err := w.Palettes()
	assert.ErrorIs(t, err, ErrUnexpectedRecordSize)
	_, err = w.ColorMaps()
	assert.ErrorIs(t, err, ErrUnexpectedRecordSize)
}

func TestEndoom(t *testing.T) {
	screen := make([]byte, EndoomWidth*EndoomHeight*2)
	for i := 0; i < len(screen); i += 2 {
		screen[i] = ' '
	}
	put := func(row, col int, s []byte, attr byte) {
		for i, c := range s {
			screen[(row*EndoomWidth+col+i)*2] = c
			screen[(row*EndoomWidth+col+i)*2+1] = attr
		}
	}
	put(0, 0, []byte("DOOM"), 0x4f)
	put(1, 2, []byte{0xdb, 0xb0}, 0x87) // full block, light shade

	w := openBuilder(t, testutil.NewBuilder(IWAD).Add("ENDOOM", screen))
	e, err := w.Endoom()
	require.NoError(t, err)

	assert.Equal(t, 'D', e.Char(0, 0))
	fg, bg, blink := e.Attr(0, 0)
	assert.Equal(t, uint8(0x0f), fg)
	assert.Equal(t, uint8(0x04), bg)
	assert.False(t, blink)

	assert.Equal(t, '█', e.Char(1, 2))
	_, _, blink = e.Attr(1, 2)
	assert.True(t, blink)

	lines := strings.Split(e.Text(), "\n")
	require.Len(t, lines, EndoomHeight+1)
	assert.Equal(t, "DOOM", lines[0])
	assert.Equal(t, "  █░", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "", lines[EndoomHeight])
}

func TestEndoomShort(t *testing.T) {
	w := openBuilder(t, testutil.NewBuilder(IWAD).Add("ENDOOM", make([]byte, 100)))
	_, err := w.Endoom()
	assert.ErrorIs(t, err, ErrUnexpectedRecordSize)
}
