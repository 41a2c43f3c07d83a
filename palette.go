package wad

import "fmt"

const (
	NumPalettes  = 14
	NumColorMaps = 34
)

// TransparentIndex is the palette index this package uses for unpainted picture pixels.
const TransparentIndex = 255

type RGB struct {
	Red, Green, Blue uint8
}

// PLAYPAL lump. A set of color palettes used to set the main graphics colors. The Doom engine can
// only display 256 simultaneous colors, so it performs palette swaps to achieve these effects.
type Palettes [NumPalettes]Palette

// Each palette in PLAYPAL contains 256 three-ubyte colors totaling 768 bytes (RGB).
type Palette [256]RGB

// The COLORMAP lump contains 34 color maps of indices into the PLAYPAL palette, used for sector
// lighting, distance fading, and the invulnerability effect.
type ColorMaps [NumColorMaps]ColorMap

// Each color map is a table 256 bytes long. It is indexed using a pixel value (from 0 to 255) and
// yields a new, brightness-adjusted pixel value.
type ColorMap [256]byte

// Palettes reads the PLAYPAL lump.
func (w *Archive) Palettes() (*Palettes, error) {
	logger().Println("Loading PLAYPAL ...")
	lump, err := w.Lump("PLAYPAL")
	if err != nil {
		return nil, err
	}
	if need := NumPalettes * 256 * 3; len(lump) < need {
		return nil, fmt.Errorf("%w: PLAYPAL is %d bytes, want %d", ErrUnexpectedRecordSize, len(lump), need)
	}
	var playpal Palettes
	for p := range playpal {
		for c := range playpal[p] {
			i := (p*256 + c) * 3
			playpal[p][c] = RGB{lump[i], lump[i+1], lump[i+2]}
		}
	}
	return &playpal, nil
}

// ColorMaps reads the COLORMAP lump.
func (w *Archive) ColorMaps() (*ColorMaps, error) {
	logger().Println("Loading COLORMAP ...")
	lump, err := w.Lump("COLORMAP")
	if err != nil {
		return nil, err
	}
	if need := NumColorMaps * 256; len(lump) < need {
		return nil, fmt.Errorf("%w: COLORMAP is %d bytes, want %d", ErrUnexpectedRecordSize, len(lump), need)
	}
	var colormaps ColorMaps
	for m := range colormaps {
		copy(colormaps[m][:], lump[m*256:])
	}
	return &colormaps, nil
}
