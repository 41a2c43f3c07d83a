package wad

import (
	"encoding/binary"
	"fmt"
)

// musMagic identifies a MUS lump: "MUS" followed by 0x1a.
var musMagic = [4]byte{'M', 'U', 'S', 0x1a}

const musHeaderSize = 16

// Music is a D_* lump in the MUS format: a header, the instrument patch list, then the score
// events. Events are left undecoded.
type Music struct {
	Name              string
	PrimaryChannels   int
	SecondaryChannels int
	Instruments       []uint16
	Score             []byte
}

// Music reads and decodes a MUS music lump.
func (w *Archive) Music(name string) (*Music, error) {
	lump, err := w.Lump(name)
	if err != nil {
		return nil, err
	}
	return DecodeMusic(name, lump)
}

// DecodeMusic decodes the header, instruments and score of a MUS lump.
func DecodeMusic(name string, lump []byte) (*Music, error) {
	if len(lump) < musHeaderSize {
		return nil, fmt.Errorf("%w: music %s is %d bytes", ErrOutOfBounds, name, len(lump))
	}
	if [4]byte(lump[0:4]) != musMagic {
		return nil, fmt.Errorf("%w: music %s has magic %q", ErrMalformedHeader, name, lump[0:4])
	}
	scoreLen := int(binary.LittleEndian.Uint16(lump[4:]))
	scoreStart := int(binary.LittleEndian.Uint16(lump[6:]))
	numInstruments := int(binary.LittleEndian.Uint16(lump[12:]))
	if musHeaderSize+numInstruments*2 > len(lump) || scoreStart+scoreLen > len(lump) {
		return nil, fmt.Errorf("%w: music %s score %d+%d with %d instruments in %d bytes",
			ErrOutOfBounds, name, scoreStart, scoreLen, numInstruments, len(lump))
	}

	m := &Music{
		Name:              name,
		PrimaryChannels:   int(binary.LittleEndian.Uint16(lump[8:])),
		SecondaryChannels: int(binary.LittleEndian.Uint16(lump[10:])),
		Instruments:       make([]uint16, numInstruments),
		Score:             append([]byte(nil), lump[scoreStart:scoreStart+scoreLen]...),
	}
	for i := range m.Instruments {
		m.Instruments[i] = binary.LittleEndian.Uint16(lump[musHeaderSize+i*2:])
	}
	return m, nil
}
