package wad

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Sound lumps in the WAD file are stored in the DMX format; which consists of a short header
// followed by raw 8-bit, monaural (PCM) unsigned data, typically at a sampling rate of 11025 Hz,
// although some sounds use 22050 Hz. Each sample is one byte (8 bits).
type Sound struct {
	Name       string
	SampleRate int
	Samples    []byte
}

const (
	dmxFormat     = 3
	dmxHeaderSize = 8
	dmxPadding    = 16 // Pad bytes before and after the samples, counted in the header
)

// SoundNames returns the names of the DS* sound effect lumps in directory order.
func (w *Archive) SoundNames() []string {
	var names []string
	for _, li := range w.lumpInfos {
		if strings.HasPrefix(normalizeName(li.Name), "DS") {
			names = append(names, li.Name)
		}
	}
	return names
}

// Sound reads and decodes a DMX sound lump.
func (w *Archive) Sound(name string) (*Sound, error) {
	lump, err := w.Lump(name)
	if err != nil {
		return nil, err
	}
	return DecodeSound(name, lump)
}

// DecodeSound decodes a DMX sound lump. The returned samples are a copy.
func DecodeSound(name string, lump []byte) (*Sound, error) {
	if len(lump) < dmxHeaderSize {
		return nil, fmt.Errorf("%w: sound %s is %d bytes", ErrOutOfBounds, name, len(lump))
	}
	format := binary.LittleEndian.Uint16(lump[0:])
	if format != dmxFormat {
		return nil, fmt.Errorf("%w: sound %s has format %d", ErrMalformedHeader, name, format)
	}
	count := int(binary.LittleEndian.Uint32(lump[4:]))
	if count < 2*dmxPadding || dmxHeaderSize+count > len(lump) {
		return nil, fmt.Errorf("%w: sound %s claims %d bytes in %d", ErrOutOfBounds, name, count, len(lump))
	}
	start := dmxHeaderSize + dmxPadding
	end := dmxHeaderSize + count - dmxPadding
	return &Sound{
		Name:       name,
		SampleRate: int(binary.LittleEndian.Uint16(lump[2:])),
		Samples:    append([]byte(nil), lump[start:end]...),
	}, nil
}
