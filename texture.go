package wad

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
)

// TextureDef is a wall texture definition: a size plus the patches composed into it.
// Building the composite image is left to the caller.
type TextureDef struct {
	Name          string
	Index         int // Index into the list returned by TextureDefs
	IsMasked      bool
	Width, Height int
	Patches       []PatchRef
	PatchNames    []string // PNAMES entry for each of Patches
}

// Flat is a 64x64 floor or ceiling image stored as raw palette indexes.
type Flat struct {
	Name  string
	Index int // Index into flats list
	Data  []byte
}

const FlatWidth, FlatHeight = 64, 64

// Special lump names
const (
	SkyFlatName     = "F_SKY1"
	LumpPatchNames  = "PNAMES"
	FlatsStart      = "F_START"
	FlatsEnd        = "F_END"
	maxTextureLumps = 9
)

// PatchNames reads the PNAMES lump.
func (w *Archive) PatchNames() ([]string, error) {
	logger().Printf("Loading patch names ...\n")
	lump, err := w.Lump(LumpPatchNames)
	if err != nil {
		return nil, err
	}
	count, err := readCount(lump, LumpPatchNames)
	if err != nil {
		return nil, err
	}
	if need := 4 + count*NameSize; need > len(lump) {
		return nil, fmt.Errorf("%w: %s lists %d names in %d bytes", ErrOutOfBounds, LumpPatchNames, count, len(lump))
	}

	patchNames := make([]string, count)
	for i := range patchNames {
		var raw [NameSize]byte
		copy(raw[:], lump[4+i*NameSize:])
		name, err := DecodeName(raw)
		if err != nil {
			return nil, fmt.Errorf("wad: %s %d: %w", LumpPatchNames, i, err)
		}
		patchNames[i] = strings.ToUpper(name) // ToUpper required for "w94_1" patch
	}
	return patchNames, nil
}

// TextureDefs decodes every TEXTURE1 to TEXTURE9 lump present, in lump order.
func (w *Archive) TextureDefs() ([]TextureDef, error) {
	logger().Println("Loading textures ...")

	patchNames, err := w.PatchNames()
	if err != nil {
		return nil, err
	}

	var defs []TextureDef
	for i := 1; i <= maxTextureLumps; i++ {
		name := fmt.Sprintf("TEXTURE%v", i)
		lump, err := w.Lump(name)
		if err != nil {
			continue
		}
		logger().Printf("Loading %v ...", name)
		if defs, err = decodeTextureLump(name, lump, patchNames, defs); err != nil {
			return nil, err
		}
	}
	logger().Printf("Loaded %v textures", len(defs))
	return defs, nil
}

// decodeTextureLump appends the definitions of one TEXTUREn lump to defs.
func decodeTextureLump(name string, lump []byte, patchNames []string, defs []TextureDef) ([]TextureDef, error) {
	count, err := readCount(lump, name)
	if err != nil {
		return nil, err
	}
	if 4+count*4 > len(lump) {
		return nil, fmt.Errorf("%w: %s lists %d offsets in %d bytes", ErrOutOfBounds, name, count, len(lump))
	}

	headerSize, patchSize := KindTextureHeader.Size(), KindPatchRef.Size()
	for i := 0; i < count; i++ {
		offset := int(int32(binary.LittleEndian.Uint32(lump[4+i*4:])))
		if offset < 0 || offset+headerSize > len(lump) {
			return nil, fmt.Errorf("%w: %s texture %d at %d", ErrOutOfBounds, name, i, offset)
		}
		header, err := DecodeOne[TextureHeader](lump[offset:])
		if err != nil {
			return nil, fmt.Errorf("wad: %s texture %d: %w", name, i, err)
		}

		start := offset + headerSize
		end := start + int(header.NumPatches)*patchSize
		if end > len(lump) {
			return nil, fmt.Errorf("%w: %s texture %q patches end at %d", ErrOutOfBounds, name, header.Name, end)
		}
		patches, err := Decode[PatchRef](lump[start:end])
		if err != nil {
			return nil, err
		}

		names := make([]string, len(patches))
		for pi, p := range patches {
			if int(p.Patch) >= len(patchNames) {
				return nil, fmt.Errorf("%w: texture %q uses patch %d of %d", ErrOutOfBounds, header.Name, p.Patch, len(patchNames))
			}
			names[pi] = patchNames[p.Patch]
		}

		defs = append(defs, TextureDef{
			Name:       header.Name,
			Index:      len(defs),
			IsMasked:   header.Masked != 0,
			Width:      int(header.Width),
			Height:     int(header.Height),
			Patches:    patches,
			PatchNames: names,
		})
	}
	return defs, nil
}

// Flats reads the flat lumps between F_START and F_END, skipping inner marker lumps.
func (w *Archive) Flats() ([]Flat, error) {
	logger().Println("Loading flats ...")

	lumps, err := w.LumpsBetween(FlatsStart, FlatsEnd)
	if err != nil {
		return nil, err
	}
	var flats []Flat
	for _, li := range lumps {
		// Skip marker lumps
		if li.Size == 0 {
			continue
		}
		if li.Size != FlatWidth*FlatHeight {
			return nil, fmt.Errorf("%w: flat %s is %d bytes", ErrUnexpectedRecordSize, li.Name, li.Size)
		}
		flats = append(flats, Flat{
			Name:  li.Name,
			Index: len(flats),
			Data:  slices.Clone(w.LumpData(li)),
		})
	}
	logger().Printf("Loaded %v flats", len(flats))
	return flats, nil
}

// readCount reads the little-endian u32 element count that opens PNAMES and TEXTUREn.
func readCount(lump []byte, name string) (int, error) {
	if len(lump) < 4 {
		return 0, fmt.Errorf("%w: %s has no count", ErrOutOfBounds, name)
	}
	count := binary.LittleEndian.Uint32(lump)
	if uint64(count) > uint64(len(lump)) {
		return 0, fmt.Errorf("%w: %s count %d exceeds %d bytes", ErrOutOfBounds, name, count, len(lump))
	}
	return int(count), nil
}
