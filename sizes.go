package wad

import (
	"errors"
	"fmt"
)

// canonicalSizes are the record sizes fixed by the original on-disk format.
var canonicalSizes = [numKinds]int{
	KindHeader:        12,
	KindLump:          16,
	KindThing:         10,
	KindVertex:        4,
	KindLinedef:       14,
	KindSidedef:       30,
	KindSector:        26,
	KindSubsector:     4,
	KindSeg:           12,
	KindNode:          28,
	KindTextureHeader: 22,
	KindPatchRef:      10,
}

// CanonicalSize returns the historical size of a record kind.
func CanonicalSize(k Kind) int {
	mustKind(k)
	return canonicalSizes[k]
}

// CheckSchemas verifies every schema against the canonical size table and checks that its
// fields tile the record exactly, starting at offset 0 with no gaps or overlaps.
func CheckSchemas() error {
	var errs []error
	for k, s := range schemas {
		if s.Kind != Kind(k) {
			errs = append(errs, fmt.Errorf("wad: schema %q registered as kind %d, declares %d", s.Name, k, int(s.Kind)))
		}
		if s.Size != canonicalSizes[k] {
			errs = append(errs, fmt.Errorf("wad: %s size %d, want %d", s.Name, s.Size, canonicalSizes[k]))
		}
		off := 0
		for _, f := range s.Fields {
			if f.Offset != off {
				errs = append(errs, fmt.Errorf("wad: %s.%s at offset %d, want %d", s.Name, f.Name, f.Offset, off))
			}
			off = f.Offset + f.Type.Width()
		}
		if off != s.Size {
			errs = append(errs, fmt.Errorf("wad: %s fields end at %d, size is %d", s.Name, off, s.Size))
		}
	}
	return errors.Join(errs...)
}

func init() {
	if err := CheckSchemas(); err != nil {
		panic(err)
	}
}
