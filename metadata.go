package wad

import (
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
)

// Metadata is the sidecar descriptor shipped next to a WAD (doom.toml). It carries the facts
// the archive itself does not record: which sky belongs to which level, and which textures
// animate together.
type Metadata struct {
	Sky        []SkyMetadata     `toml:"sky"`
	Animations AnimationMetadata `toml:"animations"`
}

type SkyMetadata struct {
	LevelPattern  string  `toml:"level_pattern"` // path.Match pattern, e.g. "E1M*"
	TextureName   string  `toml:"texture_name"`
	TiledBandSize float64 `toml:"tiled_band_size"`
}

// AnimationMetadata lists animation cycles; each inner slice is one cycle's frames in order.
type AnimationMetadata struct {
	Walls [][]string `toml:"walls"`
	Flats [][]string `toml:"flats"`
}

// ParseMetadata decodes a TOML metadata descriptor and validates every name in it.
func ParseMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("wad: metadata: %w", err)
	}
	for i, s := range m.Sky {
		if _, err := path.Match(s.LevelPattern, ""); err != nil {
			return nil, fmt.Errorf("wad: metadata sky %d pattern %q: %w", i, s.LevelPattern, err)
		}
		if _, err := EncodeName(s.TextureName); err != nil {
			return nil, fmt.Errorf("wad: metadata sky %d: %w", i, err)
		}
	}
	for _, group := range [][][]string{m.Animations.Walls, m.Animations.Flats} {
		for _, frames := range group {
			for _, name := range frames {
				if _, err := EncodeName(name); err != nil {
					return nil, fmt.Errorf("wad: metadata animation: %w", err)
				}
			}
		}
	}
	return &m, nil
}

// SkyFor returns the first sky whose level pattern matches level, ignoring case.
func (m *Metadata) SkyFor(level string) (SkyMetadata, bool) {
	for _, s := range m.Sky {
		if ok, _ := path.Match(normalizeName(s.LevelPattern), normalizeName(level)); ok {
			return s, true
		}
	}
	return SkyMetadata{}, false
}

// WallAnimation returns the wall animation cycle that contains texture.
func (m *Metadata) WallAnimation(texture string) ([]string, bool) {
	return findAnimation(m.Animations.Walls, texture)
}

// FlatAnimation returns the flat animation cycle that contains flat.
func (m *Metadata) FlatAnimation(flat string) ([]string, bool) {
	return findAnimation(m.Animations.Flats, flat)
}

func findAnimation(cycles [][]string, name string) ([]string, bool) {
	for _, frames := range cycles {
		for _, f := range frames {
			if NamesEqual(f, name) {
				return frames, true
			}
		}
	}
	return nil, false
}
