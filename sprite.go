package wad

import "fmt"

const (
	SpritesStart = "S_START"
	SpritesEnd   = "S_END"
	maxFrameChar = ']' // Frames run past Z in some IWADs, e.g. VILE[1
)

// A sprite is a set of pictures that represent a 3D object and may have multiple rotations
// pre drawn. Lump names are NNNNFR or NNNNFRFR: a four letter sprite name, a frame letter and
// a rotation digit, where rotation 0 is used for all eight views. A second frame/rotation pair
// reuses the picture mirrored, thus NNNNF2F8 defines a mirrored patch.
type Sprite []SpriteFrame

// SpriteFrame holds one picture lump name per view direction.
type SpriteFrame [8]SpriteFrameDir

type SpriteFrameDir struct {
	Lump      string // Picture lump name, empty if the rotation is missing
	IsFlipped bool
}

// Sprites indexes the picture lumps between S_START and S_END by sprite name. Pictures are not
// decoded; use Picture with the Lump of a frame direction.
func (w *Archive) Sprites() (map[string]Sprite, error) {
	logger().Println("Loading sprites ...")
	lumps, err := w.LumpsBetween(SpritesStart, SpritesEnd)
	if err != nil {
		return nil, err
	}

	sprites := make(map[string]Sprite)
	for _, li := range lumps {
		// Skip marker lumps
		if li.Size == 0 {
			continue
		}
		name := normalizeName(li.Name)
		if len(name) != 6 && len(name) != 8 {
			return nil, fmt.Errorf("%w: sprite lump %q", ErrInvalidName, li.Name)
		}
		sprite := sprites[name[:4]]
		if err := addSpriteView(&sprite, li.Name, name[4], name[5], false); err != nil {
			return nil, err
		}
		if len(name) == 8 {
			if err := addSpriteView(&sprite, li.Name, name[6], name[7], true); err != nil {
				return nil, err
			}
		}
		sprites[name[:4]] = sprite
	}
	logger().Printf("Loaded %v sprites", len(sprites))
	return sprites, nil
}

func addSpriteView(sprite *Sprite, lump string, frameChar, rotChar byte, flipped bool) error {
	if frameChar < 'A' || frameChar > maxFrameChar || rotChar < '0' || rotChar > '8' {
		return fmt.Errorf("%w: sprite lump %q", ErrInvalidName, lump)
	}
	frame := int(frameChar - 'A')

	// Grow sprite slice to fit this frame
	for len(*sprite) <= frame {
		*sprite = append(*sprite, SpriteFrame{})
	}
	sf := &(*sprite)[frame]

	// If rotation zero, use this picture for all sprite directions
	if rotChar == '0' {
		if flipped {
			return fmt.Errorf("%w: sprite lump %q flips every rotation", ErrInvalidName, lump)
		}
		for i := range sf {
			sf[i] = SpriteFrameDir{Lump: lump}
		}
		return nil
	}
	sf[rotChar-'1'] = SpriteFrameDir{Lump: lump, IsFlipped: flipped}
	return nil
}
