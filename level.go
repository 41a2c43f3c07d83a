package wad

import (
	"fmt"
	"slices"
)

// Level lump names, in the order the map editors write them.
const (
	LumpThings   = "THINGS"
	LumpLinedefs = "LINEDEFS"
	LumpSidedefs = "SIDEDEFS"
	LumpVertexes = "VERTEXES"
	LumpSegs     = "SEGS"
	LumpSSectors = "SSECTORS"
	LumpNodes    = "NODES"
	LumpSectors  = "SECTORS"
	LumpReject   = "REJECT"
	LumpBlockmap = "BLOCKMAP"
	LumpBehavior = "BEHAVIOR"
)

var levelLumpNames = []string{
	LumpThings, LumpLinedefs, LumpSidedefs, LumpVertexes, LumpSegs,
	LumpSSectors, LumpNodes, LumpSectors, LumpReject, LumpBlockmap, LumpBehavior,
}

// IsLevelLump reports whether name belongs to a level's lump block.
func IsLevelLump(name string) bool {
	return slices.Contains(levelLumpNames, normalizeName(name))
}

// Level holds the decoded record lumps of one map. Level values are shared between callers
// and must be treated as read-only.
type Level struct {
	Name       string
	Things     []Thing
	Linedefs   []Linedef
	Sidedefs   []Sidedef
	Vertexes   []Vertex
	Segs       []Seg
	Subsectors []Subsector
	Nodes      []Node
	Sectors    []Sector
	Reject     []byte // Raw sector visibility matrix, may be empty
	Blockmap   []byte // Raw collision grid, may be empty
}

// RootNode returns the index of the BSP root, which is the last node.
func (l *Level) RootNode() int {
	return len(l.Nodes) - 1
}

// NumLevels returns the number of level markers found in the directory.
func (w *Archive) NumLevels() int {
	return len(w.levels)
}

// LevelName returns the marker name of the i'th level in directory order. It panics if i is
// not below NumLevels.
func (w *Archive) LevelName(i int) string {
	if i < 0 || i >= len(w.levels) {
		panic(fmt.Sprintf("wad: level %d of %d", i, len(w.levels)))
	}
	return w.lumpInfos[w.levels[i]].Name
}

// LevelNames returns the level marker names in directory order.
func (w *Archive) LevelNames() []string {
	result := make([]string, 0, len(w.levels))
	for _, idx := range w.levels {
		result = append(result, w.lumpInfos[idx].Name)
	}
	return result
}

// LevelLumps returns the lump block of a level: the lumps following its marker, up to the
// first lump that is not a level lump or the end of the directory.
func (w *Archive) LevelLumps(name string) ([]LumpInfo, error) {
	marker := w.levelMarker(name)
	if marker < 0 {
		return nil, fmt.Errorf("%w: level %q", ErrNotFound, name)
	}
	end := marker + 1
	for end < len(w.lumpInfos) && IsLevelLump(w.lumpInfos[end].Name) {
		end++
	}
	out := make([]LumpInfo, end-marker-1)
	copy(out, w.lumpInfos[marker+1:end])
	return out, nil
}

// ReadLevel decodes a level's record lumps. Decoded levels are kept in the archive's ARC cache.
func (w *Archive) ReadLevel(name string) (*Level, error) {
	key := normalizeName(name)
	if l, ok := w.levelCache.Get(key); ok {
		return l, nil
	}

	logger().Printf("Reading Level %v ...", name)
	lumps, err := w.LevelLumps(name)
	if err != nil {
		return nil, err
	}
	byName := make(map[string][]byte, len(lumps))
	for _, li := range lumps {
		byName[normalizeName(li.Name)] = w.LumpData(li)
	}
	required := func(lump string) ([]byte, error) {
		data, ok := byName[lump]
		if !ok {
			return nil, fmt.Errorf("%w: level %s has no %s lump", ErrNotFound, name, lump)
		}
		return data, nil
	}

	level := &Level{Name: w.lumpInfos[w.levelMarker(name)].Name}
	if err := decodeLump(required, LumpThings, &level.Things); err != nil {
		return nil, err
	}
	if err := decodeLump(required, LumpLinedefs, &level.Linedefs); err != nil {
		return nil, err
	}
	if err := decodeLump(required, LumpSidedefs, &level.Sidedefs); err != nil {
		return nil, err
	}
	if err := decodeLump(required, LumpVertexes, &level.Vertexes); err != nil {
		return nil, err
	}
	if err := decodeLump(required, LumpSegs, &level.Segs); err != nil {
		return nil, err
	}
	if err := decodeLump(required, LumpSSectors, &level.Subsectors); err != nil {
		return nil, err
	}
	if err := decodeLump(required, LumpNodes, &level.Nodes); err != nil {
		return nil, err
	}
	if err := decodeLump(required, LumpSectors, &level.Sectors); err != nil {
		return nil, err
	}
	level.Reject = slices.Clone(byName[LumpReject])
	level.Blockmap = slices.Clone(byName[LumpBlockmap])

	logger().Printf("Read %v things, %v linedefs, %v sectors", len(level.Things), len(level.Linedefs), len(level.Sectors))
	w.levelCache.Add(key, level)
	return level, nil
}

// levelMarker returns the directory index of a level's marker lump, or -1.
func (w *Archive) levelMarker(name string) int {
	for _, idx := range w.levels {
		if NamesEqual(w.lumpInfos[idx].Name, name) {
			return idx
		}
	}
	return -1
}

// decodeLump decodes the named lump into dst.
func decodeLump[T any, PT recordPtr[T]](lump func(string) ([]byte, error), name string, dst *[]T) error {
	data, err := lump(name)
	if err != nil {
		return err
	}
	recs, err := Decode[T, PT](data)
	if err != nil {
		return fmt.Errorf("wad: %s: %w", name, err)
	}
	*dst = recs
	return nil
}
