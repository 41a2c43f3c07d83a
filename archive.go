// Package wad decodes Doom's data archives, also known as WAD files.
// The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html
package wad

import (
	"fmt"
	"io"
	"os"
	"path"

	arc "github.com/hashicorp/golang-lru/arc/v2"
	"golang.org/x/exp/mmap"
)

// Recognised header identifiers
const (
	IWAD = "IWAD" // Base game data
	PWAD = "PWAD" // Patch / add-on data
)

// DefaultLevelCacheSize is the number of decoded levels an Archive keeps by default.
const DefaultLevelCacheSize = 16

// Archive is an opened WAD. It holds its own copy of the archive bytes and never changes
// after Open returns, so it can be shared between goroutines.
type Archive struct {
	header     Header
	data       []byte
	lumpInfos  []LumpInfo
	lumpNums   map[string]int // normalised name -> last index with that name
	levels     []int          // directory index of each level marker
	metadata   []byte
	levelCache *arc.ARCCache[string, *Level]
}

// LumpInfo locates a named lump inside the archive bytes.
type LumpInfo struct {
	Name    string
	Filepos int
	Size    int
}

// Options tunes Open.
type Options struct {
	LevelCacheSize int // Decoded levels kept in memory; 0 means DefaultLevelCacheSize
}

// OpenFile opens the WAD at wadPath. metaPath names the sidecar metadata descriptor; it is read
// but not interpreted, and may be empty.
func OpenFile(wadPath, metaPath string) (*Archive, error) {
	return OpenFileWithOptions(wadPath, metaPath, Options{})
}

// OpenFileWithOptions is OpenFile with explicit options.
func OpenFileWithOptions(wadPath, metaPath string, opts Options) (*Archive, error) {
	logger().Printf("Opening %v ...", wadPath)

	r, err := mmap.Open(wadPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer r.Close()

	var meta io.Reader
	if metaPath != "" {
		f, err := os.Open(metaPath)
		if err != nil {
			return nil, fmt.Errorf("%w: metadata: %w", ErrIO, err)
		}
		defer f.Close()
		meta = f
	}

	return OpenWithOptions(r, int64(r.Len()), meta, opts)
}

// Open reads a WAD from data, which holds size bytes, plus an optional metadata source.
// Both sources are fully consumed before Open returns and are not retained.
func Open(data io.ReaderAt, size int64, meta io.Reader) (*Archive, error) {
	return OpenWithOptions(data, size, meta, Options{})
}

// OpenWithOptions is Open with explicit options.
func OpenWithOptions(data io.ReaderAt, size int64, meta io.Reader, opts Options) (*Archive, error) {
	logger().Println("Start reading WAD")

	if size < 0 {
		return nil, fmt.Errorf("%w: negative source size %d", ErrIO, size)
	}
	buf, err := io.ReadAll(io.NewSectionReader(data, 0, size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if int64(len(buf)) != size {
		return nil, fmt.Errorf("%w: read %d of %d bytes", ErrIO, len(buf), size)
	}

	// Read header
	if len(buf) < KindHeader.Size() {
		return nil, fmt.Errorf("%w: file too small for header (%d bytes)", ErrMalformedHeader, len(buf))
	}
	header, err := DecodeOne[Header](buf)
	if err != nil {
		return nil, err
	}
	if id := string(header.Identifier[:]); id != IWAD && id != PWAD {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedHeader, id)
	}

	w := &Archive{header: header, data: buf}
	if err := w.readInfoTables(); err != nil {
		return nil, err
	}

	if meta != nil {
		w.metadata, err = io.ReadAll(meta)
		if err != nil {
			return nil, fmt.Errorf("%w: metadata: %w", ErrIO, err)
		}
	}

	cacheSize := opts.LevelCacheSize
	if cacheSize == 0 {
		cacheSize = DefaultLevelCacheSize
	}
	w.levelCache, err = arc.NewARC[string, *Level](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("wad: level cache: %w", err)
	}

	logger().Printf("Read %v lumps, %v levels", len(w.lumpInfos), len(w.levels))
	return w, nil
}

// readInfoTables decodes the lump directory and indexes it by name and level marker.
func (w *Archive) readInfoTables() error {
	size := int64(len(w.data))
	num, ofs := int64(w.header.NumLumps), int64(w.header.InfoTableOffset)
	end := ofs + num*int64(KindLump.Size())
	if num < 0 || ofs < 0 || end > size {
		return fmt.Errorf("%w: directory of %d lumps at %d exceeds %d bytes", ErrOutOfBounds, num, ofs, size)
	}
	entries, err := Decode[LumpEntry](w.data[ofs:end])
	if err != nil {
		return fmt.Errorf("wad: lump directory: %w", err)
	}

	lumpNums := make(map[string]int, len(entries))
	lumpInfos := make([]LumpInfo, len(entries))
	var levels []int
	for i, e := range entries {
		pos, n := int64(e.FilePos), int64(e.Size)
		if pos < 0 || n < 0 || pos+n > size {
			return fmt.Errorf("%w: lump %d %q spans %d+%d of %d bytes", ErrOutOfBounds, i, e.Name, pos, n, size)
		}
		lumpInfos[i] = LumpInfo{Name: e.Name, Filepos: int(pos), Size: int(n)}
		lumpNums[normalizeName(e.Name)] = i
		if i > 0 && NamesEqual(e.Name, "THINGS") {
			levels = append(levels, i-1)
		}
	}
	w.lumpInfos = lumpInfos
	w.lumpNums = lumpNums
	w.levels = levels
	return nil
}

// Identifier returns the header magic, IWAD or PWAD.
func (w *Archive) Identifier() string {
	return string(w.header.Identifier[:])
}

// NumLumps returns the number of directory entries.
func (w *Archive) NumLumps() int {
	return len(w.lumpInfos)
}

// Lumps returns the lump directory in file order.
func (w *Archive) Lumps() []LumpInfo {
	out := make([]LumpInfo, len(w.lumpInfos))
	copy(out, w.lumpInfos)
	return out
}

// Metadata returns the raw bytes of the metadata descriptor, or nil if none was given.
func (w *Archive) Metadata() []byte {
	return w.metadata
}

// Lookup finds a lump by name, ignoring case. When several lumps share a name the last one
// in the directory wins, as it does in the game.
func (w *Archive) Lookup(name string) (LumpInfo, error) {
	i, ok := w.lumpNums[normalizeName(name)]
	if !ok {
		return LumpInfo{}, fmt.Errorf("%w: lump %q", ErrNotFound, name)
	}
	return w.lumpInfos[i], nil
}

// Find returns every lump whose name matches a path.Match pattern such as "E?M?" or "D_*",
// ignoring case, in directory order.
func (w *Archive) Find(pattern string) ([]LumpInfo, error) {
	pattern = normalizeName(pattern)
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("wad: pattern %q: %w", pattern, err)
	}
	var out []LumpInfo
	for _, li := range w.lumpInfos {
		if ok, _ := path.Match(pattern, normalizeName(li.Name)); ok {
			out = append(out, li)
		}
	}
	return out, nil
}

// LumpsBetween returns the lumps strictly between the first lump named start and the next
// lump named end. An empty end runs to the end of the directory.
func (w *Archive) LumpsBetween(start, end string) ([]LumpInfo, error) {
	first := w.indexFrom(0, start)
	if first < 0 {
		return nil, fmt.Errorf("%w: marker %q", ErrNotFound, start)
	}
	last := len(w.lumpInfos)
	if end != "" {
		last = w.indexFrom(first+1, end)
		if last < 0 {
			return nil, fmt.Errorf("%w: marker %q after %q", ErrNotFound, end, start)
		}
	}
	out := make([]LumpInfo, last-first-1)
	copy(out, w.lumpInfos[first+1:last])
	return out, nil
}

// indexFrom returns the first directory index at or after from named name, or -1.
func (w *Archive) indexFrom(from int, name string) int {
	for i := from; i < len(w.lumpInfos); i++ {
		if NamesEqual(w.lumpInfos[i].Name, name) {
			return i
		}
	}
	return -1
}

// LumpData returns the bytes of a lump. The slice aliases the archive's copy and must not be
// modified.
func (w *Archive) LumpData(li LumpInfo) []byte {
	return w.data[li.Filepos : li.Filepos+li.Size : li.Filepos+li.Size]
}

// Lump returns the bytes of the named lump. See LumpData.
func (w *Archive) Lump(name string) ([]byte, error) {
	li, err := w.Lookup(name)
	if err != nil {
		return nil, err
	}
	return w.LumpData(li), nil
}
