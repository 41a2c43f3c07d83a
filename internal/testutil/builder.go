// Package testutil builds small synthetic WAD archives for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

type lump struct {
	name string
	data []byte
}

// Builder assembles a WAD image: header, lump data in insertion order, then the directory.
type Builder struct {
	ident string
	lumps []lump
}

// NewBuilder starts an archive with the given magic, normally "IWAD" or "PWAD".
func NewBuilder(ident string) *Builder {
	return &Builder{ident: ident}
}

// Add appends a lump. Names longer than eight bytes are truncated.
func (b *Builder) Add(name string, data []byte) *Builder {
	b.lumps = append(b.lumps, lump{name, data})
	return b
}

// Marker appends a zero-size lump.
func (b *Builder) Marker(name string) *Builder {
	return b.Add(name, nil)
}

// Bytes returns the encoded archive.
func (b *Builder) Bytes() []byte {
	var data bytes.Buffer
	offsets := make([]int32, len(b.lumps))
	for i, l := range b.lumps {
		offsets[i] = int32(12 + data.Len())
		data.Write(l.data)
	}

	var out bytes.Buffer
	out.WriteString(b.ident)
	_ = binary.Write(&out, binary.LittleEndian, int32(len(b.lumps)))
	_ = binary.Write(&out, binary.LittleEndian, int32(12+data.Len()))
	out.Write(data.Bytes())
	for i, l := range b.lumps {
		_ = binary.Write(&out, binary.LittleEndian, offsets[i])
		_ = binary.Write(&out, binary.LittleEndian, int32(len(l.data)))
		out.Write(Name(l.name))
	}
	return out.Bytes()
}

// WriteFile writes the archive into a temp directory and returns its path.
func (b *Builder) WriteFile(t testing.TB, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Name returns s as an 8-byte NUL-padded lump name.
func Name(s string) []byte {
	var n [8]byte
	copy(n[:], s)
	return n[:]
}

// LE encodes fixed-size values little-endian, in order. Strings are written as 8-byte names.
func LE(vals ...any) []byte {
	var buf bytes.Buffer
	for _, v := range vals {
		if s, ok := v.(string); ok {
			buf.Write(Name(s))
			continue
		}
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}
	return buf.Bytes()
}
