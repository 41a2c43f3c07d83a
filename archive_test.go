package wad

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuarthighley/wadrec/internal/testutil"
)

type failingReader struct{}

func (failingReader) ReadAt(p []byte, off int64) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestOpenHeader(t *testing.T) {
	w := openBuilder(t, testutil.NewBuilder(PWAD).Add("DEMO1", []byte{1, 2, 3}))
	assert.Equal(t, PWAD, w.Identifier())
	assert.Equal(t, 1, w.NumLumps())
	assert.Nil(t, w.Metadata())
}

func TestOpenErrors(t *testing.T) {
	good := testutil.NewBuilder(IWAD).Add("A", []byte{1, 2, 3, 4}).Bytes()

	badMagic := append([]byte("JUNK"), good[4:]...)
	dirPastEnd := bytes.Clone(good)
	dirPastEnd[8] = 0xf0 // info table offset
	lumpPastEnd := bytes.Clone(good)
	lumpPastEnd[len(lumpPastEnd)-12] = 0x7f // size of lump A
	badName := bytes.Clone(good)
	badName[len(badName)-8] = 0x01

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"bad magic", badMagic, ErrMalformedHeader},
		{"too small", []byte("IWAD"), ErrMalformedHeader},
		{"empty", nil, ErrMalformedHeader},
		{"directory past end", dirPastEnd, ErrOutOfBounds},
		{"lump past end", lumpPastEnd, ErrOutOfBounds},
		{"invalid lump name", badName, ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(bytes.NewReader(tt.data), int64(len(tt.data)), nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenIOError(t *testing.T) {
	_, err := Open(failingReader{}, 64, nil)
	assert.ErrorIs(t, err, ErrIO)

	// Claimed size larger than the source
	data := testutil.NewBuilder(IWAD).Bytes()
	_, err = Open(bytes.NewReader(data), int64(len(data))+10, nil)
	assert.ErrorIs(t, err, ErrIO)

	// Claimed size far beyond anything allocatable
	assert.NotPanics(t, func() {
		_, err = Open(bytes.NewReader([]byte("IWAD")), 1<<62, nil)
	})
	assert.ErrorIs(t, err, ErrIO)
}

func TestOpenCopiesSource(t *testing.T) {
	data := testutil.NewBuilder(IWAD).Add("COLORMAP", []byte{9, 9}).Bytes()
	w, err := Open(bytes.NewReader(data), int64(len(data)), bytes.NewReader([]byte("meta")))
	require.NoError(t, err)

	for i := range data {
		data[i] = 0
	}
	lump, err := w.Lump("COLORMAP")
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 9}, lump)
	assert.Equal(t, []byte("meta"), w.Metadata())
}

func TestLookup(t *testing.T) {
	w := openBuilder(t, testutil.NewBuilder(PWAD).
		Add("E1M1", nil).
		Add("DEMO1", []byte{1}).
		Add("demo1", []byte{2, 2}))

	li, err := w.Lookup("e1m1")
	require.NoError(t, err)
	assert.Equal(t, "E1M1", li.Name)

	// Last entry wins
	li, err = w.Lookup("DEMO1")
	require.NoError(t, err)
	assert.Equal(t, 2, li.Size)
	assert.Equal(t, "demo1", li.Name)

	_, err = w.Lookup("E1M2")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = w.Lump("E1M2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFind(t *testing.T) {
	w := openBuilder(t, testutil.NewBuilder(IWAD).
		Add("D_E1M1", []byte{0}).
		Add("E1M1", nil).
		Add("MAP01", nil).
		Add("e2m3", nil).
		Add("D_INTER", []byte{0}))

	names := func(lumps []LumpInfo) []string {
		var out []string
		for _, li := range lumps {
			out = append(out, li.Name)
		}
		return out
	}

	found, err := w.Find("E?M?")
	require.NoError(t, err)
	assert.Equal(t, []string{"E1M1", "e2m3"}, names(found))

	found, err = w.Find("d_*")
	require.NoError(t, err)
	assert.Equal(t, []string{"D_E1M1", "D_INTER"}, names(found))

	found, err = w.Find("NOPE*")
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = w.Find("[")
	assert.Error(t, err)
}

func TestLumpsBetween(t *testing.T) {
	w := openBuilder(t, testutil.NewBuilder(IWAD).
		Marker("F_START").
		Marker("F1_START").
		Add("FLOOR0_1", []byte{1}).
		Marker("F1_END").
		Marker("F_END").
		Add("AFTER", []byte{2}))

	lumps, err := w.LumpsBetween("f_start", "F_END")
	require.NoError(t, err)
	require.Len(t, lumps, 3)
	assert.Equal(t, "FLOOR0_1", lumps[1].Name)

	lumps, err = w.LumpsBetween("F_END", "")
	require.NoError(t, err)
	require.Len(t, lumps, 1)
	assert.Equal(t, "AFTER", lumps[0].Name)

	_, err = w.LumpsBetween("S_START", "S_END")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = w.LumpsBetween("F_END", "F_START")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLumpsIsACopy(t *testing.T) {
	w := openBuilder(t, testutil.NewBuilder(IWAD).Add("A", []byte{1}))
	lumps := w.Lumps()
	lumps[0].Name = "B"
	assert.Equal(t, "A", w.Lumps()[0].Name)
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	wadPath := squareWAD().WriteFile(t, "test.wad")
	metaPath := filepath.Join(dir, "doom.toml")
	require.NoError(t, os.WriteFile(metaPath, []byte("[[sky]]\nlevel_pattern = \"E1M*\"\ntexture_name = \"SKY1\"\n"), 0o644))

	w, err := OpenFile(wadPath, metaPath)
	require.NoError(t, err)
	assert.Equal(t, IWAD, w.Identifier())
	assert.Equal(t, []string{"E1M1"}, w.LevelNames())
	assert.Contains(t, string(w.Metadata()), "SKY1")

	_, err = OpenFile(filepath.Join(dir, "missing.wad"), "")
	assert.ErrorIs(t, err, ErrIO)

	_, err = OpenFile(wadPath, filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, ErrIO)
}
