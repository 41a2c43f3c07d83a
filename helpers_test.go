package wad

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stuarthighley/wadrec/internal/testutil"
)

// openBuilder opens the archive a builder describes, with no metadata.
func openBuilder(t *testing.T, b *testutil.Builder) *Archive {
	t.Helper()
	data := b.Bytes()
	w, err := Open(bytes.NewReader(data), int64(len(data)), nil)
	require.NoError(t, err)
	return w
}

// squareWAD is an IWAD holding one complete level followed by an unrelated lump.
func squareWAD() *testutil.Builder {
	return testutil.NewBuilder(IWAD).
		Add("PLAYPAL", make([]byte, NumPalettes*256*3)).
		SquareLevel("E1M1").
		Add("ENDOOM", make([]byte, 4000))
}
