package wad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRoundTrip(t *testing.T) {
	names := []string{"A", "E1M1", "MAP01", "F_SKY1", "STARTAN3", "w94_1", "~ !{}|%", "DS-12345"}
	for n := 1; n <= NameSize; n++ {
		names = append(names, strings.Repeat("Z", n))
	}
	// Every printable byte in every position
	for c := byte(0x20); c <= 0x7e; c++ {
		names = append(names, strings.Repeat(string(c), int(c)%NameSize+1))
	}

	for _, name := range names {
		encoded, err := EncodeName(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, encoded.String())
		assert.Equal(t, len(name), encoded.Len())

		decoded, err := DecodeName(encoded)
		require.NoError(t, err, name)
		assert.Equal(t, name, decoded)
	}
}

func TestDecodeName(t *testing.T) {
	tests := []struct {
		name    string
		raw     [NameSize]byte
		want    string
		wantErr error
	}{
		{name: "empty", raw: [NameSize]byte{}, want: ""},
		{name: "full width", raw: [NameSize]byte{'S', 'T', 'A', 'R', 'T', 'A', 'N', '3'}, want: "STARTAN3"},
		{name: "padded", raw: [NameSize]byte{'E', '1', 'M', '1'}, want: "E1M1"},
		{name: "data after terminator", raw: [NameSize]byte{'E', '1', 0, 'X'}, wantErr: ErrInvalidName},
		{name: "control byte", raw: [NameSize]byte{'A', 0x07}, wantErr: ErrInvalidName},
		{name: "high byte", raw: [NameSize]byte{0xc4, 'B'}, wantErr: ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeName(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeNameErrors(t *testing.T) {
	_, err := EncodeName("TOOLONGNAME")
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = EncodeName("BAD\tNAME")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = EncodeName("É1M1")
	assert.Error(t, err)

	n, err := EncodeName("")
	require.NoError(t, err)
	assert.Equal(t, Name{}, n)
}

func TestNamesEqual(t *testing.T) {
	assert.True(t, NamesEqual("E1M1", "e1m1"))
	assert.True(t, NamesEqual("", ""))
	assert.False(t, NamesEqual("E1M1", "E1M10"))

	a, _ := EncodeName("flat5")
	b, _ := EncodeName("FLAT5")
	assert.True(t, a.Equal(b))
}
