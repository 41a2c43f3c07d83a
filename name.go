package wad

import (
	"bytes"
	"fmt"
	"strings"
)

// NameSize is the on-disk width of every lump, texture and flat name.
const NameSize = 8

// Name is the WAD eight-character name type. Short names are zero padded.
type Name [NameSize]byte

// String converts Name to string, stopping at the first zero byte
func (n Name) String() string {
	i := bytes.IndexByte(n[:], 0)
	if i == -1 {
		i = len(n)
	}
	return string(n[:i])
}

// Len returns the logical length of the name.
func (n Name) Len() int {
	return len(n.String())
}

// Equal reports whether two names match, ignoring case.
func (n Name) Equal(o Name) bool {
	return NamesEqual(n.String(), o.String())
}

// DecodeName validates a raw 8-byte name and returns its logical string.
// Every byte before the first zero must be printable ASCII and every byte after it must be zero.
func DecodeName(raw [NameSize]byte) (string, error) {
	end := NameSize
	for i, b := range raw {
		if b == 0 {
			if end == NameSize {
				end = i
			}
			continue
		}
		if end != NameSize {
			return "", fmt.Errorf("%w: %q has data after terminator", ErrInvalidName, raw[:])
		}
		if !isPrintable(b) {
			return "", fmt.Errorf("%w: %q has byte 0x%02x", ErrInvalidName, raw[:], b)
		}
	}
	return string(raw[:end]), nil
}

// EncodeName packs a logical name into its zero padded 8-byte form.
func EncodeName(s string) (Name, error) {
	var n Name
	if len(s) > NameSize {
		return n, fmt.Errorf("%w: %q", ErrNameTooLong, s)
	}
	for i := 0; i < len(s); i++ {
		if !isPrintable(s[i]) {
			return n, fmt.Errorf("%w: %q has byte 0x%02x", ErrInvalidName, s, s[i])
		}
	}
	copy(n[:], s)
	return n, nil
}

// NamesEqual compares two logical names case-insensitively. Lump lookups use this rule.
func NamesEqual(a, b string) bool {
	return normalizeName(a) == normalizeName(b)
}

// normalizeName is the key form used by the directory index.
func normalizeName(s string) string {
	return strings.ToUpper(s)
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
