package wad

import "errors"

var (
	// ErrIO indicates the archive source could not be read.
	ErrIO = errors.New("wad: i/o error")
	// ErrMalformedHeader indicates the header magic is neither IWAD nor PWAD.
	ErrMalformedHeader = errors.New("wad: malformed header")
	// ErrOutOfBounds indicates an offset or count points outside the available bytes.
	ErrOutOfBounds = errors.New("wad: out of bounds")
	// ErrUnexpectedRecordSize indicates a lump is not a whole number of records.
	ErrUnexpectedRecordSize = errors.New("wad: unexpected record size")
	// ErrInvalidName indicates an 8-byte name holds non-ASCII bytes or bytes after its terminator.
	ErrInvalidName = errors.New("wad: invalid name")
	// ErrNameTooLong indicates a name longer than 8 characters.
	ErrNameTooLong = errors.New("wad: name too long")
	// ErrNotFound indicates a lump lookup miss.
	ErrNotFound = errors.New("wad: not found")
)
