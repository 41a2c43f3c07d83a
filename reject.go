package wad

import "fmt"

// Reject is the decoded REJECT lump, a sector by sector matrix. A set bit means a monster in
// the first sector can never see the player in the second.
type Reject struct {
	NumSectors int
	bits       []byte
}

// RejectTable decodes the level's REJECT lump against its sector count. A lump shorter than
// the matrix is rejected; trailing bytes are allowed.
func (l *Level) RejectTable() (*Reject, error) {
	n := len(l.Sectors)
	if need := (n*n + 7) / 8; len(l.Reject) < need {
		return nil, fmt.Errorf("%w: level %s REJECT is %d bytes, want %d", ErrUnexpectedRecordSize, l.Name, len(l.Reject), need)
	}
	return &Reject{NumSectors: n, bits: l.Reject}, nil
}

// Rejected reports whether the line of sight check from sector from to sector to can be
// skipped because the pair can never see each other.
func (r *Reject) Rejected(from, to int) bool {
	if from < 0 || to < 0 || from >= r.NumSectors || to >= r.NumSectors {
		return false
	}
	cell := from*r.NumSectors + to
	return r.bits[cell/8]&(1<<(cell%8)) != 0
}
