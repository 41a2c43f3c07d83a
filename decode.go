package wad

import (
	"encoding/binary"
	"fmt"
)

// Record is any decoded fixed-layout record.
type Record interface {
	Kind() Kind
}

// recordPtr is satisfied by pointers to record structs that know how to fill themselves
// from a field cursor.
type recordPtr[T any] interface {
	*T
	Record
	decode(r *fieldReader)
}

// Decode interprets data as a packed array of records of type T, in file order.
// len(data) must be a whole multiple of the record's canonical size.
func Decode[T any, PT recordPtr[T]](data []byte) ([]T, error) {
	var zero T
	schema := &schemas[PT(&zero).Kind()]
	if len(data)%schema.Size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %s size %d",
			ErrUnexpectedRecordSize, len(data), schema.Name, schema.Size)
	}
	count := len(data) / schema.Size
	out := make([]T, count)
	r := fieldReader{schema: schema}
	for i := range out {
		r.reset(data[i*schema.Size : (i+1)*schema.Size])
		PT(&out[i]).decode(&r)
		if r.err != nil {
			return nil, fmt.Errorf("wad: %s %d: %w", schema.Name, i, r.err)
		}
	}
	return out, nil
}

// DecodeOne decodes a single record from the start of data. Trailing bytes are ignored.
func DecodeOne[T any, PT recordPtr[T]](data []byte) (T, error) {
	var rec T
	schema := &schemas[PT(&rec).Kind()]
	if len(data) < schema.Size {
		return rec, fmt.Errorf("%w: %s needs %d bytes, have %d",
			ErrOutOfBounds, schema.Name, schema.Size, len(data))
	}
	r := fieldReader{schema: schema}
	r.reset(data[:schema.Size])
	PT(&rec).decode(&r)
	if r.err != nil {
		return rec, fmt.Errorf("wad: %s: %w", schema.Name, r.err)
	}
	return rec, nil
}

// DecodeAll decodes data as a sequence of kind records. It is the dynamic counterpart of Decode
// for callers that select the record kind at run time. Elements are pointers to the decoded
// structs, e.g. *Vertex for KindVertex.
func DecodeAll(kind Kind, data []byte) ([]Record, error) {
	switch kind {
	case KindHeader:
		return decodeRecords[Header](data)
	case KindLump:
		return decodeRecords[LumpEntry](data)
	case KindThing:
		return decodeRecords[Thing](data)
	case KindVertex:
		return decodeRecords[Vertex](data)
	case KindLinedef:
		return decodeRecords[Linedef](data)
	case KindSidedef:
		return decodeRecords[Sidedef](data)
	case KindSector:
		return decodeRecords[Sector](data)
	case KindSubsector:
		return decodeRecords[Subsector](data)
	case KindSeg:
		return decodeRecords[Seg](data)
	case KindNode:
		return decodeRecords[Node](data)
	case KindTextureHeader:
		return decodeRecords[TextureHeader](data)
	case KindPatchRef:
		return decodeRecords[PatchRef](data)
	}
	return nil, fmt.Errorf("wad: unknown record kind %d", int(kind))
}

// Typed decoders for the map record lumps.

func DecodeThings(data []byte) ([]Thing, error) { return Decode[Thing](data) }
func DecodeVertices(data []byte) ([]Vertex, error) { return Decode[Vertex](data) }
func DecodeLinedefs(data []byte) ([]Linedef, error) { return Decode[Linedef](data) }
func DecodeSidedefs(data []byte) ([]Sidedef, error) { return Decode[Sidedef](data) }
func DecodeSectors(data []byte) ([]Sector, error) { return Decode[Sector](data) }
func DecodeSubsectors(data []byte) ([]Subsector, error) { return Decode[Subsector](data) }
func DecodeSegs(data []byte) ([]Seg, error) { return Decode[Seg](data) }
func DecodeNodes(data []byte) ([]Node, error) { return Decode[Node](data) }

func decodeRecords[T any, PT recordPtr[T]](data []byte) ([]Record, error) {
	recs, err := Decode[T, PT](data)
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(recs))
	for i := range recs {
		out[i] = PT(&recs[i])
	}
	return out, nil
}

// fieldReader walks the fields of one record window in schema order. Every read asserts the
// schema's declared type.
type fieldReader struct {
	schema *Schema
	buf    []byte
	i      int
	err    error
}

func (r *fieldReader) reset(window []byte) {
	r.buf = window
	r.i = 0
	r.err = nil
}

func (r *fieldReader) next(t FieldType) []byte {
	if r.i >= len(r.schema.Fields) {
		panic(fmt.Sprintf("wad: %s has only %d fields", r.schema.Name, len(r.schema.Fields)))
	}
	f := r.schema.Fields[r.i]
	if f.Type != t {
		panic(fmt.Sprintf("wad: %s.%s is %v, read as %v", r.schema.Name, f.Name, f.Type, t))
	}
	r.i++
	return r.buf[f.Offset : f.Offset+t.Width()]
}

func (r *fieldReader) i16() int16 {
	return int16(binary.LittleEndian.Uint16(r.next(Int16)))
}

func (r *fieldReader) u16() uint16 {
	return binary.LittleEndian.Uint16(r.next(Uint16))
}

func (r *fieldReader) i32() int32 {
	return int32(binary.LittleEndian.Uint32(r.next(Int32)))
}

func (r *fieldReader) u32() uint32 {
	return binary.LittleEndian.Uint32(r.next(Uint32))
}

func (r *fieldReader) tag4() [4]byte {
	var t [4]byte
	copy(t[:], r.next(Tag4))
	return t
}

// name decodes a name field. The first failure is kept and later names decode as empty.
func (r *fieldReader) name() string {
	var raw [NameSize]byte
	copy(raw[:], r.next(NameField))
	if r.err != nil {
		return ""
	}
	s, err := DecodeName(raw)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", r.schema.Fields[r.i-1].Name, err)
	}
	return s
}
