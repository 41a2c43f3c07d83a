package wad

import "fmt"

// Kind identifies one of the fixed-layout record types found in a WAD.
type Kind int

const (
	KindHeader Kind = iota
	KindLump
	KindThing
	KindVertex
	KindLinedef
	KindSidedef
	KindSector
	KindSubsector
	KindSeg
	KindNode
	KindTextureHeader
	KindPatchRef
	numKinds
)

// FieldType is the numeric interpretation of a record field. All integers are little-endian.
type FieldType int

const (
	Int16 FieldType = iota
	Uint16
	Int32
	Uint32
	Tag4      // 4 raw bytes, used by the header magic
	NameField // 8-byte zero padded name
)

// Width returns the number of bytes a field of this type occupies.
func (t FieldType) Width() int {
	switch t {
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Tag4:
		return 4
	case NameField:
		return NameSize
	}
	panic(fmt.Sprintf("wad: unknown field type %d", int(t)))
}

func (t FieldType) String() string {
	switch t {
	case Int16:
		return "i16"
	case Uint16:
		return "u16"
	case Int32:
		return "i32"
	case Uint32:
		return "u32"
	case Tag4:
		return "tag4"
	case NameField:
		return "name"
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// Field is one entry of a record layout.
type Field struct {
	Name   string
	Offset int
	Type   FieldType
}

// Schema describes the exact on-disk layout of a record kind.
type Schema struct {
	Kind   Kind
	Name   string
	Size   int
	Fields []Field
}

// schemas is the single source of truth for every record layout.
// Offsets are stated explicitly; CheckSchemas verifies they leave no gaps.
var schemas = [numKinds]Schema{
	KindHeader: {KindHeader, "header", 12, []Field{
		{"identifier", 0, Tag4},
		{"num_lumps", 4, Int32},
		{"info_table_offset", 8, Int32},
	}},
	KindLump: {KindLump, "lump", 16, []Field{
		{"file_pos", 0, Int32},
		{"size", 4, Int32},
		{"name", 8, NameField},
	}},
	KindThing: {KindThing, "thing", 10, []Field{
		{"x", 0, Int16},
		{"y", 2, Int16},
		{"angle", 4, Int16},
		{"type", 6, Uint16},
		{"flags", 8, Uint16},
	}},
	KindVertex: {KindVertex, "vertex", 4, []Field{
		{"x", 0, Int16},
		{"y", 2, Int16},
	}},
	KindLinedef: {KindLinedef, "linedef", 14, []Field{
		{"start_vertex", 0, Uint16},
		{"end_vertex", 2, Uint16},
		{"flags", 4, Uint16},
		{"special_type", 6, Uint16},
		{"sector_tag", 8, Uint16},
		{"right_side", 10, Int16},
		{"left_side", 12, Int16},
	}},
	KindSidedef: {KindSidedef, "sidedef", 30, []Field{
		{"x_offset", 0, Int16},
		{"y_offset", 2, Int16},
		{"upper_texture", 4, NameField},
		{"lower_texture", 12, NameField},
		{"middle_texture", 20, NameField},
		{"sector", 28, Uint16},
	}},
	KindSector: {KindSector, "sector", 26, []Field{
		{"floor_height", 0, Int16},
		{"ceiling_height", 2, Int16},
		{"floor_texture", 4, NameField},
		{"ceiling_texture", 12, NameField},
		{"light", 20, Int16},
		{"type", 22, Uint16},
		{"tag", 24, Uint16},
	}},
	KindSubsector: {KindSubsector, "subsector", 4, []Field{
		{"num_segs", 0, Uint16},
		{"first_seg", 2, Uint16},
	}},
	KindSeg: {KindSeg, "seg", 12, []Field{
		{"start_vertex", 0, Uint16},
		{"end_vertex", 2, Uint16},
		{"angle", 4, Uint16},
		{"linedef", 6, Uint16},
		{"direction", 8, Uint16},
		{"offset", 10, Uint16},
	}},
	KindNode: {KindNode, "node", 28, []Field{
		{"line_x", 0, Int16},
		{"line_y", 2, Int16},
		{"step_x", 4, Int16},
		{"step_y", 6, Int16},
		{"right_y_max", 8, Int16},
		{"right_y_min", 10, Int16},
		{"right_x_max", 12, Int16},
		{"right_x_min", 14, Int16},
		{"left_y_max", 16, Int16},
		{"left_y_min", 18, Int16},
		{"left_x_max", 20, Int16},
		{"left_x_min", 22, Int16},
		{"right", 24, Uint16},
		{"left", 26, Uint16},
	}},
	KindTextureHeader: {KindTextureHeader, "texture header", 22, []Field{
		{"name", 0, NameField},
		{"masked", 8, Uint32},
		{"width", 12, Uint16},
		{"height", 14, Uint16},
		{"column_directory", 16, Uint32},
		{"num_patches", 20, Uint16},
	}},
	KindPatchRef: {KindPatchRef, "patch reference", 10, []Field{
		{"origin_x", 0, Int16},
		{"origin_y", 2, Int16},
		{"patch", 4, Uint16},
		{"stepdir", 6, Uint16},
		{"colormap", 8, Uint16},
	}},
}

// SchemaOf returns the layout for kind.
func SchemaOf(k Kind) Schema {
	mustKind(k)
	return schemas[k]
}

// mustKind panics on a kind outside the declared set. Kinds are compile-time constants,
// so an unknown one is a programming error rather than bad input.
func mustKind(k Kind) {
	if k < 0 || k >= numKinds {
		panic(fmt.Sprintf("wad: unknown record kind %d", int(k)))
	}
}

// Schemas returns every declared layout in Kind order.
func Schemas() []Schema {
	out := make([]Schema, len(schemas))
	copy(out, schemas[:])
	return out
}

// Size returns the canonical byte size of one record of this kind.
func (k Kind) Size() int {
	return SchemaOf(k).Size
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return schemas[k].Name
}
