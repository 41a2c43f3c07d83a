package wad

// Header is the 12-byte record at the start of every WAD.
type Header struct {
	Identifier      [4]byte // "IWAD" or "PWAD"
	NumLumps        int32
	InfoTableOffset int32
}

func (Header) Kind() Kind { return KindHeader }

func (h *Header) decode(r *fieldReader) {
	h.Identifier = r.tag4()
	h.NumLumps = r.i32()
	h.InfoTableOffset = r.i32()
}

// LumpEntry is one 16-byte record of the lump directory.
type LumpEntry struct {
	FilePos int32
	Size    int32
	Name    string
}

func (LumpEntry) Kind() Kind { return KindLump }

func (l *LumpEntry) decode(r *fieldReader) {
	l.FilePos = r.i32()
	l.Size = r.i32()
	l.Name = r.name()
}

// Thing is a placed object: player start, monster, item or decoration.
type Thing struct {
	X, Y  int16
	Angle int16 // Degrees, 0 is east, counter-clockwise
	Type  uint16
	Flags ThingFlags
}

func (Thing) Kind() Kind { return KindThing }

func (t *Thing) decode(r *fieldReader) {
	t.X = r.i16()
	t.Y = r.i16()
	t.Angle = r.i16()
	t.Type = r.u16()
	t.Flags = ThingFlags(r.u16())
}

type Vertex struct {
	X, Y int16
}

func (Vertex) Kind() Kind { return KindVertex }

func (v *Vertex) decode(r *fieldReader) {
	v.X = r.i16()
	v.Y = r.i16()
}

// NoSide marks an absent sidedef on a one-sided linedef.
const NoSide = -1

type Linedef struct {
	StartVertex, EndVertex uint16
	Flags                  LinedefFlags
	SpecialType            uint16
	SectorTag              uint16
	RightSide, LeftSide    int16 // NoSide if absent
}

func (Linedef) Kind() Kind { return KindLinedef }

func (l *Linedef) decode(r *fieldReader) {
	l.StartVertex = r.u16()
	l.EndVertex = r.u16()
	l.Flags = LinedefFlags(r.u16())
	l.SpecialType = r.u16()
	l.SectorTag = r.u16()
	l.RightSide = r.i16()
	l.LeftSide = r.i16()
}

// NoTexture is the texture name used by sidedefs for an empty wall section.
const NoTexture = "-"

type Sidedef struct {
	XOffset, YOffset int16
	UpperTexture     string
	LowerTexture     string
	MiddleTexture    string
	Sector           uint16
}

func (Sidedef) Kind() Kind { return KindSidedef }

func (s *Sidedef) decode(r *fieldReader) {
	s.XOffset = r.i16()
	s.YOffset = r.i16()
	s.UpperTexture = r.name()
	s.LowerTexture = r.name()
	s.MiddleTexture = r.name()
	s.Sector = r.u16()
}

type Sector struct {
	FloorHeight, CeilingHeight int16
	FloorTexture               string
	CeilingTexture             string
	Light                      int16
	Type                       uint16
	Tag                        uint16
}

func (Sector) Kind() Kind { return KindSector }

func (s *Sector) decode(r *fieldReader) {
	s.FloorHeight = r.i16()
	s.CeilingHeight = r.i16()
	s.FloorTexture = r.name()
	s.CeilingTexture = r.name()
	s.Light = r.i16()
	s.Type = r.u16()
	s.Tag = r.u16()
}

type Subsector struct {
	NumSegs  uint16
	FirstSeg uint16
}

func (Subsector) Kind() Kind { return KindSubsector }

func (s *Subsector) decode(r *fieldReader) {
	s.NumSegs = r.u16()
	s.FirstSeg = r.u16()
}

type Seg struct {
	StartVertex, EndVertex uint16
	Angle                  uint16 // Binary angle, full circle is 0x10000
	Linedef                uint16
	Direction              uint16 // 0 - same as linedef, 1 - opposite to linedef
	Offset                 uint16 // Distance along linedef to start of seg
}

func (Seg) Kind() Kind { return KindSeg }

func (s *Seg) decode(r *fieldReader) {
	s.StartVertex = r.u16()
	s.EndVertex = r.u16()
	s.Angle = r.u16()
	s.Linedef = r.u16()
	s.Direction = r.u16()
	s.Offset = r.u16()
}

// BoundBox is a node child's bounding box in map units.
type BoundBox struct {
	YMax, YMin, XMax, XMin int16
}

// SubsectorChild is set on a node child index that refers to a subsector rather than a node.
const SubsectorChild = 0x8000

type Node struct {
	LineX, LineY int16
	StepX, StepY int16
	RightBox     BoundBox
	LeftBox      BoundBox
	Right, Left  uint16 // Child indexes, see SubsectorChild
}

func (Node) Kind() Kind { return KindNode }

func (n *Node) decode(r *fieldReader) {
	n.LineX = r.i16()
	n.LineY = r.i16()
	n.StepX = r.i16()
	n.StepY = r.i16()
	n.RightBox = BoundBox{YMax: r.i16(), YMin: r.i16(), XMax: r.i16(), XMin: r.i16()}
	n.LeftBox = BoundBox{YMax: r.i16(), YMin: r.i16(), XMax: r.i16(), XMin: r.i16()}
	n.Right = r.u16()
	n.Left = r.u16()
}

// Child returns the index of the child on side (0 right, 1 left) and whether it is a subsector.
func (n *Node) Child(side int) (index int, subsector bool) {
	c := n.Right
	if side != 0 {
		c = n.Left
	}
	return int(c &^ SubsectorChild), c&SubsectorChild != 0
}

// TextureHeader opens each texture definition inside a TEXTUREn lump.
type TextureHeader struct {
	Name            string
	Masked          uint32
	Width, Height   uint16
	ColumnDirectory uint32 // Unused
	NumPatches      uint16
}

func (TextureHeader) Kind() Kind { return KindTextureHeader }

func (t *TextureHeader) decode(r *fieldReader) {
	t.Name = r.name()
	t.Masked = r.u32()
	t.Width = r.u16()
	t.Height = r.u16()
	t.ColumnDirectory = r.u32()
	t.NumPatches = r.u16()
}

// PatchRef places one PNAMES patch inside a texture.
type PatchRef struct {
	OriginX, OriginY int16 // Offset of patch relative to upper-left of texture
	Patch            uint16
	StepDir          uint16 // Unused
	ColorMap         uint16 // Unused
}

func (PatchRef) Kind() Kind { return KindPatchRef }

func (p *PatchRef) decode(r *fieldReader) {
	p.OriginX = r.i16()
	p.OriginY = r.i16()
	p.Patch = r.u16()
	p.StepDir = r.u16()
	p.ColorMap = r.u16()
}
