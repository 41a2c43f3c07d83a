package testutil

// SquareLevel appends a minimal valid map: a 64x64 room with one sector, one subsector and
// one BSP node. The first linedef is impassable with special 1, its sector tag is 7.
func (b *Builder) SquareLevel(marker string) *Builder {
	b.Marker(marker)
	b.Add("THINGS", LE(
		int16(32), int16(32), int16(90), uint16(1), uint16(0x0007),
		int16(16), int16(48), int16(180), uint16(3004), uint16(0x0008),
	))
	b.Add("LINEDEFS", LE(
		uint16(0), uint16(1), uint16(0x0001), uint16(1), uint16(7), int16(0), int16(-1),
		uint16(1), uint16(2), uint16(0x0001), uint16(0), uint16(0), int16(0), int16(-1),
		uint16(2), uint16(3), uint16(0x0001), uint16(0), uint16(0), int16(0), int16(-1),
		uint16(3), uint16(0), uint16(0x0021), uint16(0), uint16(0), int16(0), int16(-1),
	))
	b.Add("SIDEDEFS", LE(int16(0), int16(0), "-", "-", "STARTAN3", uint16(0)))
	b.Add("VERTEXES", LE(
		int16(0), int16(0),
		int16(64), int16(0),
		int16(64), int16(64),
		int16(0), int16(64),
	))
	b.Add("SEGS", LE(
		uint16(0), uint16(1), uint16(0), uint16(0), uint16(0), uint16(0),
		uint16(1), uint16(2), uint16(0x4000), uint16(1), uint16(0), uint16(0),
		uint16(2), uint16(3), uint16(0x8000), uint16(2), uint16(0), uint16(0),
		uint16(3), uint16(0), uint16(0xc000), uint16(3), uint16(0), uint16(0),
	))
	b.Add("SSECTORS", LE(uint16(4), uint16(0)))
	b.Add("NODES", LE(
		int16(32), int16(0), int16(0), int16(64),
		int16(64), int16(0), int16(64), int16(32),
		int16(64), int16(0), int16(32), int16(0),
		uint16(0x8000), uint16(0x8000),
	))
	b.Add("SECTORS", LE(int16(0), int16(128), "FLOOR4_8", "CEIL3_5", int16(160), uint16(0), uint16(7)))
	b.Add("REJECT", []byte{0})
	b.Add("BLOCKMAP", LE(int16(0), int16(0), int16(1), int16(1), uint16(5), uint16(0), uint16(0), uint16(0xffff)))
	return b
}
