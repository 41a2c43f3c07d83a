package wad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinedefFlagPredicates(t *testing.T) {
	predicates := []struct {
		bit LinedefFlags
		fn  func(LinedefFlags) bool
	}{
		{0x0001, LinedefFlags.Impassable},
		{0x0002, LinedefFlags.BlocksMonsters},
		{0x0004, LinedefFlags.TwoSided},
		{0x0008, LinedefFlags.UpperUnpegged},
		{0x0010, LinedefFlags.LowerUnpegged},
		{0x0020, LinedefFlags.Secret},
		{0x0040, LinedefFlags.BlocksSound},
		{0x0080, LinedefFlags.AlwaysShownOnMap},
		{0x0100, LinedefFlags.NeverShownOnMap},
	}

	for mask := 0; mask <= 0xffff; mask++ {
		f := LinedefFlags(mask)
		for _, p := range predicates {
			if got, want := p.fn(f), mask&int(p.bit) != 0; got != want {
				t.Fatalf("mask 0x%04x bit 0x%04x: got %v, want %v", mask, uint16(p.bit), got, want)
			}
		}
	}
}

func TestLinedefFlagsImpassableOnly(t *testing.T) {
	f := LinedefFlags(0x0001)
	assert.True(t, f.Impassable())
	assert.False(t, f.BlocksMonsters())
	assert.False(t, f.TwoSided())
	assert.False(t, f.UpperUnpegged())
	assert.False(t, f.LowerUnpegged())
	assert.False(t, f.Secret())
	assert.False(t, f.BlocksSound())
	assert.False(t, f.AlwaysShownOnMap())
	assert.False(t, f.NeverShownOnMap())
}

func TestLinedefFlagBits(t *testing.T) {
	assert.Len(t, LinedefFlagBits, 9)
	for i, b := range LinedefFlagBits {
		assert.Equal(t, LinedefFlags(1<<i), b.Bit, b.Name)
	}
}

func TestLinedefFlagsString(t *testing.T) {
	assert.Equal(t, "", LinedefFlags(0).String())
	assert.Equal(t, "impassable", LinedefFlags(0x0001).String())
	assert.Equal(t, "two-sided|secret", (LineTwoSided | LineSecret).String())
	assert.Equal(t, "never on map", LinedefFlags(0xfe00|0x0100).String())
}

func TestThingFlags(t *testing.T) {
	f := ThingSkill1and2 | ThingAmbush
	assert.True(t, f.Skill1and2())
	assert.False(t, f.Skill3())
	assert.False(t, f.Skill4and5())
	assert.True(t, f.Ambush())
	assert.False(t, f.MultiplayerOnly())
	assert.True(t, ThingFlags(0x0010).MultiplayerOnly())
}
