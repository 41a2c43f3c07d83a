package wad

import "strings"

// LinedefFlags is the linedef attribute bitmask. Each attribute is bound to exactly one bit;
// unknown bits are ignored.
type LinedefFlags uint16

const (
	LineImpassable LinedefFlags = 1 << iota
	LineBlocksMonsters
	LineTwoSided
	LineUpperUnpegged
	LineLowerUnpegged
	LineSecret
	LineBlocksSound
	LineAlwaysOnMap
	LineNeverOnMap
)

// LinedefFlagBits names every defined linedef bit, in bit order.
var LinedefFlagBits = []struct {
	Bit  LinedefFlags
	Name string
}{
	{LineImpassable, "impassable"},
	{LineBlocksMonsters, "blocks monsters"},
	{LineTwoSided, "two-sided"},
	{LineUpperUnpegged, "upper unpegged"},
	{LineLowerUnpegged, "lower unpegged"},
	{LineSecret, "secret"},
	{LineBlocksSound, "blocks sound"},
	{LineAlwaysOnMap, "always on map"},
	{LineNeverOnMap, "never on map"},
}

// Has reports whether bit is set.
func (f LinedefFlags) Has(bit LinedefFlags) bool { return f&bit != 0 }

// Blocks players and monsters
func (f LinedefFlags) Impassable() bool { return f.Has(LineImpassable) }

func (f LinedefFlags) BlocksMonsters() bool { return f.Has(LineBlocksMonsters) }

// TwoSided is set when the line has a back side a player can see through.
func (f LinedefFlags) TwoSided() bool { return f.Has(LineTwoSided) }

// Upper texture is drawn from the top down rather than from the ceiling below
func (f LinedefFlags) UpperUnpegged() bool { return f.Has(LineUpperUnpegged) }

func (f LinedefFlags) LowerUnpegged() bool { return f.Has(LineLowerUnpegged) }

// Secret lines show as one-sided on the automap
func (f LinedefFlags) Secret() bool { return f.Has(LineSecret) }

func (f LinedefFlags) BlocksSound() bool { return f.Has(LineBlocksSound) }

func (f LinedefFlags) AlwaysShownOnMap() bool { return f.Has(LineAlwaysOnMap) }

func (f LinedefFlags) NeverShownOnMap() bool { return f.Has(LineNeverOnMap) }

// String lists the set attribute names separated by "|".
func (f LinedefFlags) String() string {
	var names []string
	for _, b := range LinedefFlagBits {
		if f.Has(b.Bit) {
			names = append(names, b.Name)
		}
	}
	return strings.Join(names, "|")
}

// ThingFlags is the thing options bitmask.
type ThingFlags uint16

const (
	ThingSkill1and2 ThingFlags = 1 << iota
	ThingSkill3
	ThingSkill4and5
	ThingAmbush
	ThingMultiplayerOnly
)

func (f ThingFlags) Skill1and2() bool { return f&ThingSkill1and2 != 0 }

func (f ThingFlags) Skill3() bool { return f&ThingSkill3 != 0 }

func (f ThingFlags) Skill4and5() bool { return f&ThingSkill4and5 != 0 }

// Ambush things wait for the player to be seen or heard
func (f ThingFlags) Ambush() bool { return f&ThingAmbush != 0 }

func (f ThingFlags) MultiplayerOnly() bool { return f&ThingMultiplayerOnly != 0 }
