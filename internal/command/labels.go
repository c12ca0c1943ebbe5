package command

// LabelTable maps raw argument values of one domain to display names.
type LabelTable struct {
	Values map[uint32]string
}

// Lookup returns the display name for the value.
func (l LabelTable) Lookup(value uint32) (string, bool) {
	name, ok := l.Values[value]
	return name, ok
}

// Segments contains the names of the RAM segment numbers.
var Segments = LabelTable{
	Values: map[uint32]string{
		0x00: "SEG_00_MEM",
		0x01: "SEG_01_GFX",
		0x02: "SEG_02_HUD_GFX",
		0x03: "SEG_03_GFX",
		0x04: "SEG_04_MARIO",
		0x05: "SEG_05_GFX",
		0x06: "SEG_06_GFX",
		0x07: "SEG_07_SPECIAL",
		0x08: "SEG_08_GFX",
		0x09: "SEG_09_LVL_IMG",
		0x0A: "SEG_0A_GFX",
		0x0B: "SEG_0B_ENV_GFX",
		0x0C: "SEG_0C_GFX",
		0x0D: "SEG_0D_GFX",
		0x0E: "SEG_0E_LVL",
		0x0F: "SEG_0F_GFX",
		0x10: "SEG_10_LVL",
		0x11: "SEG_11_UNK",
		0x12: "SEG_12_UNK",
		0x13: "SEG_13_BHV",
		0x14: "SEG_14_LVL",
		0x15: "SEG_15_LVL",
		0x16: "SEG_16_GFX",
		0x17: "SEG_17_GFX",
		0x18: "SEG_18_UNK",
	},
}

// Heads contains the demo head types.
var Heads = LabelTable{
	Values: map[uint32]string{
		0x01: "DEMO_HEAD_NONE",
		0x02: "DEMO_HEAD_STANDARD",
		0x03: "DEMO_HEAD_GAME_OVER",
	},
}

// Terrains contains the terrain types.
var Terrains = LabelTable{
	Values: map[uint32]string{
		0x00: "TERRAIN_STD_A",
		0x01: "TERRAIN_STD_B",
		0x02: "TERRAIN_SNOW",
		0x03: "TERRAIN_SAND",
		0x04: "TERRAIN_HAUNT",
		0x05: "TERRAIN_WATER",
		0x06: "TERRAIN_SLIDE",
	},
}

// Operations contains the comparison operators of conditional commands.
var Operations = LabelTable{
	Values: map[uint32]string{
		0: "AC_AND",
		1: "AC_NAND",
		2: "AC_EQ",
		3: "AC_NEQ",
		4: "AC_LT",
		5: "AC_LTEQ",
		6: "AC_GT",
		7: "AC_GTEQ",
	},
}

// Songs contains the music sequence numbers.
var Songs = LabelTable{
	Values: map[uint32]string{
		0x00: "SONG_00_NONE",
		0x01: "SONG_01_STAR",
		0x02: "SONG_02_DEMO",
		0x03: "SONG_03_BATTLEFIELD",
		0x04: "SONG_04_CASTLE",
		0x05: "SONG_05_WATER",
		0x06: "SONG_06_FIRE",
		0x07: "SONG_07_BOWSER",
		0x08: "SONG_08_SNOW",
		0x09: "SONG_09_RACE",
		0x0A: "SONG_0A_HAUNT",
		0x0B: "SONG_0B_LULLABY",
		0x0C: "SONG_0C_CAVE",
		0x0D: "SONG_0D_SELECT_STAR",
		0x0E: "SONG_0E_WING_CAP",
		0x0F: "SONG_0F_METAL_CAP",
		0x10: "SONG_10_WARNING",
		0x11: "SONG_11_BOWSER_COURSE",
		0x12: "SONG_12_RECORD",
		0x13: "SONG_13_MERRY_GO_ROUND",
		0x14: "SONG_14_RACE_START",
		0x15: "SONG_15_STAR_UNLOCK",
		0x16: "SONG_16_MINI_BOSS",
		0x17: "SONG_17_KEY",
		0x18: "SONG_18_STAIRS",
		0x19: "SONG_19_BOWSER_FINAL",
		0x1A: "SONG_1A_CREDITS",
		0x1B: "SONG_1B_SOLVE",
		0x1C: "SONG_1C_TOAD",
		0x1D: "SONG_1D_PEACH",
		0x1E: "SONG_1E_INTRO1",
		0x1F: "SONG_1F_END1",
		0x20: "SONG_20_END2",
		0x21: "SONG_21_SELECT_FILE",
		0x22: "SONG_22_INTRO2",
	},
}

// Colors contains the RGBA fade colors.
var Colors = LabelTable{
	Values: map[uint32]string{
		0x00000000: "COLOR_BLACK",
		0xFFFFFF00: "COLOR_WHITE",
	},
}
