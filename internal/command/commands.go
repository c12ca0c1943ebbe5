package command

// Opcodes of commands that the decoder handles specially.
const (
	RunScriptA = 0x00
	RunScriptB = 0x01
)

var (
	argsRunScript = []Argument{
		{Offset: 3, Format: U8Hex, Labels: Segments}, // segment number
		{Offset: 4, Format: U32Hex},                  // rom start
		{Offset: 8, Format: U32Hex},                  // rom end
	}

	argsWait = []Argument{
		{Offset: 2, Format: U16Dec}, // frame count
	}

	argsImm32 = []Argument{
		{Offset: 4, Format: U32Hex},
	}

	argsImm16 = []Argument{
		{Offset: 2, Format: U16Hex},
	}

	argsOp = []Argument{
		{Offset: 2, Format: U8Hex, Labels: Operations},
		{Offset: 4, Format: U32Hex}, // value
	}

	argsOpJump = []Argument{
		{Offset: 2, Format: U8Hex, Labels: Operations},
		{Offset: 4, Format: U32Hex}, // value
		{Offset: 8, Format: U32Hex}, // segmented jump address
	}

	argsCall = []Argument{
		{Offset: 2, Format: U16Hex}, // parameter
		{Offset: 4, Format: U32Hex}, // asm routine
	}

	argsLoadRaw = []Argument{
		{Offset: 4, Format: U32Hex},  // ram destination
		{Offset: 8, Format: U32Hex},  // rom start
		{Offset: 12, Format: U32Hex}, // rom end
	}

	argsLoadSeg = []Argument{
		{Offset: 3, Format: U8Hex, Labels: Segments},
		{Offset: 4, Format: U32Hex}, // rom start
		{Offset: 8, Format: U32Hex}, // rom end
	}

	argsDemoHead = []Argument{
		{Offset: 2, Format: U8Dec, Labels: Heads},
	}

	argsDefine = []Argument{
		{Offset: 2, Format: U8Hex},  // area or gfx id
		{Offset: 4, Format: U32Hex}, // segmented pointer
	}

	argsSetObject = []Argument{
		{Offset: 2, Format: U8Hex},   // act flags
		{Offset: 3, Format: U8Hex},   // gfx id
		{Offset: 4, Format: S16Dec},  // x
		{Offset: 6, Format: S16Dec},  // y
		{Offset: 8, Format: S16Dec},  // z
		{Offset: 10, Format: S16Dec}, // roll
		{Offset: 12, Format: S16Dec}, // pitch
		{Offset: 14, Format: S16Dec}, // yaw
		{Offset: 16, Format: U16Hex}, // behavior parameter a
		{Offset: 18, Format: U16Hex}, // behavior parameter b
		{Offset: 20, Format: U32Hex}, // segmented behavior pointer
	}

	argsWarp = []Argument{
		{Offset: 2, Format: U8Hex}, // from id
		{Offset: 3, Format: U8Hex}, // course
		{Offset: 4, Format: U8Hex}, // area
		{Offset: 5, Format: U8Hex}, // to id
	}

	argsTerrain = []Argument{
		{Offset: 3, Format: U8Hex, Labels: Terrains},
	}

	argsTransition = []Argument{
		{Offset: 2, Format: U8Hex}, // on/off
		{Offset: 3, Format: U8Hex}, // frame count
		{Offset: 4, Format: U32Hex, Labels: Colors},
	}

	// TODO decode the remaining set_music_a parameters once their meaning is known
	argsMusicA = []Argument{
		{Offset: 5, Format: U8Hex, Labels: Songs},
	}

	argsMusicB = []Argument{
		{Offset: 2, Format: U8Hex, Labels: Songs},
	}
)

// commands maps every opcode to its command, unknown opcodes are nil.
var commands = [256]*Command{
	0x00: {Name: "run_script_a", Args: argsRunScript},
	0x01: {Name: "run_script_b", Args: argsRunScript},
	0x02: {Name: "end_script"},
	0x03: {Name: "wait", Args: argsWait},
	0x04: {Name: "wait_end_sig", Args: argsWait},
	0x05: {Name: "jump", Args: argsImm32},
	0x06: {Name: "jal", Args: argsImm32},
	0x07: {Name: "return"},
	0x08: {Name: "push", Args: argsImm16},
	0x09: {Name: "pop"},
	0x0A: {Name: "link"},
	0x0B: {Name: "pop_if", Args: argsOp},
	0x0C: {Name: "jump_if", Args: argsOpJump},
	0x0D: {Name: "jal_if", Args: argsOpJump},
	0x0E: {Name: "skip_if_not"},
	0x0F: {Name: "skip"},
	0x10: {Name: "nop"},
	0x11: {Name: "call", Args: argsCall},
	0x12: {Name: "call_active", Args: argsCall},
	0x13: {Name: "set_acc", Args: argsImm16},
	0x16: {Name: "load_virtual_raw", Args: argsLoadRaw},
	0x17: {Name: "load_seg_raw", Args: argsLoadSeg},
	0x18: {Name: "load_seg_mio0", Args: argsLoadSeg},
	0x19: {Name: "load_demo_head", Args: argsDemoHead},
	0x1A: {Name: "load_seg_mio0_ter", Args: argsLoadSeg},
	0x1B: {Name: "start_load_seq", Indent: IndentOpen},
	0x1D: {Name: "end_load_seq", Indent: IndentClose},
	0x1F: {Name: "start_area", Args: argsDefine, Indent: IndentOpen},
	0x20: {Name: "end_area", Indent: IndentClose},
	0x21: {Name: "def_disp_list", Args: argsDefine},
	0x22: {Name: "def_geo_layout", Args: argsDefine},
	0x24: {Name: "set_object", Args: argsSetObject},
	0x25: {Name: "load_mario_object"},
	0x26: {Name: "connect_warp", Args: argsWarp},
	0x27: {Name: "connect_painting", Args: argsWarp},
	0x28: {Name: "set_col_warp"},
	0x2B: {Name: "set_player_pos"},
	0x2E: {Name: "set_specials", Args: argsImm32},
	0x2F: {Name: "set_geo_rendering", Args: argsImm32},
	0x30: {Name: "show_dialog"},
	0x31: {Name: "set_terrain", Args: argsTerrain},
	0x32: {Name: "nop"},
	0x33: {Name: "fade_color", Args: argsTransition},
	0x34: {Name: "fade_black"},
	0x36: {Name: "set_music_a", Args: argsMusicA},
	0x37: {Name: "set_music_b", Args: argsMusicB},
	0x39: {Name: "set_macros", Args: argsImm32},
}

func init() {
	for i, cmd := range commands {
		if cmd != nil {
			cmd.Opcode = byte(i)
		}
	}
}
