// Package command contains the static level script command and label tables.
package command

import "fmt"

// Format defines how an argument value is read and rendered.
type Format int

const (
	U8Hex Format = iota
	U16Hex
	U32Hex
	U8Dec
	U16Dec
	U32Dec
	S8Dec
	S16Dec
	S32Dec
)

// Width returns the size of the argument in bytes.
func (f Format) Width() int {
	switch f {
	case U8Hex, U8Dec, S8Dec:
		return 1
	case U16Hex, U16Dec, S16Dec:
		return 2
	default:
		return 4
	}
}

// Signed returns whether the argument is a signed value.
func (f Format) Signed() bool {
	return f == S8Dec || f == S16Dec || f == S32Dec
}

// Hex returns whether the argument is rendered as hexadecimal value.
func (f Format) Hex() bool {
	return f == U8Hex || f == U16Hex || f == U32Hex
}

func (f Format) String() string {
	switch f {
	case U8Hex:
		return "u8h"
	case U16Hex:
		return "u16h"
	case U32Hex:
		return "u32h"
	case U8Dec:
		return "u8d"
	case U16Dec:
		return "u16d"
	case U32Dec:
		return "u32d"
	case S8Dec:
		return "s8d"
	case S16Dec:
		return "s16d"
	case S32Dec:
		return "s32d"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// IndentEffect defines whether a command opens or closes a block.
type IndentEffect int

const (
	IndentNone IndentEffect = iota
	IndentOpen
	IndentClose
)

// Argument describes one operand of a command.
type Argument struct {
	Offset uint32     // offset relative to the command byte
	Format Format     // width, signedness and rendering
	Labels LabelTable // optional symbolic names for values
}

// Command describes a level script command.
type Command struct {
	Opcode byte
	Name   string
	Args   []Argument
	Indent IndentEffect
}

// Lookup returns the command for the opcode, nil if the opcode is unknown.
func Lookup(opcode byte) *Command {
	return commands[opcode]
}

// IsScriptCall returns whether the opcode runs another script region whose
// rom start and end offsets are stored at offset 4 and 8 of the command.
func IsScriptCall(opcode byte) bool {
	return opcode == RunScriptA || opcode == RunScriptB
}
