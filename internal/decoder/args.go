package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/lsdisasm/internal/command"
	"github.com/retroenv/lsdisasm/internal/reader"
)

const argumentSeparator = ", "

// formatArguments renders all arguments of the command at the cursor.
func formatArguments(rom reader.Reader, cursor uint32, args []command.Argument) (string, error) {
	buf := &strings.Builder{}
	for i, arg := range args {
		if i > 0 {
			buf.WriteString(argumentSeparator)
		}

		s, err := formatArgument(rom, cursor, arg)
		if err != nil {
			return "", fmt.Errorf("reading argument %d: %w", i, err)
		}
		buf.WriteString(s)
	}
	return buf.String(), nil
}

// formatArgument renders a single argument, a matching label name takes
// precedence over the numeric value.
func formatArgument(rom reader.Reader, cursor uint32, arg command.Argument) (string, error) {
	value, err := readArgument(rom, cursor, arg)
	if err != nil {
		return "", err
	}

	if name, ok := arg.Labels.Lookup(value); ok {
		return name, nil
	}

	switch {
	case arg.Format.Hex():
		return fmt.Sprintf("0x%0*X", 2*arg.Format.Width(), value), nil
	case arg.Format.Signed():
		return strconv.FormatInt(int64(int32(value)), 10), nil
	default:
		return strconv.FormatUint(uint64(value), 10), nil
	}
}

// readArgument reads the raw argument value. Signed values are sign
// extended to 32 bits.
func readArgument(rom reader.Reader, cursor uint32, arg command.Argument) (uint32, error) {
	switch arg.Format.Width() {
	case 1:
		b, err := rom.U8(cursor, arg.Offset)
		if err != nil {
			return 0, err
		}
		if arg.Format.Signed() {
			return uint32(int32(int8(b))), nil
		}
		return uint32(b), nil

	case 2:
		w, err := rom.U16(cursor, arg.Offset)
		if err != nil {
			return 0, err
		}
		if arg.Format.Signed() {
			return uint32(int32(int16(w))), nil
		}
		return uint32(w), nil

	default:
		return rom.U32(cursor, arg.Offset)
	}
}

// formatUnhandled renders the raw bytes of a command that has no table entry.
func formatUnhandled(data []byte) string {
	buf := &strings.Builder{}
	buf.WriteString(".db ")
	for i, b := range data {
		if i > 0 {
			buf.WriteString(argumentSeparator)
		}
		fmt.Fprintf(buf, "0x%02X", b)
	}
	buf.WriteString(" ; Unhandled command")
	return buf.String()
}
