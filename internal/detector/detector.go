// Package detector handles ROM byte order detection.
package detector

import (
	"bytes"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// ByteOrder is the byte order that a ROM image was dumped in.
type ByteOrder int

// Supported ROM byte orders.
const (
	BigEndian    ByteOrder = iota // native order, usually .z64
	ByteSwapped                   // 16 bit words swapped, usually .v64
	LittleEndian                  // 32 bit words reversed, usually .n64
)

func (b ByteOrder) String() string {
	switch b {
	case BigEndian:
		return "big-endian"
	case ByteSwapped:
		return "byte-swapped"
	case LittleEndian:
		return "little-endian"
	default:
		return "unknown"
	}
}

// magic values of the first word of the ROM header.
var (
	magicBigEndian    = []byte{0x80, 0x37, 0x12, 0x40}
	magicByteSwapped  = []byte{0x37, 0x80, 0x40, 0x12}
	magicLittleEndian = []byte{0x40, 0x12, 0x37, 0x80}
)

// Detector handles byte order detection of ROM images.
type Detector struct {
	logger *log.Logger
}

// New creates a new byte order detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the byte order of the ROM image from its header magic.
// Images with an unknown magic are treated as big-endian.
func (d *Detector) Detect(data []byte) ByteOrder {
	switch {
	case bytes.HasPrefix(data, magicBigEndian):
		return BigEndian
	case bytes.HasPrefix(data, magicByteSwapped):
		return ByteSwapped
	case bytes.HasPrefix(data, magicLittleEndian):
		return LittleEndian
	}

	var header []byte
	if len(data) >= 4 {
		header = data[:4]
	} else {
		header = data
	}
	d.logger.Debug("Unknown ROM header magic, assuming big-endian",
		log.String("magic", formatMagic(header)))
	return BigEndian
}

func formatMagic(data []byte) string {
	return fmt.Sprintf("% X", data)
}
