// Package options contains the program options.
package options

import (
	"io"

	"github.com/retroenv/lsdisasm/internal/queue"
)

// Default seed region, the entry level script of the game.
const (
	DefaultSeedStart = 0x108A10
	DefaultSeedEnd   = 0x108A38
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // ROM file to disassemble
	Output string // output directory, stdout if empty
	Config string // optional TOML project file
	Batch  string // glob pattern of ROM files to process
}

// Flags contains behavior options.
type Flags struct {
	Start      string // seed region start offset
	End        string // seed region end offset
	MaxScripts int

	Verbose      bool
	TabulateArgs bool
	IndentBlocks bool
	NoHeader     bool
	Dump         bool
	Debug        bool
	Quiet        bool
}

// Seed is a script region that primes the work queue.
type Seed struct {
	Start uint32
	End   uint32
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags

	Seeds []Seed
}

// Decoder defines options to control the script decoder.
type Decoder struct {
	Console io.Writer // receives the emitted text in verbose mode

	MaxScripts    int // capacity of the script work queue
	MaxOutputSize int // growth limit of the output buffer, 0 for default

	Verbose      bool
	TabulateArgs bool // reserved, no effect
	IndentBlocks bool // reserved, no effect
}

// NewDecoder returns a new options instance with default options.
func NewDecoder() Decoder {
	return Decoder{
		MaxScripts: queue.DefaultCapacity,
	}
}

// DefaultSeeds returns the seed regions used when none are configured.
func DefaultSeeds() []Seed {
	return []Seed{{Start: DefaultSeedStart, End: DefaultSeedEnd}}
}
