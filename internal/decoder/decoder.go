// Package decoder implements the level script decode engine. It walks script
// regions command by command, renders them as text and discovers the regions
// of scripts that are run by other scripts.
package decoder

import (
	"fmt"

	"github.com/retroenv/lsdisasm/internal/command"
	"github.com/retroenv/lsdisasm/internal/options"
	"github.com/retroenv/lsdisasm/internal/output"
	"github.com/retroenv/lsdisasm/internal/queue"
	"github.com/retroenv/lsdisasm/internal/reader"
	"github.com/retroenv/retrogolib/log"
)

// mnemonicWidth is the column width that mnemonics are padded to.
const mnemonicWidth = 20

// offsets of the fields inside a command.
const (
	opcodeOffset      = 0
	lengthOffset      = 1
	scriptStartOffset = 4
	scriptEndOffset   = 8
)

// Decoder holds the state of one decode session. It must not be used
// concurrently, the ROM buffer however can be shared between sessions.
type Decoder struct {
	logger  *log.Logger
	options options.Decoder

	rom    reader.Reader
	cursor uint32 // offset of the command being decoded
	indent indentation

	output *output.Buffer
	queue  *queue.Queue
}

// New creates a new decoder session for the ROM buffer.
func New(logger *log.Logger, rom []byte, opts options.Decoder) *Decoder {
	d := &Decoder{
		logger:  logger,
		options: opts,
		rom:     reader.New(rom),
		output:  output.New(opts.MaxOutputSize),
		queue:   queue.New(opts.MaxScripts),
	}

	if opts.Verbose && opts.Console != nil {
		d.output.SetTee(opts.Console)
	}
	return d
}

// Seed registers a script region to decode.
func (d *Decoder) Seed(start, end uint32) queue.Status {
	status := d.queue.Enqueue(start, end)
	d.logger.Debug("Seeding script region",
		log.Hex("start", start),
		log.Hex("end", end),
		log.Stringer("status", status))

	if uint64(start) >= uint64(d.rom.Len()) {
		d.logger.Warn("Script region starts outside of the ROM",
			log.Hex("start", start),
			log.Int("rom_size", d.rom.Len()))
	}
	return status
}

// PendingCount returns the number of regions that are not decoded yet.
func (d *Decoder) PendingCount() int {
	return d.queue.Pending()
}

// Regions returns all known regions in discovery order.
func (d *Decoder) Regions() []queue.Region {
	return d.queue.Regions()
}

// Output returns the text buffer that all regions are rendered into.
func (d *Decoder) Output() *output.Buffer {
	return d.output
}

// Abandon marks a region as decoded without decoding it, this allows the
// session to continue after a region failed to decode.
func (d *Decoder) Abandon(region queue.Region) {
	d.queue.MarkDecoded(region.Start)
}

// DecodeNext decodes the first pending region and marks it as decoded.
// It returns false if no region is pending. On error the region stays
// pending and is returned so that the caller can abandon it.
func (d *Decoder) DecodeNext() (queue.Region, bool, error) {
	region, ok := d.queue.Next()
	if !ok {
		return queue.Region{}, false, nil
	}

	if d.options.Verbose {
		d.logger.Info("Decoding range",
			log.Hex("start", region.Start),
			log.Hex("end", region.End))
	}

	if err := d.decodeRegion(region); err != nil {
		return region, true, fmt.Errorf("decoding region %s: %w", region, err)
	}

	d.queue.MarkDecoded(region.Start)
	region.Decoded = true

	if err := d.output.TeeError(); err != nil {
		d.logger.Warn("Verbose output failed", log.Err(err))
		d.output.SetTee(nil)
	}
	return region, true, nil
}

func (d *Decoder) decodeRegion(region queue.Region) error {
	d.indent.reset()

	for d.cursor = region.Start; d.cursor < region.End; {
		length, err := d.decodeCommand()
		if err != nil {
			return fmt.Errorf("decoding command at offset %08X: %w", d.cursor, err)
		}
		if length == 0 {
			// zero length marks the end of the script
			break
		}

		next := d.cursor + uint32(length)
		if next < d.cursor {
			return fmt.Errorf("%w: command at offset %08X wraps around", reader.ErrOutOfBounds, d.cursor)
		}
		d.cursor = next
	}
	return nil
}

// decodeCommand renders the command at the cursor and returns its length.
// All reads of a command are done before anything is emitted.
func (d *Decoder) decodeCommand() (uint8, error) {
	opcode, err := d.rom.U8(d.cursor, opcodeOffset)
	if err != nil {
		return 0, err
	}
	length, err := d.rom.U8(d.cursor, lengthOffset)
	if err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, nil
	}

	cmd := command.Lookup(opcode)
	if cmd == nil {
		return length, d.decodeUnhandled(length)
	}

	var call queue.Region
	if command.IsScriptCall(opcode) {
		if call, err = d.readScriptCall(); err != nil {
			return 0, err
		}
	}

	args, err := formatArguments(d.rom, d.cursor, cmd.Args)
	if err != nil {
		return 0, fmt.Errorf("formatting %s: %w", cmd.Name, err)
	}

	if cmd.Indent == command.IndentClose {
		d.indent.close()
	}

	line := d.indent.render() + fmt.Sprintf("%-*.*s", mnemonicWidth, mnemonicWidth, cmd.Name) + args
	if err := d.output.Emit(line + "\n"); err != nil {
		return 0, err
	}

	if cmd.Indent == command.IndentOpen {
		d.indent.open()
	}

	if command.IsScriptCall(opcode) {
		d.enqueue(call)
	}
	return length, nil
}

func (d *Decoder) decodeUnhandled(length uint8) error {
	data, err := d.rom.Bytes(d.cursor, opcodeOffset, int(length))
	if err != nil {
		return err
	}
	return d.output.Emit(d.indent.render() + formatUnhandled(data) + "\n")
}

func (d *Decoder) readScriptCall() (queue.Region, error) {
	start, err := d.rom.U32(d.cursor, scriptStartOffset)
	if err != nil {
		return queue.Region{}, err
	}
	end, err := d.rom.U32(d.cursor, scriptEndOffset)
	if err != nil {
		return queue.Region{}, err
	}
	return queue.Region{Start: start, End: end}, nil
}

func (d *Decoder) enqueue(region queue.Region) {
	status := d.queue.Enqueue(region.Start, region.End)
	switch status {
	case queue.StatusAdded:
		d.logger.Debug("Discovered script region",
			log.Hex("start", region.Start),
			log.Hex("end", region.End),
			log.Hex("caller", d.cursor),
			log.Int("known", d.queue.Len()))

	case queue.StatusFull:
		logFunc := d.logger.Debug
		if d.options.Verbose {
			logFunc = d.logger.Info
		}
		logFunc("Script queue is full, dropping region",
			log.Hex("start", region.Start),
			log.Hex("end", region.End),
			log.Int("capacity", d.queue.Capacity()))
	}
}
