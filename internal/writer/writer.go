// Package writer implements script file writing functionality.
package writer

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/retroenv/lsdisasm/internal/queue"
)

// Writer writes decoded script regions.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	NoHeader bool // do not write the comment header
}

// Header contains the information that identifies a script file.
type Header struct {
	Checksum uint32 // CRC32 checksum of the normalized ROM image
	Region   queue.Region
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// FileName returns the file name of a script region, made of the sequence
// number of the region and its start offset.
func FileName(index int, start uint32) string {
	return fmt.Sprintf("level_%02X_%08X.txt", index, start)
}

// Checksum returns the CRC32 checksum of the ROM image.
func Checksum(rom []byte) uint32 {
	crc32q := crc32.MakeTable(crc32.IEEE)
	return crc32.Checksum(rom, crc32q)
}

// WriteScript writes the decoded text of a script region.
func (w Writer) WriteScript(header Header, text string) error {
	if !w.options.NoHeader {
		if err := w.WriteCommentHeader(header); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w.writer, text); err != nil {
		return fmt.Errorf("writing script text: %w", err)
	}
	return nil
}

// WriteCommentHeader writes the ROM CRC32 checksum and region range as comments to the output.
func (w Writer) WriteCommentHeader(header Header) error {
	if _, err := fmt.Fprintf(w.writer, "; ROM CRC32 checksum: %08x\n", header.Checksum); err != nil {
		return fmt.Errorf("writing rom checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Script region: %08X - %08X\n\n", header.Region.Start, header.Region.End); err != nil {
		return fmt.Errorf("writing script region: %w", err)
	}
	return nil
}
