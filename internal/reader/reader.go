// Package reader provides bounds checked big-endian access to a ROM buffer.
package reader

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read would exceed the source buffer.
var ErrOutOfBounds = errors.New("read out of bounds")

// Reader reads big-endian integers relative to a cursor. The underlying
// buffer is never copied or modified, it can be shared between readers.
type Reader struct {
	data []byte
}

// New returns a reader for the given buffer.
func New(data []byte) Reader {
	return Reader{data: data}
}

// Len returns the size of the source buffer.
func (r Reader) Len() int {
	return len(r.data)
}

// U8 reads a byte at cursor+rel.
func (r Reader) U8(cursor, rel uint32) (uint8, error) {
	b, err := r.Bytes(cursor, rel, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a big-endian 16-bit value at cursor+rel.
func (r Reader) U16(cursor, rel uint32) (uint16, error) {
	b, err := r.Bytes(cursor, rel, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// U32 reads a big-endian 32-bit value at cursor+rel.
func (r Reader) U32(cursor, rel uint32) (uint32, error) {
	b, err := r.Bytes(cursor, rel, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Bytes returns the n bytes starting at cursor+rel. The returned slice
// aliases the source buffer and must not be modified.
func (r Reader) Bytes(cursor, rel uint32, n int) ([]byte, error) {
	start := uint64(cursor) + uint64(rel)
	end := start + uint64(n)
	if n < 0 || end > uint64(len(r.data)) {
		return nil, fmt.Errorf("%w: %d bytes at offset %08X, buffer size %d",
			ErrOutOfBounds, n, start, len(r.data))
	}
	return r.data[start:end:end], nil
}
