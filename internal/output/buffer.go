// Package output implements the append-only text sink that all disassembly
// output is written to.
package output

import (
	"errors"
	"fmt"
	"io"
)

const (
	// InitialCapacity is the capacity a new buffer starts with.
	InitialCapacity = 4096

	// DefaultMaxCapacity limits the growth of a buffer.
	DefaultMaxCapacity = 1 << 30
)

// ErrOutOfMemory is returned when the buffer can not grow any further.
var ErrOutOfMemory = errors.New("output buffer out of memory")

// Buffer is a growth-amortized append-only text buffer. The capacity starts
// at InitialCapacity and doubles whenever an append would overflow it.
type Buffer struct {
	data        []byte
	maxCapacity int

	tee    io.Writer // optional side channel receiving every emitted text
	teeErr error
}

// New returns a new buffer. A maxCapacity of 0 uses DefaultMaxCapacity.
func New(maxCapacity int) *Buffer {
	if maxCapacity <= 0 {
		maxCapacity = DefaultMaxCapacity
	}
	return &Buffer{
		data:        make([]byte, 0, min(InitialCapacity, maxCapacity)),
		maxCapacity: maxCapacity,
	}
}

// SetTee sets a writer that receives a copy of every emitted text as it is
// produced. Passing nil disables it.
func (b *Buffer) SetTee(w io.Writer) {
	b.tee = w
	b.teeErr = nil
}

// TeeError returns the first error the side channel writer returned.
func (b *Buffer) TeeError() error {
	return b.teeErr
}

// Emit appends text to the buffer.
func (b *Buffer) Emit(text string) error {
	if err := b.grow(len(text)); err != nil {
		return err
	}
	b.data = append(b.data, text...)

	if b.tee != nil && b.teeErr == nil {
		if _, err := io.WriteString(b.tee, text); err != nil {
			b.teeErr = fmt.Errorf("writing to side channel: %w", err)
		}
	}
	return nil
}

// Snapshot returns the current contents without clearing them.
func (b *Buffer) Snapshot() string {
	return string(b.data)
}

// Len returns the number of bytes emitted since the last reset.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Reset clears the contents, the allocated capacity is kept.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// grow doubles the capacity until n more bytes fit.
func (b *Buffer) grow(n int) error {
	needed := len(b.data) + n
	if needed <= cap(b.data) {
		return nil
	}
	if needed > b.maxCapacity || needed < len(b.data) {
		return fmt.Errorf("%w: %d bytes needed, limit is %d", ErrOutOfMemory, needed, b.maxCapacity)
	}

	size := max(cap(b.data), 1)
	for size < needed {
		size *= 2
	}
	size = min(size, b.maxCapacity)

	data := make([]byte, len(b.data), size)
	copy(data, b.data)
	b.data = data
	return nil
}
