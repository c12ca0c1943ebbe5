package reader

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReader_BigEndian(t *testing.T) {
	r := New([]byte{0x00, 0x12, 0x34, 0x56, 0x78, 0x9A})

	b, err := r.U8(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x12), b)

	w, err := r.U16(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x3456), w)

	d, err := r.U32(0, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x3456789A), d)
}

func TestReader_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r := New(data)

	tests := []struct {
		name   string
		read   func() error
		failed bool
	}{
		{"u8 last byte", func() error { _, err := r.U8(7, 0); return err }, false},
		{"u8 past end", func() error { _, err := r.U8(7, 1); return err }, true},
		{"u16 at end", func() error { _, err := r.U16(6, 0); return err }, false},
		{"u16 straddling end", func() error { _, err := r.U16(7, 0); return err }, true},
		{"u32 at len-4", func() error { _, err := r.U32(4, 0); return err }, false},
		{"u32 at len-1", func() error { _, err := r.U32(uint32(len(data)-1), 0); return err }, true},
		{"u32 relative at len-1", func() error { _, err := r.U32(5, 2); return err }, true},
		{"offset overflow", func() error { _, err := r.U32(0xFFFFFFFF, 0xFFFFFFFF); return err }, true},
		{"bytes full buffer", func() error { _, err := r.Bytes(0, 0, len(data)); return err }, false},
		{"bytes past end", func() error { _, err := r.Bytes(1, 0, len(data)); return err }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read()
			if tt.failed {
				assert.True(t, errors.Is(err, ErrOutOfBounds))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReader_BytesAliasesBuffer(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC}
	r := New(data)

	b, err := r.Bytes(1, 0, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xBB, 0xCC}, b)
	assert.Equal(t, 2, cap(b))
	assert.Equal(t, 3, r.Len())
}
