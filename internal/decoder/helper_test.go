package decoder

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/retroenv/lsdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// assertOutput compares the decoded text and prints a unified diff on mismatch.
func assertOutput(t *testing.T, expected, actual string) {
	t.Helper()

	if expected == actual {
		return
	}

	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	t.Fatalf("Output mismatch:\n%s", diff)
}

// romAt returns a zeroed buffer of the given size with the scripts copied to
// their offsets.
func romAt(size int, scripts map[uint32][]byte) []byte {
	rom := make([]byte, size)
	for offset, data := range scripts {
		copy(rom[offset:], data)
	}
	return rom
}

// decodeSingle decodes a buffer that contains exactly one region.
func decodeSingle(t *testing.T, data []byte) string {
	t.Helper()

	dec := New(log.NewTestLogger(t), data, options.NewDecoder())
	dec.Seed(0, uint32(len(data)))

	_, ok, err := dec.DecodeNext()
	assert.NoError(t, err)
	assert.True(t, ok)
	return dec.Output().Snapshot()
}
