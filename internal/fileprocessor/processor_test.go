package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/lsdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// createTestROM writes a big-endian ROM with a single script at 0x10 that
// runs a script at 0x20.
func createTestROM(t *testing.T, dir, name string) string {
	t.Helper()

	rom := make([]byte, 0x40)
	copy(rom, []byte{0x80, 0x37, 0x12, 0x40})
	copy(rom[0x10:], []byte{
		0x00, 0x0C, 0x00, 0x15, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x28, // run_script_a
	})
	copy(rom[0x20:], []byte{
		0x02, 0x04, 0x00, 0x00, // end_script
	})

	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, rom, 0o600))
	return path
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "scripts")

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  createTestROM(t, dir, "test.z64"),
			Output: outputDir,
		},
		Seeds: []options.Seed{{Start: 0x10, End: 0x1C}},
	}
	opts.NoHeader = true

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDecoder())
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "level_00_00000010.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "run_script_a        SEG_15_LVL, 0x00000020, 0x00000028\n", string(data))

	data, err = os.ReadFile(filepath.Join(outputDir, "level_01_00000020.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "end_script          \n", string(data))
}

func TestProcessFile_Errors(t *testing.T) {
	dir := t.TempDir()

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  filepath.Join(dir, "missing.z64"),
			Output: filepath.Join(dir, "scripts"),
		},
		Seeds: options.DefaultSeeds(),
	}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDecoder())
	assert.ErrorContains(t, err, "loading rom")

	// output directory path is blocked by a file
	blocker := filepath.Join(dir, "blocker")
	assert.NoError(t, os.WriteFile(blocker, nil, 0o600))
	opts.Output = filepath.Join(blocker, "scripts")
	err = ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDecoder())
	assert.ErrorContains(t, err, "creating writer")
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	first := createTestROM(t, dir, "a.z64")
	second := createTestROM(t, dir, "b.z64")
	createTestROM(t, dir, "c.v64")

	opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.z64")}}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{first, second}, files)

	opts = &options.Program{Parameters: options.Parameters{Input: first}}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{first}, files)

	opts = &options.Program{Parameters: options.Parameters{Batch: "[invalid"}}
	_, err = GetFilesToProcess(opts)
	assert.ErrorContains(t, err, "globbing batch pattern")
}

func TestGenerateOutputDirectory(t *testing.T) {
	tests := []struct {
		name      string
		inputFile string
		parent    string
		expected  string
	}{
		{"next to input", filepath.Join("roms", "sm64.z64"), "", filepath.Join("roms", "sm64")},
		{"inside parent", filepath.Join("roms", "sm64.z64"), "out", filepath.Join("out", "sm64")},
		{"no extension", "sm64", "", "sm64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputDirectory(tt.inputFile, tt.parent))
		})
	}
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2026-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "1.0.0", "", "")
}
