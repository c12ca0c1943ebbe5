package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/lsdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.toml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadProject(t *testing.T) {
	path := writeProject(t, `
output = "scripts"
no_header = true

[[seed]]
start = 0x108A10
end = 0x108A38

[[seed]]
start = 0x2ABCA0
end = 0x2AC000

[decoder]
verbose = true
max_scripts = 100
`)

	p, err := LoadProject(path)
	assert.NoError(t, err)
	assert.Equal(t, "scripts", p.Output)
	assert.True(t, p.NoHeader)
	assert.Len(t, p.Seeds, 2)
	assert.Equal(t, uint32(0x108A10), p.Seeds[0].Start)
	assert.Equal(t, uint32(0x2AC000), p.Seeds[1].End)
	assert.True(t, p.Decoder.Verbose)
	assert.False(t, p.Decoder.TabulateArgs)
	assert.Equal(t, 100, p.Decoder.MaxScripts)
}

func TestLoadProject_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"syntax", "output = ", "parse error"},
		{"unknown key", "outptu = \"x\"", "unknown key 'outptu'"},
		{"empty seed", "[[seed]]\nstart = 16\nend = 16\n", "is not before end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProject(writeProject(t, tt.content))
			assert.ErrorContains(t, err, tt.errText)
		})
	}

	_, err := LoadProject(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "reading project file")
}

func TestProjectApply(t *testing.T) {
	p := &Project{
		Output: "scripts",
		Seeds:  []ProjectSeed{{Start: 0x100, End: 0x200}},
		Decoder: ProjectDecoder{
			Verbose:    true,
			MaxScripts: 10,
		},
	}

	opts := options.Program{Seeds: options.DefaultSeeds()}
	opts.MaxScripts = 50
	p.Apply(&opts, func(string) bool { return false })

	assert.Equal(t, "scripts", opts.Output)
	assert.True(t, opts.Verbose)
	assert.Equal(t, 10, opts.MaxScripts)
	assert.Equal(t, []options.Seed{{Start: 0x100, End: 0x200}}, opts.Seeds)
}

func TestProjectApply_CommandLineWins(t *testing.T) {
	p := &Project{
		Output:  "scripts",
		Seeds:   []ProjectSeed{{Start: 0x100, End: 0x200}},
		Decoder: ProjectDecoder{MaxScripts: 10},
	}

	opts := options.Program{Seeds: []options.Seed{{Start: 0x10, End: 0x20}}}
	opts.Output = "out"
	opts.MaxScripts = 5
	p.Apply(&opts, func(string) bool { return true })

	assert.Equal(t, "out", opts.Output)
	assert.Equal(t, 5, opts.MaxScripts)
	assert.Equal(t, []options.Seed{{Start: 0x10, End: 0x20}}, opts.Seeds)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
