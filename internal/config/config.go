// Package config handles application configuration and setup: the logger
// and the optional TOML project file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/retroenv/lsdisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Project is the content of a project file. Offsets can be written as
// hexadecimal TOML integers:
//
//	output = "scripts"
//
//	[[seed]]
//	start = 0x108A10
//	end = 0x108A38
//
//	[decoder]
//	verbose = true
//	max_scripts = 100
type Project struct {
	Output   string         `toml:"output"`
	NoHeader bool           `toml:"no_header"`
	Seeds    []ProjectSeed  `toml:"seed"`
	Decoder  ProjectDecoder `toml:"decoder"`
}

// ProjectSeed is a seed region of a project file.
type ProjectSeed struct {
	Start uint32 `toml:"start"`
	End   uint32 `toml:"end"`
}

// ProjectDecoder contains the decoder settings of a project file.
type ProjectDecoder struct {
	Verbose      bool `toml:"verbose"`
	TabulateArgs bool `toml:"tabulate_args"`
	IndentBlocks bool `toml:"indent_blocks"`
	MaxScripts   int  `toml:"max_scripts"`
}

// LoadProject reads and parses a project file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var p Project
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key '%s' in %s", undecoded[0], path)
	}

	for i, seed := range p.Seeds {
		if seed.Start >= seed.End {
			return nil, fmt.Errorf("seed %d in %s: start %08X is not before end %08X",
				i, path, seed.Start, seed.End)
		}
	}
	return &p, nil
}

// Apply sets all options of the project that were not explicitly set on the
// command line. isSet reports whether a flag was passed.
func (p *Project) Apply(opts *options.Program, isSet func(flag string) bool) {
	if p.Output != "" && !isSet("o") {
		opts.Output = p.Output
	}
	if p.NoHeader && !isSet("noheader") {
		opts.NoHeader = true
	}
	if p.Decoder.Verbose && !isSet("v") {
		opts.Verbose = true
	}
	if p.Decoder.TabulateArgs && !isSet("tabulate") {
		opts.TabulateArgs = true
	}
	if p.Decoder.IndentBlocks && !isSet("indent") {
		opts.IndentBlocks = true
	}
	if p.Decoder.MaxScripts > 0 && !isSet("max-scripts") {
		opts.MaxScripts = p.Decoder.MaxScripts
	}

	if len(p.Seeds) > 0 && !isSet("start") {
		opts.Seeds = opts.Seeds[:0]
		for _, seed := range p.Seeds {
			opts.Seeds = append(opts.Seeds, options.Seed{Start: seed.Start, End: seed.End})
		}
	}
}
