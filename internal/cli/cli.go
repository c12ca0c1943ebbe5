// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/lsdisasm/internal/config"
	"github.com/retroenv/lsdisasm/internal/options"
	"github.com/retroenv/lsdisasm/internal/queue"
)

// ParseFlags parses command line flags and returns program and decoder options
func ParseFlags() (options.Program, options.Decoder, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, options.Decoder, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(osArgs[1:])
	if errors.Is(err, flag.ErrHelp) {
		return opts, options.Decoder{}, &UsageError{flags: flags}
	}
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, options.Decoder{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Decoder{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	if err := readSeed(&opts); err != nil {
		return opts, options.Decoder{}, err
	}

	if opts.Config != "" {
		project, err := config.LoadProject(opts.Config)
		if err != nil {
			return opts, options.Decoder{}, fmt.Errorf("loading project file: %w", err)
		}
		set := map[string]bool{}
		flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
		project.Apply(&opts, func(name string) bool { return set[name] })
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, options.Decoder{}, err
	}

	return opts, createDecoderOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: lsdisasm [options] <ROM file to decode>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// readSeed converts the seed region flags, the default entry script region
// is used if no start offset was given.
func readSeed(opts *options.Program) error {
	if opts.Start == "" {
		if opts.End != "" {
			return errors.New("seed end offset given without start offset")
		}
		opts.Seeds = options.DefaultSeeds()
		return nil
	}
	if opts.End == "" {
		return errors.New("seed start offset given without end offset")
	}

	start, err := parseOffset(opts.Start)
	if err != nil {
		return fmt.Errorf("parsing start offset: %w", err)
	}
	end, err := parseOffset(opts.End)
	if err != nil {
		return fmt.Errorf("parsing end offset: %w", err)
	}
	if start >= end {
		return fmt.Errorf("start offset %08X is not before end offset %08X", start, end)
	}

	opts.Seeds = []options.Seed{{Start: start, End: end}}
	return nil
}

// parseOffset parses a ROM offset, decimal or with 0x prefix.
func parseOffset(s string) (uint32, error) {
	i, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid offset '%s': %w", s, err)
	}
	return uint32(i), nil
}

// validateOptionCombinations checks for conflicting options.
func validateOptionCombinations(opts options.Program) error {
	if opts.Debug && opts.Quiet {
		return errors.New("debug and quiet options are mutually exclusive")
	}
	if opts.Verbose && opts.Quiet {
		return errors.New("verbose and quiet options are mutually exclusive")
	}
	if opts.MaxScripts < 0 {
		return fmt.Errorf("invalid maximum script count %d", opts.MaxScripts)
	}
	return nil
}

// createDecoderOptions creates decoder options based on program options
func createDecoderOptions(opts options.Program) options.Decoder {
	decoderOptions := options.NewDecoder()
	decoderOptions.Verbose = opts.Verbose
	decoderOptions.TabulateArgs = opts.TabulateArgs
	decoderOptions.IndentBlocks = opts.IndentBlocks
	if opts.MaxScripts > 0 {
		decoderOptions.MaxScripts = opts.MaxScripts
	}
	return decoderOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "directory to write the decoded script files to, printed on console if no name given")
	flags.StringVar(&opts.Config, "c", "", "TOML project file with seed regions and decoder options")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.z64")
	flags.StringVar(&opts.Start, "start", "", "start offset of the seed script region (default 0x108A10)")
	flags.StringVar(&opts.End, "end", "", "end offset of the seed script region (default 0x108A38)")
	flags.IntVar(&opts.MaxScripts, "max-scripts", queue.DefaultCapacity, "maximum number of script regions to decode")
	flags.BoolVar(&opts.Verbose, "v", false, "print the decoded text and every decoded range on console")
	flags.BoolVar(&opts.TabulateArgs, "tabulate", false, "tabulate command arguments (reserved)")
	flags.BoolVar(&opts.IndentBlocks, "indent", false, "indent command blocks (reserved)")
	flags.BoolVar(&opts.NoHeader, "noheader", false, "do not write the comment header to script files")
	flags.BoolVar(&opts.Dump, "dump", false, "dump the final script queue for debugging")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
