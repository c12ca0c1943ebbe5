// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/lsdisasm/internal/options"
	"github.com/retroenv/lsdisasm/internal/pipeline"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, decoderOptions options.Decoder) error {
	newWriter, err := createWriterConstructor(opts.Output)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	// the text is written to the console anyway when no output directory is set
	if decoderOptions.Verbose && opts.Output != "" {
		decoderOptions.Console = os.Stdout
	}

	p := pipeline.New(logger)
	result, err := p.Execute(ctx, opts, decoderOptions, newWriter)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	logger.Info("Decoding finished",
		log.String("file", opts.Input),
		log.Int("scripts", len(result.Files)),
		log.Int("abandoned", result.Abandoned),
		log.Hex("crc32", result.Checksum))
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputDirectory generates the output directory for a given input
// file of a batch run. The directory is named after the input file and placed
// inside the parent directory, or next to the input file if no parent is given.
func GenerateOutputDirectory(inputFile, parent string) string {
	base := filepath.Base(inputFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if parent == "" {
		return filepath.Join(filepath.Dir(inputFile), name)
	}
	return filepath.Join(parent, name)
}

// createWriterConstructor returns a constructor that creates script files in
// the output directory, or writes everything to stdout if no directory is set.
func createWriterConstructor(outputDir string) (pipeline.WriterConstructor, error) {
	if outputDir == "" {
		return func(string) (io.WriteCloser, error) {
			return pipeline.NopCloser(os.Stdout), nil
		}, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	return func(name string) (io.WriteCloser, error) {
		path := filepath.Join(outputDir, name)
		file, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating output file %s: %w", path, err)
		}
		return file, nil
	}, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("lsdisasm", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
