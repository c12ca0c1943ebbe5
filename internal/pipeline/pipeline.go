// Package pipeline orchestrates the script decoding workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/lsdisasm/internal/decoder"
	"github.com/retroenv/lsdisasm/internal/loader"
	"github.com/retroenv/lsdisasm/internal/options"
	"github.com/retroenv/lsdisasm/internal/output"
	"github.com/retroenv/lsdisasm/internal/queue"
	"github.com/retroenv/lsdisasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// DumpFileName is the name of the queue dump written in dump mode.
const DumpFileName = "queue_dump.txt"

// WriterConstructor returns the writer for the named output file.
type WriterConstructor func(name string) (io.WriteCloser, error)

// Result of a pipeline run.
type Result struct {
	Checksum  uint32         // CRC32 checksum of the normalized ROM image
	Regions   []queue.Region // all known regions in discovery order
	Files     []string       // names of the written script files
	Abandoned int            // number of regions that failed to decode
}

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(logger),
	}
}

// Execute loads the ROM file and runs the complete decoding pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, decOpts options.Decoder,
	newWriter WriterConstructor) (*Result, error) {

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	p.logger.Info("Processing ROM",
		log.String("file", opts.Input),
		log.Int("size", len(rom)))

	return p.ExecuteWithROM(ctx, rom, opts, decOpts, newWriter)
}

// ExecuteWithROM runs the decoding pipeline with a pre-loaded ROM image in
// big-endian byte order.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	decOpts options.Decoder, newWriter WriterConstructor) (*Result, error) {

	dec := decoder.New(p.logger, rom, decOpts)
	for _, seed := range opts.Seeds {
		dec.Seed(seed.Start, seed.End)
	}

	result := &Result{
		Checksum: writer.Checksum(rom),
	}

	for index := 0; ; {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("decoding cancelled: %w", err)
		}

		region, ok, err := dec.DecodeNext()
		if !ok {
			break
		}
		if err != nil {
			if errors.Is(err, output.ErrOutOfMemory) {
				return nil, err
			}
			p.logger.Warn("Abandoning script region",
				log.Stringer("region", region),
				log.Err(err))
			dec.Abandon(region)
			dec.Output().Reset()
			result.Abandoned++
			continue
		}

		name := writer.FileName(index, region.Start)
		header := writer.Header{
			Checksum: result.Checksum,
			Region:   region,
		}
		if err := p.writeScript(newWriter, name, header, dec.Output().Snapshot(), opts.NoHeader); err != nil {
			return nil, err
		}

		p.logger.Info("Decoded",
			log.Hex("start", region.Start),
			log.Hex("end", region.End),
			log.Int("size", dec.Output().Len()),
			log.String("file", name))
		dec.Output().Reset()

		result.Files = append(result.Files, name)
		index++
	}

	result.Regions = dec.Regions()

	if opts.Dump {
		if err := p.dumpQueue(newWriter, result.Regions); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (p *Pipeline) writeScript(newWriter WriterConstructor, name string, header writer.Header,
	text string, noHeader bool) error {

	w, err := newWriter(name)
	if err != nil {
		return fmt.Errorf("creating writer for %s: %w", name, err)
	}

	wr := writer.New(w, writer.Options{NoHeader: noHeader})
	if err := wr.WriteScript(header, text); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}

// dumpQueue writes a debug dump of all known script regions.
func (p *Pipeline) dumpQueue(newWriter WriterConstructor, regions []queue.Region) error {
	w, err := newWriter(DumpFileName)
	if err != nil {
		return fmt.Errorf("creating writer for %s: %w", DumpFileName, err)
	}

	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
	}
	cfg.Fdump(w, regions)

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", DumpFileName, err)
	}
	p.logger.Debug("Dumped script queue", log.Int("regions", len(regions)))
	return nil
}

// NopCloser wraps an io.Writer to add a no-op Close method.
func NopCloser(w io.Writer) io.WriteCloser {
	return &nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
