// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/lsdisasm/internal/detector"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading ROM images from disk.
type Loader struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Load reads the ROM file and returns its content in big-endian byte order.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return l.Normalize(data), nil
}

// Normalize converts the ROM image to big-endian byte order in place.
func (l *Loader) Normalize(data []byte) []byte {
	order := l.detector.Detect(data)
	l.logger.Debug("Detected ROM byte order",
		log.Stringer("order", order),
		log.Int("size", len(data)))

	switch order {
	case detector.ByteSwapped:
		swap16(data)
	case detector.LittleEndian:
		swap32(data)
	}
	return data
}

// swap16 swaps the bytes of every 16 bit word, a trailing odd byte is kept.
func swap16(data []byte) {
	for i := 0; i+1 < len(data); i += 2 {
		data[i], data[i+1] = data[i+1], data[i]
	}
}

// swap32 reverses the bytes of every 32 bit word, trailing bytes are kept.
func swap32(data []byte) {
	for i := 0; i+3 < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
	}
}
