// Package bufferio writes rendered frame buffers for consumption outside Go.
package bufferio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Format selects how Write encodes a buffer.
type Format string

const (
	// Raw is the buffer as consecutive little-endian uint32 values.
	Raw Format = "raw"

	// Text is one line per row of space-separated counts.
	Text Format = "text"
)

// ErrUnknownFormat is returned for format names other than raw and text.
var ErrUnknownFormat = errors.New("unknown buffer format")

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Raw, Text:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write encodes a buffer of rows each width cells long.
func Write(w io.Writer, format Format, width int, buffer []uint32) error {
	if width <= 0 || len(buffer)%width != 0 {
		return fmt.Errorf("buffer of length %d is not a whole number of rows of width %d", len(buffer), width)
	}

	switch format {
	case Raw:
		return binary.Write(w, binary.LittleEndian, buffer)
	case Text:
		return writeText(w, width, buffer)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, width int, buffer []uint32) error {
	bw := bufio.NewWriter(w)

	line := make([]byte, 0, width*4)
	for start := 0; start < len(buffer); start += width {
		line = line[:0]
		for i, count := range buffer[start : start+width] {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, uint64(count), 10)
		}
		line = append(line, '\n')

		_, err := bw.Write(line)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
