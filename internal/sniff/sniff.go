// Package sniff classifies encoded image data by its leading magic bytes.
package sniff

import (
	"bytes"
	"errors"
	"io"
)

// PrefixSize is the number of leading bytes Detect inspects.
const PrefixSize = 16

// Format identifies which decode backend handles a byte stream.
type Format int

const (
	// Generic is any input that is neither WebP nor JPEG.
	Generic Format = iota
	// WebP is a RIFF container with the WEBP form type.
	WebP
	// JPEG starts with the SOI marker followed by another marker.
	JPEG
)

var (
	riffSignature = []byte("RIFF")
	webpSignature = []byte("WEBP")
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
)

func (f Format) String() string {
	switch f {
	case WebP:
		return "webp"
	case JPEG:
		return "jpeg"
	default:
		return "generic"
	}
}

// Detect returns the format whose signature matches the start of prefix.
// Only the first PrefixSize bytes are examined; anything unmatched,
// including empty input, is Generic.
func Detect(prefix []byte) Format {
	if len(prefix) > PrefixSize {
		prefix = prefix[:PrefixSize]
	}

	// RIFF (4 bytes) + little-endian size (4 bytes) + form type (4 bytes)
	if len(prefix) >= 12 && bytes.HasPrefix(prefix, riffSignature) && bytes.Equal(prefix[8:12], webpSignature) {
		return WebP
	}

	if bytes.HasPrefix(prefix, jpegSignature) {
		return JPEG
	}

	return Generic
}

// ReadPrefix reads up to PrefixSize bytes from r. A stream shorter than
// PrefixSize is not an error; the short prefix is returned as is.
func ReadPrefix(r io.Reader) ([]byte, error) {
	buf := make([]byte, PrefixSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}
