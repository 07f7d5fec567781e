// Package decode turns encoded image bytes into packed top-down pixel
// buffers.
//
// Three backends exist, selected by sniffing the first bytes of the input:
//   - Generic: any format registered with the image package (PNG, GIF, BMP,
//     TIFF); channel count follows the source encoding.
//   - WebP: always RGBA.
//   - JPEG: always RGB.
//
// Each backend declares the row order its decoder produces and packs
// through pixbuf.RowWriter, so every Result has row 0 at the visual top.
// A failed decode returns no buffer; nothing is retained between calls.
package decode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-asset/internal/pixbuf"
	"github.com/ironsheep/image-asset/internal/sniff"
)

// ErrEmptyFile is returned when a file to load has zero length.
var ErrEmptyFile = errors.New("empty file")

// Options configures a single decode call. There is no package-level
// decoder state; every setting travels with the call.
type Options struct {
	// AutoOrient applies the EXIF orientation tag, when present, so the
	// buffer matches how the image is meant to be viewed.
	AutoOrient bool

	// MaxFileBytes rejects files larger than this many bytes. Zero means
	// no limit. In-memory input is never limited.
	MaxFileBytes int64

	// Logger receives debug output. Nil discards it.
	Logger *logrus.Entry
}

// Result is a decoded image in the packed layout.
type Result struct {
	Width    int
	Height   int
	Channels int
	Format   sniff.Format
	Buffer   pixbuf.Buffer
}

// Func is the signature shared by the backends.
type Func func(data []byte, opts Options) (Result, error)

// Backend returns the decode function for a format.
func Backend(f sniff.Format) Func {
	switch f {
	case sniff.WebP:
		return WebP
	case sniff.JPEG:
		return JPEG
	default:
		return Generic
	}
}

// Bytes sniffs data and decodes it with the matching backend.
func Bytes(data []byte, opts Options) (Result, error) {
	format := sniff.Detect(data)
	opts.Log().WithFields(logrus.Fields{
		"format": format,
		"bytes":  len(data),
	}).Debug("decoding buffer")

	return Backend(format)(data, opts)
}

// File reads the format prefix of the file at path, then reads the whole
// file and decodes it with the matching backend. The file is closed on
// every return path.
func File(path string, opts Options) (Result, error) {
	f, size, err := openFile(path, opts.MaxFileBytes)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	prefix, err := sniff.ReadPrefix(f)
	if err != nil {
		return Result{}, fmt.Errorf("failed to detect format: %w", err)
	}
	format := sniff.Detect(prefix)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Result{}, fmt.Errorf("failed to load %s (seek to begin): %w", format, err)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return Result{}, fmt.Errorf("failed to load %s (read file): %w", format, err)
	}

	opts.Log().WithFields(logrus.Fields{
		"path":   path,
		"format": format,
		"bytes":  size,
	}).Debug("decoding file")

	return Backend(format)(data, opts)
}

// openFile opens path and checks its size. The caller closes the file.
func openFile(path string, maxBytes int64) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open image: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat file: %w", err)
	}

	size := stat.Size()
	switch {
	case size == 0:
		f.Close()
		return nil, 0, fmt.Errorf("failed to detect format: %w", ErrEmptyFile)
	case maxBytes > 0 && size > maxBytes:
		f.Close()
		return nil, 0, fmt.Errorf("file size %d exceeds limit of %d bytes", size, maxBytes)
	}

	return f, size, nil
}

var discard = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}()

// Log returns the configured logger, or one that discards everything.
func (o Options) Log() *logrus.Entry {
	if o.Logger == nil {
		return discard
	}
	return o.Logger
}
