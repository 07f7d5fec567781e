package asset

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-asset/internal/decode"
	"github.com/ironsheep/image-asset/internal/pixbuf"
	"github.com/ironsheep/image-asset/internal/sniff"
	"github.com/ironsheep/image-asset/internal/transform"
)

// Asset is a single image with its pixel buffer and metadata.
// The zero value is not usable; create assets with New.
type Asset struct {
	buf      pixbuf.Buffer
	width    int32
	height   int32
	channels int32
	format   sniff.Format

	err  errorSlot
	opts decode.Options
}

// New returns an empty, unloaded asset.
func New(opts ...Option) *Asset {
	a := &Asset{opts: decode.Options{AutoOrient: true}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Asset) fail(err error) error {
	return a.err.set(err)
}

// install replaces the current image with buf. The previous buffer is
// released once the new one is in place.
func (a *Asset) install(buf pixbuf.Buffer, width, height, channels int, format sniff.Format) {
	a.buf.Replace(buf)
	a.width = int32(width)
	a.height = int32(height)
	a.channels = int32(channels)
	a.format = format

	a.opts.Log().WithFields(logrus.Fields{
		"width":    width,
		"height":   height,
		"channels": channels,
		"format":   format,
		"origin":   buf.Origin(),
	}).Debug("image buffer installed")
}

func (a *Asset) installResult(res decode.Result) {
	a.install(res.Buffer, res.Width, res.Height, res.Channels, res.Format)
}

// Err returns the error recorded by the most recent call, or nil.
func (a *Asset) Err() error {
	return a.err.err
}

// GetError returns the message of the most recent call's error, or "".
func (a *Asset) GetError() string {
	if a.err.err == nil {
		return ""
	}
	return a.err.err.Error()
}

// Loaded reports whether the asset holds an image.
func (a *Asset) Loaded() bool {
	return a.buf.Loaded()
}

// LoadFile decodes the image file at path.
func (a *Asset) LoadFile(path string) error {
	a.err.clear()

	res, err := decode.File(path, a.opts)
	if err != nil {
		return a.fail(err)
	}
	a.installResult(res)
	return nil
}

// LoadBytes decodes an encoded image held in memory.
func (a *Asset) LoadBytes(data []byte) error {
	a.err.clear()

	res, err := decode.Bytes(data, a.opts)
	if err != nil {
		return a.fail(err)
	}
	a.installResult(res)
	return nil
}

// LoadPixels copies already decoded pixels into the asset. pix must hold
// at least width*height*channels bytes in the packed top-down layout;
// exactly that many are copied. No format detection takes place.
func (a *Asset) LoadPixels(pix []byte, width, height, channels int32) error {
	a.err.clear()

	if len(pix) == 0 {
		return a.fail(ErrNilBuffer)
	}
	size, ok := pixbuf.Size(int(width), int(height), int(channels))
	if !ok {
		return a.fail(fmt.Errorf("%w: %dx%d with %d channels", ErrInvalidSize, width, height, channels))
	}
	if len(pix) < size {
		return a.fail(fmt.Errorf("%w: %d bytes for %dx%dx%d", ErrInvalidSize, len(pix), width, height, channels))
	}

	a.install(pixbuf.Copy(pix[:size]), int(width), int(height), int(channels), sniff.Generic)
	return nil
}

// Width returns the image width, or -1 when nothing is loaded.
func (a *Asset) Width() int32 {
	a.err.clear()

	if !a.buf.Loaded() {
		a.fail(ErrNotLoaded)
		return -1
	}
	return a.width
}

// Height returns the image height, or -1 when nothing is loaded.
func (a *Asset) Height() int32 {
	a.err.clear()

	if !a.buf.Loaded() {
		a.fail(ErrNotLoaded)
		return -1
	}
	return a.height
}

// ChannelCount returns the number of samples per pixel, or -1 when nothing
// is loaded.
func (a *Asset) ChannelCount() int32 {
	a.err.clear()

	if !a.buf.Loaded() {
		a.fail(ErrNotLoaded)
		return -1
	}
	return a.channels
}

// Format returns the format the loaded image was decoded from. Clip,
// Resize and Clone keep it; LoadPixels reports Generic.
func (a *Asset) Format() (sniff.Format, error) {
	a.err.clear()

	if !a.buf.Loaded() {
		return sniff.Generic, a.fail(ErrNotLoaded)
	}
	return a.format, nil
}

// Origin reports which allocator owns the current buffer.
func (a *Asset) Origin() (pixbuf.Origin, error) {
	a.err.clear()

	if !a.buf.Loaded() {
		return pixbuf.OriginSelf, a.fail(ErrNotLoaded)
	}
	return a.buf.Origin(), nil
}

// Clip keeps only the width x height rectangle whose bottom-left corner is
// at (x, y), measured from the image's bottom-left corner. On failure the
// image is unchanged.
func (a *Asset) Clip(x, y, width, height int32) error {
	a.err.clear()

	if !a.buf.Loaded() {
		return a.fail(ErrNotLoaded)
	}

	next, err := transform.Clip(a.buf.Bytes(),
		int(a.width), int(a.height), int(a.channels),
		int(x), int(y), int(width), int(height))
	if err != nil {
		return a.fail(err)
	}

	a.install(next, int(width), int(height), int(a.channels), a.format)
	return nil
}

// Resize scales the image to width x height with nearest-neighbor
// sampling. On failure the image is unchanged.
func (a *Asset) Resize(width, height int32) error {
	a.err.clear()

	if !a.buf.Loaded() {
		return a.fail(ErrNotLoaded)
	}

	next, err := transform.Resize(a.buf.Bytes(),
		int(a.width), int(a.height), int(a.channels),
		int(width), int(height))
	if err != nil {
		return a.fail(err)
	}

	a.install(next, int(width), int(height), int(a.channels), a.format)
	return nil
}

// Unload releases the image buffer and clears the metadata.
func (a *Asset) Unload() error {
	a.err.clear()

	if !a.buf.Loaded() {
		return a.fail(ErrNotLoaded)
	}

	a.buf.Release()
	a.width, a.height, a.channels = 0, 0, 0
	a.format = sniff.Generic

	a.opts.Log().Debug("image buffer released")
	return nil
}

// CopyTo copies the packed pixels into dst and returns the number of bytes
// copied. dst should hold Width*Height*ChannelCount bytes; a shorter
// destination receives only a prefix.
func (a *Asset) CopyTo(dst []byte) (int, error) {
	a.err.clear()

	if !a.buf.Loaded() {
		return 0, a.fail(ErrNotLoaded)
	}

	size := int(a.width) * int(a.height) * int(a.channels)
	return copy(dst, a.buf.Bytes()[:size]), nil
}

// Pixel returns a copy of the samples of the pixel at (x, y), using
// top-left coordinates.
func (a *Asset) Pixel(x, y int32) ([]byte, error) {
	a.err.clear()

	if !a.buf.Loaded() {
		return nil, a.fail(ErrNotLoaded)
	}
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return nil, a.fail(fmt.Errorf("%w: pixel (%d,%d) outside %dx%d",
			ErrRangeExceeded, x, y, a.width, a.height))
	}

	samples := pixbuf.Pixel(a.buf.Bytes(), int(a.width), int(a.channels), int(x), int(y))
	return append([]byte(nil), samples...), nil
}

// Clone returns an independent copy of the asset. The copy has its own
// buffer and the same decode options.
func (a *Asset) Clone() (*Asset, error) {
	a.err.clear()

	if !a.buf.Loaded() {
		return nil, a.fail(ErrNotLoaded)
	}

	c := &Asset{opts: a.opts}
	if err := c.LoadPixels(a.buf.Bytes(), a.width, a.height, a.channels); err != nil {
		return nil, a.fail(err)
	}
	c.format = a.format
	return c, nil
}
