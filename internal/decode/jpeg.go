package decode

import (
	"bytes"
	"fmt"

	"github.com/gen2brain/jpegn"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-asset/internal/pixbuf"
	"github.com/ironsheep/image-asset/internal/sniff"
)

const (
	jpegChannels = 3
	// jpegn decompresses MCU rows top-down.
	jpegRowOrder = pixbuf.TopDown
)

// JPEG decodes a JPEG stream into a self-owned RGB buffer.
//
// The header is probed first so a truncated or foreign stream fails before
// any pixel memory is allocated. With AutoOrient the decoder applies the
// EXIF orientation, which may swap width and height relative to the header.
func JPEG(data []byte, opts Options) (Result, error) {
	cfg, err := jpegn.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("failed to read jpeg header: %w", err)
	}

	img, err := jpegn.Decode(bytes.NewReader(data), &jpegn.Options{
		ToRGBA:     true,
		AutoRotate: opts.AutoOrient,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to decompress jpeg: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	sameSize := w == cfg.Width && h == cfg.Height
	transposed := opts.AutoOrient && w == cfg.Height && h == cfg.Width
	if !sameSize && !transposed {
		return Result{}, fmt.Errorf("failed to decompress jpeg: decoded %dx%d, header declares %dx%d",
			w, h, cfg.Width, cfg.Height)
	}

	buf, err := pixbuf.FromImage(img, jpegChannels, jpegRowOrder)
	if err != nil {
		return Result{}, fmt.Errorf("failed to decompress jpeg: %w", err)
	}

	opts.Log().WithFields(logrus.Fields{
		"width":      w,
		"height":     h,
		"transposed": transposed && !sameSize,
	}).Debug("jpeg decode complete")

	return Result{
		Width:    w,
		Height:   h,
		Channels: jpegChannels,
		Format:   sniff.JPEG,
		Buffer:   buf,
	}, nil
}
