package decode

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/webp"

	"github.com/ironsheep/image-asset/internal/pixbuf"
	"github.com/ironsheep/image-asset/internal/sniff"
)

const (
	webpChannels = 4
	// x/image/webp emits rows top-down.
	webpRowOrder = pixbuf.TopDown
)

// WebP decodes a WebP container into a self-owned RGBA buffer. The
// container must report its dimensions before any pixels are decoded.
func WebP(data []byte, opts Options) (Result, error) {
	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("failed to get webp info: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Result{}, &StatusError{
			Op:   "get webp features",
			Code: StatusInvalidParam,
			Err:  fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height),
		}
	}

	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, &StatusError{Op: "decode webp", Code: classify(err), Err: err}
	}

	b := img.Bounds()
	if b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		return Result{}, &StatusError{
			Op:   "decode webp",
			Code: StatusBitstreamError,
			Err:  fmt.Errorf("decoded %dx%d, header declares %dx%d", b.Dx(), b.Dy(), cfg.Width, cfg.Height),
		}
	}

	buf, err := pixbuf.FromImage(img, webpChannels, webpRowOrder)
	if err != nil {
		return Result{}, &StatusError{Op: "decode webp", Code: StatusInvalidParam, Err: err}
	}

	opts.Log().WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
	}).Debug("webp decode complete")

	return Result{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Channels: webpChannels,
		Format:   sniff.WebP,
		Buffer:   buf,
	}, nil
}
