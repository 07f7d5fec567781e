package decode

import (
	"bytes"
	"fmt"
	_ "image/gif" // Register GIF format decoder
	_ "image/png" // Register PNG format decoder

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder

	"github.com/ironsheep/image-asset/internal/pixbuf"
	"github.com/ironsheep/image-asset/internal/sniff"
)

// image.Image addresses rows top-down for every registered codec, which is
// also what lets AdoptImage take the decoded pixels as they are.
const genericRowOrder = pixbuf.TopDown

// Generic decodes any format registered with the image package. The channel
// count is whatever the source encoding carries (see pixbuf.NativeChannels).
// When the decoded image is already packed its pixels are adopted without a
// copy and the buffer is decoder-owned.
func Generic(data []byte, opts Options) (Result, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode image: %w", err)
	}

	b := img.Bounds()
	channels := pixbuf.NativeChannels(img)

	buf, adopted := pixbuf.AdoptImage(img, channels)
	if !adopted {
		if buf, err = pixbuf.FromImage(img, channels, genericRowOrder); err != nil {
			return Result{}, fmt.Errorf("failed to decode image: %w", err)
		}
	}

	opts.Log().WithFields(logrus.Fields{
		"width":    b.Dx(),
		"height":   b.Dy(),
		"channels": channels,
		"origin":   buf.Origin(),
	}).Debug("generic decode complete")

	return Result{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Format:   sniff.Generic,
		Buffer:   buf,
	}, nil
}
