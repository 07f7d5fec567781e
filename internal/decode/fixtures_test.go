package decode

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	topColor    = color.NRGBA{255, 255, 255, 255}
	bottomColor = color.NRGBA{0, 0, 0, 255}
)

// createSplitImage returns a w x h image whose top half is white and bottom
// half black, so row order is visible after any lossy round trip.
func createSplitImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := topColor
		if y >= h/2 {
			c = bottomColor
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodeGIF(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode gif: %v", err)
	}
	return buf.Bytes()
}

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode bmp: %v", err)
	}
	return buf.Bytes()
}

func encodeTIFF(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode tiff: %v", err)
	}
	return buf.Bytes()
}

// writeTempFile writes data to a temp file and returns its path.
// The caller is responsible for removing the file.
func writeTempFile(t *testing.T, pattern string, data []byte) string {
	t.Helper()
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		t.Fatalf("failed to write temp file: %v", err)
	}
	return f.Name()
}

// bitWriter packs values least-significant bit first, as VP8L expects.
type bitWriter struct {
	buf  []byte
	acc  uint64
	nacc uint
}

func (w *bitWriter) write(v uint32, n uint) {
	w.acc |= uint64(v) << w.nacc
	w.nacc += n
	for w.nacc >= 8 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc >>= 8
		w.nacc -= 8
	}
}

func (w *bitWriter) bytes() []byte {
	if w.nacc > 0 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc, w.nacc = 0, 0
	}
	return w.buf
}

// Constant samples of every pixel in createLosslessWebP images.
const (
	webpRed   = 10
	webpBlue  = 20
	webpAlpha = 255
)

// createLosslessWebP builds a lossless WebP of w x h pixels. The first
// topRows rows have green 255, the rest green 0. Red, blue and alpha are
// the constants above.
//
// The bitstream uses no transforms, no color cache and simple prefix codes:
// a two-symbol green code {0, 255} (one bit per pixel) and single-symbol
// codes for everything else (zero bits per pixel).
func createLosslessWebP(w, h, topRows int) []byte {
	var bw bitWriter

	bw.write(0x2f, 8) // VP8L signature
	bw.write(uint32(w-1), 14)
	bw.write(uint32(h-1), 14)
	bw.write(1, 1) // alpha hint
	bw.write(0, 3) // version

	bw.write(0, 1) // no transform
	bw.write(0, 1) // no color cache
	bw.write(0, 1) // no meta prefix codes

	// green: simple, two symbols, first symbol 1 bit wide (0), second 8 bits (255)
	bw.write(1, 1)
	bw.write(1, 1)
	bw.write(0, 1)
	bw.write(0, 1)
	bw.write(255, 8)

	single8 := func(sym uint32) {
		bw.write(1, 1) // simple
		bw.write(0, 1) // one symbol
		bw.write(1, 1) // 8-bit symbol
		bw.write(sym, 8)
	}
	single8(webpRed)
	single8(webpBlue)
	single8(webpAlpha)

	// distance: simple, one 1-bit symbol (0)
	bw.write(1, 1)
	bw.write(0, 1)
	bw.write(0, 1)
	bw.write(0, 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y < topRows {
				bw.write(1, 1) // code 1 -> green 255
			} else {
				bw.write(0, 1) // code 0 -> green 0
			}
		}
	}

	payload := append(bw.bytes(), 0, 0, 0, 0)
	if len(payload)%2 == 1 {
		payload = append(payload, 0)
	}

	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(4+8+len(payload)))
	out.WriteString("WEBP")
	out.WriteString("VP8L")
	binary.Write(&out, binary.LittleEndian, uint32(len(payload)))
	out.Write(payload)
	return out.Bytes()
}
