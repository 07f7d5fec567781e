package asset

import (
	"errors"

	"github.com/ironsheep/image-asset/internal/decode"
	"github.com/ironsheep/image-asset/internal/transform"
)

var (
	// ErrNotLoaded is returned by operations that need a loaded image.
	ErrNotLoaded = errors.New("image asset is not loaded")
	// ErrRangeExceeded is returned when coordinates fall outside the image.
	ErrRangeExceeded = transform.ErrRangeExceeded
	// ErrInvalidSize is returned for non-positive dimensions or a pixel
	// slice too short for the declared dimensions.
	ErrInvalidSize = transform.ErrInvalidSize
	// ErrNilBuffer is returned when LoadPixels is given no data.
	ErrNilBuffer = errors.New("pixel buffer is empty")
	// ErrEmptyFile is returned when a file to load has zero length.
	ErrEmptyFile = decode.ErrEmptyFile
)

// errorSlot holds the most recent error of one asset.
type errorSlot struct {
	err error
}

func (s *errorSlot) clear() { s.err = nil }

// set records err unless an error is already recorded, and returns the
// recorded one.
func (s *errorSlot) set(err error) error {
	if s.err == nil {
		s.err = err
	}
	return s.err
}
