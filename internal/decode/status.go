package decode

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// StatusCode classifies a WebP decode failure using the VP8 status
// numbering common to WebP tooling.
type StatusCode int

const (
	StatusOK StatusCode = iota
	StatusOutOfMemory
	StatusInvalidParam
	StatusBitstreamError
	StatusUnsupportedFeature
	StatusSuspended
	StatusUserAbort
	StatusNotEnoughData
)

func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "ok"
	case StatusOutOfMemory:
		return "out of memory"
	case StatusInvalidParam:
		return "invalid param"
	case StatusBitstreamError:
		return "bitstream error"
	case StatusUnsupportedFeature:
		return "unsupported feature"
	case StatusSuspended:
		return "suspended"
	case StatusUserAbort:
		return "user abort"
	case StatusNotEnoughData:
		return "not enough data"
	default:
		return "unknown"
	}
}

// StatusError is a decoder failure annotated with a status code.
type StatusError struct {
	Op   string
	Code StatusCode
	Err  error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to %s (status %d, %s): %v", e.Op, int(e.Code), e.Code, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// classify maps a decoder error onto a status code.
func classify(err error) StatusCode {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return StatusNotEnoughData
	case strings.Contains(err.Error(), "unsupported"):
		return StatusUnsupportedFeature
	default:
		return StatusBitstreamError
	}
}
