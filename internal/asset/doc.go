// Package asset provides lifecycle control over a single decoded raster
// image.
//
// An Asset holds at most one pixel buffer plus its width, height and channel
// count. Buffers are packed and top-down with 1 to 4 interleaved 8-bit
// channels; see package pixbuf for the layout.
//
// # Loading
//
// Images can be loaded from a file (LoadFile), from encoded bytes in memory
// (LoadBytes) or from already decoded pixels (LoadPixels). File and byte
// loads pick a decoder from the first bytes of the data: WebP decodes to
// RGBA, JPEG to RGB, and everything else (PNG, GIF, BMP, TIFF) keeps the
// channel count of its encoding.
//
// A failed load leaves the previously loaded image untouched.
//
// # Coordinate System
//
// Pixel reads (Pixel) use top-left coordinates: (0,0) is the top-left pixel,
// y grows downward. Clip uses bottom-left coordinates: (x, y) is the
// offset of the clip's bottom-left corner from the image's bottom-left
// corner, y growing upward.
//
// # Error Handling
//
// Every method clears the asset's last error on entry. A failing method
// returns its error and also records it, so it can be read afterwards with
// Err or GetError until the next call. Only the first failure of a call is
// recorded.
//
// Operations other than loading require a loaded image and fail with
// ErrNotLoaded otherwise; Width, Height and ChannelCount return -1 then.
//
// # Thread Safety
//
// An Asset is not safe for concurrent use. Independent assets share only
// the pixel buffer pool, which is safe for concurrent use, and may be used
// from different goroutines.
package asset
