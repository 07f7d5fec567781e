// Package pixbuf owns the packed pixel memory behind an image asset.
//
// Every image in this module is stored in one layout: rows ordered top to
// bottom, pixels left to right, channel samples interleaved, one byte per
// sample and no padding between rows. A row is therefore width*channels
// bytes and the whole buffer is width*height*channels bytes.
//
// # Ownership
//
// A Buffer records where its memory came from:
//   - OriginSelf: allocated by this package. Released memory goes back to a
//     size-keyed pool and may be handed out again by Allocate.
//   - OriginDecoder: a slice adopted from a decoder's output image. Release
//     drops the reference; the memory is never pooled because the decoder's
//     image value may still alias it.
//
// Release is the only deallocation path and dispatches on the origin.
//
// # Row order
//
// Decoders do not agree on which row comes first. RowWriter maps a source
// row index to a destination row using a base offset and a signed stride,
// so a bottom-up source fills a top-down buffer by walking it backwards.
package pixbuf
