package pixbuf

import "math"

// Origin identifies which allocator owns a Buffer's memory.
type Origin int

const (
	// OriginSelf memory comes from Allocate and returns to its pool.
	OriginSelf Origin = iota
	// OriginDecoder memory was adopted from a decoder's output image.
	OriginDecoder
)

func (o Origin) String() string {
	switch o {
	case OriginSelf:
		return "self"
	case OriginDecoder:
		return "decoder"
	default:
		return "unknown"
	}
}

// Buffer is a block of packed pixel data tagged with its origin.
// The zero Buffer holds nothing and reports Loaded() == false.
type Buffer struct {
	pix    []byte
	origin Origin
}

// Size returns width*height*channels, the byte length of a packed buffer.
// It reports false when any factor is non-positive or the product does not
// fit in an int.
func Size(width, height, channels int) (int, bool) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return 0, false
	}
	if width > math.MaxInt/height || width*height > math.MaxInt/channels {
		return 0, false
	}
	return width * height * channels, true
}

// Allocate returns a self-owned buffer of n bytes. The contents are
// unspecified; callers overwrite every byte. n <= 0 yields an empty buffer.
func Allocate(n int) Buffer {
	if n <= 0 {
		return Buffer{}
	}
	return Buffer{pix: defaultPool.get(n), origin: OriginSelf}
}

// Adopt wraps decoder-owned memory without copying it.
func Adopt(pix []byte) Buffer {
	if len(pix) == 0 {
		return Buffer{}
	}
	return Buffer{pix: pix, origin: OriginDecoder}
}

// Copy returns a self-owned buffer holding a copy of src.
func Copy(src []byte) Buffer {
	b := Allocate(len(src))
	copy(b.pix, src)
	return b
}

// Bytes returns the underlying pixel slice, or nil once released.
// The slice must not be retained past the next Release.
func (b Buffer) Bytes() []byte { return b.pix }

// Len returns the buffer length in bytes.
func (b Buffer) Len() int { return len(b.pix) }

// Loaded reports whether the buffer holds memory.
func (b Buffer) Loaded() bool { return b.pix != nil }

// Origin returns the allocator that owns the memory.
func (b Buffer) Origin() Origin { return b.origin }

// Release hands the memory back to its owner and empties b.
// Releasing an empty buffer is a no-op.
func (b *Buffer) Release() {
	if b.pix == nil {
		return
	}
	switch b.origin {
	case OriginSelf:
		defaultPool.put(b.pix)
	case OriginDecoder:
		// The decoder's image is garbage collected with its last reference.
	}
	b.pix = nil
	b.origin = OriginSelf
}

// Replace installs next in b and releases the previous memory.
func (b *Buffer) Replace(next Buffer) {
	prev := *b
	*b = next
	prev.Release()
}
