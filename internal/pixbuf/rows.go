package pixbuf

// RowOrder is the order in which a decoder emits image rows.
type RowOrder int

const (
	// TopDown emits the visually topmost row first.
	TopDown RowOrder = iota
	// BottomUp emits the visually bottom row first.
	BottomUp
)

// RowWriter addresses the rows of a packed destination buffer by source
// row index. Source row i lands at dst[base+i*stride:], so a negative stride
// starting from the last row turns a bottom-up source into a top-down buffer.
type RowWriter struct {
	dst      []byte
	base     int
	stride   int
	rowBytes int
}

// NewRowWriter prepares dst, which holds rows rows of rowBytes bytes, to be
// filled from a source with the given row order.
func NewRowWriter(dst []byte, rows, rowBytes int, order RowOrder) RowWriter {
	w := RowWriter{dst: dst, stride: rowBytes, rowBytes: rowBytes}
	if order == BottomUp {
		w.base = (rows - 1) * rowBytes
		w.stride = -rowBytes
	}
	return w
}

// Row returns the destination slice for source row i.
func (w RowWriter) Row(i int) []byte {
	off := w.base + i*w.stride
	return w.dst[off : off+w.rowBytes]
}

// Stride returns the signed byte distance between consecutive source rows.
func (w RowWriter) Stride() int { return w.stride }
