package pixbuf

import (
	"bytes"
	"math"
	"testing"
)

func TestAllocate(t *testing.T) {
	b := Allocate(12)
	if !b.Loaded() {
		t.Fatal("Allocate(12) returned an empty buffer")
	}
	if b.Len() != 12 {
		t.Errorf("Len: got %d, want 12", b.Len())
	}
	if b.Origin() != OriginSelf {
		t.Errorf("Origin: got %v, want self", b.Origin())
	}
	b.Release()
}

func TestAllocate_Zero(t *testing.T) {
	for _, n := range []int{0, -1} {
		if b := Allocate(n); b.Loaded() {
			t.Errorf("Allocate(%d) should return an empty buffer", n)
		}
	}
}

func TestAdopt(t *testing.T) {
	pix := []byte{1, 2, 3}
	b := Adopt(pix)
	if b.Origin() != OriginDecoder {
		t.Errorf("Origin: got %v, want decoder", b.Origin())
	}
	if &b.Bytes()[0] != &pix[0] {
		t.Error("Adopt copied the slice instead of wrapping it")
	}

	b.Release()
	if b.Loaded() {
		t.Error("buffer still loaded after Release")
	}
	// Released decoder memory must be left alone, not cleared or pooled.
	if !bytes.Equal(pix, []byte{1, 2, 3}) {
		t.Errorf("decoder memory modified by Release: %v", pix)
	}

	if Adopt(nil).Loaded() {
		t.Error("Adopt(nil) should be empty")
	}
}

func TestCopy(t *testing.T) {
	src := []byte{9, 8, 7, 6}
	b := Copy(src)
	defer b.Release()

	if !bytes.Equal(b.Bytes(), src) {
		t.Errorf("Copy contents: got %v, want %v", b.Bytes(), src)
	}
	src[0] = 0
	if b.Bytes()[0] != 9 {
		t.Error("Copy shares memory with its source")
	}
}

func TestRelease_Idempotent(t *testing.T) {
	b := Allocate(4)
	b.Release()
	b.Release()
	if b.Bytes() != nil {
		t.Error("Bytes should be nil after Release")
	}

	var zero Buffer
	zero.Release()
}

func TestReplace(t *testing.T) {
	b := Copy([]byte{1, 1})
	next := Adopt([]byte{2, 2, 2})
	b.Replace(next)

	if b.Origin() != OriginDecoder || b.Len() != 3 {
		t.Errorf("Replace did not install the new buffer: origin %v len %d", b.Origin(), b.Len())
	}
}

func TestPool_ReusesReleasedBuffers(t *testing.T) {
	const size = 4099 // unlikely to collide with other tests
	b := Allocate(size)
	b.Bytes()[0] = 0xAA
	b.Release()

	hitsBefore, _ := PoolMetrics()
	// sync.Pool may drop entries at any GC, so only check that reused
	// memory arrives cleared.
	again := Allocate(size)
	defer again.Release()
	if again.Bytes()[0] != 0 {
		t.Error("pooled buffer was not cleared before reuse")
	}
	hitsAfter, misses := PoolMetrics()
	if hitsAfter < hitsBefore || misses == 0 {
		t.Errorf("unexpected metrics: hits %d -> %d, misses %d", hitsBefore, hitsAfter, misses)
	}
}

func TestPool_LimitsDistinctSizes(t *testing.T) {
	p := newBytePool()
	for n := 1; n <= maxPools+50; n++ {
		p.put(make([]byte, n))
	}
	if len(p.pools) != maxPools {
		t.Errorf("pools: got %d, want %d", len(p.pools), maxPools)
	}

	// Lengths past the cap still allocate, they are just never pooled.
	if b := p.get(maxPools + 10); len(b) != maxPools+10 {
		t.Errorf("get: got %d bytes, want %d", len(b), maxPools+10)
	}
	if _, ok := p.pools[maxPools+10]; ok {
		t.Error("pool created past the cap")
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h, c int
		want    int
		wantOK  bool
	}{
		{"rgba", 4, 3, 4, 48, true},
		{"gray", 1, 1, 1, 1, true},
		{"zero width", 0, 3, 4, 0, false},
		{"negative channels", 4, 3, -1, 0, false},
		{"overflow", math.MaxInt32, math.MaxInt32, 4, 0, false},
		{"overflow in width times height", math.MaxInt / 2, 3, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Size(tt.w, tt.h, tt.c)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Size(%d, %d, %d) = %d, %v; want %d, %v", tt.w, tt.h, tt.c, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOrigin_String(t *testing.T) {
	tests := map[Origin]string{
		OriginSelf:    "self",
		OriginDecoder: "decoder",
		Origin(9):     "unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Origin(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}

func TestRowWriter(t *testing.T) {
	tests := []struct {
		name  string
		order RowOrder
		want  []byte
	}{
		{"top-down", TopDown, []byte{0, 0, 1, 1, 2, 2}},
		{"bottom-up", BottomUp, []byte{2, 2, 1, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 6)
			w := NewRowWriter(dst, 3, 2, tt.order)
			for i := 0; i < 3; i++ {
				row := w.Row(i)
				row[0], row[1] = byte(i), byte(i)
			}
			if !bytes.Equal(dst, tt.want) {
				t.Errorf("got %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestRowWriter_Stride(t *testing.T) {
	if s := NewRowWriter(make([]byte, 8), 2, 4, BottomUp).Stride(); s != -4 {
		t.Errorf("bottom-up stride: got %d, want -4", s)
	}
	if s := NewRowWriter(make([]byte, 8), 2, 4, TopDown).Stride(); s != 4 {
		t.Errorf("top-down stride: got %d, want 4", s)
	}
}
