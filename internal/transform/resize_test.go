package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResize_Identity(t *testing.T) {
	img := createPatternImage(7, 5)
	rgb := rgbPixels(img)

	tests := []struct {
		name     string
		src      []byte
		channels int
	}{
		{"rgba", img.Pix, 4},
		{"rgb", rgb, 3},
		{"gray", rgb[:7*5], 1},
		{"gray-alpha", img.Pix[:7*5*2], 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resize(tt.src, 7, 5, tt.channels, 7, 5)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			defer got.Release()
			if diff := cmp.Diff(tt.src, got.Bytes()); diff != "" {
				t.Errorf("same-size resize is not identity (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResize_Downscale(t *testing.T) {
	// 4x4 gray, value = y*4 + x
	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(i)
	}

	got, err := Resize(src, 4, 4, 1, 2, 2)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	defer got.Release()

	if diff := cmp.Diff([]byte{0, 2, 8, 10}, got.Bytes()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResize_Upscale(t *testing.T) {
	src := []byte{
		1, 1, 1, 2, 2, 2,
		3, 3, 3, 4, 4, 4,
	}

	got, err := Resize(src, 2, 2, 3, 4, 4)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	defer got.Release()

	row := func(a, b byte) []byte {
		return []byte{a, a, a, a, a, a, b, b, b, b, b, b}
	}
	var want []byte
	want = append(want, row(1, 2)...)
	want = append(want, row(1, 2)...)
	want = append(want, row(3, 4)...)
	want = append(want, row(3, 4)...)

	if diff := cmp.Diff(want, got.Bytes()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResize_NonUniform(t *testing.T) {
	// 3x1 -> 2x1: ix=1 maps to floor(1*3/2) = 1
	src := []byte{10, 20, 30}
	got, err := Resize(src, 3, 1, 1, 2, 1)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	defer got.Release()
	if diff := cmp.Diff([]byte{10, 20}, got.Bytes()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResize_InvalidSize(t *testing.T) {
	src := make([]byte, 4*4*3)
	for _, size := range [][2]int{{0, 4}, {4, 0}, {-1, 2}, {math.MaxInt32, math.MaxInt32}} {
		got, err := Resize(src, 4, 4, 3, size[0], size[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Resize(%v): got %v, want ErrInvalidSize", size, err)
		}
		if got.Loaded() {
			t.Errorf("Resize(%v) allocated on failure", size)
		}
	}
}
