// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// gradient returns a w x h RGBA8 image whose texel (x, y) is (x, y, x^y, 255).
func gradient(w, h int) []byte {
	b := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b = append(b, byte(x), byte(y), byte(x^y), 255)
		}
	}
	return b
}

func texel(img []byte, w, x, y int) []byte {
	i := (y*w + x) * 4
	return img[i : i+4]
}

func TestOffsetIsPermutation(t *testing.T) {
	var seen [TexelsPerTile]bool
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			o := Offset(x, y)
			if o < 0 || o >= TexelsPerTile || seen[o] {
				t.Fatalf("Offset(%d, %d) = %d duplicates or out of range", x, y, o)
			}
			seen[o] = true
		}
	}
}

func TestOffset(t *testing.T) {
	tests := []struct{ x, y, want int }{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 3},
		{2, 0, 4},
		{3, 3, 15},
		{4, 0, 16},
		{0, 4, 32},
		{7, 7, 63},
	}
	for _, tt := range tests {
		if got := Offset(tt.x, tt.y); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPaddedSize(t *testing.T) {
	for n, want := range map[int]int{1: 8, 4: 8, 8: 8, 9: 16, 10: 16, 16: 16, 17: 32, 100: 128, 128: 128} {
		if got := PaddedSize(n); got != want {
			t.Errorf("PaddedSize(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestSwizzle(t *testing.T) {
	if got := Swizzle(0x11, 0x22, 0x33, 0x44); got != 0x11223344 {
		t.Errorf("Swizzle = %#08x, want 0x11223344", got)
	}
}

func TestTileCheckerboardRoundTrip(t *testing.T) {
	const w, h = 16, 16
	src := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/4+y/4)%2 == 0 {
				src = append(src, 255, 255, 255, 255)
			} else {
				src = append(src, 0, 0, 0, 255)
			}
		}
	}

	s, err := NewTiler(0).Tile(src, w, h)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != w || s.Height != h || s.Padded() {
		t.Errorf("surface %dx%d scale %v,%v; want unpadded 16x16", s.Width, s.Height, s.ScaleS, s.ScaleT)
	}
	if got := Untile(&s); !bytes.Equal(got, src) {
		t.Error("Untile(Tile(src)) differs from src")
	}
}

func TestTileFirstTile(t *testing.T) {
	src := gradient(16, 8)
	s, err := NewTiler(0).Tile(src, 16, 8)
	if err != nil {
		t.Fatal(err)
	}
	// Texel (1, 1) of the first tile lands at index 3.
	if got, want := s.Pixels[3], Swizzle(1, 1, 0, 255); got != want {
		t.Errorf("Pixels[3] = %#08x, want %#08x", got, want)
	}
	// The second tile starts at x = 8.
	if got, want := s.Pixels[TexelsPerTile], Swizzle(8, 0, 8, 255); got != want {
		t.Errorf("Pixels[64] = %#08x, want %#08x", got, want)
	}
}

func TestTilePadsWithWraparound(t *testing.T) {
	const w, h = 10, 6
	src := gradient(w, h)
	s, err := NewTiler(0).Tile(src, w, h)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 16 || s.Height != 8 {
		t.Fatalf("padded to %dx%d, want 16x8", s.Width, s.Height)
	}
	if s.ScaleS != 10.0/16 || s.ScaleT != 6.0/8 {
		t.Errorf("scale = %v, %v; want 0.625, 0.75", s.ScaleS, s.ScaleT)
	}

	out := Untile(&s)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			got := texel(out, s.Width, x, y)
			want := texel(src, w, x%w, y%h)
			if !bytes.Equal(got, want) {
				t.Fatalf("texel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := texel(out, s.Width, 15, 5); !bytes.Equal(got, texel(src, w, 5, 5)) {
		t.Errorf("texel (15, 5) = %v, want source (5, 5)", got)
	}
}

func TestTileSmallTexture(t *testing.T) {
	s, err := NewTiler(0).Tile(gradient(4, 4), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 8 || s.Height != 8 || s.ScaleS != 0.5 || s.ScaleT != 0.5 {
		t.Errorf("surface %dx%d scale %v,%v; want 8x8 scale 0.5", s.Width, s.Height, s.ScaleS, s.ScaleT)
	}
}

func TestTileScratchOverflow(t *testing.T) {
	tl := NewTiler(0)
	prev, err := tl.Tile(gradient(8, 8), 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	before := append([]uint32(nil), prev.Pixels...)

	tests := []struct {
		name string
		w, h int
	}{
		{"power of two", 256, 128},
		{"padded", 129, 129},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tl.Tile(make([]byte, tt.w*tt.h*4), tt.w, tt.h)
			if !errors.Is(err, ErrScratchOverflow) {
				t.Fatalf("err = %v, want ErrScratchOverflow", err)
			}
			for i, v := range before {
				if tl.scratch[i] != v {
					t.Fatalf("scratch word %d modified by refused Tile", i)
				}
			}
		})
	}

	if _, err := tl.Tile(make([]byte, 128*128*4), 128, 128); err != nil {
		t.Errorf("128x128 fills the default scratch exactly: %v", err)
	}
}

func TestTileErrors(t *testing.T) {
	tl := NewTiler(0)
	if _, err := tl.Tile(nil, 0, 8); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: err = %v", err)
	}
	if _, err := tl.Tile(nil, 8, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative height: err = %v", err)
	}
	if _, err := tl.Tile(make([]byte, 8*8*4-1), 8, 8); !errors.Is(err, ErrShortSource) {
		t.Errorf("short source: err = %v", err)
	}
}

func TestSurfaceBytes(t *testing.T) {
	s := Surface{Pixels: []uint32{0x11223344}}
	got := s.Bytes()
	if len(got) != 4 {
		t.Fatalf("len(Bytes()) = %d, want 4", len(got))
	}
	if v := binary.NativeEndian.Uint32(got); v != 0x11223344 {
		t.Errorf("Bytes() decodes to %#08x", v)
	}
}
