// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tile

import (
	"errors"
	"fmt"
	"math/bits"

	"honnef.co/go/safeish"
)

const (
	// Size is the edge length of one tile in texels.
	Size = 8
	// TexelsPerTile is the number of texels in one tile.
	TexelsPerTile = Size * Size

	// DefaultScratchWords is the default scratch capacity: a 128x128 texture.
	DefaultScratchWords = 16 * 1024

	bytesPerTexel = 4
)

var (
	// ErrInvalidDimensions is returned for non-positive texture sizes.
	ErrInvalidDimensions = errors.New("tile: invalid dimensions")

	// ErrShortSource is returned when the source holds fewer than
	// width*height texels.
	ErrShortSource = errors.New("tile: source too short")

	// ErrScratchOverflow is returned when the tiled texture would not fit
	// in the scratch buffer.
	ErrScratchOverflow = errors.New("tile: scratch buffer overflow")
)

// order maps a texel's position inside a 4x4 quadrant to its index.
var order = [16]int{
	0, 1, 4, 5,
	2, 3, 6, 7,
	8, 9, 12, 13,
	10, 11, 14, 15,
}

// Offset returns the index of texel (x, y) within its 8x8 tile.
// x and y must be in [0, Size).
func Offset(x, y int) int {
	return order[(x&3)+(y&3)<<2] + (x>>2)<<4 + (y>>2)<<5
}

// PaddedSize returns the device size for a texture edge of n texels: n
// itself if it is a power of two of at least Size, otherwise the next
// such power of two.
func PaddedSize(n int) int {
	if n <= Size {
		return Size
	}
	return 1 << bits.Len(uint(n-1))
}

// Swizzle converts a texel stored as bytes R, G, B, A into the device
// word R<<24 | G<<16 | B<<8 | A.
func Swizzle(r, g, b, a byte) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Surface is a tiled texture ready for upload.
type Surface struct {
	// Pixels are device words, tile after tile. The slice aliases the
	// Tiler's scratch buffer and is valid until the next Tile call.
	Pixels []uint32

	// Width and Height are the padded dimensions.
	Width, Height int

	// ScaleS and ScaleT are the fractions of the padded texture covered
	// by the source image.
	ScaleS, ScaleT float32
}

// Bytes returns the pixel words as bytes in host order.
func (s *Surface) Bytes() []byte {
	return safeish.SliceCast[[]byte](s.Pixels)
}

// Padded reports whether the surface is larger than its source.
func (s *Surface) Padded() bool {
	return s.ScaleS != 1 || s.ScaleT != 1
}

// Tiler converts row-major RGBA8 images into tiled device textures.
// A Tiler is not safe for concurrent use.
type Tiler struct {
	scratch []uint32
}

// NewTiler creates a tiler with a scratch buffer of words 32-bit words.
// If words <= 0, DefaultScratchWords is used.
func NewTiler(words int) *Tiler {
	if words <= 0 {
		words = DefaultScratchWords
	}
	return &Tiler{scratch: make([]uint32, words)}
}

// Capacity returns the scratch buffer size in texels.
func (t *Tiler) Capacity() int { return len(t.scratch) }

// Tile converts a width x height RGBA8 image into tiled form. Sizes that
// are not powers of two of at least 8 are padded by repeating the image.
func (t *Tiler) Tile(src []byte, width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return Surface{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(src) < width*height*bytesPerTexel {
		return Surface{}, fmt.Errorf("%w: %d bytes for %dx%d", ErrShortSource, len(src), width, height)
	}
	pw, ph := PaddedSize(width), PaddedSize(height)
	if pw*ph > len(t.scratch) {
		return Surface{}, fmt.Errorf("%w: %dx%d needs %d words, have %d",
			ErrScratchOverflow, pw, ph, pw*ph, len(t.scratch))
	}

	dst := t.scratch[:pw*ph]
	offs := 0
	for ty := 0; ty < ph; ty += Size {
		for tx := 0; tx < pw; tx += Size {
			for i := 0; i < TexelsPerTile; i++ {
				x, y := i%Size, i/Size
				sx, sy := (tx+x)%width, (ty+y)%height
				p := src[(sy*width+sx)*bytesPerTexel:]
				dst[offs+Offset(x, y)] = Swizzle(p[0], p[1], p[2], p[3])
			}
			offs += TexelsPerTile
		}
	}

	return Surface{
		Pixels: dst,
		Width:  pw,
		Height: ph,
		ScaleS: float32(width) / float32(pw),
		ScaleT: float32(height) / float32(ph),
	}, nil
}

// Untile converts a tiled surface back to row-major RGBA8.
func Untile(s *Surface) []byte {
	out := make([]byte, s.Width*s.Height*bytesPerTexel)
	offs := 0
	for ty := 0; ty < s.Height; ty += Size {
		for tx := 0; tx < s.Width; tx += Size {
			for i := 0; i < TexelsPerTile; i++ {
				x, y := i%Size, i/Size
				c := s.Pixels[offs+Offset(x, y)]
				p := out[((ty+y)*s.Width+tx+x)*bytesPerTexel:]
				p[0], p[1], p[2], p[3] = byte(c>>24), byte(c>>16), byte(c>>8), byte(c)
			}
			offs += TexelsPerTile
		}
	}
	return out
}
