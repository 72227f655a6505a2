// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package color

import "github.com/chewxy/math32"

// F32ToU8 converts ColorF32 to ColorU8.
// Components are clamped to [0,1] and scaled by 255 with truncation, which
// is how the device quantizes constant colors.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// U8ToF32 converts ColorU8 to ColorF32.
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// Pack returns c in the constant-register layout 0xAABBGGRR.
func (c ColorU8) Pack() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// Unpack is the inverse of ColorU8.Pack.
func Unpack(v uint32) ColorU8 {
	return ColorU8{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

// PackF32 quantizes c and packs it as 0xAABBGGRR.
func PackF32(c ColorF32) uint32 {
	return F32ToU8(c).Pack()
}

func quantize(v float32) uint8 {
	v = math32.Max(0, math32.Min(1, v))
	return uint8(v * 255)
}
