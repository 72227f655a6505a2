// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tile converts RGBA8 images to the device's tiled texture layout.
//
// The device samples textures stored as 8x8 tiles laid out in row-major
// order. Inside a tile, texels follow a Z-order (Morton) curve built from
// 2x2 blocks, see [Offset]. Each texel is one 32-bit word with red in the
// high byte and alpha in the low byte.
//
// Texture edges must be powers of two of at least 8. Other sizes are
// padded by repeating the source image, and the returned scale factors
// let texture coordinates address only the original region:
//
//	t := tile.NewTiler(tile.DefaultScratchWords)
//	s, err := t.Tile(rgba, 10, 6) // 16x8, ScaleS 0.625, ScaleT 0.75
package tile
