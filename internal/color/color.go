// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package color provides the color types shared by the vertex assembler
// and the constant register.
package color

import "github.com/go-gl/mathgl/mgl32"

// ColorF32 represents a color with float32 components nominally in [0,1].
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// White is opaque white, the vertex color used when a program streams none.
var White = ColorF32{1, 1, 1, 1}

// FromVec4 converts an (r, g, b, a) vector.
func FromVec4(v mgl32.Vec4) ColorF32 {
	return ColorF32{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Vec4 returns c as an (r, g, b, a) vector.
func (c ColorF32) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}
