// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package program caches resolved combiner programs by formula identifier.
package program

import "github.com/gogpu/tev/combiner"

// Per-vertex field widths of the host's input layout, in floats.
const (
	PositionFloats = 4
	TexCoordFloats = 2
	FogFloats      = 4
	RGBFloats      = 3
	RGBAFloats     = 4
)

// Layout describes where each field sits in one host input vertex.
// Absent fields have offset -1.
type Layout struct {
	// Stride is the number of floats per input vertex.
	Stride int

	TexCoord int
	Fog      int
	Color    [combiner.MaxInputs]int

	// ColorFloats is 4 when colors carry alpha, 3 otherwise.
	ColorFloats int
	// Inputs is the number of streamed colors (0..2).
	Inputs int
}

// NewLayout derives the input layout from formula features. Fields appear
// in the order position, texcoord, fog, color 0, color 1.
func NewLayout(f *combiner.Features) Layout {
	l := Layout{
		TexCoord:    -1,
		Fog:         -1,
		Color:       [combiner.MaxInputs]int{-1, -1},
		ColorFloats: RGBFloats,
		Inputs:      min(f.ActiveInputs, combiner.MaxInputs),
	}
	if f.Alpha {
		l.ColorFloats = RGBAFloats
	}

	off := PositionFloats
	if f.Textured() {
		l.TexCoord = off
		off += TexCoordFloats
	}
	if f.Fog {
		l.Fog = off
		off += FogFloats
	}
	for i := 0; i < l.Inputs; i++ {
		l.Color[i] = off
		off += l.ColorFloats
	}
	l.Stride = off
	return l
}

// Textured reports whether vertices carry texture coordinates.
func (l *Layout) Textured() bool { return l.TexCoord >= 0 }

// Fogged reports whether vertices carry a fog color.
func (l *Layout) Fogged() bool { return l.Fog >= 0 }

// HasAlpha reports whether colors carry an alpha component.
func (l *Layout) HasAlpha() bool { return l.ColorFloats == RGBAFloats }

// Program is a resolved formula. It is immutable once created.
type Program struct {
	// ID is the pool index, assigned in creation order.
	ID       int
	Formula  combiner.FormulaID
	Features combiner.Features
	Layout   Layout
}

// Floats returns the number of floats per input vertex.
func (p *Program) Floats() int { return p.Layout.Stride }

// Inputs returns the number of active color inputs.
func (p *Program) Inputs() int { return p.Layout.Inputs }

// UsedTextures reports which texture units the formula samples.
func (p *Program) UsedTextures() [2]bool { return p.Features.UsedTextures }
