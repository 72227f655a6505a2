// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"github.com/gogpu/tev/combiner"
	"github.com/gogpu/tev/internal/color"
	"github.com/gogpu/tev/program"
)

// Fold records which of a two-input batch's colors are the same on every
// vertex, compared after quantization to the constant register format.
type Fold struct {
	Constant [2]bool
	// First holds each color of the first vertex, packed 0xAABBGGRR.
	First [2]uint32
}

// ScanConstantColors checks both input colors across verts vertices.
// The layout must stream two colors.
func ScanConstantColors(src []float32, l *program.Layout, verts int) Fold {
	f := Fold{Constant: [2]bool{true, true}}
	for i := 0; i < verts; i++ {
		in := src[i*l.Stride : (i+1)*l.Stride]
		for slot := range f.First {
			c := color.PackF32(ReadColor(in, l, slot))
			if i == 0 {
				f.First[slot] = c
			} else if c != f.First[slot] {
				f.Constant[slot] = false
			}
		}
		if !f.Constant[0] && !f.Constant[1] {
			break
		}
	}
	return f
}

// Swap returns the input mapping that puts the folded color in the
// constant register. Input2 is read from the constant when it is constant;
// otherwise Input1 is.
func (f Fold) Swap() combiner.SwapMode {
	if f.Constant[1] {
		return combiner.Normal
	}
	return combiner.SwapPrimaryPrevious
}

// ConstantRegister returns the value to load into stage 0's constant.
func (f Fold) ConstantRegister() uint32 {
	if f.Constant[1] {
		return f.First[1]
	}
	return f.First[0]
}

// StreamedColor returns the input color slot to stream per vertex: the
// color not held in the constant register. When neither color is constant
// only the first one is streamed and the second is approximated by the
// first vertex's first color.
func (f Fold) StreamedColor() int {
	if f.Constant[0] && !f.Constant[1] {
		return 1
	}
	return 0
}

// Folded reports whether either color was batch-invariant.
func (f Fold) Folded() bool {
	return f.Constant[0] || f.Constant[1]
}
