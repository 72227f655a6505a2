// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "fmt"

// StageCount is the number of texture-environment stages the accelerator has.
const StageCount = 2

// Source selects the register a combine operand reads from.
type Source uint8

const (
	// SourcePrevious is the output of the preceding stage.
	SourcePrevious Source = iota
	// SourcePrimaryColor is the interpolated per-vertex color.
	SourcePrimaryColor
	// SourceConstant is the stage's constant color register.
	SourceConstant
	// SourceTexture0 is the sample from texture unit 0.
	SourceTexture0
	// SourceTexture1 is the sample from texture unit 1.
	SourceTexture1
)

// String returns the register name.
func (s Source) String() string {
	switch s {
	case SourcePrevious:
		return "previous"
	case SourcePrimaryColor:
		return "primary"
	case SourceConstant:
		return "constant"
	case SourceTexture0:
		return "texture0"
	case SourceTexture1:
		return "texture1"
	default:
		return fmt.Sprintf("Source(%d)", uint8(s))
	}
}

// CombineFunc is the operator a stage applies to its operands.
type CombineFunc uint8

const (
	// Replace outputs operand 0.
	Replace CombineFunc = iota
	// Modulate outputs operand 0 * operand 1.
	Modulate
	// Interpolate outputs operand 0 * operand 2 + operand 1 * (1 - operand 2).
	Interpolate
)

// String returns the operator name.
func (f CombineFunc) String() string {
	switch f {
	case Replace:
		return "REPLACE"
	case Modulate:
		return "MODULATE"
	case Interpolate:
		return "INTERPOLATE"
	default:
		return fmt.Sprintf("CombineFunc(%d)", uint8(f))
	}
}

// Operands returns how many operands the operator consumes.
func (f CombineFunc) Operands() int {
	switch f {
	case Modulate:
		return 2
	case Interpolate:
		return 3
	default:
		return 1
	}
}

// Combine is the configuration of one channel (RGB or alpha) of a stage.
type Combine struct {
	Func    CombineFunc
	Sources [3]Source

	// AlphaAsRGB makes an RGB operand replicate its source's alpha into
	// all three color components. Ignored on the alpha channel.
	AlphaAsRGB [3]bool
}

// TexEnv is the full configuration of one stage.
type TexEnv struct {
	RGB   Combine
	Alpha Combine

	// Constant is the stage's constant register, packed as 0xAABBGGRR.
	Constant uint32
}

// IdentityTexEnv returns the reset state of a stage: both channels pass
// the previous stage through unchanged.
func IdentityTexEnv() TexEnv {
	pass := Combine{Func: Replace}
	return TexEnv{RGB: pass, Alpha: pass}
}

// IsIdentity reports whether env is the reset state.
func (e TexEnv) IsIdentity() bool {
	return e == IdentityTexEnv()
}

// String formats the stage compactly for logs and test failures.
func (e TexEnv) String() string {
	return fmt.Sprintf("rgb=%s alpha=%s const=%#08x", e.RGB, e.Alpha, e.Constant)
}

// String formats one channel as FUNC(src,src,...).
func (c Combine) String() string {
	s := c.Func.String() + "("
	for i := 0; i < c.Func.Operands(); i++ {
		if i > 0 {
			s += ","
		}
		s += c.Sources[i].String()
		if c.AlphaAsRGB[i] {
			s += ".a"
		}
	}
	return s + ")"
}
