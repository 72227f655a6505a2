// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/gputypes"

// AlphaTest configures per-fragment alpha rejection.
type AlphaTest struct {
	Enabled bool
	Compare gputypes.CompareFunction
	// Ref is the reference alpha on a 0..255 scale.
	Ref uint8
}

// DepthWriteMask selects which buffers a passing fragment writes.
type DepthWriteMask uint8

const (
	// WriteAll writes color and depth.
	WriteAll DepthWriteMask = iota
	// WriteColor writes color only; depth is left untouched.
	WriteColor
)

// DepthTest configures the depth comparison and write mask.
type DepthTest struct {
	Enabled   bool
	Compare   gputypes.CompareFunction
	WriteMask DepthWriteMask
}

// DepthMap maps clip-space depth into the depth buffer range.
type DepthMap struct {
	Scale  float32
	Offset float32
}

// BlendComponent describes blending of one channel group.
type BlendComponent struct {
	SrcFactor gputypes.BlendFactor
	DstFactor gputypes.BlendFactor
	Operation gputypes.BlendOperation
}

// BlendState describes color and alpha blending.
type BlendState struct {
	Color BlendComponent
	Alpha BlendComponent
}

// OpaqueBlend writes the source unchanged.
var OpaqueBlend = BlendState{
	Color: BlendComponent{
		SrcFactor: gputypes.BlendFactorOne,
		DstFactor: gputypes.BlendFactorZero,
		Operation: gputypes.BlendOperationAdd,
	},
	Alpha: BlendComponent{
		SrcFactor: gputypes.BlendFactorOne,
		DstFactor: gputypes.BlendFactorZero,
		Operation: gputypes.BlendOperationAdd,
	},
}

// AlphaBlend is classic source-over blending on both channel groups.
var AlphaBlend = BlendState{
	Color: BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	},
	Alpha: BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	},
}

// FogBlend blends the fog color over the destination while keeping the
// destination's alpha.
var FogBlend = BlendState{
	Color: BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	},
	Alpha: BlendComponent{
		SrcFactor: gputypes.BlendFactorZero,
		DstFactor: gputypes.BlendFactorDstAlpha,
		Operation: gputypes.BlendOperationAdd,
	},
}

// Rect is a rectangle in device pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Target identifies a render target.
type Target uint8

const (
	// TargetTop is the main screen (left eye in stereo).
	TargetTop Target = iota
	// TargetTopRight is the right-eye main screen.
	TargetTopRight
	// TargetBottom is the secondary screen.
	TargetBottom
)

// ClearColor and ClearDepth are the values targets are cleared to at
// frame start: opaque black and the far plane.
const (
	ClearColor uint32 = 0x000000FF
	ClearDepth uint32 = 0xFFFFFFFF
)
