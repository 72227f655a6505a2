// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"time"

	"github.com/gogpu/gputypes"
)

// VertexFloats is the width of one device vertex in float32s:
// position (4), texture coordinate (2), color (4).
const VertexFloats = 10

// Commands is the fixed-function command interface tev drives.
//
// Implementations are not required to be safe for concurrent use; tev
// issues all commands from the goroutine that owns the renderer.
type Commands interface {
	// BindVertexBuffer attaches the shared vertex buffer. DrawArrays
	// ranges index into it in units of VertexFloats.
	BindVertexBuffer(buf []float32)

	// SetTexEnv programs stage (0 or 1).
	SetTexEnv(stage int, env TexEnv)

	SetAlphaTest(at AlphaTest)
	SetDepthTest(dt DepthTest)
	SetDepthMap(dm DepthMap)
	SetBlend(bs BlendState)
	SetScissor(r Rect)
	SetViewport(r Rect)

	// DrawArrays draws count vertices as a triangle list starting at first.
	DrawArrays(first, count int)

	FrameBegin()
	FrameEnd()
	Clear(t Target, color, depth uint32)
	DrawOn(t Target)

	// NewTexture creates an uninitialized device texture.
	NewTexture() Texture
	// BindTexture attaches tex to texture unit (0 or 1).
	BindTexture(unit int, tex Texture)
}

// Texture is a device texture resource.
type Texture interface {
	// Init allocates storage for a width x height texture.
	Init(width, height int, format gputypes.TextureFormat) error
	// Upload copies tiled pixel bytes into the texture.
	Upload(data []byte) error
	SetFilter(mag, minify gputypes.FilterMode)
	SetWrap(s, t gputypes.AddressMode)
}

// FramePacer is implemented by devices that can wait for vertical refresh.
type FramePacer interface {
	// ProcessingTime reports how long the GPU spent on the last frame.
	ProcessingTime() time.Duration
	WaitForVBlank()
}
