// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tev

import "errors"

// Renderer errors. Capacity errors from subpackages (program.ErrPoolFull,
// batch.ErrBufferFull, tile.ErrScratchOverflow) are returned wrapped.
var (
	// ErrTexturePoolFull is returned by NewTexture when every texture id
	// has been handed out.
	ErrTexturePoolFull = errors.New("tev: texture pool full")

	// ErrInvalidTexture is returned for unknown texture ids, bad texture
	// units, or operations on a unit with no texture bound.
	ErrInvalidTexture = errors.New("tev: invalid texture")

	// ErrNoProgram is returned by DrawTriangles before a program is loaded.
	ErrNoProgram = errors.New("tev: no program loaded")

	// ErrFrameNotOpen is returned when drawing or ending a frame outside
	// StartFrame/EndFrame.
	ErrFrameNotOpen = errors.New("tev: no frame in progress")

	// ErrMalformedBatch is returned when a triangle batch is shorter than
	// its triangle count and the active layout imply.
	ErrMalformedBatch = errors.New("tev: malformed triangle batch")
)
