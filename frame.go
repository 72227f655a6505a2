// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tev

import "github.com/gogpu/tev/gpu"

// StartFrame begins a frame: the vertex buffer cursor is rewound, the
// viewport is reset if the display mode changed, and both screens are
// cleared.
func (r *Renderer) StartFrame() {
	r.cmds.FrameBegin()
	r.vertices.Reset()
	r.stats = Stats{}

	if r.mode != r.frameMode {
		r.frameMode = r.mode
		r.SetViewport(0, 0, ScreenWidth, ScreenHeight)
	}
	r.cmds.Clear(gpu.TargetTop, gpu.ClearColor, gpu.ClearDepth)
	r.cmds.Clear(gpu.TargetBottom, gpu.ClearColor, gpu.ClearDepth)
	r.frameOpen = true
}

// EndFrame submits the frame. If the device reports that the frame took
// less than the target frame interval, EndFrame waits for the next
// vertical blank.
func (r *Renderer) EndFrame() error {
	if !r.frameOpen {
		return ErrFrameNotOpen
	}
	r.frameOpen = false
	r.cmds.FrameEnd()

	if r.frameInterval <= 0 {
		return nil
	}
	if pacer, ok := r.cmds.(gpu.FramePacer); ok && pacer.ProcessingTime() < r.frameInterval {
		pacer.WaitForVBlank()
	}
	return nil
}

// InFrame reports whether a frame is in progress.
func (r *Renderer) InFrame() bool {
	return r.frameOpen
}
