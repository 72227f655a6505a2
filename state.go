// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tev

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tev/gpu"
)

// Screen size in host pixels, before display mode scaling.
const (
	ScreenWidth  = 400
	ScreenHeight = 240
)

// decalDepthOffset pulls decal geometry towards the viewer.
const decalDepthOffset = -0.001

// DisplayMode selects how host pixels map onto the device framebuffer.
type DisplayMode uint8

const (
	// DisplayNormal maps host pixels one to one.
	DisplayNormal DisplayMode = iota
	// DisplayAA22 renders at twice the resolution on both axes.
	DisplayAA22
	// DisplayWide renders at twice the horizontal resolution.
	DisplayWide
	// DisplayWideAA12 is wide mode with vertical antialiasing; it also
	// renders at twice the resolution on both axes.
	DisplayWideAA12
)

var displayModeNames = [...]string{
	DisplayNormal:   "normal",
	DisplayAA22:     "aa22",
	DisplayWide:     "wide",
	DisplayWideAA12: "wide-aa12",
}

// String returns the mode name.
func (m DisplayMode) String() string {
	if int(m) < len(displayModeNames) {
		return displayModeNames[m]
	}
	return "unknown"
}

// ParseDisplayMode returns the mode with the given name.
func ParseDisplayMode(s string) (DisplayMode, bool) {
	for m, name := range displayModeNames {
		if name == s {
			return DisplayMode(m), true
		}
	}
	return DisplayNormal, false
}

// Scale returns the factors host coordinates are multiplied by.
func (m DisplayMode) Scale() (sx, sy int) {
	switch m {
	case DisplayAA22, DisplayWideAA12:
		return 2, 2
	case DisplayWide:
		return 2, 1
	default:
		return 1, 1
	}
}

// scale applies the display mode to a host rectangle.
func (m DisplayMode) scale(x, y, width, height int) gpu.Rect {
	sx, sy := m.Scale()
	return gpu.Rect{X: x * sx, Y: y * sy, Width: width * sx, Height: height * sy}
}

// transpose swaps the axes of r to match the rotated device screen.
func transpose(r gpu.Rect) gpu.Rect {
	return gpu.Rect{X: r.Y, Y: r.X, Width: r.Height, Height: r.Width}
}

// SetDisplayMode switches the display mode. The viewport is reset to the
// full screen at the start of the next frame.
func (r *Renderer) SetDisplayMode(m DisplayMode) {
	r.mode = m
}

// DisplayMode returns the current display mode.
func (r *Renderer) DisplayMode() DisplayMode {
	return r.mode
}

// SetDepthTest enables or disables depth testing.
func (r *Renderer) SetDepthTest(enabled bool) {
	r.depthTest = enabled
	r.updateDepth()
}

// SetDepthMask enables or disables depth writes.
func (r *Renderer) SetDepthMask(update bool) {
	r.depthUpdate = update
	r.updateDepth()
}

// SetZModeDecal enables the depth bias used for decals.
func (r *Renderer) SetZModeDecal(decal bool) {
	r.depthDecal = decal
	r.updateDepth()
}

// SetUseAlpha enables or disables alpha blending.
func (r *Renderer) SetUseAlpha(useAlpha bool) {
	r.useAlpha = useAlpha
	r.applyBlend()
}

// SetViewport sets the viewport in host pixels. It is programmed with each
// draw.
func (r *Renderer) SetViewport(x, y, width, height int) {
	r.viewport = r.mode.scale(x, y, width, height)
}

// Viewport returns the viewport in device-scaled, untransposed pixels.
func (r *Renderer) Viewport() gpu.Rect {
	return r.viewport
}

// SetScissor sets the scissor rectangle in host pixels.
func (r *Renderer) SetScissor(x, y, width, height int) {
	r.cmds.SetScissor(transpose(r.mode.scale(x, y, width, height)))
}

func (r *Renderer) depthState() gpu.DepthTest {
	mask := gpu.WriteColor
	if r.depthUpdate {
		mask = gpu.WriteAll
	}
	return gpu.DepthTest{
		Enabled:   r.depthTest,
		Compare:   gputypes.CompareFunctionLessEqual,
		WriteMask: mask,
	}
}

func (r *Renderer) updateDepth() {
	r.cmds.SetDepthTest(r.depthState())
	dm := gpu.DepthMap{Scale: -1}
	if r.depthDecal {
		dm.Offset = decalDepthOffset
	}
	r.cmds.SetDepthMap(dm)
}

func (r *Renderer) applyBlend() {
	if r.useAlpha {
		r.cmds.SetBlend(gpu.AlphaBlend)
	} else {
		r.cmds.SetBlend(gpu.OpaqueBlend)
	}
}
