// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/gputypes"

// Null is a Commands implementation that discards every command.
type Null struct{}

var _ Commands = Null{}

func (Null) BindVertexBuffer([]float32)   {}
func (Null) SetTexEnv(int, TexEnv)        {}
func (Null) SetAlphaTest(AlphaTest)       {}
func (Null) SetDepthTest(DepthTest)       {}
func (Null) SetDepthMap(DepthMap)         {}
func (Null) SetBlend(BlendState)          {}
func (Null) SetScissor(Rect)              {}
func (Null) SetViewport(Rect)             {}
func (Null) DrawArrays(int, int)          {}
func (Null) FrameBegin()                  {}
func (Null) FrameEnd()                    {}
func (Null) Clear(Target, uint32, uint32) {}
func (Null) DrawOn(Target)                {}
func (Null) NewTexture() Texture          { return nullTexture{} }
func (Null) BindTexture(int, Texture)     {}

type nullTexture struct{}

func (nullTexture) Init(int, int, gputypes.TextureFormat) error        { return nil }
func (nullTexture) Upload([]byte) error                                { return nil }
func (nullTexture) SetFilter(gputypes.FilterMode, gputypes.FilterMode) {}
func (nullTexture) SetWrap(gputypes.AddressMode, gputypes.AddressMode) {}
