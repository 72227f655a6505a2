// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
)

// ErrTextureNotInitialized is returned by Upload before Init.
var ErrTextureNotInitialized = errors.New("gpu: texture not initialized")

// Op identifies a recorded command.
type Op uint8

// Recorded command kinds.
const (
	OpBindVertexBuffer Op = iota
	OpSetTexEnv
	OpSetAlphaTest
	OpSetDepthTest
	OpSetDepthMap
	OpSetBlend
	OpSetScissor
	OpSetViewport
	OpDrawArrays
	OpFrameBegin
	OpFrameEnd
	OpClear
	OpDrawOn
	OpBindTexture
)

var opNames = [...]string{
	OpBindVertexBuffer: "BindVertexBuffer",
	OpSetTexEnv:        "SetTexEnv",
	OpSetAlphaTest:     "SetAlphaTest",
	OpSetDepthTest:     "SetDepthTest",
	OpSetDepthMap:      "SetDepthMap",
	OpSetBlend:         "SetBlend",
	OpSetScissor:       "SetScissor",
	OpSetViewport:      "SetViewport",
	OpDrawArrays:       "DrawArrays",
	OpFrameBegin:       "FrameBegin",
	OpFrameEnd:         "FrameEnd",
	OpClear:            "Clear",
	OpDrawOn:           "DrawOn",
	OpBindTexture:      "BindTexture",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Command is one recorded call. Only the fields relevant to Op are set.
type Command struct {
	Op        Op
	Stage     int
	TexEnv    TexEnv
	AlphaTest AlphaTest
	DepthTest DepthTest
	DepthMap  DepthMap
	Blend     BlendState
	Rect      Rect
	First     int
	Count     int
	Target    Target
	Color     uint32
	Depth     uint32
	Unit      int
	Texture   *RecordedTexture
}

// DrawCall is the device state captured when DrawArrays was issued.
type DrawCall struct {
	First, Count int
	Target       Target
	Stages       [StageCount]TexEnv
	AlphaTest    AlphaTest
	DepthTest    DepthTest
	DepthMap     DepthMap
	Blend        BlendState
	Viewport     Rect
	Scissor      Rect
	Textures     [2]*RecordedTexture

	// Vertices is a copy of the drawn range, VertexFloats per vertex.
	Vertices []float32
}

// Vertex returns the i-th vertex of the draw.
func (d *DrawCall) Vertex(i int) []float32 {
	return d.Vertices[i*VertexFloats : (i+1)*VertexFloats]
}

// Recorder is a Commands implementation that keeps a log of every call and
// tracks the resulting device state. It is the reference device for tests.
//
// Recorder also implements FramePacer; set LastFrameTime to control pacing.
type Recorder struct {
	Commands []Command
	Draws    []DrawCall

	// Current device state.
	Stages    [StageCount]TexEnv
	AlphaTest AlphaTest
	DepthTest DepthTest
	DepthMap  DepthMap
	Blend     BlendState
	Viewport  Rect
	Scissor   Rect
	Target    Target
	Units     [2]*RecordedTexture

	Frames        int
	VBlankWaits   int
	LastFrameTime time.Duration

	vbo     []float32
	inFrame bool
}

var (
	_ Commands   = (*Recorder)(nil)
	_ FramePacer = (*Recorder)(nil)
)

// NewRecorder returns an empty recorder with both stages reset.
func NewRecorder() *Recorder {
	r := &Recorder{Blend: OpaqueBlend}
	for i := range r.Stages {
		r.Stages[i] = IdentityTexEnv()
	}
	return r
}

// Reset drops the command log and draw snapshots, keeping device state.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.Draws = r.Draws[:0]
}

// Count returns how many commands of kind op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for i := range r.Commands {
		if r.Commands[i].Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent command of kind op.
func (r *Recorder) Last(op Op) (Command, bool) {
	for i := len(r.Commands) - 1; i >= 0; i-- {
		if r.Commands[i].Op == op {
			return r.Commands[i], true
		}
	}
	return Command{}, false
}

func (r *Recorder) record(c Command) { r.Commands = append(r.Commands, c) }

// BindVertexBuffer implements Commands.
func (r *Recorder) BindVertexBuffer(buf []float32) {
	r.vbo = buf
	r.record(Command{Op: OpBindVertexBuffer, Count: len(buf) / VertexFloats})
}

// SetTexEnv implements Commands.
func (r *Recorder) SetTexEnv(stage int, env TexEnv) {
	r.Stages[stage] = env
	r.record(Command{Op: OpSetTexEnv, Stage: stage, TexEnv: env})
}

// SetAlphaTest implements Commands.
func (r *Recorder) SetAlphaTest(at AlphaTest) {
	r.AlphaTest = at
	r.record(Command{Op: OpSetAlphaTest, AlphaTest: at})
}

// SetDepthTest implements Commands.
func (r *Recorder) SetDepthTest(dt DepthTest) {
	r.DepthTest = dt
	r.record(Command{Op: OpSetDepthTest, DepthTest: dt})
}

// SetDepthMap implements Commands.
func (r *Recorder) SetDepthMap(dm DepthMap) {
	r.DepthMap = dm
	r.record(Command{Op: OpSetDepthMap, DepthMap: dm})
}

// SetBlend implements Commands.
func (r *Recorder) SetBlend(bs BlendState) {
	r.Blend = bs
	r.record(Command{Op: OpSetBlend, Blend: bs})
}

// SetScissor implements Commands.
func (r *Recorder) SetScissor(rc Rect) {
	r.Scissor = rc
	r.record(Command{Op: OpSetScissor, Rect: rc})
}

// SetViewport implements Commands.
func (r *Recorder) SetViewport(rc Rect) {
	r.Viewport = rc
	r.record(Command{Op: OpSetViewport, Rect: rc})
}

// DrawArrays implements Commands. The drawn range is copied out of the
// bound vertex buffer so later writes cannot alter the snapshot.
func (r *Recorder) DrawArrays(first, count int) {
	r.record(Command{Op: OpDrawArrays, First: first, Count: count})

	d := DrawCall{
		First:     first,
		Count:     count,
		Target:    r.Target,
		Stages:    r.Stages,
		AlphaTest: r.AlphaTest,
		DepthTest: r.DepthTest,
		DepthMap:  r.DepthMap,
		Blend:     r.Blend,
		Viewport:  r.Viewport,
		Scissor:   r.Scissor,
		Textures:  r.Units,
	}
	lo, hi := first*VertexFloats, (first+count)*VertexFloats
	if hi <= len(r.vbo) {
		d.Vertices = append([]float32(nil), r.vbo[lo:hi]...)
	}
	r.Draws = append(r.Draws, d)
}

// FrameBegin implements Commands.
func (r *Recorder) FrameBegin() {
	r.inFrame = true
	r.record(Command{Op: OpFrameBegin})
}

// FrameEnd implements Commands.
func (r *Recorder) FrameEnd() {
	r.inFrame = false
	r.Frames++
	r.record(Command{Op: OpFrameEnd})
}

// InFrame reports whether FrameBegin was called without a matching FrameEnd.
func (r *Recorder) InFrame() bool { return r.inFrame }

// Clear implements Commands.
func (r *Recorder) Clear(t Target, color, depth uint32) {
	r.record(Command{Op: OpClear, Target: t, Color: color, Depth: depth})
}

// DrawOn implements Commands.
func (r *Recorder) DrawOn(t Target) {
	r.Target = t
	r.record(Command{Op: OpDrawOn, Target: t})
}

// NewTexture implements Commands.
func (r *Recorder) NewTexture() Texture {
	return &RecordedTexture{}
}

// BindTexture implements Commands.
func (r *Recorder) BindTexture(unit int, tex Texture) {
	rt, _ := tex.(*RecordedTexture)
	r.Units[unit] = rt
	r.record(Command{Op: OpBindTexture, Unit: unit, Texture: rt})
}

// ProcessingTime implements FramePacer.
func (r *Recorder) ProcessingTime() time.Duration { return r.LastFrameTime }

// WaitForVBlank implements FramePacer.
func (r *Recorder) WaitForVBlank() { r.VBlankWaits++ }

// RecordedTexture is the texture type handed out by Recorder.
type RecordedTexture struct {
	Width, Height int
	Format        gputypes.TextureFormat
	Data          []byte
	Uploads       int

	MagFilter, MinFilter gputypes.FilterMode
	WrapS, WrapT         gputypes.AddressMode
}

// Init implements Texture.
func (t *RecordedTexture) Init(width, height int, format gputypes.TextureFormat) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gpu: invalid texture size %dx%d", width, height)
	}
	t.Width, t.Height, t.Format = width, height, format
	t.Data = nil
	return nil
}

// Upload implements Texture.
func (t *RecordedTexture) Upload(data []byte) error {
	if t.Width == 0 {
		return ErrTextureNotInitialized
	}
	if want := t.Width * t.Height * 4; len(data) != want {
		return fmt.Errorf("gpu: upload of %d bytes, texture needs %d", len(data), want)
	}
	t.Data = append(t.Data[:0], data...)
	t.Uploads++
	return nil
}

// SetFilter implements Texture.
func (t *RecordedTexture) SetFilter(mag, minify gputypes.FilterMode) {
	t.MagFilter, t.MinFilter = mag, minify
}

// SetWrap implements Texture.
func (t *RecordedTexture) SetWrap(s, tt gputypes.AddressMode) {
	t.WrapS, t.WrapT = s, tt
}
