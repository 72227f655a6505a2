// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tev

import (
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tev/batch"
	"github.com/gogpu/tev/combiner"
	"github.com/gogpu/tev/gpu"
	"github.com/gogpu/tev/internal/pool"
	"github.com/gogpu/tev/program"
	"github.com/gogpu/tev/tile"
)

// Renderer owns the texture pool, program cache and vertex buffer of one
// device and translates host draw calls into fixed-function commands.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	cmds gpu.Commands
	log  *slog.Logger

	textures *pool.Arena[textureSlot]
	programs *program.Cache
	vertices *batch.Buffer
	tiler    *tile.Tiler

	// Selected texture ids per unit, and the most recently selected one.
	units  [2]TextureID
	curTex TextureID

	// Fixed-function state owned by the renderer.
	depthTest   bool
	depthUpdate bool
	depthDecal  bool
	useAlpha    bool

	mode      DisplayMode
	frameMode DisplayMode
	viewport  gpu.Rect

	frameInterval time.Duration
	frameOpen     bool

	stats Stats
}

// New creates a renderer driving cmds and puts the device into its initial
// state: vertex buffer bound, depth test off with full writes, opaque
// blending and an alpha test that rejects fully transparent fragments.
func New(cmds gpu.Commands, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		cmds:        cmds,
		log:         o.logger,
		textures:    pool.New[textureSlot](o.texturePoolSize),
		programs:    program.NewCache(o.programPoolSize, o.query),
		vertices:    batch.NewBuffer(o.vertexBufferBytes),
		tiler:       tile.NewTiler(o.tileScratchWords),
		units:       [2]TextureID{InvalidTexture, InvalidTexture},
		curTex:      InvalidTexture,
		depthUpdate: true,
		mode:        o.displayMode,
		frameMode:   o.displayMode,
	}
	if o.targetFrameRate > 0 {
		r.frameInterval = time.Second / time.Duration(o.targetFrameRate)
	}

	cmds.BindVertexBuffer(r.vertices.Data())
	r.SetViewport(0, 0, ScreenWidth, ScreenHeight)
	r.updateDepth()
	r.applyBlend()
	cmds.SetAlphaTest(gpu.AlphaTest{
		Enabled: true,
		Compare: gputypes.CompareFunctionGreater,
		Ref:     combiner.AlphaRefDefault,
	})
	return r
}

// logger returns the renderer's logger, falling back to the package logger.
func (r *Renderer) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return Logger()
}

// Stats reports per-frame draw counters and resource occupancy.
type Stats struct {
	// Per frame; reset by StartFrame.
	Draws         int
	Vertices      int
	FogPasses     int
	FoldedBatches int
	Refused       int

	// Vertex buffer occupancy in vertices.
	Cursor         int
	BufferCapacity int

	Textures        int
	TextureCapacity int
	Programs        int
	ProgramCapacity int
}

// Stats returns a snapshot of the renderer's counters.
func (r *Renderer) Stats() Stats {
	s := r.stats
	s.Cursor = r.vertices.Cursor()
	s.BufferCapacity = r.vertices.Capacity()
	s.Textures = r.textures.Len()
	s.TextureCapacity = r.textures.Cap()
	s.Programs = r.programs.Len()
	s.ProgramCapacity = r.programs.Cap()
	return s
}
