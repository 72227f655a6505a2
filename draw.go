// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tev

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tev/batch"
	"github.com/gogpu/tev/combiner"
	"github.com/gogpu/tev/gpu"
	"github.com/gogpu/tev/program"
)

// DrawTriangles draws tris triangles from vbo, laid out as the active
// program's input layout, on the top screen.
//
// The batch is converted into the shared vertex buffer at the frame's
// cursor and drawn with one DrawArrays call; programs with fog add a second
// pass over the same vertices. If the batch does not fit in the buffer the
// draw is refused with an error wrapping batch.ErrBufferFull, and neither
// the buffer nor the device state is touched.
func (r *Renderer) DrawTriangles(vbo []float32, tris int) error {
	if !r.frameOpen {
		return ErrFrameNotOpen
	}
	p := r.programs.Active()
	if p == nil {
		return ErrNoProgram
	}
	if tris < 0 {
		return fmt.Errorf("%w: %d triangles", ErrMalformedBatch, tris)
	}
	if tris == 0 {
		return nil
	}
	verts := 3 * tris
	if need := verts * p.Layout.Stride; len(vbo) < need {
		return fmt.Errorf("%w: %d floats for %d triangles of %d floats per vertex",
			ErrMalformedBatch, len(vbo), tris, p.Layout.Stride)
	}

	first, dst, err := r.vertices.Reserve(verts)
	if err != nil {
		r.stats.Refused++
		r.logger().Warn("tev: vertex buffer full",
			slog.Int("cursor", r.vertices.Cursor()),
			slog.Int("need", verts),
			slog.Int("capacity", r.vertices.Capacity()))
		return err
	}

	a, opts, err := r.prepare(p, vbo, verts)
	if err != nil {
		return err
	}

	r.cmds.DrawOn(gpu.TargetTop)
	r.cmds.SetViewport(transpose(r.viewport))
	a.Apply(r.cmds)

	batch.Pack(dst, vbo, &p.Layout, verts, opts)
	r.cmds.DrawArrays(first, verts)
	r.stats.Draws++

	if p.Layout.Fogged() {
		r.drawFog(dst, vbo, p, first, verts)
		// Restore the program's stages and the host's blend and depth state.
		a.Apply(r.cmds)
		r.applyBlend()
		r.updateDepth()
	}

	r.vertices.Advance(verts)
	r.stats.Vertices += verts
	return nil
}

// prepare resolves the stage assignment for one batch and chooses which
// input color to stream. Two-input batches are scanned for a constant
// color, which is moved into stage 0's constant register.
func (r *Renderer) prepare(p *program.Program, vbo []float32, verts int) (combiner.Assignment, batch.PackOptions, error) {
	opts := batch.PackOptions{Color: batch.NoColor}
	opts.ScaleS, opts.ScaleT = r.currentScale()

	swap := combiner.Normal
	var fold batch.Fold
	switch p.Inputs() {
	case 0:
	case 1:
		opts.Color = 0
	default:
		fold = batch.ScanConstantColors(vbo, &p.Layout, verts)
		swap = fold.Swap()
		opts.Color = fold.StreamedColor()
		if fold.Folded() {
			r.stats.FoldedBatches++
		}
	}

	a, err := combiner.Resolve(p.Features, swap)
	if err != nil {
		return a, opts, err
	}
	if p.Inputs() == combiner.MaxInputs {
		a.Stages[0].Constant = fold.ConstantRegister()
	}
	return a, opts, nil
}

// drawFog overlays the fog color on the batch just drawn. The fog vertices
// replace the batch's vertices in place.
func (r *Renderer) drawFog(dst, vbo []float32, p *program.Program, first, verts int) {
	batch.PackFog(dst, vbo, &p.Layout, verts)

	r.cmds.SetTexEnv(0, combiner.PrimaryPassthrough())
	r.cmds.SetTexEnv(1, gpu.IdentityTexEnv())
	r.cmds.SetBlend(gpu.FogBlend)
	r.cmds.SetDepthTest(gpu.DepthTest{
		Enabled:   r.depthTest,
		Compare:   gputypes.CompareFunctionLessEqual,
		WriteMask: gpu.WriteColor,
	})
	r.cmds.DrawArrays(first, verts)
	r.stats.FogPasses++
}
