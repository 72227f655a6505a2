// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/tev"
	"github.com/gogpu/tev/combiner"
	"github.com/gogpu/tev/program"
)

// vertex is one corner of a demo quad, in clip space.
type vertex struct {
	x, y, z    float32
	s, t       float32
	fog        [4]float32
	col0, col1 [4]float32
}

// scene draws three quads per frame: a textured, vertex-shaded backdrop,
// a fogged two-color quad whose second color is constant (and so gets
// folded into the stage constant) and a flat decal on top.
type scene struct {
	r   *tev.Renderer
	tex tev.TextureID

	textured *program.Program
	fogged   *program.Program
	flat     *program.Program

	buf []float32
}

func newScene(r *tev.Renderer, tex tev.TextureID) (*scene, error) {
	s := &scene{r: r, tex: tex}
	var err error
	shade := combiner.Multiply(combiner.Texel0, combiner.Input1)
	if s.textured, err = r.CreateAndLoadProgram(combiner.Encode(shade, shade, combiner.OptAlpha)); err != nil {
		return nil, err
	}
	blend := combiner.Multiply(combiner.Input1, combiner.Input2)
	if s.fogged, err = r.CreateAndLoadProgram(combiner.Encode(blend, blend, combiner.OptFog)); err != nil {
		return nil, err
	}
	flat := combiner.Single(combiner.Input1)
	if s.flat, err = r.CreateAndLoadProgram(combiner.Encode(flat, flat, 0)); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *scene) draw(frame int) error {
	phase := float32(frame) * 0.1

	if err := s.r.SelectTexture(0, s.tex); err != nil {
		return err
	}
	s.r.SetDepthTest(true)
	s.r.SetDepthMask(true)
	if err := s.quad(s.textured, -0.9, -0.9, 0.9, 0.9, 0.5, func(v *vertex) {
		shade := 0.6 + 0.4*math32.Sin(phase+v.x)
		v.col0 = [4]float32{shade, shade, 1, 1}
	}); err != nil {
		return err
	}

	if err := s.quad(s.fogged, -0.6, -0.6, 0.2, 0.2, 0.3, func(v *vertex) {
		v.col0 = [4]float32{1, 0.5 + 0.5*v.y, 0.2, 1}
		v.col1 = [4]float32{0.8, 0.8, 0.8, 1}
		v.fog = [4]float32{0.7, 0.7, 0.8, 0.5 + 0.5*math32.Cos(phase)}
	}); err != nil {
		return err
	}

	s.r.SetZModeDecal(true)
	defer s.r.SetZModeDecal(false)
	return s.quad(s.flat, 0.1, 0.1, 0.7, 0.7, 0.3, func(v *vertex) {
		v.col0 = [4]float32{0.1, 0.9, 0.3, 1}
	})
}

// quad draws an axis-aligned rectangle as two triangles using program p.
func (s *scene) quad(p *program.Program, x0, y0, x1, y1, z float32, shade func(*vertex)) error {
	if err := s.r.LoadProgram(p); err != nil {
		return err
	}
	corners := [6]vertex{
		{x: x0, y: y0, s: 0, t: 0},
		{x: x1, y: y0, s: 1, t: 0},
		{x: x1, y: y1, s: 1, t: 1},
		{x: x0, y: y0, s: 0, t: 0},
		{x: x1, y: y1, s: 1, t: 1},
		{x: x0, y: y1, s: 0, t: 1},
	}

	l := &p.Layout
	s.buf = s.buf[:0]
	for i := range corners {
		v := &corners[i]
		v.z = z
		shade(v)
		s.buf = appendVertex(s.buf, l, v)
	}
	return s.r.DrawTriangles(s.buf, 2)
}

// appendVertex lays v out in the host input format described by l.
func appendVertex(dst []float32, l *program.Layout, v *vertex) []float32 {
	dst = append(dst, v.x, v.y, v.z, 1)
	if l.Textured() {
		dst = append(dst, v.s, v.t)
	}
	if l.Fogged() {
		dst = append(dst, v.fog[:]...)
	}
	cols := [2][4]float32{v.col0, v.col1}
	for i := 0; i < l.Inputs; i++ {
		dst = append(dst, cols[i][:l.ColorFloats]...)
	}
	return dst
}
