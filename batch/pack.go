// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tev/gpu"
	"github.com/gogpu/tev/internal/color"
	"github.com/gogpu/tev/program"
)

// NoColor selects the default white vertex color in PackOptions.
const NoColor = -1

// PackOptions controls how input vertices are converted.
type PackOptions struct {
	// Color is the input color slot streamed per vertex, or NoColor.
	Color int
	// ScaleS and ScaleT rescale texture coordinates into the valid
	// region of a padded texture.
	ScaleS, ScaleT float32
}

// RemapPosition converts a position from the host's right-handed axes to
// the device's: (x, y, z, w) -> (y, -x, -z, w).
func RemapPosition(p mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{p[1], -p[0], -p[2], p[3]}
}

// Pack converts verts input vertices laid out as l into device vertices
// in dst. dst must hold verts*gpu.VertexFloats floats.
func Pack(dst, src []float32, l *program.Layout, verts int, o PackOptions) {
	for i := 0; i < verts; i++ {
		in := src[i*l.Stride : (i+1)*l.Stride]
		out := dst[i*gpu.VertexFloats : (i+1)*gpu.VertexFloats]

		writePosition(out, in)
		if l.Textured() {
			s, t := in[l.TexCoord], in[l.TexCoord+1]
			out[4] = s * o.ScaleS
			out[5] = 1 - t*o.ScaleT
		} else {
			out[4], out[5] = 0, 0
		}

		c := color.White
		if o.Color != NoColor {
			c = ReadColor(in, l, o.Color)
		}
		writeColor(out, c)
	}
}

// PackFog converts verts input vertices into the fog overlay: position and
// fog color only.
func PackFog(dst, src []float32, l *program.Layout, verts int) {
	for i := 0; i < verts; i++ {
		in := src[i*l.Stride : (i+1)*l.Stride]
		out := dst[i*gpu.VertexFloats : (i+1)*gpu.VertexFloats]

		writePosition(out, in)
		out[4], out[5] = 0, 0
		f := in[l.Fog : l.Fog+program.FogFloats]
		writeColor(out, color.ColorF32{R: f[0], G: f[1], B: f[2], A: f[3]})
	}
}

// ReadColor returns input color slot of one input vertex. Colors without
// an alpha component read as opaque.
func ReadColor(in []float32, l *program.Layout, slot int) color.ColorF32 {
	base := l.Color[slot]
	c := color.ColorF32{R: in[base], G: in[base+1], B: in[base+2], A: 1}
	if l.HasAlpha() {
		c.A = in[base+3]
	}
	return c
}

func writePosition(out, in []float32) {
	p := RemapPosition(mgl32.Vec4{in[0], in[1], in[2], in[3]})
	copy(out[0:4], p[:])
}

func writeColor(out []float32, c color.ColorF32) {
	v := c.Vec4()
	copy(out[6:10], v[:])
}
