// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tev/combiner"
	"github.com/gogpu/tev/gpu"
	"github.com/gogpu/tev/program"
)

func layoutOf(color, alpha combiner.Formula, opts combiner.FormulaID) program.Layout {
	f := combiner.Decode(combiner.Encode(color, alpha, opts))
	return program.NewLayout(&f)
}

func TestNewBufferCapacity(t *testing.T) {
	b := NewBuffer(0)
	if got, want := b.Capacity(), DefaultBufferBytes/4/gpu.VertexFloats; got != want {
		t.Errorf("Capacity() = %d, want %d", got, want)
	}
	if b.Capacity() != 52428 {
		t.Errorf("Capacity() = %d, want 52428", b.Capacity())
	}

	b = NewBuffer(400)
	if b.Capacity() != 10 {
		t.Errorf("NewBuffer(400).Capacity() = %d, want 10", b.Capacity())
	}
}

func TestBufferReserve(t *testing.T) {
	b := NewBuffer(30 * 4 * gpu.VertexFloats)

	first, dst, err := b.Reserve(12)
	if err != nil {
		t.Fatal(err)
	}
	if first != 0 || len(dst) != 12*gpu.VertexFloats {
		t.Errorf("Reserve(12) = %d, len %d", first, len(dst))
	}
	if b.Cursor() != 0 {
		t.Errorf("Reserve advanced the cursor to %d", b.Cursor())
	}
	b.Advance(12)

	first, _, err = b.Reserve(18)
	if err != nil || first != 12 {
		t.Fatalf("Reserve(18) = %d, %v", first, err)
	}
	b.Advance(18)
	if b.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", b.Remaining())
	}

	if _, _, err := b.Reserve(3); !errors.Is(err, ErrBufferFull) {
		t.Errorf("Reserve on full buffer: err = %v, want ErrBufferFull", err)
	}
	if b.Cursor() != 30 {
		t.Errorf("Cursor() = %d after refused Reserve, want 30", b.Cursor())
	}

	b.Reset()
	if b.Cursor() != 0 || b.Remaining() != 30 {
		t.Errorf("after Reset cursor=%d remaining=%d", b.Cursor(), b.Remaining())
	}
}

func TestRemapPosition(t *testing.T) {
	got := RemapPosition(mgl32.Vec4{1, 2, 3, 4})
	want := mgl32.Vec4{2, -1, -3, 4}
	if got != want {
		t.Errorf("RemapPosition = %v, want %v", got, want)
	}
}

func TestPackTextured(t *testing.T) {
	l := layoutOf(combiner.Single(combiner.Texel0), combiner.Single(combiner.Texel0), 0)
	src := []float32{
		1, 2, 3, 1, 0.5, 0.25,
		4, 5, 6, 1, 1, 1,
	}
	dst := make([]float32, 2*gpu.VertexFloats)
	Pack(dst, src, &l, 2, PackOptions{Color: NoColor, ScaleS: 0.5, ScaleT: 0.75})

	want := []float32{
		2, -1, -3, 1, 0.25, 1 - 0.25*0.75, 1, 1, 1, 1,
		5, -4, -6, 1, 0.5, 1 - 0.75, 1, 1, 1, 1,
	}
	if !slices.Equal(dst, want) {
		t.Errorf("Pack =\n%v\nwant\n%v", dst, want)
	}
}

func TestPackColor(t *testing.T) {
	l := layoutOf(combiner.Multiply(combiner.Input1, combiner.Input2), combiner.Single(combiner.Input1), 0)
	// pos, color0 rgb, color1 rgb
	src := []float32{0, 0, 0, 1, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	dst := make([]float32, gpu.VertexFloats)

	Pack(dst, src, &l, 1, PackOptions{Color: 1})
	if got := dst[6:10]; !slices.Equal(got, []float32{0.4, 0.5, 0.6, 1}) {
		t.Errorf("streamed color1 = %v, want [0.4 0.5 0.6 1]", got)
	}
	if dst[4] != 0 || dst[5] != 0 {
		t.Errorf("untextured texcoord = %v, %v; want 0, 0", dst[4], dst[5])
	}

	Pack(dst, src, &l, 1, PackOptions{Color: 0})
	if got := dst[6:10]; !slices.Equal(got, []float32{0.1, 0.2, 0.3, 1}) {
		t.Errorf("streamed color0 = %v, want [0.1 0.2 0.3 1]", got)
	}
}

func TestPackFog(t *testing.T) {
	l := layoutOf(combiner.Single(combiner.Texel0), combiner.Single(combiner.Texel0), combiner.OptFog)
	src := []float32{1, 2, 3, 1, 0.5, 0.5, 0.7, 0.6, 0.5, 0.25}
	dst := make([]float32, gpu.VertexFloats)
	PackFog(dst, src, &l, 1)

	want := []float32{2, -1, -3, 1, 0, 0, 0.7, 0.6, 0.5, 0.25}
	if !slices.Equal(dst, want) {
		t.Errorf("PackFog = %v, want %v", dst, want)
	}
}

// twoColorBatch builds verts RGBA vertices of a two-input layout.
func twoColorBatch(l *program.Layout, c0, c1 func(i int) [4]float32, verts int) []float32 {
	src := make([]float32, 0, verts*l.Stride)
	for i := 0; i < verts; i++ {
		a, b := c0(i), c1(i)
		src = append(src, float32(i), 0, 0, 1)
		src = append(src, a[:]...)
		src = append(src, b[:]...)
	}
	return src
}

func TestScanConstantColors(t *testing.T) {
	l := layoutOf(combiner.Multiply(combiner.Input1, combiner.Input2), combiner.Single(combiner.Input1), combiner.OptAlpha)
	fixed := func(int) [4]float32 { return [4]float32{1, 0, 0, 1} }
	varying := func(i int) [4]float32 { return [4]float32{0, float32(i) / 10, 0, 1} }

	tests := []struct {
		name     string
		c0, c1   func(int) [4]float32
		constant [2]bool
		swap     combiner.SwapMode
		stream   int
		register uint32
	}{
		{"color1 constant", varying, fixed, [2]bool{false, true}, combiner.Normal, 0, 0xFF0000FF},
		{"color0 constant", fixed, varying, [2]bool{true, false}, combiner.SwapPrimaryPrevious, 1, 0xFF0000FF},
		{"both constant", fixed, fixed, [2]bool{true, true}, combiner.Normal, 0, 0xFF0000FF},
		{"neither constant", varying, varying, [2]bool{false, false}, combiner.SwapPrimaryPrevious, 0, 0xFF000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := twoColorBatch(&l, tt.c0, tt.c1, 9)
			f := ScanConstantColors(src, &l, 9)
			if f.Constant != tt.constant {
				t.Errorf("Constant = %v, want %v", f.Constant, tt.constant)
			}
			if f.Swap() != tt.swap {
				t.Errorf("Swap() = %v, want %v", f.Swap(), tt.swap)
			}
			if f.StreamedColor() != tt.stream {
				t.Errorf("StreamedColor() = %d, want %d", f.StreamedColor(), tt.stream)
			}
			if f.ConstantRegister() != tt.register {
				t.Errorf("ConstantRegister() = %#08x, want %#08x", f.ConstantRegister(), tt.register)
			}
		})
	}
}

func TestScanQuantizes(t *testing.T) {
	l := layoutOf(combiner.Multiply(combiner.Input1, combiner.Input2), combiner.Single(combiner.Input1), 0)
	// 0.5 and 0.5009 both truncate to 127.
	c1 := func(i int) [4]float32 {
		if i%2 == 0 {
			return [4]float32{0.5, 0.5, 0.5, 1}
		}
		return [4]float32{0.5009, 0.5, 0.5, 1}
	}
	src := make([]float32, 0, 6*l.Stride)
	for i := 0; i < 6; i++ {
		c := c1(i)
		src = append(src, 0, 0, 0, 1, float32(i)/6, 0, 0)
		src = append(src, c[:3]...)
	}
	f := ScanConstantColors(src, &l, 6)
	if !f.Constant[1] {
		t.Error("colors equal after quantization were reported as varying")
	}
	if f.First[1] != 0xFF7F7F7F {
		t.Errorf("First[1] = %#08x, want 0xff7f7f7f", f.First[1])
	}
}
