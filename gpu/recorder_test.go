// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestIdentityTexEnv(t *testing.T) {
	env := IdentityTexEnv()
	if !env.IsIdentity() {
		t.Fatal("IdentityTexEnv().IsIdentity() = false")
	}
	if env.RGB.Func != Replace || env.RGB.Sources[0] != SourcePrevious {
		t.Errorf("RGB = %v, want REPLACE(previous)", env.RGB)
	}
	env.Constant = 1
	if env.IsIdentity() {
		t.Error("env with constant set reported as identity")
	}
}

func TestCombineString(t *testing.T) {
	tests := []struct {
		c    Combine
		want string
	}{
		{Combine{Func: Replace, Sources: [3]Source{SourceTexture0}}, "REPLACE(texture0)"},
		{
			Combine{
				Func:       Modulate,
				Sources:    [3]Source{SourceTexture0, SourcePrimaryColor},
				AlphaAsRGB: [3]bool{true},
			},
			"MODULATE(texture0.a,primary)",
		},
		{
			Combine{Func: Interpolate, Sources: [3]Source{SourcePrimaryColor, SourcePrevious, SourceTexture1}},
			"INTERPOLATE(primary,previous,texture1)",
		},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRecorderDrawSnapshot(t *testing.T) {
	r := NewRecorder()
	buf := make([]float32, 6*VertexFloats)
	for i := range buf {
		buf[i] = float32(i)
	}
	r.BindVertexBuffer(buf)
	r.SetBlend(AlphaBlend)
	r.DrawArrays(3, 3)

	// Overwriting the buffer after the draw must not change the snapshot.
	for i := range buf {
		buf[i] = -1
	}

	if len(r.Draws) != 1 {
		t.Fatalf("Draws = %d, want 1", len(r.Draws))
	}
	d := r.Draws[0]
	if d.First != 3 || d.Count != 3 {
		t.Errorf("range = [%d,+%d), want [3,+3)", d.First, d.Count)
	}
	if d.Blend != AlphaBlend {
		t.Errorf("Blend = %+v, want AlphaBlend", d.Blend)
	}
	if got := d.Vertex(0)[0]; got != float32(3*VertexFloats) {
		t.Errorf("first snapshot float = %v, want %v", got, 3*VertexFloats)
	}
	if r.Count(OpDrawArrays) != 1 {
		t.Errorf("Count(OpDrawArrays) = %d, want 1", r.Count(OpDrawArrays))
	}
}

func TestRecorderLast(t *testing.T) {
	r := NewRecorder()
	r.SetViewport(Rect{Width: 1})
	r.SetViewport(Rect{Width: 2})

	c, ok := r.Last(OpSetViewport)
	if !ok || c.Rect.Width != 2 {
		t.Errorf("Last(OpSetViewport) = %+v, %v; want width 2", c, ok)
	}
	if _, ok := r.Last(OpClear); ok {
		t.Error("Last(OpClear) found a command that was never issued")
	}
}

func TestRecordedTextureUpload(t *testing.T) {
	tex := &RecordedTexture{}
	if err := tex.Upload(make([]byte, 4)); !errors.Is(err, ErrTextureNotInitialized) {
		t.Errorf("Upload before Init: err = %v, want ErrTextureNotInitialized", err)
	}
	if err := tex.Init(8, 8, gputypes.TextureFormatRGBA8Unorm); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := tex.Upload(make([]byte, 10)); err == nil {
		t.Error("Upload with wrong size succeeded")
	}
	if err := tex.Upload(make([]byte, 8*8*4)); err != nil {
		t.Errorf("Upload: %v", err)
	}
	if tex.Uploads != 1 {
		t.Errorf("Uploads = %d, want 1", tex.Uploads)
	}
}

func TestRecorderFrames(t *testing.T) {
	r := NewRecorder()
	r.FrameBegin()
	if !r.InFrame() {
		t.Error("InFrame() = false after FrameBegin")
	}
	r.FrameEnd()
	if r.InFrame() || r.Frames != 1 {
		t.Errorf("InFrame() = %v, Frames = %d; want false, 1", r.InFrame(), r.Frames)
	}
}
