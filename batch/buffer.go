// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"errors"
	"fmt"

	"github.com/gogpu/tev/gpu"
)

// DefaultBufferBytes is the size of the shared vertex buffer.
const DefaultBufferBytes = 2 * 1024 * 1024

const floatBytes = 4

// ErrBufferFull is returned when a batch does not fit in the space left
// in the vertex buffer this frame.
var ErrBufferFull = errors.New("batch: vertex buffer full")

// Buffer is the shared vertex buffer with its per-frame write cursor.
// Vertices are gpu.VertexFloats wide.
type Buffer struct {
	data   []float32
	cursor int
}

// NewBuffer allocates a buffer of the given size in bytes.
// If bytes <= 0, DefaultBufferBytes is used.
func NewBuffer(bytes int) *Buffer {
	if bytes <= 0 {
		bytes = DefaultBufferBytes
	}
	verts := bytes / floatBytes / gpu.VertexFloats
	return &Buffer{data: make([]float32, verts*gpu.VertexFloats)}
}

// Data returns the whole backing store, for binding to the device.
func (b *Buffer) Data() []float32 { return b.data }

// Capacity returns the buffer size in vertices.
func (b *Buffer) Capacity() int { return len(b.data) / gpu.VertexFloats }

// Cursor returns the index of the next free vertex.
func (b *Buffer) Cursor() int { return b.cursor }

// Remaining returns the number of free vertices.
func (b *Buffer) Remaining() int { return b.Capacity() - b.cursor }

// Reset rewinds the cursor to the start of the buffer.
func (b *Buffer) Reset() { b.cursor = 0 }

// Reserve returns the slice for the next n vertices without advancing the
// cursor. If they do not fit, nothing is touched and ErrBufferFull is
// returned.
func (b *Buffer) Reserve(n int) (first int, dst []float32, err error) {
	if n < 0 || n > b.Remaining() {
		return 0, nil, fmt.Errorf("%w: cursor %d + %d vertices exceeds %d",
			ErrBufferFull, b.cursor, n, b.Capacity())
	}
	lo := b.cursor * gpu.VertexFloats
	return b.cursor, b.data[lo : lo+n*gpu.VertexFloats], nil
}

// Advance moves the cursor past n vertices previously reserved.
func (b *Buffer) Advance(n int) {
	b.cursor += n
}
