// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import "github.com/gogpu/tev/gpu"

// Backend name constants.
const (
	// BackendRecorder records every command in memory (gpu.Recorder).
	BackendRecorder = "recorder"
	// BackendNull discards every command (gpu.Null).
	BackendNull = "null"
)

// init registers the built-in backends on package import.
func init() {
	Register(BackendRecorder, func() Backend { return NewRecorderBackend() })
	Register(BackendNull, func() Backend { return &NullBackend{} })
}

// RecorderBackend wraps a gpu.Recorder.
type RecorderBackend struct {
	rec *gpu.Recorder
}

// NewRecorderBackend creates an uninitialized recorder backend.
func NewRecorderBackend() *RecorderBackend {
	return &RecorderBackend{}
}

// Name returns the backend identifier.
func (b *RecorderBackend) Name() string { return BackendRecorder }

// Init creates a fresh recorder.
func (b *RecorderBackend) Init() error {
	b.rec = gpu.NewRecorder()
	return nil
}

// Close drops the recorder and its log.
func (b *RecorderBackend) Close() { b.rec = nil }

// Commands returns the recorder.
func (b *RecorderBackend) Commands() (gpu.Commands, error) {
	if b.rec == nil {
		return nil, ErrNotInitialized
	}
	return b.rec, nil
}

// Recorder returns the underlying recorder for inspection, or nil before
// Init.
func (b *RecorderBackend) Recorder() *gpu.Recorder { return b.rec }

// NullBackend discards all commands.
type NullBackend struct {
	initialized bool
}

// Name returns the backend identifier.
func (b *NullBackend) Name() string { return BackendNull }

// Init marks the backend ready.
func (b *NullBackend) Init() error {
	b.initialized = true
	return nil
}

// Close marks the backend closed.
func (b *NullBackend) Close() { b.initialized = false }

// Commands returns a gpu.Null.
func (b *NullBackend) Commands() (gpu.Commands, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	return gpu.Null{}, nil
}
