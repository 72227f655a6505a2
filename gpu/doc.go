// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu describes the fixed-function accelerator that tev drives.
//
// The accelerator exposes two sequential texture-environment stages (TexEnv),
// a handful of state registers (alpha test, depth test, blending, scissor,
// viewport) and a draw command that consumes a range of the shared vertex
// buffer. tev never programs hardware registers itself: it talks to a
// [Commands] implementation supplied by the host.
//
// # Implementations
//
//   - Recorder: records every command and snapshots drawn vertices.
//     Used by tests and by cmd/tevdemo.
//   - Null: discards everything.
//
// Host ports provide their own implementation on top of the platform's
// command library.
package gpu
