// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tev renders combiner-style draw calls on a fixed-function GPU
// with two texture environment stages.
//
// # Overview
//
// The host describes each draw with a formula identifier (see package
// combiner) and a batch of triangles whose vertex layout follows from that
// formula. A [Renderer] turns this into fixed-function state and device
// vertices:
//
//   - formulas are resolved once into programs and cached (package program)
//   - activating a program programs the two stages (package combiner)
//   - triangle batches are repacked into the shared vertex buffer, folding
//     a batch-constant color into the constant register (package batch)
//   - textures are tiled and padded before upload (package tile)
//
// The device itself is behind [gpu.Commands]. gpu.Recorder implements it in
// memory and is what the tests use.
//
// # Quick Start
//
//	r := tev.New(gpu.NewRecorder())
//
//	id := combiner.Encode(combiner.Single(combiner.Input1), combiner.Single(combiner.Input1), 0)
//	p, _ := r.CreateAndLoadProgram(id)
//
//	r.StartFrame()
//	err := r.DrawTriangles(vertices, len(vertices)/(3*p.Floats()))
//	r.EndFrame()
//
// # Coordinate System
//
// Host positions are right-handed. The device screen is rotated a quarter
// turn, so positions are remapped to (y, -x, -z, w) and viewport and
// scissor rectangles are transposed before they reach the device.
//
// # Concurrency
//
// A Renderer is not safe for concurrent use. All calls for one frame must
// come from a single goroutine, between StartFrame and EndFrame.
package tev
