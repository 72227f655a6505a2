// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package batch converts host triangle batches into the device's vertex
// format and manages the shared vertex buffer.
//
// Host vertices have a per-program layout (see program.Layout). Device
// vertices are always gpu.VertexFloats wide:
//
//	position  x, y, z, w   remapped to the device axes
//	texcoord  s, t         scaled for padded textures, t flipped
//	color     r, g, b, a   one streamed input color, or white
//
// Only one color can be streamed. For two-input programs the other color
// reaches the combiner through stage 0's constant register; [Fold] decides
// which one by scanning the batch for a color that never changes.
package batch
