// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package combiner maps color-combiner formulas onto the accelerator's two
// texture-environment stages.
//
// A formula computes (A - B) * C + D per channel from up to two per-vertex
// inputs, two texture samples and a constant. Only three shapes have a
// hardware equivalent:
//
//	C = 0          -> REPLACE(D)
//	B = 0, D = 0   -> MODULATE(A, C)
//	B = D          -> INTERPOLATE(A, B, C)
//
// The second input cannot be streamed alongside the first, so it is read
// from stage 0's constant register through the "previous" source. Which
// input ends up in the constant is chosen per draw with [SwapMode].
package combiner
