// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tev

import (
	"log/slog"

	"github.com/gogpu/tev/batch"
	"github.com/gogpu/tev/combiner"
	"github.com/gogpu/tev/program"
	"github.com/gogpu/tev/tile"
)

// Default resource limits.
const (
	// DefaultTexturePoolSize is the number of texture ids a renderer can
	// hand out.
	DefaultTexturePoolSize = 4096

	// DefaultTargetFrameRate is the rate EndFrame paces to.
	DefaultTargetFrameRate = 30
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := tev.New(cmds,
//	    tev.WithDisplayMode(tev.DisplayAA22),
//	    tev.WithTargetFrameRate(60),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	texturePoolSize   int
	programPoolSize   int
	vertexBufferBytes int
	tileScratchWords  int
	displayMode       DisplayMode
	targetFrameRate   int
	logger            *slog.Logger
	query             combiner.FeatureQuery
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		texturePoolSize:   DefaultTexturePoolSize,
		programPoolSize:   program.DefaultCapacity,
		vertexBufferBytes: batch.DefaultBufferBytes,
		tileScratchWords:  tile.DefaultScratchWords,
		displayMode:       DisplayNormal,
		targetFrameRate:   DefaultTargetFrameRate,
		query:             combiner.Decode,
	}
}

// WithTexturePoolSize sets the number of textures the renderer can
// allocate. Values <= 0 are ignored.
func WithTexturePoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.texturePoolSize = n
		}
	}
}

// WithProgramPoolSize sets the number of distinct formulas the renderer
// can hold programs for. Values <= 0 are ignored.
func WithProgramPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.programPoolSize = n
		}
	}
}

// WithVertexBufferBytes sets the size of the shared vertex buffer.
// Values <= 0 are ignored.
func WithVertexBufferBytes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.vertexBufferBytes = n
		}
	}
}

// WithTileScratchWords sets the texture tiling scratch capacity in 32-bit
// words, which bounds the largest uploadable texture. Values <= 0 are
// ignored.
func WithTileScratchWords(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.tileScratchWords = n
		}
	}
}

// WithDisplayMode sets the initial display mode.
func WithDisplayMode(m DisplayMode) Option {
	return func(o *options) {
		o.displayMode = m
	}
}

// WithTargetFrameRate sets the frame rate EndFrame paces to.
// Zero disables pacing.
func WithTargetFrameRate(fps int) Option {
	return func(o *options) {
		if fps >= 0 {
			o.targetFrameRate = fps
		}
	}
}

// WithLogger sets a renderer-specific logger instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFeatureQuery replaces the formula-feature query used to decode
// formula identifiers. The default is combiner.Decode.
func WithFeatureQuery(q combiner.FeatureQuery) Option {
	return func(o *options) {
		if q != nil {
			o.query = q
		}
	}
}
