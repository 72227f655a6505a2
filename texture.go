// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tev

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tev/gpu"
	"github.com/gogpu/tev/tile"
)

// TextureID identifies a texture in a renderer's pool.
type TextureID uint32

// InvalidTexture is returned by NewTexture when the pool is full.
const InvalidTexture = ^TextureID(0)

// WrapFlags selects the addressing mode of one texture axis.
// Clamp takes precedence over mirror; neither means repeat.
type WrapFlags uint32

const (
	// WrapMirror repeats the texture mirrored.
	WrapMirror WrapFlags = 1 << iota
	// WrapClamp clamps coordinates to the edge texels.
	WrapClamp
)

// AddressMode returns the device addressing mode for f.
func (f WrapFlags) AddressMode() gputypes.AddressMode {
	switch {
	case f&WrapClamp != 0:
		return gputypes.AddressModeClampToEdge
	case f&WrapMirror != 0:
		return gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.AddressModeRepeat
	}
}

type textureSlot struct {
	tex            gpu.Texture
	width, height  int
	scaleS, scaleT float32
}

// NewTexture allocates a texture id. When the pool is exhausted it returns
// InvalidTexture and an error wrapping ErrTexturePoolFull.
func (r *Renderer) NewTexture() (TextureID, error) {
	idx, err := r.textures.Append(textureSlot{scaleS: 1, scaleT: 1})
	if err != nil {
		r.stats.Refused++
		r.logger().Warn("tev: out of textures", slog.Int("texture_pool", r.textures.Cap()))
		return InvalidTexture, fmt.Errorf("%w: %d textures: %w", ErrTexturePoolFull, r.textures.Cap(), err)
	}
	r.textures.At(idx).tex = r.cmds.NewTexture()
	return TextureID(idx), nil
}

// SelectTexture binds texture id to unit and makes it the target of
// subsequent uploads.
func (r *Renderer) SelectTexture(unit int, id TextureID) error {
	if unit < 0 || unit >= len(r.units) {
		return fmt.Errorf("%w: unit %d", ErrInvalidTexture, unit)
	}
	slot, err := r.slot(id)
	if err != nil {
		return err
	}
	r.cmds.BindTexture(unit, slot.tex)
	r.units[unit] = id
	r.curTex = id
	return nil
}

// UploadTexture tiles a width x height RGBA8 image and uploads it to the
// most recently selected texture. Textures whose padded size does not fit
// the tiling scratch buffer are refused and the texture is left unchanged.
func (r *Renderer) UploadTexture(rgba []byte, width, height int) error {
	slot, err := r.slot(r.curTex)
	if err != nil {
		return fmt.Errorf("upload with no texture selected: %w", err)
	}

	s, err := r.tiler.Tile(rgba, width, height)
	if err != nil {
		if errors.Is(err, tile.ErrScratchOverflow) {
			r.stats.Refused++
			r.logger().Warn("tev: texture too large",
				slog.Int("width", width),
				slog.Int("height", height),
				slog.Int("capacity", r.tiler.Capacity()))
		}
		return err
	}

	if err := slot.tex.Init(s.Width, s.Height, gputypes.TextureFormatRGBA8Unorm); err != nil {
		return fmt.Errorf("tev: init texture %d: %w", r.curTex, err)
	}
	if err := slot.tex.Upload(s.Bytes()); err != nil {
		return fmt.Errorf("tev: upload texture %d: %w", r.curTex, err)
	}
	slot.width, slot.height = s.Width, s.Height
	slot.scaleS, slot.scaleT = s.ScaleS, s.ScaleT

	r.logger().Debug("tev: texture uploaded",
		slog.Uint64("texture", uint64(r.curTex)),
		slog.Int("width", s.Width),
		slog.Int("height", s.Height),
		slog.Bool("padded", s.Padded()))
	return nil
}

// SetSamplerParameters sets filtering and wrapping of the texture bound to
// unit.
func (r *Renderer) SetSamplerParameters(unit int, linear bool, wrapS, wrapT WrapFlags) error {
	if unit < 0 || unit >= len(r.units) {
		return fmt.Errorf("%w: unit %d", ErrInvalidTexture, unit)
	}
	slot, err := r.slot(r.units[unit])
	if err != nil {
		return err
	}
	filter := gputypes.FilterModeNearest
	if linear {
		filter = gputypes.FilterModeLinear
	}
	slot.tex.SetFilter(filter, filter)
	slot.tex.SetWrap(wrapS.AddressMode(), wrapT.AddressMode())
	return nil
}

// TextureScale returns the coordinate scale factors of texture id.
func (r *Renderer) TextureScale(id TextureID) (s, t float32, err error) {
	slot, err := r.slot(id)
	if err != nil {
		return 0, 0, err
	}
	return slot.scaleS, slot.scaleT, nil
}

// currentScale returns the scale factors texture coordinates are multiplied
// by: those of the most recently selected texture, or 1.
func (r *Renderer) currentScale() (s, t float32) {
	slot, err := r.slot(r.curTex)
	if err != nil {
		return 1, 1
	}
	return slot.scaleS, slot.scaleT
}

func (r *Renderer) slot(id TextureID) (*textureSlot, error) {
	if id == InvalidTexture || int(id) >= r.textures.Len() {
		return nil, fmt.Errorf("%w: id %d", ErrInvalidTexture, id)
	}
	return r.textures.At(int(id)), nil
}
