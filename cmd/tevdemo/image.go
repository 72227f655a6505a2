// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"honnef.co/go/safeish"

	"github.com/gogpu/tev/gpu"
	"github.com/gogpu/tev/tile"
)

// loadImage decodes a PNG or BMP file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Decode(f)
	case ".bmp":
		return bmp.Decode(f)
	default:
		return nil, fmt.Errorf("%s: unsupported image format %q", path, ext)
	}
}

// checkerboard returns a size x size image of 4x4 squares.
func checkerboard(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 0xF0, G: 0xE0, B: 0x40, A: 0xFF}
	dark := color.RGBA{R: 0x20, G: 0x30, B: 0x80, A: 0xFF}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dark
			if (x/4+y/4)%2 == 0 {
				c = light
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// toRGBA converts img to tightly packed RGBA8, downscaling it when its
// padded size would not fit in scratchWords texels.
func toRGBA(img image.Image, scratchWords int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for w > 1 && h > 1 && tile.PaddedSize(w)*tile.PaddedSize(h) > scratchWords {
		w, h = w/2, h/2
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst
}

// writeUntiled decodes the tiled contents of a recorded texture and writes
// them as PNG.
func writeUntiled(path string, tex *gpu.RecordedTexture) error {
	if tex == nil || len(tex.Data) == 0 {
		return fmt.Errorf("no texture data recorded")
	}
	s := tile.Surface{
		Pixels: safeish.SliceCast[[]uint32](tex.Data),
		Width:  tex.Width,
		Height: tex.Height,
	}
	img := &image.RGBA{
		Pix:    tile.Untile(&s),
		Stride: tex.Width * 4,
		Rect:   image.Rect(0, 0, tex.Width, tex.Height),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
