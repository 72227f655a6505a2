// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command tevdemo renders a scripted scene through tev and reports what
// reached the device.
//
// Usage:
//
//	tevdemo [-config demo.toml] [-backend recorder] [-mode aa22] [-texture img.png] [-output tiled.png]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/tev"
	"github.com/gogpu/tev/backend"
	"github.com/gogpu/tev/gpu"
	"github.com/gogpu/tev/tile"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := run(&cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config) error {
	if cfg.Verbose {
		tev.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	b, err := backend.Open(cfg.Backend)
	if err != nil {
		return err
	}
	defer b.Close()
	cmds, err := b.Commands()
	if err != nil {
		return err
	}

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	r := tev.New(cmds, opts...)

	img, err := sourceImage(cfg)
	if err != nil {
		return err
	}
	scratch := cfg.TileScratchWords
	if scratch <= 0 {
		scratch = tile.DefaultScratchWords
	}
	rgba := toRGBA(img, scratch)
	tex, err := uploadTexture(r, rgba.Pix, rgba.Rect.Dx(), rgba.Rect.Dy())
	if err != nil {
		return err
	}

	s, err := newScene(r, tex)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for frame := 0; frame < cfg.Frames; frame++ {
		r.StartFrame()
		if err := s.draw(frame); err != nil {
			return err
		}
		st := r.Stats()
		if err := r.EndFrame(); err != nil {
			return err
		}
		p.Printf("frame %d: %d draws, %d vertices of %d, %d fog passes, %d folded, %d refused\n",
			frame, st.Draws, st.Cursor, st.BufferCapacity, st.FogPasses, st.FoldedBatches, st.Refused)
	}

	st := r.Stats()
	p.Printf("programs %d/%d, textures %d/%d\n", st.Programs, st.ProgramCapacity, st.Textures, st.TextureCapacity)

	rb, ok := b.(*backend.RecorderBackend)
	if !ok {
		return nil
	}
	report(p, rb.Recorder())
	if cfg.Output != "" {
		if err := writeUntiled(cfg.Output, rb.Recorder().Units[0]); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Output, err)
		}
		p.Printf("texture written to %s\n", cfg.Output)
	}
	return nil
}

func sourceImage(cfg *config) (image.Image, error) {
	if cfg.Texture == "" {
		return checkerboard(24), nil
	}
	return loadImage(cfg.Texture)
}

func uploadTexture(r *tev.Renderer, pix []byte, w, h int) (tev.TextureID, error) {
	id, err := r.NewTexture()
	if err != nil {
		return id, err
	}
	if err := r.SelectTexture(0, id); err != nil {
		return id, err
	}
	if err := r.UploadTexture(pix, w, h); err != nil {
		return id, err
	}
	return id, r.SetSamplerParameters(0, true, 0, tev.WrapMirror)
}

// report prints how many commands of each kind were recorded.
func report(p *message.Printer, rec *gpu.Recorder) {
	for op := gpu.OpBindVertexBuffer; op <= gpu.OpBindTexture; op++ {
		if n := rec.Count(op); n > 0 {
			p.Printf("  %-18s %d\n", op, n)
		}
	}
}
