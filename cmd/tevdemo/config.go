// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/tev"
	"github.com/gogpu/tev/backend"
)

// config is the demo configuration. It can be loaded from a TOML file;
// command-line flags override file values.
type config struct {
	Backend         string `toml:"backend"`
	DisplayMode     string `toml:"display_mode"`
	TargetFrameRate int    `toml:"target_frame_rate"`
	Frames          int    `toml:"frames"`

	TexturePoolSize   int `toml:"texture_pool_size"`
	ProgramPoolSize   int `toml:"program_pool_size"`
	VertexBufferBytes int `toml:"vertex_buffer_bytes"`
	TileScratchWords  int `toml:"tile_scratch_words"`

	Texture string `toml:"texture"`
	Output  string `toml:"output"`
	Verbose bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Backend:         backend.BackendRecorder,
		DisplayMode:     tev.DisplayNormal.String(),
		TargetFrameRate: tev.DefaultTargetFrameRate,
		Frames:          1,
	}
}

// loadConfig reads a TOML file over cfg. Unknown keys are an error.
func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// parseArgs builds the configuration from defaults, the optional -config
// file and the remaining flags, in that order of precedence.
func parseArgs(args []string) (config, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("tevdemo", flag.ContinueOnError)

	var (
		configPath = fs.String("config", "", "TOML configuration file")
		fcfg       = defaultConfig()
	)
	fs.StringVar(&fcfg.Backend, "backend", fcfg.Backend, "device backend (recorder, null)")
	fs.StringVar(&fcfg.DisplayMode, "mode", fcfg.DisplayMode, "display mode (normal, aa22, wide, wide-aa12)")
	fs.IntVar(&fcfg.TargetFrameRate, "fps", fcfg.TargetFrameRate, "target frame rate, 0 disables pacing")
	fs.IntVar(&fcfg.Frames, "frames", fcfg.Frames, "number of frames to render")
	fs.IntVar(&fcfg.TexturePoolSize, "textures", 0, "texture pool size")
	fs.IntVar(&fcfg.ProgramPoolSize, "programs", 0, "program pool size")
	fs.IntVar(&fcfg.VertexBufferBytes, "vbo-bytes", 0, "vertex buffer size in bytes")
	fs.IntVar(&fcfg.TileScratchWords, "scratch-words", 0, "texture tiling scratch size in words")
	fs.StringVar(&fcfg.Texture, "texture", "", "PNG or BMP image to upload (default: generated checkerboard)")
	fs.StringVar(&fcfg.Output, "output", "", "write the uploaded texture, untiled, to this PNG file")
	fs.BoolVar(&fcfg.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = fcfg.Backend
		case "mode":
			cfg.DisplayMode = fcfg.DisplayMode
		case "fps":
			cfg.TargetFrameRate = fcfg.TargetFrameRate
		case "frames":
			cfg.Frames = fcfg.Frames
		case "textures":
			cfg.TexturePoolSize = fcfg.TexturePoolSize
		case "programs":
			cfg.ProgramPoolSize = fcfg.ProgramPoolSize
		case "vbo-bytes":
			cfg.VertexBufferBytes = fcfg.VertexBufferBytes
		case "scratch-words":
			cfg.TileScratchWords = fcfg.TileScratchWords
		case "texture":
			cfg.Texture = fcfg.Texture
		case "output":
			cfg.Output = fcfg.Output
		case "v":
			cfg.Verbose = fcfg.Verbose
		}
	})
	return cfg, nil
}

// options converts the configuration to renderer options.
func (c *config) options() ([]tev.Option, error) {
	mode, ok := tev.ParseDisplayMode(c.DisplayMode)
	if !ok {
		return nil, fmt.Errorf("unknown display mode %q", c.DisplayMode)
	}
	return []tev.Option{
		tev.WithDisplayMode(mode),
		tev.WithTargetFrameRate(c.TargetFrameRate),
		tev.WithTexturePoolSize(c.TexturePoolSize),
		tev.WithProgramPoolSize(c.ProgramPoolSize),
		tev.WithVertexBufferBytes(c.VertexBufferBytes),
		tev.WithTileScratchWords(c.TileScratchWords),
	}, nil
}
