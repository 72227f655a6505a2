// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/tev/program"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaultConfig() {
		t.Errorf("parseArgs(nil) = %+v, want defaults", cfg)
	}
}

func TestParseArgsFileThenFlags(t *testing.T) {
	path := writeConfig(t, `
backend = "null"
display_mode = "wide"
frames = 3
program_pool_size = 8
texture = "from-file.png"
`)
	cfg, err := parseArgs([]string{"-config", path, "-frames", "5", "-mode", "aa22"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "null" {
		t.Errorf("Backend = %q, want file value null", cfg.Backend)
	}
	if cfg.ProgramPoolSize != 8 || cfg.Texture != "from-file.png" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Frames != 5 || cfg.DisplayMode != "aa22" {
		t.Errorf("flags did not override file: frames=%d mode=%q", cfg.Frames, cfg.DisplayMode)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "frame_count = 2\n")
	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err == nil {
		t.Error("loadConfig accepted an unknown key")
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.DisplayMode = "teletext"
	if _, err := cfg.options(); err == nil {
		t.Error("options() accepted an unknown display mode")
	}

	cfg.DisplayMode = "wide-aa12"
	opts, err := cfg.options()
	if err != nil {
		t.Fatal(err)
	}
	if len(opts) == 0 {
		t.Error("options() returned nothing")
	}
}

func TestRunRecorder(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tiled.png")
	cfg := defaultConfig()
	cfg.Frames = 2
	cfg.TargetFrameRate = 0
	cfg.Output = out
	if err := run(&cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestAppendVertexLayout(t *testing.T) {
	l := program.Layout{Stride: 12, TexCoord: 4, Fog: -1, Color: [2]int{6, 9}, ColorFloats: 3, Inputs: 2}
	v := vertex{x: 1, y: 2, z: 3, s: 0.25, t: 0.75,
		col0: [4]float32{0.1, 0.2, 0.3, 1}, col1: [4]float32{0.4, 0.5, 0.6, 1}}
	got := appendVertex(nil, &l, &v)
	want := []float32{1, 2, 3, 1, 0.25, 0.75, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
