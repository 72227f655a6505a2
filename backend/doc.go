// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend provides a registry of fixed-function devices.
//
// A device is anything implementing gpu.Commands. Backends wrap device
// construction so tools can select one by name at runtime.
//
// # Backend Registration
//
// Backends are registered via init() functions. The built-in backends are
// registered on import:
//
//	import "github.com/gogpu/tev/backend"
//
// # Backend Selection
//
// Use Default() to get the preferred available backend, or Get() to
// request a specific backend by name:
//
//	b := backend.Get("null")
//	if err := b.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	cmds, _ := b.Commands()
//	r := tev.New(cmds)
//
// # Available Backends
//
//   - "recorder": records commands and draw snapshots in memory (default)
//   - "null": discards everything, for benchmarks
package backend
