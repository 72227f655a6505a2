// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/gogpu/tev/gpu"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend provides the fixed-function command interface a tev.Renderer
// drives.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "recorder", "null").
	Name() string

	// Init prepares the device. It must be called before Commands.
	Init() error

	// Close releases the device.
	// The backend should not be used after Close is called.
	Close()

	// Commands returns the device command interface.
	Commands() (gpu.Commands, error)
}
