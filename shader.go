// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tev

import (
	"errors"
	"log/slog"

	"github.com/gogpu/tev/combiner"
	"github.com/gogpu/tev/program"
)

// LookupProgram returns the program created for id, if any.
func (r *Renderer) LookupProgram(id combiner.FormulaID) (*program.Program, bool) {
	return r.programs.Lookup(id)
}

// CreateAndLoadProgram creates the program for id and loads it.
//
// The error wraps program.ErrPoolFull when the renderer already holds as
// many programs as it can, and combiner.ErrUnsupportedFormula for formulas
// with more than two inputs. The previously loaded program stays active in
// both cases.
func (r *Renderer) CreateAndLoadProgram(id combiner.FormulaID) (*program.Program, error) {
	p, err := r.programs.CreateAndActivate(id, r.cmds)
	if err != nil {
		if errors.Is(err, program.ErrPoolFull) {
			r.stats.Refused++
			r.logger().Warn("tev: out of programs",
				slog.String("formula", id.String()),
				slog.Int("program_pool", r.programs.Cap()))
		}
		return nil, err
	}
	r.logger().Debug("tev: program created",
		slog.String("formula", id.String()),
		slog.Int("program", p.ID),
		slog.Int("inputs", p.Inputs()),
		slog.Int("floats", p.Floats()))
	return p, nil
}

// LoadProgram makes p the active program and programs the stages for it.
func (r *Renderer) LoadProgram(p *program.Program) error {
	return r.programs.Activate(p, r.cmds)
}

// ActiveProgram returns the loaded program, or nil.
func (r *Renderer) ActiveProgram() *program.Program {
	return r.programs.Active()
}

// ShaderInfo reports the number of color inputs p streams and which
// texture units it samples.
func ShaderInfo(p *program.Program) (inputs int, usedTextures [2]bool) {
	return p.Inputs(), p.UsedTextures()
}
