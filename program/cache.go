// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import (
	"errors"
	"fmt"

	"github.com/gogpu/tev/combiner"
	"github.com/gogpu/tev/gpu"
	"github.com/gogpu/tev/internal/pool"
)

// DefaultCapacity is the number of distinct formulas a session may use.
const DefaultCapacity = 32

// Cache errors.
var (
	// ErrPoolFull is returned when every program slot is taken.
	ErrPoolFull = errors.New("program: pool full")

	// ErrNoActive is returned when an operation needs an active program.
	ErrNoActive = errors.New("program: no active program")
)

// Cache memoizes resolved programs by formula identifier.
//
// Programs are appended in creation order and never evicted; the pool has
// a hard capacity. Cache is not safe for concurrent use.
type Cache struct {
	programs *pool.Arena[Program]
	query    combiner.FeatureQuery
	active   *Program
}

// NewCache creates a cache holding up to capacity programs.
// A nil query selects combiner.Decode. If capacity <= 0, DefaultCapacity
// is used.
func NewCache(capacity int, query combiner.FeatureQuery) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if query == nil {
		query = combiner.Decode
	}
	return &Cache{
		programs: pool.New[Program](capacity),
		query:    query,
	}
}

// Lookup returns the program for id, if one was created. It has no side
// effects.
func (c *Cache) Lookup(id combiner.FormulaID) (*Program, bool) {
	i := c.programs.Index(func(p *Program) bool { return p.Formula == id })
	if i < 0 {
		return nil, false
	}
	return c.programs.At(i), true
}

// Create resolves id into a new program and appends it to the pool.
//
// Formulas the two stages cannot express are rejected with
// combiner.ErrUnsupportedFormula; a full pool yields ErrPoolFull. In both
// cases the pool is unchanged.
func (c *Cache) Create(id combiner.FormulaID) (*Program, error) {
	f := c.query(id)
	if !f.Supported() {
		return nil, fmt.Errorf("%w: %s has %d inputs", combiner.ErrUnsupportedFormula, id, f.ActiveInputs)
	}

	p := Program{
		ID:       c.programs.Len(),
		Formula:  id,
		Features: f,
		Layout:   NewLayout(&f),
	}
	idx, err := c.programs.Append(p)
	if err != nil {
		return nil, fmt.Errorf("%w: formula %s: %w", ErrPoolFull, id, err)
	}
	return c.programs.At(idx), nil
}

// CreateAndActivate creates the program for id and activates it.
func (c *Cache) CreateAndActivate(id combiner.FormulaID, cmds gpu.Commands) (*Program, error) {
	p, err := c.Create(id)
	if err != nil {
		return nil, err
	}
	if err := c.Activate(p, cmds); err != nil {
		return nil, err
	}
	return p, nil
}

// Activate makes p the active program and programs its stages with the
// unswapped input mapping.
func (c *Cache) Activate(p *Program, cmds gpu.Commands) error {
	a, err := combiner.Resolve(p.Features, combiner.Normal)
	if err != nil {
		return err
	}
	c.active = p
	a.Apply(cmds)
	return nil
}

// Active returns the active program, or nil before the first activation.
func (c *Cache) Active() *Program { return c.active }

// Len returns the number of programs created.
func (c *Cache) Len() int { return c.programs.Len() }

// Cap returns the pool capacity.
func (c *Cache) Cap() int { return c.programs.Cap() }

// Stats returns pool occupancy.
func (c *Cache) Stats() pool.Stats { return c.programs.Stats() }
