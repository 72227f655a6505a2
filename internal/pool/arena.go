// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pool provides append-only, fixed-capacity storage for the
// renderer's texture and program pools.
//
// Entries are never removed. Indices handed out by Append stay valid and
// pointers returned by At stay stable for the life of the Arena, because
// the backing array is allocated once at full capacity.
//
// Arena is not safe for concurrent use.
package pool

import (
	"errors"
	"fmt"
)

// ErrFull is returned by Append when the arena is at capacity.
var ErrFull = errors.New("pool: capacity exhausted")

// Arena is an append-only store with a hard capacity.
type Arena[T any] struct {
	items []T
	// refused counts Append calls turned away because the arena was full.
	refused uint64
}

// New creates an arena that holds at most capacity entries.
// A capacity below 1 is treated as 1.
func New[T any](capacity int) *Arena[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Arena[T]{items: make([]T, 0, capacity)}
}

// Append stores v and returns its index.
// On a full arena nothing is stored and ErrFull is returned.
func (a *Arena[T]) Append(v T) (int, error) {
	if a.Full() {
		a.refused++
		return -1, fmt.Errorf("%w: %d of %d used", ErrFull, len(a.items), cap(a.items))
	}
	a.items = append(a.items, v)
	return len(a.items) - 1, nil
}

// At returns a pointer to entry i, or nil if i is out of range.
func (a *Arena[T]) At(i int) *T {
	if i < 0 || i >= len(a.items) {
		return nil
	}
	return &a.items[i]
}

// Index returns the index of the first entry for which match returns true,
// or -1.
func (a *Arena[T]) Index(match func(*T) bool) int {
	for i := range a.items {
		if match(&a.items[i]) {
			return i
		}
	}
	return -1
}

// Len returns the number of stored entries.
func (a *Arena[T]) Len() int { return len(a.items) }

// Cap returns the fixed capacity.
func (a *Arena[T]) Cap() int { return cap(a.items) }

// Full reports whether Append would fail.
func (a *Arena[T]) Full() bool { return len(a.items) == cap(a.items) }

// Stats returns occupancy statistics.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Len:      len(a.items),
		Capacity: cap(a.items),
		Refused:  a.refused,
	}
}

// Stats contains arena occupancy.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the fixed capacity.
	Capacity int
	// Refused is the number of Append calls rejected by a full arena.
	Refused uint64
}
