// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pool

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
	}{
		{"positive", 32, 32},
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int](tt.capacity)
			if a.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", a.Cap(), tt.wantCap)
			}
			if a.Len() != 0 {
				t.Errorf("Len() = %d, want 0", a.Len())
			}
		})
	}
}

func TestAppendUntilFull(t *testing.T) {
	a := New[string](3)
	for i, v := range []string{"a", "b", "c"} {
		idx, err := a.Append(v)
		if err != nil {
			t.Fatalf("Append(%q): %v", v, err)
		}
		if idx != i {
			t.Errorf("Append(%q) index = %d, want %d", v, idx, i)
		}
	}
	if !a.Full() {
		t.Error("Full() = false after filling")
	}

	idx, err := a.Append("d")
	if !errors.Is(err, ErrFull) {
		t.Errorf("Append on full arena: err = %v, want ErrFull", err)
	}
	if idx != -1 {
		t.Errorf("Append on full arena: index = %d, want -1", idx)
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d after refused append, want 3", a.Len())
	}
	if s := a.Stats(); s.Refused != 1 || s.Len != 3 || s.Capacity != 3 {
		t.Errorf("Stats() = %+v, want {Len:3 Capacity:3 Refused:1}", s)
	}
}

func TestAtPointerStability(t *testing.T) {
	a := New[int](4)
	_, _ = a.Append(10)
	p := a.At(0)
	_, _ = a.Append(20)
	_, _ = a.Append(30)

	*p = 11
	if got := *a.At(0); got != 11 {
		t.Errorf("At(0) = %d after write through earlier pointer, want 11", got)
	}
	if a.At(3) != nil || a.At(-1) != nil {
		t.Error("At out of range returned non-nil")
	}
}

func TestIndex(t *testing.T) {
	a := New[int](4)
	for _, v := range []int{5, 7, 7} {
		_, _ = a.Append(v)
	}
	if got := a.Index(func(v *int) bool { return *v == 7 }); got != 1 {
		t.Errorf("Index(7) = %d, want 1", got)
	}
	if got := a.Index(func(v *int) bool { return *v == 9 }); got != -1 {
		t.Errorf("Index(9) = %d, want -1", got)
	}
}
