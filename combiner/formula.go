// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package combiner

import "fmt"

// FormulaID is an opaque combiner formula identifier.
//
// Bit layout:
//
//	bits  0..11  color slots A, B, C, D (3 bits each)
//	bits 12..23  alpha slots A, B, C, D (3 bits each)
//	bit  24      alpha is combined
//	bit  25      fog
//	bit  26      texture edge (alpha-tested cutouts)
//
// Each channel computes (A - B) * C + D.
type FormulaID uint32

// Option bits of a FormulaID.
const (
	OptAlpha       FormulaID = 1 << 24
	OptFog         FormulaID = 1 << 25
	OptTextureEdge FormulaID = 1 << 26
)

const (
	slotBits    = 3
	slotMask    = 1<<slotBits - 1
	channelBits = 4 * slotBits
	channelMask = 1<<channelBits - 1
)

// Symbol names a combiner operand.
type Symbol uint8

// Operand symbols.
const (
	// Zero reads the stage constant, which holds zero in its color
	// components unless a folded color has been written there.
	Zero Symbol = iota
	Input1
	Input2
	Input3
	Input4
	Texel0
	// Texel0Alpha is texture 0's alpha replicated into RGB.
	Texel0Alpha
	Texel1
)

var symbolNames = [...]string{"0", "in1", "in2", "in3", "in4", "tex0", "tex0.a", "tex1"}

func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// IsInput reports whether s is one of the per-vertex inputs.
func (s Symbol) IsInput() bool { return s >= Input1 && s <= Input4 }

// Formula holds the four slots (A, B, C, D) of one channel.
type Formula [4]Symbol

// Slot indices into a Formula.
const (
	SlotA = iota
	SlotB
	SlotC
	SlotD
)

// Single returns a formula that outputs d.
func Single(d Symbol) Formula { return Formula{Zero, Zero, Zero, d} }

// Multiply returns a formula that outputs a * c.
func Multiply(a, c Symbol) Formula { return Formula{a, Zero, c, Zero} }

// Mix returns a formula that blends from b to a by factor c.
func Mix(a, b, c Symbol) Formula { return Formula{a, b, c, b} }

// Encode packs color and alpha formulas plus option bits into a FormulaID.
func Encode(color, alpha Formula, opts FormulaID) FormulaID {
	id := opts &^ (channelMask | channelMask<<channelBits)
	for i := 0; i < 4; i++ {
		id |= FormulaID(color[i]&slotMask) << (i * slotBits)
		id |= FormulaID(alpha[i]&slotMask) << (channelBits + i*slotBits)
	}
	return id
}

// Slots returns the formula of channel ch.
func (id FormulaID) Slots(ch Channel) Formula {
	var f Formula
	shift := int(ch) * channelBits
	for i := range f {
		f[i] = Symbol(id >> (shift + i*slotBits) & slotMask)
	}
	return f
}

// Has reports whether all option bits in opt are set.
func (id FormulaID) Has(opt FormulaID) bool { return id&opt == opt }

func (id FormulaID) String() string {
	return fmt.Sprintf("%#08x", uint32(id))
}
