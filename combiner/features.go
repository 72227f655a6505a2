// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package combiner

// Channel selects the color or alpha half of a formula.
type Channel uint8

const (
	ChannelColor Channel = iota
	ChannelAlpha
)

// MaxInputs is the number of per-vertex inputs two stages can combine.
const MaxInputs = 2

// Features is what the resolver and vertex assembler need to know about a
// formula.
type Features struct {
	ID FormulaID

	// ActiveInputs is the highest input symbol referenced by any slot.
	ActiveInputs int

	// Alpha reports that the formula produces alpha; without it the output
	// is opaque.
	Alpha bool

	// ColorAlphaSame reports that the color and alpha formulas are equal.
	ColorAlphaSame bool

	Slots        [2]Formula
	UsedTextures [2]bool
	Fog          bool
	TextureEdge  bool

	// Per-channel shape of the formula, tested in this order.
	DoSingle   [2]bool
	DoMultiply [2]bool
	DoMix      [2]bool
}

// FeatureQuery maps a formula identifier to its features. It must be pure.
type FeatureQuery func(FormulaID) Features

// Decode is the default FeatureQuery for the FormulaID bit layout.
func Decode(id FormulaID) Features {
	f := Features{
		ID:          id,
		Alpha:       id.Has(OptAlpha),
		Fog:         id.Has(OptFog),
		TextureEdge: id.Has(OptTextureEdge),
	}
	f.Slots[ChannelColor] = id.Slots(ChannelColor)
	f.Slots[ChannelAlpha] = id.Slots(ChannelAlpha)
	f.ColorAlphaSame = f.Slots[ChannelColor] == f.Slots[ChannelAlpha]

	for ch := range f.Slots {
		for _, s := range f.Slots[ch] {
			if s.IsInput() && int(s) > f.ActiveInputs {
				f.ActiveInputs = int(s)
			}
			switch s {
			case Texel0, Texel0Alpha:
				f.UsedTextures[0] = true
			case Texel1:
				f.UsedTextures[1] = true
			}
		}
		slots := f.Slots[ch]
		f.DoSingle[ch] = slots[SlotC] == Zero
		f.DoMultiply[ch] = slots[SlotB] == Zero && slots[SlotD] == Zero
		f.DoMix[ch] = slots[SlotB] == slots[SlotD]
	}
	return f
}

// AlphaSeparate reports whether alpha needs its own combine configuration.
func (f *Features) AlphaSeparate() bool {
	return f.Alpha && !f.ColorAlphaSame
}

// Textured reports whether either texture unit is sampled.
func (f *Features) Textured() bool {
	return f.UsedTextures[0] || f.UsedTextures[1]
}

// Supported reports whether the formula fits the two-stage hardware.
func (f *Features) Supported() bool {
	return f.ActiveInputs <= MaxInputs
}
