// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package combiner

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tev/gpu"
)

// ErrUnsupportedFormula is returned for formulas with more active inputs
// than the two stages can combine.
var ErrUnsupportedFormula = errors.New("combiner: unsupported formula")

// SwapMode selects how Input1 and Input2 map onto registers.
type SwapMode uint8

const (
	// Normal maps Input1 to the primary color and Input2 to the previous
	// stage (which stage 0 fills from its constant register).
	Normal SwapMode = iota
	// SwapPrimaryPrevious maps Input1 to the previous stage and Input2 to
	// the primary color, so Input1 is the one read from the constant.
	SwapPrimaryPrevious
)

func (m SwapMode) String() string {
	if m == SwapPrimaryPrevious {
		return "swap"
	}
	return "normal"
}

// Alpha-test references on a 0..255 scale.
const (
	AlphaRefDefault uint8 = 0
	// AlphaRefTextureEdge sharpens cutout edges (about 30% of full range).
	AlphaRefTextureEdge uint8 = 77
)

// opaqueConstant is the stage-1 constant used when a formula has no alpha:
// black color (so Zero still reads as zero) with full alpha.
const opaqueConstant uint32 = 0xFF000000

// Assignment is the complete fixed-function configuration for a formula.
type Assignment struct {
	Stages    [gpu.StageCount]gpu.TexEnv
	AlphaTest gpu.AlphaTest
}

// Apply programs the assignment into cmds.
func (a *Assignment) Apply(cmds gpu.Commands) {
	for i, env := range a.Stages {
		cmds.SetTexEnv(i, env)
	}
	cmds.SetAlphaTest(a.AlphaTest)
}

// Source returns the register symbol s reads from under swap mode m.
func (s Symbol) Source(m SwapMode) gpu.Source {
	switch s {
	case Input1:
		if m == SwapPrimaryPrevious {
			return gpu.SourcePrevious
		}
		return gpu.SourcePrimaryColor
	case Input2:
		if m == SwapPrimaryPrevious {
			return gpu.SourcePrimaryColor
		}
		return gpu.SourcePrevious
	case Texel0, Texel0Alpha:
		return gpu.SourceTexture0
	case Texel1:
		return gpu.SourceTexture1
	default:
		// Zero, Input3 and Input4 all read the constant register.
		return gpu.SourceConstant
	}
}

// Resolve splits the formula across the two stages.
//
// With two active inputs stage 0 writes its constant register into
// "previous" and stage 1 evaluates the formula. Otherwise stage 0 is left in
// its identity state and stage 1 evaluates the formula alone.
func Resolve(f Features, m SwapMode) (Assignment, error) {
	if !f.Supported() {
		return Assignment{}, fmt.Errorf("%w: %s uses %d inputs, at most %d supported",
			ErrUnsupportedFormula, f.ID, f.ActiveInputs, MaxInputs)
	}

	a := Assignment{
		Stages: [gpu.StageCount]gpu.TexEnv{gpu.IdentityTexEnv(), gpu.IdentityTexEnv()},
	}
	if f.ActiveInputs == MaxInputs {
		a.Stages[0] = ConstantPassthrough()
	}

	env := &a.Stages[1]
	if f.AlphaSeparate() {
		env.RGB = resolveChannel(&f, ChannelColor, m)
		env.Alpha = resolveChannel(&f, ChannelAlpha, m)
	} else {
		env.RGB = resolveChannel(&f, ChannelColor, m)
		env.Alpha = env.RGB
	}
	// The alpha channel always reads alpha components.
	env.Alpha.AlphaAsRGB = [3]bool{}

	if !f.Alpha {
		env.Constant = opaqueConstant
		env.Alpha = gpu.Combine{Func: gpu.Replace, Sources: [3]gpu.Source{gpu.SourceConstant}}
	}

	a.AlphaTest = gpu.AlphaTest{
		Enabled: true,
		Compare: gputypes.CompareFunctionGreater,
		Ref:     AlphaRefDefault,
	}
	if f.TextureEdge && f.Alpha {
		a.AlphaTest.Ref = AlphaRefTextureEdge
	}
	return a, nil
}

// ConstantPassthrough returns the stage that forwards its constant register
// unchanged on both channels.
func ConstantPassthrough() gpu.TexEnv {
	pass := gpu.Combine{Func: gpu.Replace, Sources: [3]gpu.Source{gpu.SourceConstant}}
	return gpu.TexEnv{RGB: pass, Alpha: pass}
}

// PrimaryPassthrough returns the stage that forwards the vertex color.
func PrimaryPassthrough() gpu.TexEnv {
	pass := gpu.Combine{Func: gpu.Replace, Sources: [3]gpu.Source{gpu.SourcePrimaryColor}}
	return gpu.TexEnv{RGB: pass, Alpha: pass}
}

// resolveChannel picks the operator for one channel. Shapes that are none
// of single, multiply or mix pass the previous stage through.
func resolveChannel(f *Features, ch Channel, m SwapMode) gpu.Combine {
	slots := f.Slots[ch]
	var (
		c    gpu.Combine
		used []int
	)
	switch {
	case f.DoSingle[ch]:
		c.Func = gpu.Replace
		used = []int{SlotD}
	case f.DoMultiply[ch]:
		c.Func = gpu.Modulate
		used = []int{SlotA, SlotC}
	case f.DoMix[ch]:
		c.Func = gpu.Interpolate
		used = []int{SlotA, SlotB, SlotC}
	default:
		return gpu.Combine{Func: gpu.Replace}
	}
	for i, slot := range used {
		c.Sources[i] = slots[slot].Source(m)
		c.AlphaAsRGB[i] = slots[slot] == Texel0Alpha
	}
	return c
}
