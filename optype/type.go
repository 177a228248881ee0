// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optype enumerates the operand kinds which appear in the Intel
// manual's instruction summaries.
package optype

type Type uint8

const (
	// Control registers
	CR0234 = Type(iota)
	CR8

	// Debug registers
	DR

	// Immediates
	Imm8
	Imm16
	Imm32
	Imm64
	Zero
	One
	Three

	Label

	// Memory
	M8
	M16
	M32
	M64
	M128
	M256
	MPair1664
	MPtr1616
	MPtr1632
	MPtr1664
	M16Int
	M32Int
	M64Int
	M32Fp
	M64Fp
	M80Fp
	M80Bcd
	M2Byte
	M14Byte
	M28Byte
	M94Byte
	M108Byte
	M512Byte

	// MMX registers
	MM

	// Modifiers
	Pref66
	PrefRexW
	Far

	// Memory offsets
	Moffs8
	Moffs16
	Moffs32
	Moffs64

	// General purpose registers
	RL
	RH
	RB
	AL
	CL
	R16
	AX
	DX
	R32
	EAX
	R64
	RAX

	// Relative addresses
	Rel8
	Rel32

	// Segment registers
	Sreg
	FS
	GS

	// XMM registers
	XMM
	XMM0

	// YMM registers
	YMM

	NumTypes
)

type info struct {
	name string
	cat  Category
	size uint16 // memory kinds only
}

var infos = [NumTypes]info{
	CR0234: {"CR0-CR4", Register, 0},
	CR8:    {"CR8", Register, 0},
	DR:     {"DR0-DR7", Register, 0},

	Imm8:  {"imm8", Immediate, 0},
	Imm16: {"imm16", Immediate, 0},
	Imm32: {"imm32", Immediate, 0},
	Imm64: {"imm64", Immediate, 0},
	Zero:  {"0", Immediate, 0},
	One:   {"1", Immediate, 0},
	Three: {"3", Immediate, 0},

	Label: {"label", LabelCategory, 0},

	M8:        {"m8", Memory, 1},
	M16:       {"m16", Memory, 2},
	M32:       {"m32", Memory, 4},
	M64:       {"m64", Memory, 8},
	M128:      {"m128", Memory, 16},
	M256:      {"m256", Memory, 32},
	MPair1664: {"m16&64", Memory, 10},
	MPtr1616:  {"m16:16", Memory, 4},
	MPtr1632:  {"m16:32", Memory, 6},
	MPtr1664:  {"m16:64", Memory, 10},
	M16Int:    {"m16int", Memory, 2},
	M32Int:    {"m32int", Memory, 4},
	M64Int:    {"m64int", Memory, 8},
	M32Fp:     {"m32fp", Memory, 4},
	M64Fp:     {"m64fp", Memory, 8},
	M80Fp:     {"m80fp", Memory, 10},
	M80Bcd:    {"m80bcd", Memory, 10},
	M2Byte:    {"m2byte", Memory, 2},
	M14Byte:   {"m14byte", Memory, 14},
	M28Byte:   {"m28byte", Memory, 28},
	M94Byte:   {"m94byte", Memory, 94},
	M108Byte:  {"m108byte", Memory, 108},
	M512Byte:  {"m512byte", Memory, 512},

	MM: {"mm", Register, 0},

	Pref66:   {"p66", Modifier, 0},
	PrefRexW: {"pw", Modifier, 0},
	Far:      {"far", Modifier, 0},

	Moffs8:  {"moffs8", Offset, 0},
	Moffs16: {"moffs16", Offset, 0},
	Moffs32: {"moffs32", Offset, 0},
	Moffs64: {"moffs64", Offset, 0},

	RL:  {"rl", Register, 0},
	RH:  {"rh", Register, 0},
	RB:  {"rb", Register, 0},
	AL:  {"AL", Register, 0},
	CL:  {"CL", Register, 0},
	R16: {"r16", Register, 0},
	AX:  {"AX", Register, 0},
	DX:  {"DX", Register, 0},
	R32: {"r32", Register, 0},
	EAX: {"EAX", Register, 0},
	R64: {"r64", Register, 0},
	RAX: {"RAX", Register, 0},

	Rel8:  {"rel8", Relative, 0},
	Rel32: {"rel32", Relative, 0},

	Sreg: {"Sreg", Register, 0},
	FS:   {"FS", Register, 0},
	GS:   {"GS", Register, 0},

	XMM:  {"xmm", Register, 0},
	XMM0: {"<XMM0>", Register, 0},

	YMM: {"ymm", Register, 0},
}

func (t Type) String() string {
	if t < NumTypes {
		return infos[t].name
	}
	return "<invalid type>"
}

func (t Type) Category() Category {
	if t < NumTypes {
		return infos[t].cat
	}
	return InvalidCategory
}

func (t Type) IsMemory() bool {
	return t.Category() == Memory
}

// Size of a memory operand in bytes.  Zero for non-memory types.
func (t Type) Size() int {
	if t < NumTypes {
		return int(infos[t].size)
	}
	return 0
}
