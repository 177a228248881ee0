// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

import (
	"github.com/tsavola/x64asm/optype"
)

// Width tags a memory operand with its operand kind.  The implementations
// are empty marker types.
type Width interface {
	Type() optype.Type
}

// MemOperand is implemented by *M[W] for every Width.
type MemOperand interface {
	Operand
	Type() optype.Type
	Memory() *Mem
}

// M is a memory operand tagged with a width.  Operands of different widths
// have distinct types even though their payloads are identical.
type M[W Width] struct {
	Mem
}

// NewM is like New, but with a width tag.
func NewM[W Width](a Address) M[W] {
	return M[W]{New(a)}
}

// Tag a memory operand with a width.
func Tag[W Width](m Mem) M[W] {
	return M[W]{m}
}

func (m M[W]) Type() optype.Type {
	var w W
	return w.Type()
}

func (m *M[W]) Memory() *Mem { return &m.Mem }

// Width tags.
type (
	W8       struct{}
	W16      struct{}
	W32      struct{}
	W64      struct{}
	W128     struct{}
	W256     struct{}
	Pair1664 struct{}
	Ptr1616  struct{}
	Ptr1632  struct{}
	Ptr1664  struct{}
	Int16    struct{}
	Int32    struct{}
	Int64    struct{}
	Fp32     struct{}
	Fp64     struct{}
	Fp80     struct{}
	Bcd80    struct{}
	Bytes2   struct{}
	Bytes14  struct{}
	Bytes28  struct{}
	Bytes94  struct{}
	Bytes108 struct{}
	Bytes512 struct{}
)

func (W8) Type() optype.Type       { return optype.M8 }
func (W16) Type() optype.Type      { return optype.M16 }
func (W32) Type() optype.Type      { return optype.M32 }
func (W64) Type() optype.Type      { return optype.M64 }
func (W128) Type() optype.Type     { return optype.M128 }
func (W256) Type() optype.Type     { return optype.M256 }
func (Pair1664) Type() optype.Type { return optype.MPair1664 }
func (Ptr1616) Type() optype.Type  { return optype.MPtr1616 }
func (Ptr1632) Type() optype.Type  { return optype.MPtr1632 }
func (Ptr1664) Type() optype.Type  { return optype.MPtr1664 }
func (Int16) Type() optype.Type    { return optype.M16Int }
func (Int32) Type() optype.Type    { return optype.M32Int }
func (Int64) Type() optype.Type    { return optype.M64Int }
func (Fp32) Type() optype.Type     { return optype.M32Fp }
func (Fp64) Type() optype.Type     { return optype.M64Fp }
func (Fp80) Type() optype.Type     { return optype.M80Fp }
func (Bcd80) Type() optype.Type    { return optype.M80Bcd }
func (Bytes2) Type() optype.Type   { return optype.M2Byte }
func (Bytes14) Type() optype.Type  { return optype.M14Byte }
func (Bytes28) Type() optype.Type  { return optype.M28Byte }
func (Bytes94) Type() optype.Type  { return optype.M94Byte }
func (Bytes108) Type() optype.Type { return optype.M108Byte }
func (Bytes512) Type() optype.Type { return optype.M512Byte }

// Memory operand types.
type (
	M8        = M[W8]
	M16       = M[W16]
	M32       = M[W32]
	M64       = M[W64]
	M128      = M[W128]
	M256      = M[W256]
	MPair1664 = M[Pair1664] // m16&64: LGDT/LIDT limit and base
	MPtr1616  = M[Ptr1616]  // far pointer: selector and 16-bit offset
	MPtr1632  = M[Ptr1632]  // far pointer: selector and 32-bit offset
	MPtr1664  = M[Ptr1664]  // far pointer: selector and 64-bit offset
	M16Int    = M[Int16]    // x87 integer
	M32Int    = M[Int32]    // x87 integer
	M64Int    = M[Int64]    // x87 integer
	M32Fp     = M[Fp32]     // x87 single precision
	M64Fp     = M[Fp64]     // x87 double precision
	M80Fp     = M[Fp80]     // x87 double extended precision
	M80Bcd    = M[Bcd80]    // x87 packed BCD
	M2Byte    = M[Bytes2]
	M14Byte   = M[Bytes14]
	M28Byte   = M[Bytes28]
	M94Byte   = M[Bytes94]
	M108Byte  = M[Bytes108]
	M512Byte  = M[Bytes512] // FXSAVE/FXRSTOR area
)
