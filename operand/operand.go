// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package operand models x86-64 memory and segment register operands.
//
// A memory operand is built from registers and an optional displacement, and
// may be modified freely afterwards.  Nothing is validated at construction or
// mutation time: Check (or Validate) must be called before the operand is
// handed to an encoder.  An operand which fails the check must not be
// encoded.
//
// Accessing an absent field (e.g. Base when ContainsBase is false) is a
// programming error and panics with a *PreconditionError.
package operand

// Operand is the capability shared by all operand kinds.
type Operand interface {
	// Value is the underlying raw encoding.
	Value() uint64

	// Check reports whether the operand is structurally valid.
	Check() bool
}

// AddrReg is a general-purpose register which may be used as the base or
// index of an address expression.
type AddrReg interface {
	Operand

	// IsStackPointer reports whether the register is RSP (or ESP).  The SIB
	// encoding reserves its register number to mean "no index".
	IsStackPointer() bool
}

// Segment is a segment register operand: Sreg, Fs or Gs.
type Segment interface {
	Operand
	Selector() Sreg
}
