// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x64asm is the operand model of an x86-64 instruction encoder.
//
// Operand kinds
//
// The optype package enumerates every operand kind of the Intel manual
// (imm8, m16&64, rel32, Sreg...).  Encoder tables are indexed by it.
//
// Memory operands
//
// The operand package provides memory operands: segment override, base and
// index registers, scale, displacement and address-size override.  A memory
// operand is tagged with its width at the type level (operand.M8,
// operand.M80Bcd...), but the addressing mode is shared.
//
// Validation is explicit.  Construction and modification don't check
// anything; an encoder must call Check or Validate before emitting the
// operand.  A stack pointer index, a memory operand without base and index,
// and invalid registers are rejected.
//
// Errors
//
// Validate returns an *operand.AddressError which unwraps to one of the
// operand.Err* reasons.  Accessing an absent field of a memory operand panics
// with an *operand.PreconditionError.
//
package x64asm
