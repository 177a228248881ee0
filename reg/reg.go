// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reg provides the general-purpose registers which may be used in
// address expressions.
package reg

import (
	"fmt"
)

// NumRegs is the number of general-purpose registers in 64-bit mode.
const NumRegs = 16

// stackPointer is the register number which the SIB index field reserves for
// "no index".
const stackPointer = 4

// R64 is a 64-bit general-purpose register.
type R64 byte

const (
	RAX = R64(iota)
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// R32 is a 32-bit general-purpose register, used for addressing when the
// address-size override prefix is present.
type R32 byte

const (
	EAX = R32(iota)
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D
)

var names64 = [NumRegs]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

var names32 = [NumRegs]string{
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
}

func (r R64) Value() uint64        { return uint64(r) }
func (r R64) Check() bool          { return r < NumRegs }
func (r R64) IsStackPointer() bool { return r == RSP }

func (r R64) String() string {
	if r < NumRegs {
		return names64[r]
	}
	return fmt.Sprintf("<invalid r64 %d>", byte(r))
}

func (r R32) Value() uint64        { return uint64(r) }
func (r R32) Check() bool          { return r < NumRegs }
func (r R32) IsStackPointer() bool { return r == ESP }

func (r R32) String() string {
	if r < NumRegs {
		return names32[r]
	}
	return fmt.Sprintf("<invalid r32 %d>", byte(r))
}

// R32 returns the low half of the register.
func (r R64) R32() R32 { return R32(r) }

// R64 returns the full-width register.
func (r R32) R64() R64 { return R64(r) }
