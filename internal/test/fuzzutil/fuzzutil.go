// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fuzzutil

import (
	"encoding/binary"

	"github.com/tsavola/x64asm/operand"
	"github.com/tsavola/x64asm/reg"
	"golang.org/x/arch/x86/x86asm"
	errors "golang.org/x/xerrors"
)

// InputSize is the number of bytes consumed by Mem.
const InputSize = 8

// Flag bits of the first input byte.
const (
	flagBase = 1 << iota
	flagIndex
	flagSegment
	flagDisp
	flagAddrOverride
	flagFixedSegment
)

// Mem decodes a memory operand and a destination register from fuzzer input.
// Register numbers are not masked, so invalid operands are produced too.
func Mem(data []byte) (m operand.Mem, dest reg.R64, ok bool) {
	if len(data) < InputSize {
		return
	}

	var (
		flags    = data[0]
		override = flags&flagAddrOverride != 0
		regs     = data[1]
		misc     = data[2]
	)

	addrReg := func(n byte) operand.AddrReg {
		if override {
			return reg.R32(n)
		}
		return reg.R64(n)
	}

	a := operand.Address{
		Scale:        operand.Scale(misc & 3),
		AddrOverride: override,
	}

	// Misc bits 5 and 6 push register numbers out of range.
	if flags&flagBase != 0 {
		a.Base = addrReg(regs&15 | misc>>5&1<<4)
	}
	if flags&flagIndex != 0 {
		a.Index = addrReg(regs>>4 | misc>>6&1<<4)
	}
	if flags&flagSegment != 0 {
		switch sel := operand.Sreg(misc >> 2 & 7); {
		case flags&flagFixedSegment != 0 && sel == operand.FS:
			a.Segment = operand.Fs{}
		case flags&flagFixedSegment != 0 && sel == operand.GS:
			a.Segment = operand.Gs{}
		default:
			a.Segment = sel
		}
	}
	if flags&flagDisp != 0 {
		a.Disp = operand.Disp(int32(binary.LittleEndian.Uint32(data[4:])))
	}

	m = operand.New(a)
	dest = reg.R64(data[3] & 15)
	ok = true
	return
}

// Verify that code is "mov dest, qword ptr m" by disassembling it.
func Verify(m operand.Mem, dest reg.R64, code []byte) error {
	insn, err := x86asm.Decode(code, 64)
	if err != nil {
		return errors.Errorf("%s: decode % x: %w", m, code, err)
	}

	if insn.Len != len(code) {
		return errors.Errorf("%s: decoded %d of %d bytes: % x", m, insn.Len, len(code), code)
	}
	if insn.Op != x86asm.MOV {
		return errors.Errorf("%s: decoded %v", m, insn)
	}
	if r, _ := insn.Args[0].(x86asm.Reg); r != x86asm.RAX+x86asm.Reg(dest) {
		return errors.Errorf("%s: destination is %v instead of %s", m, insn.Args[0], dest)
	}

	mem, ok := insn.Args[1].(x86asm.Mem)
	if !ok {
		return errors.Errorf("%s: source is %v", m, insn.Args[1])
	}

	// Disp32 is decoded as unsigned.
	mem.Disp = int64(int32(mem.Disp))

	regBase := x86asm.RAX
	if m.AddrOverride() {
		regBase = x86asm.EAX
	}

	var expect x86asm.Mem

	if m.ContainsBase() {
		expect.Base = regBase + x86asm.Reg(m.Base().Value())
	}
	if m.ContainsIndex() {
		expect.Index = regBase + x86asm.Reg(m.Index().Value())
		expect.Scale = uint8(m.Scale().Factor())
	} else {
		expect.Scale = mem.Scale // meaningless
	}
	if m.ContainsDisp() {
		expect.Disp = int64(m.Disp().Int32())
	}

	// Only FS and GS overrides are effective in 64-bit mode; the others are
	// verified as prefix bytes.
	expect.Segment = mem.Segment
	if m.ContainsSegment() {
		sel := m.Segment().Selector()

		switch sel {
		case operand.FS:
			expect.Segment = x86asm.FS

		case operand.GS:
			expect.Segment = x86asm.GS
		}

		if !hasPrefix(insn, segmentPrefixes[sel]) {
			return errors.Errorf("%s: no %v prefix in % x", m, sel, code)
		}
	}

	if mem != expect {
		return errors.Errorf("%s: decoded %+v, expected %+v (% x)", m, mem, expect, code)
	}
	return nil
}

var segmentPrefixes = [...]x86asm.Prefix{
	operand.ES: x86asm.PrefixES,
	operand.CS: x86asm.PrefixCS,
	operand.SS: x86asm.PrefixSS,
	operand.DS: x86asm.PrefixDS,
	operand.FS: x86asm.PrefixFS,
	operand.GS: x86asm.PrefixGS,
}

func hasPrefix(insn x86asm.Inst, p x86asm.Prefix) bool {
	for _, x := range insn.Prefix {
		if x == 0 {
			break
		}
		if x&0xff == p {
			return true
		}
	}
	return false
}
