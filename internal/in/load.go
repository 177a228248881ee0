// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package in encodes memory operands.  It renders a MOV load instruction
// around the operand so that the result can be checked with a disassembler.
package in

import (
	"github.com/tsavola/x64asm/operand"
	"github.com/tsavola/x64asm/reg"
	"golang.org/x/xerrors"
)

const (
	opcodeMOV = byte(0x8b) // MOV r64, r/m64 with RexW
)

var (
	errInvalidSegment = xerrors.New("invalid segment register")
	errInvalidScale   = xerrors.New("invalid scale factor")
	errInvalidDest    = xerrors.New("invalid destination register")
)

// Load encodes "mov dest, qword ptr m".  The operand is validated first.
func Load(m *operand.Mem, dest reg.R64) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.ContainsSegment() && !m.Segment().Check() {
		return nil, xerrors.Errorf("selector %d: %w", m.Segment().Value(), errInvalidSegment)
	}
	if m.ContainsIndex() && m.Scale() > operand.Times8 {
		return nil, xerrors.Errorf("scale %d: %w", uint8(m.Scale()), errInvalidScale)
	}
	if !dest.Check() {
		return nil, xerrors.Errorf("%v: %w", dest, errInvalidDest)
	}

	var (
		hasBase  = m.ContainsBase()
		hasIndex = m.ContainsIndex()
		base     reg.R64
		index    reg.R64
		disp     int32
	)

	if hasBase {
		base = reg.R64(m.Base().Value())
	}
	if hasIndex {
		index = reg.R64(m.Index().Value())
	}
	if m.ContainsDisp() {
		disp = m.Disp().Int32()
	}

	var o output

	if m.ContainsSegment() {
		o.byte(segmentPrefix(m.Segment().Selector()))
	}
	o.byteIf(prefixAddrSize, m.AddrOverride())
	o.rex(RexW | regRexR(dest) | regRexX(index) | regRexB(base))
	o.byte(opcodeMOV)

	switch {
	case !hasIndex && !needSIB(base):
		mod, dispSize := baseDispModSize(base, disp)
		o.mod(mod, regRO(dest), regRM(base))
		o.int(disp, dispSize)

	case !hasBase:
		o.mod(ModMem, regRO(dest), ModRMSIB)
		o.sib(sibScale(m.Scale()), regIndex(index), baseNone)
		o.int32(disp)

	default:
		var (
			s = Scale0
			i = noIndex
		)
		if hasIndex {
			s = sibScale(m.Scale())
			i = regIndex(index)
		}

		mod, dispSize := baseDispModSize(base, disp)
		o.mod(mod, regRO(dest), ModRMSIB)
		o.sib(s, i, regBase(base))
		o.int(disp, dispSize)
	}

	if debug {
		o.debugPrint()
	}

	return o.bytes(), nil
}
