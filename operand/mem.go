// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

import (
	"fmt"
	"strings"
)

// Address lists the parts of a memory operand.  All fields are optional; nil
// means absent.  A nil pointer stored in an interface field is not nil: it is
// a present register or segment, and its methods must handle the nil
// receiver.  Scale defaults to Times1.
type Address struct {
	Segment      Segment
	Base         AddrReg
	Index        AddrReg
	Scale        Scale
	Disp         *Imm32
	AddrOverride bool // emit the 32-bit address-size prefix
}

// Mem is a memory operand: [seg:][base + index*scale + disp].  The registers
// are referenced, not owned.
//
// The zero value has no base or index, so it doesn't pass Check.
type Mem struct {
	seg          Segment
	base         AddrReg
	index        AddrReg
	scale        Scale
	disp         Imm32
	hasDisp      bool
	addrOverride bool
}

// New memory operand.  It is not validated.
func New(a Address) (m Mem) {
	m.seg = a.Segment
	m.base = a.Base
	m.index = a.Index
	m.scale = a.Scale
	if a.Disp != nil {
		m.disp = *a.Disp
		m.hasDisp = true
	}
	m.addrOverride = a.AddrOverride
	return
}

// Base memory operand: [b].
func Base(b AddrReg) Mem {
	return New(Address{Base: b})
}

// BaseDisp memory operand: [b + d].
func BaseDisp(b AddrReg, d Imm32) Mem {
	return New(Address{Base: b, Disp: &d})
}

// Index memory operand: [i*s].
func Index(i AddrReg, s Scale) Mem {
	return New(Address{Index: i, Scale: s})
}

// IndexDisp memory operand: [i*s + d].
func IndexDisp(i AddrReg, s Scale, d Imm32) Mem {
	return New(Address{Index: i, Scale: s, Disp: &d})
}

// BaseIndex memory operand: [b + i*s].
func BaseIndex(b, i AddrReg, s Scale) Mem {
	return New(Address{Base: b, Index: i, Scale: s})
}

// BaseIndexDisp memory operand: [b + i*s + d].
func BaseIndexDisp(b, i AddrReg, s Scale, d Imm32) Mem {
	return New(Address{Base: b, Index: i, Scale: s, Disp: &d})
}

// WithSegment returns a copy with a segment override.
func (m Mem) WithSegment(s Segment) Mem {
	m.seg = s
	return m
}

// WithAddrOverride returns a copy with the address-size override flag set as
// specified.
func (m Mem) WithAddrOverride(enable bool) Mem {
	m.addrOverride = enable
	return m
}

func (m Mem) ContainsSegment() bool { return m.seg != nil }
func (m Mem) ContainsBase() bool    { return m.base != nil }
func (m Mem) ContainsIndex() bool   { return m.index != nil }
func (m Mem) ContainsDisp() bool    { return m.hasDisp }

// Segment panics if ContainsSegment is false.
func (m Mem) Segment() Segment {
	if m.seg == nil {
		panic(&PreconditionError{"segment"})
	}
	return m.seg
}

// Base panics if ContainsBase is false.
func (m Mem) Base() AddrReg {
	if m.base == nil {
		panic(&PreconditionError{"base"})
	}
	return m.base
}

// Index panics if ContainsIndex is false.
func (m Mem) Index() AddrReg {
	if m.index == nil {
		panic(&PreconditionError{"index"})
	}
	return m.index
}

// Disp panics if ContainsDisp is false.
func (m Mem) Disp() Imm32 {
	if !m.hasDisp {
		panic(&PreconditionError{"displacement"})
	}
	return m.disp
}

// Scale is meaningless without an index.
func (m Mem) Scale() Scale       { return m.scale }
func (m Mem) AddrOverride() bool { return m.addrOverride }

// The setters don't validate anything.  Only an untyped nil clears the field;
// a typed nil pointer is stored as present.

func (m *Mem) SetSegment(s Segment)        { m.seg = s }
func (m *Mem) SetBase(r AddrReg)           { m.base = r }
func (m *Mem) SetIndex(r AddrReg)          { m.index = r }
func (m *Mem) SetScale(s Scale)            { m.scale = s }
func (m *Mem) SetDisp(d Imm32)             { m.disp, m.hasDisp = d, true }
func (m *Mem) SetAddrOverride(enable bool) { m.addrOverride = enable }

func (m *Mem) ClearSegment() { m.seg = nil }
func (m *Mem) ClearBase()    { m.base = nil }
func (m *Mem) ClearIndex()   { m.index = nil }
func (m *Mem) ClearDisp()    { m.disp, m.hasDisp = 0, false }

// Check the addressing mode.  It must be called after construction or
// modification before the operand is encoded.
func (m Mem) Check() bool {
	return m.Validate() == nil
}

// Validate is like Check, but describes the problem.  The error is an
// *AddressError.
func (m Mem) Validate() error {
	if m.base == nil && m.index == nil {
		return addressError(ErrNoBaseOrIndex, "")
	}
	if m.base != nil && !m.base.Check() {
		return addressError(ErrInvalidBase, regName(m.base))
	}
	if m.index != nil {
		if !m.index.Check() {
			return addressError(ErrInvalidIndex, regName(m.index))
		}
		if m.index.IsStackPointer() {
			return addressError(ErrStackPointerIndex, regName(m.index))
		}
	}
	return nil
}

// Value packs all fields into an integer: two Mem values with equal Value
// have equal fields.  Register and segment values must fit in 8 and 3 bits,
// respectively.
//
//	bits 0-7    base
//	bit  8      base present
//	bits 9-16   index
//	bit  17     index present
//	bits 18-19  scale
//	bits 20-22  segment
//	bit  23     segment present
//	bit  24     address-size override
//	bit  25     displacement present
//	bits 32-63  displacement
func (m Mem) Value() (x uint64) {
	if m.base != nil {
		x |= m.base.Value()&0xff | 1<<8
	}
	if m.index != nil {
		x |= (m.index.Value()&0xff)<<9 | 1<<17
	}
	x |= uint64(m.scale&3) << 18
	if m.seg != nil {
		x |= (m.seg.Value()&7)<<20 | 1<<23
	}
	if m.addrOverride {
		x |= 1 << 24
	}
	if m.hasDisp {
		x |= uint64(uint32(m.disp))<<32 | 1<<25
	}
	return
}

// String formats the operand in Intel syntax, e.g. "fs:[rax+rcx*2-0x8]".
func (m Mem) String() string {
	var b strings.Builder

	if m.seg != nil {
		b.WriteString(regName(m.seg))
		b.WriteByte(':')
	}

	b.WriteByte('[')

	if m.base != nil {
		b.WriteString(regName(m.base))
	}

	if m.index != nil {
		if m.base != nil {
			b.WriteByte('+')
		}
		fmt.Fprintf(&b, "%s*%s", regName(m.index), m.scale)
	}

	if m.hasDisp {
		switch {
		case m.base == nil && m.index == nil:
			fmt.Fprintf(&b, "%#x", uint32(m.disp))

		case m.disp < 0:
			fmt.Fprintf(&b, "-%#x", -int64(m.disp))

		default:
			fmt.Fprintf(&b, "+%#x", int64(m.disp))
		}
	}

	b.WriteByte(']')
	return b.String()
}

func regName(x Operand) string {
	if s, ok := x.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("r%d", x.Value())
}
