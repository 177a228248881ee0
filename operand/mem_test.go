// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsavola/x64asm/reg"
	"golang.org/x/xerrors"
)

var testSegments = []Segment{nil, ES, CS, SS, DS, FS, GS, Fs{}, Gs{}}

func testRegs() (regs []AddrReg) {
	regs = append(regs, nil)
	for r := reg.R64(0); r < reg.NumRegs+2; r++ {
		regs = append(regs, r)
	}
	regs = append(regs, reg.ESP, reg.R12D, reg.R32(16))
	return
}

func TestNoBaseNoIndex(t *testing.T) {
	for _, seg := range testSegments {
		for s := Times1; s <= Times8; s++ {
			for _, m := range []Mem{
				New(Address{Segment: seg, Scale: s}),
				New(Address{Segment: seg, Scale: s, Disp: Disp(0x10)}),
				New(Address{Segment: seg, Scale: s, Disp: Disp(-1), AddrOverride: true}),
			} {
				assert.False(t, m.Check(), "%s", m)
				assert.True(t, xerrors.Is(m.Validate(), ErrNoBaseOrIndex), "%s", m)
			}
		}
	}

	var zero Mem
	assert.False(t, zero.Check())
}

func TestBaseOnly(t *testing.T) {
	for _, r := range testRegs() {
		if r == nil {
			continue
		}
		for _, m := range []Mem{Base(r), BaseDisp(r, -128), Base(r).WithSegment(Fs{})} {
			assert.Equal(t, r.Check(), m.Check(), "%s", m)
			if !r.Check() {
				assert.True(t, xerrors.Is(m.Validate(), ErrInvalidBase), "%s", m)
			}
		}
	}

	// A stack pointer base is fine.
	assert.True(t, Base(reg.RSP).Check())
	assert.True(t, BaseIndex(reg.RSP, reg.RAX, Times8).Check())
}

func TestStackPointerIndex(t *testing.T) {
	for _, base := range testRegs() {
		for s := Times1; s <= Times8; s++ {
			for _, index := range []AddrReg{reg.RSP, reg.ESP} {
				m := New(Address{Base: base, Index: index, Scale: s, Disp: Disp(8)})
				assert.False(t, m.Check(), "%s", m)
			}
		}
	}

	err := Index(reg.RSP, Times1).Validate()
	assert.True(t, xerrors.Is(err, ErrStackPointerIndex))
	assert.EqualError(t, err, "invalid addressing mode: stack pointer used as index register rsp")

	var addrErr *AddressError
	require.True(t, xerrors.As(err, &addrErr))
	assert.Equal(t, err.Error(), addrErr.PublicError())
}

func TestValidIndex(t *testing.T) {
	for _, base := range testRegs() {
		if base != nil && !base.Check() {
			continue
		}
		for _, index := range testRegs() {
			if index == nil || !index.Check() || index.IsStackPointer() {
				continue
			}
			for s := Times1; s <= Times8; s++ {
				for _, seg := range testSegments {
					m := New(Address{Segment: seg, Base: base, Index: index, Scale: s})
					assert.True(t, m.Check(), "%s", m)
					assert.NoError(t, m.Validate())
				}
			}
		}
	}

	// r12 shares low bits with rsp but is encodable as index.
	assert.True(t, Index(reg.R12, Times4).Check())
}

func TestInvalidIndex(t *testing.T) {
	m := BaseIndex(reg.RAX, reg.R64(16), Times2)
	assert.False(t, m.Check())
	assert.True(t, xerrors.Is(m.Validate(), ErrInvalidIndex))

	// Base is checked first.
	m.SetBase(reg.R64(20))
	assert.True(t, xerrors.Is(m.Validate(), ErrInvalidBase))
}

func TestPresence(t *testing.T) {
	var m Mem

	assert.False(t, m.ContainsSegment())
	assert.False(t, m.ContainsBase())
	assert.False(t, m.ContainsIndex())
	assert.False(t, m.ContainsDisp())

	m.SetSegment(GS)
	m.SetBase(reg.RBX)
	m.SetIndex(reg.RDI)
	m.SetDisp(0)

	assert.True(t, m.ContainsSegment())
	assert.True(t, m.ContainsBase())
	assert.True(t, m.ContainsIndex())
	assert.True(t, m.ContainsDisp())

	assert.Equal(t, Segment(GS), m.Segment())
	assert.Equal(t, AddrReg(reg.RBX), m.Base())
	assert.Equal(t, AddrReg(reg.RDI), m.Index())
	assert.Equal(t, Imm32(0), m.Disp())

	m.ClearSegment()
	m.ClearBase()
	m.ClearIndex()
	m.ClearDisp()

	assert.False(t, m.ContainsSegment())
	assert.False(t, m.ContainsBase())
	assert.False(t, m.ContainsIndex())
	assert.False(t, m.ContainsDisp())

	m.SetBase(reg.RAX)
	m.SetBase(nil)
	assert.False(t, m.ContainsBase())
}

// tableReg is a pointer-backed register.  Nil is never valid.
type tableReg struct {
	num byte
}

func (r *tableReg) Value() uint64 {
	if r == nil {
		return 0xff
	}
	return uint64(r.num)
}

func (r *tableReg) Check() bool          { return r != nil && r.num < 16 }
func (r *tableReg) IsStackPointer() bool { return r != nil && r.num == 4 }

func TestTypedNilRegister(t *testing.T) {
	var m Mem

	m.SetIndex((*tableReg)(nil))
	assert.True(t, m.ContainsIndex())
	assert.False(t, m.Check())
	assert.True(t, xerrors.Is(m.Validate(), ErrInvalidIndex))

	m.SetBase(&tableReg{num: 3})
	m.SetIndex(&tableReg{num: 4})
	assert.True(t, xerrors.Is(m.Validate(), ErrStackPointerIndex))

	m.SetIndex(&tableReg{num: 12})
	assert.True(t, m.Check())

	m.SetIndex(nil)
	assert.False(t, m.ContainsIndex())
	assert.True(t, m.Check())

	m = New(Address{Base: (*tableReg)(nil)})
	assert.True(t, m.ContainsBase())
	assert.True(t, xerrors.Is(m.Validate(), ErrInvalidBase))
}

func TestAbsentFieldPanics(t *testing.T) {
	var m Mem

	for field, get := range map[string]func(){
		"segment":      func() { m.Segment() },
		"base":         func() { m.Base() },
		"index":        func() { m.Index() },
		"displacement": func() { m.Disp() },
	} {
		assert.PanicsWithError(t, "memory operand has no "+field, get)
	}
}

func TestScale(t *testing.T) {
	m := Base(reg.RAX)
	assert.Equal(t, Times1, m.Scale())
	assert.Equal(t, Times1, Index(reg.RAX, Times1).Scale())

	m.SetScale(Times8)
	assert.Equal(t, Times8, m.Scale())
	assert.Equal(t, 8, m.Scale().Factor())

	// Scale without index is ignored.
	assert.True(t, m.Check())
}

func TestAddrOverride(t *testing.T) {
	m := Base(reg.EAX)
	assert.False(t, m.AddrOverride())

	m = m.WithAddrOverride(true)
	assert.True(t, m.AddrOverride())

	m.SetAddrOverride(false)
	assert.False(t, m.AddrOverride())
}

func TestMutationNotValidated(t *testing.T) {
	m := BaseIndex(reg.RAX, reg.RCX, Times2)
	require.True(t, m.Check())

	m.SetIndex(reg.RSP)
	assert.False(t, m.Check())

	m.SetIndex(reg.RSI)
	assert.True(t, m.Check())

	m.ClearBase()
	m.ClearIndex()
	assert.False(t, m.Check())
}

func TestConstructors(t *testing.T) {
	var (
		b = reg.RBX
		i = reg.R9
		s = Times4
		d = Imm32(-0x1234)
	)

	for _, pair := range []struct {
		m Mem
		a Address
	}{
		{Base(b), Address{Base: b}},
		{BaseDisp(b, d), Address{Base: b, Disp: &d}},
		{Index(i, s), Address{Index: i, Scale: s}},
		{IndexDisp(i, s, d), Address{Index: i, Scale: s, Disp: &d}},
		{BaseIndex(b, i, s), Address{Base: b, Index: i, Scale: s}},
		{BaseIndexDisp(b, i, s, d), Address{Base: b, Index: i, Scale: s, Disp: &d}},
	} {
		assert.Equal(t, New(pair.a), pair.m)

		for _, seg := range testSegments {
			for _, override := range []bool{false, true} {
				a := pair.a
				a.Segment = seg
				a.AddrOverride = override
				assert.Equal(t, New(a), pair.m.WithSegment(seg).WithAddrOverride(override))
			}
		}
	}
}

func TestBaseOnlyValid(t *testing.T) {
	m := Base(reg.RBX)
	assert.True(t, m.Check())
}

func TestStackPointerIndexOnly(t *testing.T) {
	m := Index(reg.RSP, Times4)
	assert.False(t, m.Check())
}

func TestDispOnly(t *testing.T) {
	m := New(Address{Disp: Disp(0x10)})
	assert.False(t, m.Check())
}

func TestFsBaseIndexDisp(t *testing.T) {
	for _, seg := range []Segment{Fs{}, FS} {
		m := BaseIndexDisp(reg.RAX, reg.RCX, Times2, -8).WithSegment(seg)
		assert.True(t, m.Check())
		assert.Equal(t, uint64(4), m.Segment().Value())
		assert.Equal(t, Imm32(-8), m.Disp())
		assert.Equal(t, "fs:[rax+rcx*2-0x8]", m.String())
	}
}

func TestString(t *testing.T) {
	for _, pair := range []struct {
		m Mem
		s string
	}{
		{Base(reg.RBX), "[rbx]"},
		{BaseDisp(reg.RBP, 0), "[rbp+0x0]"},
		{BaseDisp(reg.R13, 0x7fffffff), "[r13+0x7fffffff]"},
		{BaseDisp(reg.R13, -0x80000000), "[r13-0x80000000]"},
		{Index(reg.R8, Times8), "[r8*8]"},
		{IndexDisp(reg.R8, Times1, 16), "[r8*1+0x10]"},
		{BaseIndex(reg.EAX, reg.EDX, Times4).WithAddrOverride(true), "[eax+edx*4]"},
		{Base(reg.RAX).WithSegment(Gs{}), "gs:[rax]"},
		{New(Address{Disp: Disp(-1)}), "[0xffffffff]"},
		{Mem{}, "[]"},
	} {
		assert.Equal(t, pair.s, pair.m.String())
	}
}

func TestValue(t *testing.T) {
	seen := make(map[uint64]Mem)

	for _, m := range []Mem{
		{},
		Base(reg.RAX),
		Index(reg.RAX, Times1),
		BaseDisp(reg.RAX, 0),
		BaseIndex(reg.RAX, reg.RAX, Times2),
		BaseIndex(reg.RAX, reg.RAX, Times2).WithSegment(ES),
		BaseIndex(reg.RAX, reg.RAX, Times2).WithSegment(GS),
		BaseIndex(reg.RAX, reg.RAX, Times2).WithAddrOverride(true),
		BaseIndexDisp(reg.R15, reg.R14, Times8, -1),
	} {
		v := m.Value()
		if prev, dup := seen[v]; dup {
			t.Errorf("%s and %s have the same value %#x", prev, m, v)
		}
		seen[v] = m
	}

	assert.Equal(t, uint64(0xffffffff)<<32, BaseDisp(reg.RAX, -1).Value()&^0xffffffff)
	assert.Equal(t, Fs{}.Value(), FS.Value())
}
