// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

// Sreg is a segment register.
type Sreg uint8

const (
	ES = Sreg(0)
	CS = Sreg(1)
	SS = Sreg(2)
	DS = Sreg(3)
	FS = Sreg(4)
	GS = Sreg(5)

	numSregs = 6
)

var sregNames = [numSregs]string{"es", "cs", "ss", "ds", "fs", "gs"}

func (s Sreg) Value() uint64  { return uint64(s) }
func (s Sreg) Check() bool    { return s < numSregs }
func (s Sreg) Selector() Sreg { return s }

func (s Sreg) String() string {
	if s < numSregs {
		return sregNames[s]
	}
	return "<invalid sreg>"
}

// Fs is the FS segment register.  Unlike the general Sreg, its check accepts
// only the FS selector.
type Fs struct{}

func (Fs) Value() uint64  { return uint64(FS) }
func (f Fs) Check() bool  { return f.Value() == uint64(FS) }
func (Fs) Selector() Sreg { return FS }
func (Fs) String() string { return "fs" }

// Gs is the GS segment register.  Unlike the general Sreg, its check accepts
// only the GS selector.
type Gs struct{}

func (Gs) Value() uint64  { return uint64(GS) }
func (g Gs) Check() bool  { return g.Value() == uint64(GS) }
func (Gs) Selector() Sreg { return GS }
func (Gs) String() string { return "gs" }
