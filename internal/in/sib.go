// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"github.com/tsavola/x64asm/operand"
	"github.com/tsavola/x64asm/reg"
)

type (
	Scale byte
	Index byte
	Base  byte
)

const (
	Scale0 = Scale(0 << 6)
	Scale1 = Scale(1 << 6)
	Scale2 = Scale(2 << 6)
	Scale3 = Scale(3 << 6)

	noIndex  = Index(4 << 3)
	baseNone = Base(5) // with ModMem
)

func sibScale(s operand.Scale) Scale { return Scale(s&3) << 6 }
func regIndex(r reg.R64) Index       { return Index((r & 7) << 3) }
func regBase(r reg.R64) Base         { return Base(r & 7) }

// needSIB reports whether a base-only address must be escaped into SIB.
func needSIB(base reg.R64) bool { return base&7 == reg.RSP }
