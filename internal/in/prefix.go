// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"github.com/tsavola/x64asm/operand"
)

const (
	prefixAddrSize = byte(0x67)
)

var segmentPrefixes = [...]byte{
	operand.ES: 0x26,
	operand.CS: 0x2e,
	operand.SS: 0x36,
	operand.DS: 0x3e,
	operand.FS: 0x64,
	operand.GS: 0x65,
}

func segmentPrefix(s operand.Sreg) byte { return segmentPrefixes[s] }
