// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug || indebug

package in

import (
	"fmt"
	"os"

	"github.com/bnagy/gapstone"
)

const (
	debug                 = true
	debugInstructionBytes = true
)

var (
	debugEngine gapstone.Engine
)

func init() {
	engine, err := gapstone.New(gapstone.CS_ARCH_X86, gapstone.CS_MODE_64)
	if err != nil {
		panic(err)
	}

	err = engine.SetOption(gapstone.CS_OPT_SYNTAX, gapstone.CS_OPT_SYNTAX_INTEL)
	if err != nil {
		panic(err)
	}

	debugEngine = engine
}

func debugPrintInsn(data []byte) {
	var hex string

	if debugInstructionBytes {
		hex = " ;"
		for i, b := range data {
			if i > 0 && (i&3) == 0 {
				hex += " "
			}
			hex += fmt.Sprintf(" %02x", b)
		}
	}

	insns, err := debugEngine.Disasm(data, 0, 0)
	if err != nil || len(insns) == 0 {
		if debugInstructionBytes {
			fmt.Fprintf(os.Stderr, "indebug:%s\n", hex)
		}
		panic(err)
	}

	prefix := "indebug"

	for _, insn := range insns {
		fmt.Fprintf(os.Stderr, "%7s: %-7s %-32s%s\n", prefix, insn.Mnemonic, insn.OpStr, hex)

		prefix = ""

		if hex != "" {
			hex = " ;"
		}
	}
}
