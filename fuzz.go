// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz
// +build gofuzz

package x64asm

import (
	"github.com/tsavola/x64asm/internal/in"
	"github.com/tsavola/x64asm/internal/test/fuzzutil"
)

func Fuzz(data []byte) int {
	m, dest, ok := fuzzutil.Mem(data)
	if !ok {
		return -1
	}

	code, err := in.Load(&m, dest)
	if err != nil {
		if m.Check() && (!m.ContainsSegment() || m.Segment().Check()) {
			panic(err)
		}
		return 0
	}

	if err := fuzzutil.Verify(m, dest, code); err != nil {
		panic(err)
	}
	return 1
}
