// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

// Imm32 is a signed 32-bit immediate, used as address displacement.
type Imm32 int32

// Disp is a shorthand for Address.Disp field values.
func Disp(val int32) *Imm32 {
	i := Imm32(val)
	return &i
}

// Value is sign-extended.
func (i Imm32) Value() uint64 { return uint64(int64(i)) }
func (i Imm32) Check() bool   { return true }
func (i Imm32) Int32() int32  { return int32(i) }
