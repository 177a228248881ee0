// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optype

type Category uint8

const (
	InvalidCategory = Category(iota)
	Immediate
	LabelCategory
	Memory
	Modifier
	Offset
	Register
	Relative
)

func (cat Category) String() string {
	switch cat {
	case Immediate:
		return "immediate"

	case LabelCategory:
		return "label"

	case Memory:
		return "memory"

	case Modifier:
		return "modifier"

	case Offset:
		return "offset"

	case Register:
		return "register"

	case Relative:
		return "relative"

	default:
		return "<invalid category>"
	}
}
