// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

// Scale multiplies the index register of an address expression.  The values
// match the SIB scale field.
type Scale uint8

const (
	Times1 = Scale(0)
	Times2 = Scale(1)
	Times4 = Scale(2)
	Times8 = Scale(3)
)

// ScaleOf converts a multiplier (1, 2, 4 or 8) to a Scale.
func ScaleOf(factor int) (s Scale, ok bool) {
	switch factor {
	case 1:
		return Times1, true
	case 2:
		return Times2, true
	case 4:
		return Times4, true
	case 8:
		return Times8, true
	default:
		return
	}
}

// Factor is 1, 2, 4 or 8.  Zero for invalid Scale values.
func (s Scale) Factor() int {
	if s <= Times8 {
		return 1 << s
	}
	return 0
}

func (s Scale) String() string {
	switch s {
	case Times1:
		return "1"

	case Times2:
		return "2"

	case Times4:
		return "4"

	case Times8:
		return "8"

	default:
		return "<invalid scale>"
	}
}
