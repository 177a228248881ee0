// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

import (
	"golang.org/x/xerrors"
)

// Reasons for rejecting a memory operand.  Validate wraps them in an
// *AddressError.
var (
	ErrNoBaseOrIndex     = xerrors.New("neither base nor index register")
	ErrInvalidBase       = xerrors.New("invalid base register")
	ErrInvalidIndex      = xerrors.New("invalid index register")
	ErrStackPointerIndex = xerrors.New("stack pointer used as index register")
)

// AddressError describes an invalid addressing mode.  It unwraps to one of
// the Err* reason values.
type AddressError struct {
	text  string
	cause error
}

func addressError(cause error, detail string) error {
	text := "invalid addressing mode: " + cause.Error()
	if detail != "" {
		text += " " + detail
	}
	return &AddressError{text, cause}
}

func (e *AddressError) Error() string       { return e.text }
func (e *AddressError) PublicError() string { return e.text }
func (e *AddressError) Unwrap() error       { return e.cause }

// PreconditionError is the panic value when an absent memory operand field is
// accessed.
type PreconditionError struct {
	Field string
}

func (e *PreconditionError) Error() string {
	return "memory operand has no " + e.Field
}
