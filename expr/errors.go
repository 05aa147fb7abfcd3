// SPDX-License-Identifier: MIT
// Package expr: sentinel error set.

package expr

import "errors"

var (
	// ErrNilNode indicates a nil *Node where a subtree was required.
	ErrNilNode = errors.New("expr: nil node")

	// ErrNilMatrix indicates a nil matrix payload for a literal.
	ErrNilMatrix = errors.New("expr: nil matrix")

	// ErrRaggedMatrix indicates a literal whose rows have unequal lengths.
	ErrRaggedMatrix = errors.New("expr: ragged matrix")

	// ErrUnknownKind indicates a node kind outside the supported set.
	ErrUnknownKind = errors.New("expr: unknown node kind")

	// ErrBadArity indicates an operator built with the wrong number of
	// operands: Add/Multiply need at least two, Negate/Transpose exactly
	// one.
	ErrBadArity = errors.New("expr: wrong operand count for operator")
)
