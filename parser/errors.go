// SPDX-License-Identifier: MIT
// Package parser: sentinel error set.

package parser

import "errors"

var (
	// ErrUnknownOperator indicates an operator token outside
	// {"+", "*", "-", "T"}.
	ErrUnknownOperator = errors.New("parser: unknown operator")

	// ErrBadOperand indicates a subtree that is neither a 2-D number
	// array nor an operator object.
	ErrBadOperand = errors.New("parser: operand is neither a matrix nor an operator object")
)
