// Package parser converts between the JSON surface of parmat and
// expr trees.
//
// Input documents are either a bare 2-D number array (a literal matrix)
// or an operator object:
//
//	{"operator": "+", "operands": [ [[1,2],[3,4]], {"operator": "T", ...} ]}
//
// with "+" and "*" taking two or more operands and "-" (negate) and
// "T" (transpose) exactly one. Operands recurse.
//
// Output documents carry fixed field names: {"result": [[...]]} on
// success, {"error": "..."} on failure.
//
// Errors:
//
//	ErrUnknownOperator - operator token outside {"+", "*", "-", "T"}.
//	ErrBadOperand      - an operand (or a whole document) that is empty
//	                     or is neither a 2-D array nor an operator object.
//
// Arity violations surface as expr.ErrBadArity; I/O and JSON failures
// are wrapped with %w and remain errors.Is-matchable.
//
// SPDX-License-Identifier: MIT
package parser
