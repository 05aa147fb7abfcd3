// SPDX-License-Identifier: MIT
// Package memory: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// memory package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package memory

import "errors"

var (
	// ErrNilData indicates a nil data slice or a nil row was passed to
	// NewVector, LoadRowMajor or LoadColumnMajor.
	ErrNilData = errors.New("memory: nil data")

	// ErrRaggedRows indicates a 2-D input whose rows have unequal lengths.
	ErrRaggedRows = errors.New("memory: ragged rows")

	// ErrNilVector indicates a nil *Vector argument.
	ErrNilVector = errors.New("memory: nil vector")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("memory: nil matrix")

	// ErrBadOrientation indicates an orientation tag outside {Row, Column}.
	ErrBadOrientation = errors.New("memory: bad orientation")

	// ErrNotRowVector indicates VecMatMul was called on a column-oriented
	// receiver; the operation is defined for row vectors only.
	ErrNotRowVector = errors.New("memory: receiver is not a row vector")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Dot on different lengths, or VecMatMul where the receiver
	// length differs from the matrix row count.
	ErrDimensionMismatch = errors.New("memory: dimension mismatch")

	// ErrIndexOutOfBounds indicates an index outside [0, len).
	ErrIndexOutOfBounds = errors.New("memory: index out of bounds")
)
