// SPDX-License-Identifier: MIT
// Package engine: sentinel error set.

package engine

import "errors"

var (
	// ErrNoResolvable indicates the tree is not a literal yet no ready
	// operator exists — a malformed tree.
	ErrNoResolvable = errors.New("engine: no resolvable node but root is not a literal")

	// ErrUnresolvedChild indicates an operator was staged while one of
	// its children was still an operator.
	ErrUnresolvedChild = errors.New("engine: operand is not a literal")
)
