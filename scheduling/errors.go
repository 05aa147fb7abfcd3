// SPDX-License-Identifier: MIT
// Package scheduling: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// scheduling package. Callers match them via errors.Is.

package scheduling

import "errors"

var (
	// ErrNonPositiveWorkers indicates NewExecutor was asked for a pool of
	// zero or negative size.
	ErrNonPositiveWorkers = errors.New("scheduling: worker count must be positive")

	// ErrFactorCount indicates WithFatigueFactors supplied a list whose
	// length differs from the pool size.
	ErrFactorCount = errors.New("scheduling: fatigue factor count does not match worker count")

	// ErrNilTask indicates a nil task was submitted or offered.
	ErrNilTask = errors.New("scheduling: nil task")

	// ErrNotReady indicates a non-blocking offer to a worker whose
	// handoff slot is already occupied. Under the executor protocol this
	// is unreachable; it exists for direct Worker users.
	ErrNotReady = errors.New("scheduling: worker is not ready to accept a task")

	// ErrShutdown indicates a submission after Shutdown began.
	ErrShutdown = errors.New("scheduling: executor is shut down")
)
