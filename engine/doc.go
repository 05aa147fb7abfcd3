// Package engine drives an expression tree to a literal root.
//
// The Engine owns two long-lived shared matrices, M1 (left operand and
// result slot) and M2 (right operand), plus one scheduling.Executor.
// Run repeatedly picks the deepest ready operator, stages its operand
// matrices into the slots, decomposes the operator into per-row tasks,
// pushes the batch through the executor's SubmitAll barrier, reads the
// result back from M1 and collapses the node into a literal. The
// executor is shut down on every exit path.
//
// An Engine is single-shot: Run consumes the executor and must be
// called at most once per instance.
//
// SPDX-License-Identifier: MIT
package engine
