// Package parmat is a parallel evaluator for dense linear-algebra
// expression trees: element-wise addition, matrix multiplication,
// negation and transpose over float64 matrices, decomposed into
// row-level tasks and dispatched to a fatigue-aware worker pool.
//
// 🚀 What is parmat?
//
//	A thread-safe engine that brings together:
//		• Shared memory: reader-writer locked vectors & oriented matrices
//		• Scheduling: a fixed pool whose idle workers are ranked by fatigue
//		• Expressions: a tagged tree with left-associative binarisation
//		• An engine that stages operands into two shared matrix slots and
//		  resolves the tree bottom-up, one operator at a time
//
// ✨ Why choose parmat?
//
//   - Deadlock-free by construction – every multi-vector operation locks
//     in ascending creation-id order
//   - Exactly-once execution – SubmitAll is a real barrier backed by an
//     in-flight counter and a completion signal
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	memory/     — Vector and Matrix shared-memory primitives
//	scheduling/ — Worker and the fatigue-priority Executor
//	expr/       — expression-tree nodes and rewrites
//	engine/     — the evaluator driving trees to a literal root
//	parser/     — JSON input parsing and result/error output
//
// The cmd/parmat binary wires them behind a three-argument CLI:
//
//	parmat <threads> <input.json> <output.json>
//
// SPDX-License-Identifier: MIT
package parmat
