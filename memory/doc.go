// Package memory provides the shared-memory primitives of parmat:
// Vector, a reader-writer locked sequence of float64 values with a row
// or column orientation, and Matrix, an ordered bundle of vectors that
// converts between the caller's row-major 2-D layout and an internal
// row- or column-major storage.
//
// Concurrency model:
//
//   - Every Vector owns one sync.RWMutex. Reads (Len, At, Orientation,
//     Dot) take the read lock; mutations (Transpose, Negate, Add,
//     VecMatMul) take the write lock.
//   - Any operation touching two or more distinct vectors acquires
//     their locks in ascending creation-id order. The id is a monotonic
//     counter assigned at construction and exists only for ordering;
//     this single rule is what keeps concurrent row tasks deadlock-free.
//   - Self-aliasing operations collapse to a single lock: v.Add(v)
//     doubles in place under one write lock, v.Dot(v) is the sum of
//     squares under one read lock.
//   - VecMatMul is two-phase: it snapshots the receiver under a read
//     lock, scans the matrix columns one read lock at a time into a
//     private buffer, and only then takes the receiver's write lock to
//     install the result. The receiver's read lock is never held while
//     it is being written.
//   - Matrix keeps its vector slice behind a small mutex so loads swap
//     the whole slice atomically; ReadRowMajor snapshots the slice and
//     then read-locks every member for the duration of the copy.
//
// Errors:
//
//	ErrNilData           - nil data slice or nil row passed to a constructor/loader.
//	ErrRaggedRows        - input rows of unequal length.
//	ErrNilVector         - nil *Vector argument.
//	ErrNilMatrix         - nil *Matrix argument.
//	ErrBadOrientation    - orientation tag outside {Row, Column}.
//	ErrNotRowVector      - VecMatMul on a column-oriented receiver.
//	ErrDimensionMismatch - incompatible vector/matrix shapes.
//	ErrIndexOutOfBounds  - index outside [0, len).
//
// SPDX-License-Identifier: MIT
package memory
