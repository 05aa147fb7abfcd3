// Package expr models linear-algebra expression trees: a tagged Node is
// either a literal matrix leaf or an operator (addition, multiplication,
// negation, transpose) over child subtrees.
//
// The engine consumes trees through three operations:
//
//   - AssociativeNesting rewrites every n-ary operator into a
//     left-associative binary chain, op(a,b,c,d) → op(op(op(a,b),c),d),
//     so numeric kernels always see exactly two (or one) operands.
//   - FindResolvable locates the deepest ready node — an operator whose
//     children are all literals — in depth-first, left-to-right order.
//   - Resolve collapses a computed operator node into a literal carrying
//     its result, discarding the children.
//
// A tree is finished when its root is a literal.
//
// SPDX-License-Identifier: MIT
package expr
