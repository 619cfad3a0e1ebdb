// SPDX-License-Identifier: MIT

// Package tensor implements sparse, named-dimension tensors: vectors (kets)
// and linear operators over ordered lists of Dimensions.
//
// What:
//
//   - Dimension is an immutable named axis with human-readable coordinate
//     labels; canonical axes (Direction, Polarization, Spin) are shared singletons.
//   - Vector stores only non-zero amplitudes (COO style, keyed by packed
//     mixed-radix coordinate) and supports add/sub/scale/conj/dot/outer.
//   - Operator stores (out, in) → amplitude entries and supports operator
//     algebra, tensor products, full application (MulVec) and partial
//     application to a subset of axes (MulVecPartial) without padding the
//     operator with identities.
//
// Why:
//
//   - Multi-photon states live in spaces whose dense size explodes with every
//     tensor factor; sparse storage keeps only reachable basis states.
//   - Named dimensions let every binary operation verify that operands live in
//     the same space (ErrDimensionMismatch) instead of silently mixing axes.
//
// Complexity:
//
//   - Add/Sub/MulConstant/Conj: O(E log E) for E stored entries (sorted output).
//   - Outer: O(E1·E2), the dominant cost when composing many factors.
//   - MulVec/MulVecPartial: O(Eop + Ev·k), k = operator entries per input coordinate.
//
// Errors:
//
//   - ErrDimensionMismatch, ErrUnknownCoordinate, ErrCoordinateOutOfRange,
//     ErrInvalidDimension, ErrBadShape, ErrAxisIndex, ErrNoOperands, ErrDecode.
//
// Every operation returns a fresh value; operands are never mutated.
package tensor
