// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All operations return these sentinels, usually wrapped with an operation tag
// via tensorErrorf; callers match them with errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible dimension lists between operands
	// (wrong length, size, name, labels or order).
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrUnknownCoordinate indicates a coordinate label absent from a dimension.
	ErrUnknownCoordinate = errors.New("tensor: unknown coordinate")

	// ErrCoordinateOutOfRange indicates a coordinate tuple of the wrong length
	// or with an index outside [0, size).
	ErrCoordinateOutOfRange = errors.New("tensor: coordinate out of range")

	// ErrInvalidDimension indicates a dimension with no labels, duplicate labels
	// or a non-positive size, or a dimension list whose coordinate count
	// overflows an int.
	ErrInvalidDimension = errors.New("tensor: invalid dimension")

	// ErrBadShape indicates dense input whose shape disagrees with the dimensions.
	ErrBadShape = errors.New("tensor: dense shape does not match dimensions")

	// ErrAxisIndex indicates partial application on repeated or out-of-range axes.
	ErrAxisIndex = errors.New("tensor: invalid axis index")

	// ErrNoOperands indicates a variadic combinator called with nothing to combine.
	ErrNoOperands = errors.New("tensor: no operands")

	// ErrNumeric indicates a failed numeric factorization (e.g., SVD).
	ErrNumeric = errors.New("tensor: numeric factorization failed")

	// ErrDecode indicates a malformed encoded vector or operator.
	ErrDecode = errors.New("tensor: malformed encoding")
)

// Operation tags used in wrapped errors.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opDot           = "Dot"
	opMul           = "Mul"
	opOuter         = "Outer"
	opMulVec        = "MulVec"
	opMulVecPartial = "MulVecPartial"
	opIndicator     = "Indicator"
	opFromDense     = "FromDense"
	opFromNamed     = "FromNamedEntries"
	opNewVector     = "NewVector"
	opNewOperator   = "NewOperator"
	opIsUnitary     = "IsUnitary"
	opSpectralNorm  = "SpectralNorm"
	opDecode        = "Decode"
)

// tensorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
