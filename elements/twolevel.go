// SPDX-License-Identifier: MIT

package elements

import (
	"math"

	"github.com/katalvlaran/qtensor/scalar"
	"github.com/katalvlaran/qtensor/tensor"
)

// twoLevel builds a 2×2 operator over dim from its rows. Trigonometric
// round-off at or below tensor.DropTolerance (cos(τ/4) and the like) is
// stored as an exact zero.
func twoLevel(name string, dim *tensor.Dimension, rows [][]complex128) (*tensor.Operator, error) {
	if dim.Size() != 2 {
		return nil, elementErrorf(name, ErrNotTwoLevel)
	}
	for _, row := range rows {
		for j, v := range row {
			if scalar.IsZero(v, tensor.DropTolerance) {
				row[j] = 0
			}
		}
	}
	dims := []*tensor.Dimension{dim}

	return tensor.OperatorFromDense(rows, dims, dims, true)
}

// RotationMatrix returns the rotation by alpha radians on a 2-label dimension:
// [[cos, −sin], [sin, cos]].
// Errors: ErrNotTwoLevel.
func RotationMatrix(alpha float64, dim *tensor.Dimension) (*tensor.Operator, error) {
	c, s := complex(math.Cos(alpha), 0), complex(math.Sin(alpha), 0)

	return twoLevel("RotationMatrix", dim, [][]complex128{{c, -s}, {s, c}})
}

// ProjectionMatrix returns the projector onto the direction at alpha radians
// on a 2-label dimension: [[cos², cos·sin], [cos·sin, sin²]].
// Errors: ErrNotTwoLevel.
func ProjectionMatrix(alpha float64, dim *tensor.Dimension) (*tensor.Operator, error) {
	c, s := complex(math.Cos(alpha), 0), complex(math.Sin(alpha), 0)

	return twoLevel("ProjectionMatrix", dim, [][]complex128{{c * c, c * s}, {c * s, s * s}})
}

// PhaseShiftForRealEigenvectors returns the operator with eigenvector at
// alpha (eigenvalue exp(i·phase)) and the orthogonal eigenvector at
// alpha+τ/4 (eigenvalue exp(i·phaseOrthogonal)).
// Errors: ErrNotTwoLevel.
func PhaseShiftForRealEigenvectors(alpha, phase, phaseOrthogonal float64, dim *tensor.Dimension) (*tensor.Operator, error) {
	p, err := ProjectionMatrix(alpha, dim)
	if err != nil {
		return nil, err
	}
	q, err := ProjectionMatrix(alpha+scalar.Tau/4, dim)
	if err != nil {
		return nil, err
	}

	return p.MulConstant(scalar.FromPolar(1, phase)).Add(q.MulConstant(scalar.FromPolar(1, phaseOrthogonal)))
}
