// SPDX-License-Identifier: MIT

// Package tensor - numeric diagnostics for operators (gonum).
//
// Purpose:
//   - Decide whether an element operator is lossless (unitary) or lossy
//     (spectral norm below one) before it is placed on a board.
//
// Implementation:
//   - A complex n×m matrix A = X + iY is embedded as the real 2n×2m block
//     matrix [[X, -Y], [Y, X]]. The embedding preserves products and adjoints,
//     so A is unitary iff the block matrix is orthogonal, and both share the
//     same singular values (each doubled).
//
// Complexity:
//   - Dense O(n³) in the operator's full size; meant for element-sized
//     operators ([direction, polarization] = 8×8), not board-sized ones.

package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// realBlock returns the real block embedding of o.
func (o *Operator) realBlock() *mat.Dense {
	nOut, nIn := totalSize(o.sizesOut), totalSize(o.sizesIn)
	m := mat.NewDense(2*nOut, 2*nIn, nil)
	for i, e := range o.entries {
		r, c := o.keys[i].out, o.keys[i].in
		re, im := real(e.Value), imag(e.Value)
		m.Set(r, c, re)
		m.Set(r, nIn+c, -im)
		m.Set(nOut+r, c, im)
		m.Set(nOut+r, nIn+c, re)
	}

	return m
}

// IsUnitary reports whether o†o = 1 within eps.
// Errors: ErrDimensionMismatch when the input and output spaces differ.
func (o *Operator) IsUnitary(eps float64) (bool, error) {
	if err := CheckDimensions(o.dimensionsOut, o.dimensionsIn); err != nil {
		return false, tensorErrorf(opIsUnitary, err)
	}
	a := o.realBlock()
	n, _ := a.Dims()
	var prod mat.Dense
	prod.Mul(a.T(), a)
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	return mat.EqualApprox(&prod, mat.NewDiagDense(n, ones), eps), nil
}

// SpectralNorm returns the largest singular value of o: the maximal factor by
// which o can scale a vector's norm. 1 for unitary operators, < 1 for
// strictly absorbing ones.
// Errors: ErrNumeric when the SVD fails.
func (o *Operator) SpectralNorm() (float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(o.realBlock(), mat.SVDNone); !ok {
		return 0, tensorErrorf(opSpectralNorm, fmt.Errorf("svd did not converge: %w", ErrNumeric))
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, nil
	}

	return values[0], nil
}
