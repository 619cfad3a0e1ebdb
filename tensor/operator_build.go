// SPDX-License-Identifier: MIT

// Package tensor - Operator construction from dense matrices and labels.

package tensor

import "fmt"

// NamedOperatorEntry is a literal operator element: output and input
// coordinate strings (see StringToCoordIndices) and the amplitude.
type NamedOperatorEntry struct {
	Out   string
	In    string
	Value complex128
}

// OperatorFromDense builds an operator from a dense matrix whose row index is
// the packed output coordinate and whose column index is the packed input
// coordinate (row-major over each side's axes).
// With dropZeros, exact zeros are skipped; otherwise every cell is stored.
// As with VectorFromDense, stored zeros do not survive later algebra.
// Errors: ErrInvalidDimension for a space over MaxInt coordinates,
// ErrBadShape when the matrix is not Π sizesOut × Π sizesIn.
// Complexity: O(N_out·N_in).
func OperatorFromDense(rows [][]complex128, dimsOut, dimsIn []*Dimension, dropZeros bool) (*Operator, error) {
	sizesOut, sizesIn := Sizes(dimsOut), Sizes(dimsIn)
	if err := checkSpaces(sizesOut, sizesIn); err != nil {
		return nil, tensorErrorf(opFromDense, err)
	}
	nOut, nIn := totalSize(sizesOut), totalSize(sizesIn)
	if len(rows) != nOut {
		return nil, tensorErrorf(opFromDense,
			fmt.Errorf("%d rows for output size %d: %w", len(rows), nOut, ErrBadShape))
	}
	keys := make([]opKey, 0, nOut)
	entries := make([]OperatorEntry, 0, nOut)
	for i, row := range rows {
		if len(row) != nIn {
			return nil, tensorErrorf(opFromDense,
				fmt.Errorf("row %d has %d columns for input size %d: %w", i, len(row), nIn, ErrBadShape))
		}
		for j, val := range row {
			if dropZeros && val == 0 {
				continue
			}
			keys = append(keys, opKey{out: i, in: j})
			entries = append(entries, OperatorEntryFromIndices(i, j, sizesOut, sizesIn, val))
		}
	}

	return &Operator{
		dimensionsOut: copyDims(dimsOut),
		dimensionsIn:  copyDims(dimsIn),
		sizesOut:      sizesOut,
		sizesIn:       sizesIn,
		keys:          keys,
		entries:       entries,
	}, nil
}

// ToDense returns the dense matrix of o (rows over output, columns over input).
func (o *Operator) ToDense() [][]complex128 {
	nOut, nIn := totalSize(o.sizesOut), totalSize(o.sizesIn)
	out := make([][]complex128, nOut)
	for i := range out {
		out[i] = make([]complex128, nIn)
	}
	for i, e := range o.entries {
		out[o.keys[i].out][o.keys[i].in] = e.Value
	}

	return out
}

// OperatorFromNamedEntries resolves each literal entry through the dimensions.
// When dimsIn is nil the operator is square over dimsOut.
// Errors: ErrUnknownCoordinate, ErrCoordinateOutOfRange.
func OperatorFromNamedEntries(named []NamedOperatorEntry, dimsOut, dimsIn []*Dimension) (*Operator, error) {
	if dimsIn == nil {
		dimsIn = dimsOut
	}
	entries := make([]OperatorEntry, 0, len(named))
	for _, ne := range named {
		co, err := StringToCoordIndices(ne.Out, dimsOut)
		if err != nil {
			return nil, tensorErrorf(opFromNamed, err)
		}
		ci, err := StringToCoordIndices(ne.In, dimsIn)
		if err != nil {
			return nil, tensorErrorf(opFromNamed, err)
		}
		entries = append(entries, OperatorEntry{CoordOut: co, CoordIn: ci, Value: ne.Value})
	}

	return NewOperator(entries, dimsOut, dimsIn)
}
