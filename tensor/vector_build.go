// SPDX-License-Identifier: MIT

// Package tensor - Vector construction from labels and dense data.

package tensor

import "fmt"

// NamedEntry is a literal vector entry: a coordinate string resolved through
// StringToCoordIndices ("3,1,>,V" or "dH") and its amplitude.
type NamedEntry struct {
	Coord string
	Value complex128
}

// VectorIndicator returns the unit ket |labels⟩ over dims.
// Errors: ErrCoordinateOutOfRange on a label-count mismatch,
// ErrUnknownCoordinate on an unknown label.
func VectorIndicator(dims []*Dimension, labels []string) (*Vector, error) {
	coord, err := coordLabelsToIndices(labels, dims)
	if err != nil {
		return nil, tensorErrorf(opIndicator, err)
	}

	return NewVector([]VectorEntry{{Coord: coord, Value: 1}}, dims)
}

// VectorFromDense builds a vector from a row-major flat array over dims
// (last axis fastest). With dropZeros, exact zeros are skipped; without it
// every cell is stored, zeros included, which costs space but not correctness.
// Dense constructors are the only way to store a zero: every algebraic result
// (Add, MulConstant, Conj, Outer, MulVec, ...) drops exact zeros.
// Errors: ErrInvalidDimension for a space over MaxInt coordinates,
// ErrBadShape when len(data) != Π sizes.
// Complexity: O(N) for N = len(data).
func VectorFromDense(data []complex128, dims []*Dimension, dropZeros bool) (*Vector, error) {
	sizes := Sizes(dims)
	n, err := checkedSize(sizes)
	if err != nil {
		return nil, tensorErrorf(opFromDense, err)
	}
	if len(data) != n {
		return nil, tensorErrorf(opFromDense,
			fmt.Errorf("%d values for size %d: %w", len(data), n, ErrBadShape))
	}
	keys := make([]int, 0, len(data))
	entries := make([]VectorEntry, 0, len(data))
	for idx, val := range data {
		if dropZeros && val == 0 {
			continue
		}
		keys = append(keys, idx)
		entries = append(entries, VectorEntryFromIndex(idx, sizes, val))
	}

	return &Vector{dimensions: copyDims(dims), sizes: sizes, keys: keys, entries: entries}, nil
}

// ToDense returns the row-major flat array of v (length Π sizes).
func (v *Vector) ToDense() []complex128 {
	out := make([]complex128, totalSize(v.sizes))
	for i, e := range v.entries {
		out[v.keys[i]] = e.Value
	}

	return out
}

// VectorFromNamedEntries resolves each literal coordinate through dims.
// Repeated coordinates are summed.
// Errors: ErrUnknownCoordinate, ErrCoordinateOutOfRange.
func VectorFromNamedEntries(named []NamedEntry, dims []*Dimension) (*Vector, error) {
	entries := make([]VectorEntry, 0, len(named))
	for _, ne := range named {
		coord, err := StringToCoordIndices(ne.Coord, dims)
		if err != nil {
			return nil, tensorErrorf(opFromNamed, err)
		}
		entries = append(entries, VectorEntry{Coord: coord, Value: ne.Value})
	}

	return NewVector(entries, dims)
}
