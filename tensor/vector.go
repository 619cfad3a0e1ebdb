// SPDX-License-Identifier: MIT

// Package tensor - Vector: sparse ket over an ordered list of dimensions.
//
// Purpose:
//   - Represent Σ_c a_c |c⟩ storing only non-zero amplitudes.
//   - Provide the vector-space algebra (add, sub, scale, conj, dot) and the
//     tensor product (outer).
//
// Determinism:
//   - Entries are kept sorted by packed coordinate; every method iterates in
//     that order, so rendering and encoding are reproducible.
//
// Immutability:
//   - A *Vector is never modified after construction. Accessors return copies.

package tensor

import (
	"math"
	"sort"

	"github.com/katalvlaran/qtensor/scalar"
)

// Vector is a sparse tensor over dimensions.
type Vector struct {
	dimensions []*Dimension  // axes, in order
	sizes      []int         // cached Sizes(dimensions)
	keys       []int         // packed coordinates, ascending; parallel to entries
	entries    []VectorEntry // stored amplitudes
}

// NewVector builds a vector from explicit entries over dims.
// Duplicate coordinates are summed; zero and cancelled sums are dropped.
// Errors: ErrInvalidDimension when the space has more than MaxInt coordinates,
// ErrCoordinateOutOfRange when an entry does not fit dims.
// Complexity: O(E log E).
func NewVector(entries []VectorEntry, dims []*Dimension) (*Vector, error) {
	sizes := Sizes(dims)
	if _, err := checkedSize(sizes); err != nil {
		return nil, tensorErrorf(opNewVector, err)
	}
	acc := newVecAccumulator(sizes, len(entries))
	for _, e := range entries {
		if err := validateCoord(e.Coord, sizes); err != nil {
			return nil, tensorErrorf(opNewVector, err)
		}
		acc.add(IndexFromCoords(e.Coord, sizes), e.Value)
	}

	return vectorFromAccumulator(dims, acc), nil
}

// EmptyVector returns the zero vector over dims.
func EmptyVector(dims []*Dimension) *Vector {
	return &Vector{dimensions: copyDims(dims), sizes: Sizes(dims)}
}

func vectorFromAccumulator(dims []*Dimension, acc *vecAccumulator) *Vector {
	keys, entries := acc.build()

	return &Vector{dimensions: copyDims(dims), sizes: acc.sizes, keys: keys, entries: entries}
}

func copyDims(dims []*Dimension) []*Dimension {
	out := make([]*Dimension, len(dims))
	copy(out, dims)

	return out
}

// Dimensions returns a copy of the axis list.
func (v *Vector) Dimensions() []*Dimension { return copyDims(v.dimensions) }

// Sizes returns a copy of the axis sizes.
func (v *Vector) Sizes() []int {
	out := make([]int, len(v.sizes))
	copy(out, v.sizes)

	return out
}

// Len returns the number of stored (non-zero) entries.
func (v *Vector) Len() int { return len(v.entries) }

// Entries returns a deep copy of the stored entries in coordinate order.
func (v *Vector) Entries() []VectorEntry {
	out := make([]VectorEntry, len(v.entries))
	for i, e := range v.entries {
		c := make([]int, len(e.Coord))
		copy(c, e.Coord)
		out[i] = VectorEntry{Coord: c, Value: e.Value}
	}

	return out
}

// At returns the amplitude at coord (0 when absent or out of range).
// Complexity: O(log E).
func (v *Vector) At(coord []int) complex128 {
	if validateCoord(coord, v.sizes) != nil {
		return 0
	}
	key := IndexFromCoords(coord, v.sizes)
	i := sort.SearchInts(v.keys, key)
	if i < len(v.keys) && v.keys[i] == key {
		return v.entries[i].Value
	}

	return 0
}

// AddVectors returns the entrywise sum of vs.
// Errors: ErrNoOperands for an empty list, ErrDimensionMismatch when any
// operand's dimensions differ from the first one's.
// Complexity: O(ΣE log ΣE).
func AddVectors(vs ...*Vector) (*Vector, error) {
	if len(vs) == 0 {
		return nil, tensorErrorf(opAdd, ErrNoOperands)
	}
	first := vs[0]
	total := 0
	for _, w := range vs {
		if err := CheckDimensions(first.dimensions, w.dimensions); err != nil {
			return nil, tensorErrorf(opAdd, err)
		}
		total += len(w.entries)
	}
	acc := newVecAccumulator(first.sizes, total)
	for _, w := range vs {
		for i, e := range w.entries {
			acc.add(w.keys[i], e.Value)
		}
	}

	return vectorFromAccumulator(first.dimensions, acc), nil
}

// Add returns v + w.
func (v *Vector) Add(w *Vector) (*Vector, error) { return AddVectors(v, w) }

// Sub returns v − w.
// Errors: ErrDimensionMismatch.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if err := CheckDimensions(v.dimensions, w.dimensions); err != nil {
		return nil, tensorErrorf(opSub, err)
	}

	return AddVectors(v, w.MulConstant(-1))
}

// MulConstant returns c·v. Only exact zero products are dropped, so scaling
// by zero yields the empty vector while tiny factors keep every entry.
func (v *Vector) MulConstant(c complex128) *Vector {
	acc := newVecAccumulator(v.sizes, len(v.entries))
	for i, e := range v.entries {
		acc.add(v.keys[i], c*e.Value)
	}

	return vectorFromAccumulator(v.dimensions, acc)
}

// Conj returns the entrywise complex conjugate, without stored zeros.
func (v *Vector) Conj() *Vector {
	keys := make([]int, 0, len(v.keys))
	entries := make([]VectorEntry, 0, len(v.entries))
	for i, e := range v.entries {
		if e.Value == 0 {
			continue
		}
		keys = append(keys, v.keys[i])
		entries = append(entries, VectorEntry{Coord: e.Coord, Value: complex(real(e.Value), -imag(e.Value))})
	}

	// coordinates are shared read-only with v; neither vector mutates them
	return &Vector{dimensions: copyDims(v.dimensions), sizes: v.sizes, keys: keys, entries: entries}
}

// Dot returns ⟨v|w⟩ = Σ_c conj(v_c)·w_c.
// Errors: ErrDimensionMismatch.
// Complexity: O(E_v + E_w) merge over sorted keys.
func (v *Vector) Dot(w *Vector) (complex128, error) {
	if err := CheckDimensions(v.dimensions, w.dimensions); err != nil {
		return 0, tensorErrorf(opDot, err)
	}
	var sum complex128
	i, j := 0, 0
	for i < len(v.keys) && j < len(w.keys) {
		switch {
		case v.keys[i] < w.keys[j]:
			i++
		case v.keys[i] > w.keys[j]:
			j++
		default:
			a := v.entries[i].Value
			sum += complex(real(a), -imag(a)) * w.entries[j].Value
			i++
			j++
		}
	}

	return sum, nil
}

// NormSquared returns ⟨v|v⟩ as a real number.
func (v *Vector) NormSquared() float64 {
	sum := 0.0
	for _, e := range v.entries {
		sum += scalar.Abs2(e.Value)
	}

	return sum
}

// Normalize returns v/‖v‖; the zero vector is returned unchanged.
func (v *Vector) Normalize() *Vector {
	n := v.NormSquared()
	if n == 0 {
		return v
	}

	return v.MulConstant(complex(1/math.Sqrt(n), 0))
}

// IsZero reports whether every stored amplitude is within eps of zero.
func (v *Vector) IsZero(eps float64) bool {
	for _, e := range v.entries {
		if !scalar.IsZero(e.Value, eps) {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether v and w share dimensions and agree on every
// coordinate within eps.
func (v *Vector) ApproxEqual(w *Vector, eps float64) bool {
	diff, err := v.Sub(w)
	if err != nil {
		return false
	}

	return diff.IsZero(eps)
}

// Outer returns the tensor product v ⊗ w over v's axes followed by w's.
// Every pair of entries yields one entry; only exact zero products are
// dropped. Axis names may repeat; later compatibility checks then compare
// positions, so callers keep track of which block is which.
// Errors: ErrInvalidDimension when the joint space has more than MaxInt
// coordinates.
// Complexity: O(E_v·E_w) entries.
func (v *Vector) Outer(w *Vector) (*Vector, error) {
	dims := append(copyDims(v.dimensions), w.dimensions...)
	sizes := append(v.Sizes(), w.sizes...)
	if _, err := checkedSize(sizes); err != nil {
		return nil, tensorErrorf(opOuter, err)
	}
	wSize := totalSize(w.sizes)
	keys := make([]int, 0, len(v.entries)*len(w.entries))
	entries := make([]VectorEntry, 0, len(v.entries)*len(w.entries))
	// v-major then w order keeps packed keys ascending without a sort
	for i, e1 := range v.entries {
		for j, e2 := range w.entries {
			if e1.Value*e2.Value == 0 {
				continue
			}
			keys = append(keys, v.keys[i]*wSize+w.keys[j])
			entries = append(entries, e1.Outer(e2))
		}
	}

	return &Vector{dimensions: dims, sizes: sizes, keys: keys, entries: entries}, nil
}

// OuterVectors folds Outer left to right over vs.
// Errors: ErrNoOperands, plus those of Outer.
func OuterVectors(vs ...*Vector) (*Vector, error) {
	if len(vs) == 0 {
		return nil, tensorErrorf(opOuter, ErrNoOperands)
	}
	out := vs[0]
	for _, w := range vs[1:] {
		next, err := out.Outer(w)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}
