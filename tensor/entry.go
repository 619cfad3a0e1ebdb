// SPDX-License-Identifier: MIT

// Package tensor - sparse entries and mixed-radix coordinate packing.
//
// Coordinates are tuples with one index per axis. For map keys and dense
// conversion they are packed row-major (last axis fastest):
//
//	index = ((c0·s1 + c1)·s2 + c2)·s3 + ...
//
// which makes the packed order coincide with lexicographic coordinate order.

package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// VectorEntry is one stored amplitude of a Vector.
type VectorEntry struct {
	Coord []int      // one index per vector axis
	Value complex128 // amplitude at Coord
}

// OperatorEntry is one stored matrix element ⟨CoordOut|op|CoordIn⟩.
type OperatorEntry struct {
	CoordOut []int
	CoordIn  []int
	Value    complex128
}

// Outer concatenates coordinates and multiplies values: (c1 ++ c2, v1·v2).
func (e VectorEntry) Outer(o VectorEntry) VectorEntry {
	return VectorEntry{Coord: concatCoords(e.Coord, o.Coord), Value: e.Value * o.Value}
}

// String renders "Sparse vector entry [c0,c1,...] has value v".
func (e VectorEntry) String() string {
	return fmt.Sprintf("Sparse vector entry [%s] has value %v", joinInts(e.Coord), e.Value)
}

// Outer concatenates both coordinate tuples and multiplies values.
func (e OperatorEntry) Outer(o OperatorEntry) OperatorEntry {
	return OperatorEntry{
		CoordOut: concatCoords(e.CoordOut, o.CoordOut),
		CoordIn:  concatCoords(e.CoordIn, o.CoordIn),
		Value:    e.Value * o.Value,
	}
}

// String renders the entry for diagnostics.
func (e OperatorEntry) String() string {
	return fmt.Sprintf("Sparse operator entry [%s, %s] has value %v",
		joinInts(e.CoordOut), joinInts(e.CoordIn), e.Value)
}

// CoordsFromIndex decomposes a packed index into a coordinate tuple.
// Complexity: O(len(sizes)).
func CoordsFromIndex(index int, sizes []int) []int {
	coord := make([]int, len(sizes))
	for i := len(sizes) - 1; i >= 0; i-- {
		coord[i] = index % sizes[i]
		index /= sizes[i]
	}

	return coord
}

// IndexFromCoords packs a coordinate tuple into a single index.
// The caller guarantees len(coord) == len(sizes), bounds, and that Π sizes
// fits an int; every Vector and Operator constructor checks the latter.
func IndexFromCoords(coord, sizes []int) int {
	idx := 0
	for i, c := range coord {
		idx = idx*sizes[i] + c
	}

	return idx
}

// VectorEntryFromIndex builds an entry from a packed index.
func VectorEntryFromIndex(index int, sizes []int, value complex128) VectorEntry {
	return VectorEntry{Coord: CoordsFromIndex(index, sizes), Value: value}
}

// OperatorEntryFromIndices builds an entry from packed output and input indices.
func OperatorEntryFromIndices(indexOut, indexIn int, sizesOut, sizesIn []int, value complex128) OperatorEntry {
	return OperatorEntry{
		CoordOut: CoordsFromIndex(indexOut, sizesOut),
		CoordIn:  CoordsFromIndex(indexIn, sizesIn),
		Value:    value,
	}
}

// totalSize returns Π sizes (1 for the empty product).
func totalSize(sizes []int) int {
	n := 1
	for _, s := range sizes {
		n *= s
	}

	return n
}

// checkedSize returns Π sizes, or ErrInvalidDimension when the product does not
// fit an int. Packed keys are only unique below that bound.
func checkedSize(sizes []int) (int, error) {
	n := 1
	for i, s := range sizes {
		if s <= 0 {
			return 0, fmt.Errorf("axis %d has size %d: %w", i, s, ErrInvalidDimension)
		}
		if n > math.MaxInt/s {
			return 0, fmt.Errorf("space of %d axes exceeds %d coordinates: %w", len(sizes), math.MaxInt, ErrInvalidDimension)
		}
		n *= s
	}

	return n, nil
}

// validateCoord checks arity and per-axis bounds of coord against sizes.
func validateCoord(coord, sizes []int) error {
	if len(coord) != len(sizes) {
		return fmt.Errorf("coordinate [%s] has %d axes, want %d: %w",
			joinInts(coord), len(coord), len(sizes), ErrCoordinateOutOfRange)
	}
	for i, c := range coord {
		if c < 0 || c >= sizes[i] {
			return fmt.Errorf("coordinate [%s] axis %d outside [0,%d): %w",
				joinInts(coord), i, sizes[i], ErrCoordinateOutOfRange)
		}
	}

	return nil
}

func concatCoords(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}
