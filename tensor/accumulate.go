// SPDX-License-Identifier: MIT

// Package tensor - sparse accumulators.
//
// Every algebraic result is produced by summing contributions into a map keyed
// by packed coordinates, then emitting entries in ascending key order with
// cancelled sums dropped. This gives one code path for merging duplicates,
// cancelling terms and producing deterministic output.
//
// A sum counts as cancelled when it is exactly zero or when its magnitude is
// at most DropTolerance times the largest term that fed it. A key with a
// single contribution is therefore dropped only when that contribution is 0,
// however small it is in absolute terms.

package tensor

import (
	"math"
	"sort"
)

// cell is a running sum and the largest term magnitude added to it.
type cell struct {
	sum  complex128
	peak float64
}

func (c *cell) add(v complex128) {
	c.sum += v
	if m := magnitude(v); m > c.peak {
		c.peak = m
	}
}

// cancelled reports whether the sum is zero up to round-off of its terms.
func (c cell) cancelled() bool {
	return c.sum == 0 || magnitude(c.sum) <= DropTolerance*c.peak
}

// magnitude is the larger component of z in absolute value.
func magnitude(z complex128) float64 {
	return math.Max(math.Abs(real(z)), math.Abs(imag(z)))
}

// vecAccumulator sums amplitudes by packed coordinate.
type vecAccumulator struct {
	sizes []int
	cells map[int]cell
}

func newVecAccumulator(sizes []int, hint int) *vecAccumulator {
	return &vecAccumulator{sizes: sizes, cells: make(map[int]cell, hint)}
}

func (a *vecAccumulator) add(key int, v complex128) {
	c := a.cells[key]
	c.add(v)
	a.cells[key] = c
}

// build emits sorted entries and their keys, skipping cancelled sums.
func (a *vecAccumulator) build() ([]int, []VectorEntry) {
	keys := make([]int, 0, len(a.cells))
	for k, c := range a.cells {
		if !c.cancelled() {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)
	entries := make([]VectorEntry, len(keys))
	for i, k := range keys {
		entries[i] = VectorEntryFromIndex(k, a.sizes, a.cells[k].sum)
	}

	return keys, entries
}

// opKey is a packed (out, in) pair.
type opKey struct {
	out int // packed output coordinate
	in  int // packed input coordinate
}

func (k opKey) less(o opKey) bool {
	if k.out != o.out {
		return k.out < o.out
	}

	return k.in < o.in
}

// opAccumulator sums matrix elements by packed (out, in) pair.
type opAccumulator struct {
	sizesOut, sizesIn []int
	cells             map[opKey]cell
}

func newOpAccumulator(sizesOut, sizesIn []int, hint int) *opAccumulator {
	return &opAccumulator{sizesOut: sizesOut, sizesIn: sizesIn, cells: make(map[opKey]cell, hint)}
}

func (a *opAccumulator) add(key opKey, v complex128) {
	c := a.cells[key]
	c.add(v)
	a.cells[key] = c
}

// build emits entries sorted by (out, in), skipping cancelled sums.
func (a *opAccumulator) build() ([]opKey, []OperatorEntry) {
	keys := make([]opKey, 0, len(a.cells))
	for k, c := range a.cells {
		if !c.cancelled() {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	entries := make([]OperatorEntry, len(keys))
	for i, k := range keys {
		entries[i] = OperatorEntryFromIndices(k.out, k.in, a.sizesOut, a.sizesIn, a.cells[k].sum)
	}

	return keys, entries
}
