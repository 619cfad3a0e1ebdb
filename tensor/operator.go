// SPDX-License-Identifier: MIT

// Package tensor - Operator: sparse linear map between named spaces.
//
// Purpose:
//   - Represent Σ a_{o,i} |o⟩⟨i| from Vector(dimensionsIn) to Vector(dimensionsOut).
//   - Provide structural factories (identity, zeros, shift, indicator) and the
//     operator algebra (add, sub, scale, transpose, conj, dag, outer).
//
// Boundary policy:
//   - Shift omits entries whose target leaves [0, size). Amplitude moving off
//     an axis edge is lost, which models absorption at a board edge.
//
// Immutability:
//   - A *Operator is never modified after construction.

package tensor

// Operator is a sparse linear map.
type Operator struct {
	dimensionsOut []*Dimension
	dimensionsIn  []*Dimension
	sizesOut      []int
	sizesIn       []int
	keys          []opKey         // packed (out, in), ascending; parallel to entries
	entries       []OperatorEntry // stored matrix elements
}

// NewOperator builds an operator from explicit entries.
// Duplicate (out, in) pairs are summed; zero and cancelled sums are dropped.
// Errors: ErrInvalidDimension when either space has more than MaxInt
// coordinates, ErrCoordinateOutOfRange when an entry does not fit the
// dimensions.
// Complexity: O(E log E).
func NewOperator(entries []OperatorEntry, dimsOut, dimsIn []*Dimension) (*Operator, error) {
	sizesOut, sizesIn := Sizes(dimsOut), Sizes(dimsIn)
	if err := checkSpaces(sizesOut, sizesIn); err != nil {
		return nil, tensorErrorf(opNewOperator, err)
	}
	acc := newOpAccumulator(sizesOut, sizesIn, len(entries))
	for _, e := range entries {
		if err := validateCoord(e.CoordOut, sizesOut); err != nil {
			return nil, tensorErrorf(opNewOperator, err)
		}
		if err := validateCoord(e.CoordIn, sizesIn); err != nil {
			return nil, tensorErrorf(opNewOperator, err)
		}
		acc.add(opKey{out: IndexFromCoords(e.CoordOut, sizesOut), in: IndexFromCoords(e.CoordIn, sizesIn)}, e.Value)
	}

	return operatorFromAccumulator(dimsOut, dimsIn, acc), nil
}

// checkSpaces applies checkedSize to both sides of an operator.
func checkSpaces(sizesOut, sizesIn []int) error {
	if _, err := checkedSize(sizesOut); err != nil {
		return err
	}
	_, err := checkedSize(sizesIn)

	return err
}

func operatorFromAccumulator(dimsOut, dimsIn []*Dimension, acc *opAccumulator) *Operator {
	keys, entries := acc.build()

	return &Operator{
		dimensionsOut: copyDims(dimsOut),
		dimensionsIn:  copyDims(dimsIn),
		sizesOut:      acc.sizesOut,
		sizesIn:       acc.sizesIn,
		keys:          keys,
		entries:       entries,
	}
}

// Identity returns 1 on dims: one entry (c, c) → 1 per coordinate c.
// Complexity: O(Π sizes).
func Identity(dims []*Dimension) *Operator {
	sizes := Sizes(dims)
	n := totalSize(sizes)
	keys := make([]opKey, n)
	entries := make([]OperatorEntry, n)
	for i := 0; i < n; i++ {
		coord := CoordsFromIndex(i, sizes)
		keys[i] = opKey{out: i, in: i}
		entries[i] = OperatorEntry{CoordOut: coord, CoordIn: coord, Value: 1}
	}

	return &Operator{
		dimensionsOut: copyDims(dims),
		dimensionsIn:  copyDims(dims),
		sizesOut:      sizes,
		sizesIn:       sizes,
		keys:          keys,
		entries:       entries,
	}
}

// Zeros returns the zero operator from dimsIn to dimsOut (no entries).
func Zeros(dimsOut, dimsIn []*Dimension) *Operator {
	return &Operator{
		dimensionsOut: copyDims(dimsOut),
		dimensionsIn:  copyDims(dimsIn),
		sizesOut:      Sizes(dimsOut),
		sizesIn:       Sizes(dimsIn),
	}
}

// Shift returns the operator mapping |i⟩ to |i+delta⟩ on a single dimension.
// Inputs whose target falls outside [0, size) have no entry: no wraparound,
// no clamping.
// Complexity: O(size).
func Shift(dim *Dimension, delta int) *Operator {
	dims := []*Dimension{dim}
	sizes := []int{dim.Size()}
	acc := newOpAccumulator(sizes, sizes, dim.Size())
	for i := 0; i < dim.Size(); i++ {
		j := i + delta
		if j < 0 || j >= dim.Size() {
			continue // lost off the edge
		}
		acc.add(opKey{out: j, in: i}, 1)
	}

	return operatorFromAccumulator(dims, dims, acc)
}

// Indicator returns the rank-1 projector |c⟩⟨c| for the coordinate c named by
// labels. Tensored with identities it selects one cell of a larger space.
// Errors: ErrCoordinateOutOfRange, ErrUnknownCoordinate.
func Indicator(dims []*Dimension, labels []string) (*Operator, error) {
	coord, err := coordLabelsToIndices(labels, dims)
	if err != nil {
		return nil, tensorErrorf(opIndicator, err)
	}

	return NewOperator([]OperatorEntry{{CoordOut: coord, CoordIn: coord, Value: 1}}, dims, dims)
}

// DimensionsOut returns a copy of the output axis list.
func (o *Operator) DimensionsOut() []*Dimension { return copyDims(o.dimensionsOut) }

// DimensionsIn returns a copy of the input axis list.
func (o *Operator) DimensionsIn() []*Dimension { return copyDims(o.dimensionsIn) }

// Len returns the number of stored entries.
func (o *Operator) Len() int { return len(o.entries) }

// Entries returns a deep copy of the stored entries, ordered by (out, in).
func (o *Operator) Entries() []OperatorEntry {
	out := make([]OperatorEntry, len(o.entries))
	for i, e := range o.entries {
		co := make([]int, len(e.CoordOut))
		ci := make([]int, len(e.CoordIn))
		copy(co, e.CoordOut)
		copy(ci, e.CoordIn)
		out[i] = OperatorEntry{CoordOut: co, CoordIn: ci, Value: e.Value}
	}

	return out
}

// At returns the element ⟨out|o|in⟩ (0 when absent or out of range).
func (o *Operator) At(coordOut, coordIn []int) complex128 {
	if validateCoord(coordOut, o.sizesOut) != nil || validateCoord(coordIn, o.sizesIn) != nil {
		return 0
	}
	key := opKey{out: IndexFromCoords(coordOut, o.sizesOut), in: IndexFromCoords(coordIn, o.sizesIn)}
	lo, hi := 0, len(o.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if o.keys[mid].less(key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(o.keys) && o.keys[lo] == key {
		return o.entries[lo].Value
	}

	return 0
}

// sameSpace checks that o and p share both dimension lists.
func (o *Operator) sameSpace(p *Operator) error {
	if err := CheckDimensions(o.dimensionsOut, p.dimensionsOut); err != nil {
		return err
	}

	return CheckDimensions(o.dimensionsIn, p.dimensionsIn)
}

// AddOperators returns the entrywise sum of ops.
// Errors: ErrNoOperands, ErrDimensionMismatch.
// Complexity: O(ΣE log ΣE).
func AddOperators(ops ...*Operator) (*Operator, error) {
	if len(ops) == 0 {
		return nil, tensorErrorf(opAdd, ErrNoOperands)
	}
	first := ops[0]
	total := 0
	for _, p := range ops {
		if err := first.sameSpace(p); err != nil {
			return nil, tensorErrorf(opAdd, err)
		}
		total += len(p.entries)
	}
	acc := newOpAccumulator(first.sizesOut, first.sizesIn, total)
	for _, p := range ops {
		for i, e := range p.entries {
			acc.add(p.keys[i], e.Value)
		}
	}

	return operatorFromAccumulator(first.dimensionsOut, first.dimensionsIn, acc), nil
}

// Add returns o + p.
func (o *Operator) Add(p *Operator) (*Operator, error) { return AddOperators(o, p) }

// Sub returns o − p.
// Errors: ErrDimensionMismatch.
func (o *Operator) Sub(p *Operator) (*Operator, error) {
	if err := o.sameSpace(p); err != nil {
		return nil, tensorErrorf(opSub, err)
	}

	return AddOperators(o, p.MulConstant(-1))
}

// MulConstant returns c·o.
func (o *Operator) MulConstant(c complex128) *Operator {
	acc := newOpAccumulator(o.sizesOut, o.sizesIn, len(o.entries))
	for i, e := range o.entries {
		acc.add(o.keys[i], c*e.Value)
	}

	return operatorFromAccumulator(o.dimensionsOut, o.dimensionsIn, acc)
}

// Transpose swaps input and output: ⟨i|oᵀ|o⟩ = ⟨o|op|i⟩.
func (o *Operator) Transpose() *Operator {
	acc := newOpAccumulator(o.sizesIn, o.sizesOut, len(o.entries))
	for i, e := range o.entries {
		acc.add(opKey{out: o.keys[i].in, in: o.keys[i].out}, e.Value)
	}

	return operatorFromAccumulator(o.dimensionsIn, o.dimensionsOut, acc)
}

// Conj conjugates every element.
func (o *Operator) Conj() *Operator {
	acc := newOpAccumulator(o.sizesOut, o.sizesIn, len(o.entries))
	for i, e := range o.entries {
		acc.add(o.keys[i], complex(real(e.Value), -imag(e.Value)))
	}

	return operatorFromAccumulator(o.dimensionsOut, o.dimensionsIn, acc)
}

// Dag returns the adjoint o† (transpose and conjugate).
func (o *Operator) Dag() *Operator { return o.Transpose().Conj() }

// Outer returns the tensor product o ⊗ p: output axes of o then p, input
// axes of o then p, entries the cartesian product of both entry sets. Only
// exact zero products are dropped.
// Errors: ErrInvalidDimension when either joint space has more than MaxInt
// coordinates.
// Complexity: O(E_o·E_p).
func (o *Operator) Outer(p *Operator) (*Operator, error) {
	dimsOut := append(copyDims(o.dimensionsOut), p.dimensionsOut...)
	dimsIn := append(copyDims(o.dimensionsIn), p.dimensionsIn...)
	sizesOut := append(Sizes(o.dimensionsOut), p.sizesOut...)
	sizesIn := append(Sizes(o.dimensionsIn), p.sizesIn...)
	if err := checkSpaces(sizesOut, sizesIn); err != nil {
		return nil, tensorErrorf(opOuter, err)
	}
	pOut, pIn := totalSize(p.sizesOut), totalSize(p.sizesIn)
	acc := newOpAccumulator(sizesOut, sizesIn, len(o.entries)*len(p.entries))
	for i, e1 := range o.entries {
		for j, e2 := range p.entries {
			key := opKey{
				out: o.keys[i].out*pOut + p.keys[j].out,
				in:  o.keys[i].in*pIn + p.keys[j].in,
			}
			acc.add(key, e1.Value*e2.Value)
		}
	}

	return operatorFromAccumulator(dimsOut, dimsIn, acc), nil
}

// OuterOperators folds Outer left to right over ops.
// Errors: ErrNoOperands, plus those of Outer.
func OuterOperators(ops ...*Operator) (*Operator, error) {
	if len(ops) == 0 {
		return nil, tensorErrorf(opOuter, ErrNoOperands)
	}
	out := ops[0]
	for _, p := range ops[1:] {
		next, err := out.Outer(p)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}
