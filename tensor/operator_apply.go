// SPDX-License-Identifier: MIT

// Package tensor - operator application and composition.
//
// Purpose:
//   - MulVec applies an operator to a vector living exactly in its input space.
//   - MulVecPartial applies an operator to a subset of a vector's axes and
//     passes the remaining axes through untouched. It is equivalent to tensoring
//     the operator with identities on the other axes, without materialising
//     those identities; this is how a single-photon operator acts on one
//     photon's block of a multi-photon state.
//   - Mul composes two operators.
//
// Complexity:
//   - All three group the operator's entries by input coordinate once (O(E_op)),
//     then touch each vector/right-operand entry once per matching element.

package tensor

import "fmt"

// byInput groups entries by packed input coordinate.
func (o *Operator) byInput() map[int][]int {
	group := make(map[int][]int, len(o.entries))
	for i, k := range o.keys {
		group[k.in] = append(group[k.in], i)
	}

	return group
}

// MulVec returns o·v.
// Errors: ErrDimensionMismatch unless v's dimensions equal DimensionsIn.
func (o *Operator) MulVec(v *Vector) (*Vector, error) {
	if err := CheckDimensions(o.dimensionsIn, v.dimensions); err != nil {
		return nil, tensorErrorf(opMulVec, err)
	}
	group := o.byInput()
	acc := newVecAccumulator(o.sizesOut, len(v.entries))
	for i, ve := range v.entries {
		for _, j := range group[v.keys[i]] {
			acc.add(o.keys[j].out, o.entries[j].Value*ve.Value)
		}
	}

	return vectorFromAccumulator(o.dimensionsOut, acc), nil
}

// MulVecPartial applies o to the axes of v listed in axes (in that order),
// leaving every other axis of each entry unchanged. The result's axes at those
// positions become DimensionsOut.
// Errors:
//   - ErrAxisIndex when axes repeat, fall outside v, or their count differs
//     from the operator's input arity.
//   - ErrDimensionMismatch when the selected axes do not match DimensionsIn, or
//     the operator's output arity differs from its input arity.
//   - ErrInvalidDimension when the result space has more than MaxInt coordinates.
func (o *Operator) MulVecPartial(axes []int, v *Vector) (*Vector, error) {
	if err := validateAxes(axes, len(o.dimensionsIn), len(v.dimensions)); err != nil {
		return nil, tensorErrorf(opMulVecPartial, err)
	}
	if len(o.dimensionsOut) != len(o.dimensionsIn) {
		return nil, tensorErrorf(opMulVecPartial,
			fmt.Errorf("%d output axes for %d input axes: %w", len(o.dimensionsOut), len(o.dimensionsIn), ErrDimensionMismatch))
	}
	selected := make([]*Dimension, len(axes))
	for k, a := range axes {
		selected[k] = v.dimensions[a]
	}
	if err := CheckDimensions(o.dimensionsIn, selected); err != nil {
		return nil, tensorErrorf(opMulVecPartial, err)
	}

	outDims := copyDims(v.dimensions)
	for k, a := range axes {
		outDims[a] = o.dimensionsOut[k]
	}
	outSizes := Sizes(outDims)
	if _, err := checkedSize(outSizes); err != nil {
		return nil, tensorErrorf(opMulVecPartial, err)
	}

	group := o.byInput()
	acc := newVecAccumulator(outSizes, len(v.entries))
	sub := make([]int, len(axes))
	coord := make([]int, len(outDims))
	for _, ve := range v.entries {
		for k, a := range axes {
			sub[k] = ve.Coord[a]
		}
		for _, j := range group[IndexFromCoords(sub, o.sizesIn)] {
			copy(coord, ve.Coord)
			for k, a := range axes {
				coord[a] = o.entries[j].CoordOut[k]
			}
			acc.add(IndexFromCoords(coord, outSizes), o.entries[j].Value*ve.Value)
		}
	}

	return vectorFromAccumulator(outDims, acc), nil
}

// validateAxes checks count, range and uniqueness of partial-application axes.
func validateAxes(axes []int, arity, nAxes int) error {
	if len(axes) != arity {
		return fmt.Errorf("%d axes for operator of arity %d: %w", len(axes), arity, ErrAxisIndex)
	}
	seen := make(map[int]struct{}, len(axes))
	for _, a := range axes {
		if a < 0 || a >= nAxes {
			return fmt.Errorf("axis %d outside [0,%d): %w", a, nAxes, ErrAxisIndex)
		}
		if _, dup := seen[a]; dup {
			return fmt.Errorf("axis %d repeated: %w", a, ErrAxisIndex)
		}
		seen[a] = struct{}{}
	}

	return nil
}

// Mul returns the composition o·p (apply p first, then o).
// Errors: ErrDimensionMismatch unless p's output space equals o's input space.
func (o *Operator) Mul(p *Operator) (*Operator, error) {
	if err := CheckDimensions(o.dimensionsIn, p.dimensionsOut); err != nil {
		return nil, tensorErrorf(opMul, err)
	}
	group := o.byInput()
	acc := newOpAccumulator(o.sizesOut, p.sizesIn, len(o.entries)+len(p.entries))
	for i, pe := range p.entries {
		mid := p.keys[i].out
		for _, j := range group[mid] {
			acc.add(opKey{out: o.keys[j].out, in: p.keys[i].in}, o.entries[j].Value*pe.Value)
		}
	}

	return operatorFromAccumulator(o.dimensionsOut, p.dimensionsIn, acc), nil
}
