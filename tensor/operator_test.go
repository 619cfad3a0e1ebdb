// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtensor/tensor"
)

func TestIdentity_ActsAsNeutral(t *testing.T) {
	x := MustPosition(t, 3, "x")
	dims := []*tensor.Dimension{x, tensor.Direction(), tensor.Polarization()}
	v := MustVector(t, dims,
		tensor.NamedEntry{Coord: "0,>,H", Value: 0.6},
		tensor.NamedEntry{Coord: "2,v,V", Value: 0.8i},
	)
	id := tensor.Identity(dims)
	require.Equal(t, 3*4*2, id.Len())

	got, err := id.MulVec(v)
	require.NoError(t, err)
	requireVectorsClose(t, v, got)
}

func TestZeros(t *testing.T) {
	pol := []*tensor.Dimension{tensor.Polarization()}
	z := tensor.Zeros(pol, pol)
	require.Equal(t, 0, z.Len())
	got, err := z.MulVec(MustKet(t, pol, "H"))
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func TestShift_InteriorRoundTripAndEdgeLoss(t *testing.T) {
	x := MustPosition(t, 4, "x")
	dims := []*tensor.Dimension{x}
	right, left := tensor.Shift(x, 1), tensor.Shift(x, -1)
	require.Equal(t, 3, right.Len(), "one input falls off the edge")

	interior := MustKet(t, dims, "1")
	moved, err := right.MulVec(interior)
	require.NoError(t, err)
	require.Equal(t, complex128(1), moved.At([]int{2}))
	back, err := left.MulVec(moved)
	require.NoError(t, err)
	requireVectorsClose(t, interior, back)

	edge := MustKet(t, dims, "3")
	lost, err := right.MulVec(edge)
	require.NoError(t, err)
	back, err = left.MulVec(lost)
	require.NoError(t, err)
	require.Less(t, back.NormSquared(), edge.NormSquared())
	require.Equal(t, 0, back.Len())

	// no wraparound on the other side either
	first := MustKet(t, dims, "0")
	gone, err := left.MulVec(first)
	require.NoError(t, err)
	require.Equal(t, 0, gone.Len())
}

func TestIndicator(t *testing.T) {
	dir := []*tensor.Dimension{tensor.Direction()}
	p, err := tensor.Indicator(dir, []string{"^"})
	require.NoError(t, err)
	require.Equal(t, 1, p.Len())
	require.Equal(t, complex128(1), p.At([]int{1}, []int{1}))

	up, err := p.MulVec(MustKet(t, dir, "^"))
	require.NoError(t, err)
	require.Equal(t, 1, up.Len())
	right, err := p.MulVec(MustKet(t, dir, ">"))
	require.NoError(t, err)
	require.Equal(t, 0, right.Len())

	_, err = tensor.Indicator(dir, []string{"x"})
	require.ErrorIs(t, err, tensor.ErrUnknownCoordinate)
}

func TestOperatorAlgebra(t *testing.T) {
	pol := []*tensor.Dimension{tensor.Polarization()}
	sx := pauliX(t)
	y, err := tensor.OperatorFromDense([][]complex128{{0, -1i}, {1i, 0}}, pol, pol, true)
	require.NoError(t, err)

	sum, err := sx.Add(y)
	require.NoError(t, err)
	require.Equal(t, complex128(1-1i), sum.At([]int{0}, []int{1}))
	require.Equal(t, complex128(1+1i), sum.At([]int{1}, []int{0}))

	diff, err := sum.Sub(y)
	require.NoError(t, err)
	require.Equal(t, sx.ToDense(), diff.ToDense())

	zero, err := sx.Sub(sx)
	require.NoError(t, err)
	require.Equal(t, 0, zero.Len())

	require.Equal(t, complex128(2i), sx.MulConstant(2i).At([]int{1}, []int{0}))

	// σy is Hermitian: dag(σy) == σy, while transpose and conj each flip sign
	require.Equal(t, y.ToDense(), y.Dag().ToDense())
	require.Equal(t, y.MulConstant(-1).ToDense(), y.Transpose().ToDense())
	require.Equal(t, y.MulConstant(-1).ToDense(), y.Conj().ToDense())

	all, err := tensor.AddOperators(sx, sx, sx)
	require.NoError(t, err)
	require.Equal(t, complex128(3), all.At([]int{0}, []int{1}))
}

func TestOperatorAlgebra_Errors(t *testing.T) {
	pol := []*tensor.Dimension{tensor.Polarization()}
	spin := []*tensor.Dimension{tensor.Spin()}
	a := tensor.Identity(pol)
	b := tensor.Identity(spin)

	_, err := a.Add(b)
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.AddOperators()
	require.ErrorIs(t, err, tensor.ErrNoOperands)
	_, err = tensor.OuterOperators()
	require.ErrorIs(t, err, tensor.ErrNoOperands)
	_, err = a.MulVec(MustKet(t, spin, "u"))
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

func TestTransposeOfRectangular(t *testing.T) {
	pol := []*tensor.Dimension{tensor.Polarization()}
	dir := []*tensor.Dimension{tensor.Direction()}
	op, err := tensor.OperatorFromNamedEntries([]tensor.NamedOperatorEntry{
		{Out: "^", In: "V", Value: 1i},
	}, dir, pol)
	require.NoError(t, err)

	tr := op.Transpose()
	require.Equal(t, []string{"polarization"}, tensor.DimNames(tr.DimensionsOut()))
	require.Equal(t, []string{"direction"}, tensor.DimNames(tr.DimensionsIn()))
	require.Equal(t, complex128(1i), tr.At([]int{1}, []int{1}))
	require.Equal(t, complex128(-1i), op.Dag().At([]int{1}, []int{1}))

	v, err := op.MulVec(MustKet(t, pol, "V"))
	require.NoError(t, err)
	require.Equal(t, complex128(1i), v.At([]int{1}))
}

func TestOperatorOuter(t *testing.T) {
	pol := []*tensor.Dimension{tensor.Polarization()}
	dir := []*tensor.Dimension{tensor.Direction()}
	sx := pauliX(t)
	shiftDir := tensor.Shift(tensor.Direction(), 1)

	op, err := shiftDir.Outer(sx)
	require.NoError(t, err)
	require.Equal(t, 3*2, op.Len())
	require.Equal(t, []string{"direction", "polarization"}, tensor.DimNames(op.DimensionsOut()))

	v, err := tensor.OuterVectors(MustKet(t, dir, ">"), MustKet(t, pol, "H"))
	require.NoError(t, err)
	got, err := op.MulVec(v)
	require.NoError(t, err)
	require.Equal(t, complex128(1), got.At([]int{1, 1}))

	triple, err := tensor.OuterOperators(sx, sx, sx)
	require.NoError(t, err)
	require.Equal(t, 8, triple.Len())
}

func TestOperatorMul(t *testing.T) {
	pol := []*tensor.Dimension{tensor.Polarization()}
	sx := pauliX(t)
	sq, err := sx.Mul(sx)
	require.NoError(t, err)
	require.Equal(t, tensor.Identity(pol).ToDense(), sq.ToDense())

	_, err = sx.Mul(tensor.Identity([]*tensor.Dimension{tensor.Spin()}))
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

func TestOperatorFromDense_Errors(t *testing.T) {
	pol := []*tensor.Dimension{tensor.Polarization()}
	_, err := tensor.OperatorFromDense([][]complex128{{1, 0}}, pol, pol, true)
	require.ErrorIs(t, err, tensor.ErrBadShape)
	_, err = tensor.OperatorFromDense([][]complex128{{1, 0}, {0}}, pol, pol, true)
	require.ErrorIs(t, err, tensor.ErrBadShape)

	kept, err := tensor.OperatorFromDense([][]complex128{{1, 0}, {0, 1}}, pol, pol, false)
	require.NoError(t, err)
	require.Equal(t, 4, kept.Len())
}

func TestNewOperator_Validation(t *testing.T) {
	pol := []*tensor.Dimension{tensor.Polarization()}
	_, err := tensor.NewOperator([]tensor.OperatorEntry{{CoordOut: []int{0}, CoordIn: []int{5}, Value: 1}}, pol, pol)
	require.ErrorIs(t, err, tensor.ErrCoordinateOutOfRange)
	_, err = tensor.NewOperator([]tensor.OperatorEntry{{CoordOut: []int{}, CoordIn: []int{0}, Value: 1}}, pol, pol)
	require.ErrorIs(t, err, tensor.ErrCoordinateOutOfRange)

	_, err = tensor.OperatorFromNamedEntries([]tensor.NamedOperatorEntry{{Out: "Q", In: "H", Value: 1}}, pol, nil)
	require.ErrorIs(t, err, tensor.ErrUnknownCoordinate)
}
