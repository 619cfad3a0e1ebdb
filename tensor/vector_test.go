// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qtensor/scalar"
	"github.com/katalvlaran/qtensor/tensor"
)

// VectorSuite exercises the vector-space algebra over [polarization, spin].
type VectorSuite struct {
	suite.Suite
	dims []*tensor.Dimension
	v    *tensor.Vector // (1+i)|Hu⟩ + 2|Vd⟩
	w    *tensor.Vector // 3|Hu⟩ − i|Hd⟩
}

func (s *VectorSuite) SetupTest() {
	s.dims = []*tensor.Dimension{tensor.Polarization(), tensor.Spin()}
	s.v = MustVector(s.T(), s.dims,
		tensor.NamedEntry{Coord: "Hu", Value: 1 + 1i},
		tensor.NamedEntry{Coord: "Vd", Value: 2},
	)
	s.w = MustVector(s.T(), s.dims,
		tensor.NamedEntry{Coord: "Hu", Value: 3},
		tensor.NamedEntry{Coord: "Hd", Value: -1i},
	)
}

func (s *VectorSuite) TestAddSelfEqualsDouble() {
	sum, err := tensor.AddVectors(s.v, s.v)
	s.Require().NoError(err)
	s.Require().True(sum.ApproxEqual(s.v.MulConstant(2), eps))
}

func (s *VectorSuite) TestSubSelfIsEmpty() {
	diff, err := s.v.Sub(s.v)
	s.Require().NoError(err)
	s.Require().Equal(0, diff.Len())
}

func (s *VectorSuite) TestAddMergesAndSorts() {
	sum, err := s.v.Add(s.w)
	s.Require().NoError(err)
	s.Require().Equal(3, sum.Len())
	s.Require().Equal(complex128(4+1i), sum.At([]int{0, 0}))
	s.Require().Equal(complex128(-1i), sum.At([]int{0, 1}))
	s.Require().Equal(complex128(2), sum.At([]int{1, 1}))
	s.Require().Equal(complex128(0), sum.At([]int{1, 0}))

	coords := [][]int{}
	for _, e := range sum.Entries() {
		coords = append(coords, e.Coord)
	}
	s.Require().Equal([][]int{{0, 0}, {0, 1}, {1, 1}}, coords)
}

func (s *VectorSuite) TestCancellationDropsEntry() {
	neg := MustVector(s.T(), s.dims, tensor.NamedEntry{Coord: "Vd", Value: -2})
	sum, err := s.v.Add(neg)
	s.Require().NoError(err)
	s.Require().Equal(1, sum.Len())
}

func (s *VectorSuite) TestMulConstantByZero() {
	s.Require().Equal(0, s.v.MulConstant(0).Len())
}

func (s *VectorSuite) TestConj() {
	c := s.v.Conj()
	s.Require().Equal(complex128(1-1i), c.At([]int{0, 0}))
	s.Require().Equal(complex128(1+1i), s.v.At([]int{0, 0}), "operand untouched")
}

func (s *VectorSuite) TestDot() {
	// ⟨v|w⟩ = conj(1+i)·3 = 3 − 3i ; only Hu overlaps
	d, err := s.v.Dot(s.w)
	s.Require().NoError(err)
	s.Require().True(scalar.Equal(3-3i, d, eps))

	// conjugate symmetry
	d2, err := s.w.Dot(s.v)
	s.Require().NoError(err)
	s.Require().True(scalar.Equal(d, complex(real(d2), -imag(d2)), eps))

	n, err := s.v.Dot(s.v)
	s.Require().NoError(err)
	s.Require().InDelta(6.0, real(n), eps)
	s.Require().InDelta(6.0, s.v.NormSquared(), eps)
}

func (s *VectorSuite) TestDimensionMismatch() {
	other := MustKet(s.T(), []*tensor.Dimension{tensor.Spin(), tensor.Polarization()}, "u", "H")
	_, err := s.v.Add(other)
	s.Require().ErrorIs(err, tensor.ErrDimensionMismatch)
	_, err = s.v.Sub(other)
	s.Require().ErrorIs(err, tensor.ErrDimensionMismatch)
	_, err = s.v.Dot(other)
	s.Require().ErrorIs(err, tensor.ErrDimensionMismatch)
	s.Require().False(s.v.ApproxEqual(other, eps))
}

func (s *VectorSuite) TestOuterBilinear() {
	dir := []*tensor.Dimension{tensor.Direction()}
	u := MustVector(s.T(), dir,
		tensor.NamedEntry{Coord: ">", Value: 0.5},
		tensor.NamedEntry{Coord: "v", Value: 2i},
	)

	sum, err := s.v.Add(s.w)
	s.Require().NoError(err)
	lhs := MustOuter(s.T(), sum, u)
	vu := MustOuter(s.T(), s.v, u)
	rhs, err := vu.Add(MustOuter(s.T(), s.w, u))
	s.Require().NoError(err)
	s.Require().True(lhs.ApproxEqual(rhs, eps))

	s.Require().Equal(s.v.Len()*u.Len(), vu.Len())
	s.Require().Equal([]string{"polarization", "spin", "direction"}, tensor.DimNames(lhs.Dimensions()))
	s.Require().Equal(complex128(2i*2), vu.At([]int{1, 1, 3}))
}

func (s *VectorSuite) TestNormalize() {
	n := s.v.Normalize()
	s.Require().InDelta(1.0, n.NormSquared(), eps)
	empty := tensor.EmptyVector(s.dims)
	s.Require().Same(empty, empty.Normalize())
}

func TestVectorSuite(t *testing.T) {
	suite.Run(t, new(VectorSuite))
}

func TestAddVectors_NoOperands(t *testing.T) {
	_, err := tensor.AddVectors()
	require.ErrorIs(t, err, tensor.ErrNoOperands)
	_, err = tensor.OuterVectors()
	require.ErrorIs(t, err, tensor.ErrNoOperands)
}

func TestOuterVectors(t *testing.T) {
	h := MustKet(t, []*tensor.Dimension{tensor.Polarization()}, "H")
	u := MustKet(t, []*tensor.Dimension{tensor.Spin()}, "u")
	hu, err := tensor.OuterVectors(h, u, h)
	require.NoError(t, err)
	require.Equal(t, 1, hu.Len())
	require.Equal(t, complex128(1), hu.At([]int{0, 0, 0}))
}

func TestNewVector_Validation(t *testing.T) {
	dims := []*tensor.Dimension{tensor.Polarization()}
	_, err := tensor.NewVector([]tensor.VectorEntry{{Coord: []int{2}, Value: 1}}, dims)
	require.ErrorIs(t, err, tensor.ErrCoordinateOutOfRange)
	_, err = tensor.NewVector([]tensor.VectorEntry{{Coord: []int{0, 0}, Value: 1}}, dims)
	require.ErrorIs(t, err, tensor.ErrCoordinateOutOfRange)

	merged, err := tensor.NewVector([]tensor.VectorEntry{
		{Coord: []int{1}, Value: 1},
		{Coord: []int{1}, Value: 2},
	}, dims)
	require.NoError(t, err)
	require.Equal(t, 1, merged.Len())
	require.Equal(t, complex128(3), merged.At([]int{1}))
}

func TestVectorIndicator(t *testing.T) {
	x := MustPosition(t, 3, "x")
	v := MustKet(t, []*tensor.Dimension{x, tensor.Direction()}, "2", "^")
	require.Equal(t, 1, v.Len())
	require.Equal(t, complex128(1), v.At([]int{2, 1}))

	_, err := tensor.VectorIndicator([]*tensor.Dimension{x}, []string{"3"})
	require.ErrorIs(t, err, tensor.ErrUnknownCoordinate)
	_, err = tensor.VectorIndicator([]*tensor.Dimension{x}, []string{"1", "2"})
	require.ErrorIs(t, err, tensor.ErrCoordinateOutOfRange)
}

func TestVectorDenseRoundTrip(t *testing.T) {
	dims := []*tensor.Dimension{MustPosition(t, 3, "x"), tensor.Polarization()}
	arr := []complex128{0, 1, 0.5i, 0, 0, -2}

	for _, drop := range []bool{true, false} {
		v, err := tensor.VectorFromDense(arr, dims, drop)
		require.NoError(t, err)
		require.Equal(t, arr, v.ToDense())
	}

	dropped, err := tensor.VectorFromDense(arr, dims, true)
	require.NoError(t, err)
	require.Equal(t, 3, dropped.Len())
	require.Equal(t, complex128(0.5i), dropped.At([]int{1, 0}))

	kept, err := tensor.VectorFromDense(arr, dims, false)
	require.NoError(t, err)
	require.Equal(t, 6, kept.Len())

	_, err = tensor.VectorFromDense(arr[:5], dims, true)
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

func TestVectorEntriesAreCopies(t *testing.T) {
	v := MustKet(t, []*tensor.Dimension{tensor.Polarization()}, "V")
	es := v.Entries()
	es[0].Coord[0] = 0
	require.Equal(t, complex128(1), v.At([]int{1}))
}

func TestVectorIsZero(t *testing.T) {
	dims := []*tensor.Dimension{tensor.Polarization()}
	tiny, err := tensor.VectorFromDense([]complex128{1e-11, 0}, dims, true)
	require.NoError(t, err)
	require.True(t, tiny.IsZero(1e-9))
	require.False(t, tiny.IsZero(1e-12))
	require.True(t, tensor.EmptyVector(dims).IsZero(0))
	require.InDelta(t, 0.0, tensor.EmptyVector(dims).NormSquared(), 0)
	require.False(t, math.IsNaN(tiny.Normalize().NormSquared()))
}
