// SPDX-License-Identifier: MIT

package photons_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtensor/elements"
	"github.com/katalvlaran/qtensor/photons"
)

// newPair puts a right-moving H photon at (0,0) and a left-moving V photon at
// (2,2) on a 3×3 board.
func newPair(t *testing.T) *photons.Photons {
	t.Helper()
	p, err := photons.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, p.AddPhotonIndicator(0, 0, ">", "H"))
	require.NoError(t, p.AddPhotonIndicator(2, 2, "<", "V"))

	return p
}

func TestTwoPhotons_Symmetrized(t *testing.T) {
	p := newPair(t)
	require.Equal(t, 2, p.Count())
	require.Len(t, p.State().Dimensions(), 8)
	require.Equal(t, 2, p.State().Len())

	a := []int{0, 0, 0, 0, 2, 2, 2, 1}
	b := []int{2, 2, 2, 1, 0, 0, 0, 0}
	require.InDelta(t, math.Sqrt2/2, real(p.State().At(a)), eps)
	require.Equal(t, p.State().At(a), p.State().At(b))
	require.InDelta(t, 1.0, p.TotalProbability(), eps)
}

func TestTwoPhotons_ThirdRejected(t *testing.T) {
	p := newPair(t)
	before := p.State()
	err := p.AddPhotonIndicator(1, 1, "^", "H")
	require.ErrorIs(t, err, photons.ErrUnsupportedPhotonCount)
	require.Equal(t, 2, p.Count())
	require.Same(t, before, p.State())

	_, err = p.TotalIntensityPerTile()
	require.ErrorIs(t, err, photons.ErrUnsupportedPhotonCount)
}

func TestTwoPhotons_NonOrthogonalRejected(t *testing.T) {
	p, err := photons.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, p.AddPhotonIndicator(1, 1, ">", "H"))

	err = p.AddPhotonIndicator(1, 1, ">", "H")
	require.ErrorIs(t, err, photons.ErrNonOrthogonalPhotons)
	require.Equal(t, 1, p.Count())

	// a superposed first photon overlaps any of its branches
	bs, err := elements.BeamSplitter(45)
	require.NoError(t, err)
	require.NoError(t, p.ActOnSinglePhotons([]photons.Interaction{{X: 1, Y: 1, Op: bs}}))
	err = p.AddPhotonIndicator(1, 1, "^", "H")
	require.ErrorIs(t, err, photons.ErrNonOrthogonalPhotons)

	// same tile, other polarization: orthogonal
	require.NoError(t, p.AddPhotonIndicator(1, 1, ">", "V"))
	require.Equal(t, 2, p.Count())
}

func TestTwoPhotons_PropagateEachBlock(t *testing.T) {
	p := newPair(t)
	require.NoError(t, p.Propagate())

	a := []int{1, 0, 0, 0, 1, 2, 2, 1}
	b := []int{1, 2, 2, 1, 1, 0, 0, 0}
	require.Equal(t, 2, p.State().Len())
	require.InDelta(t, math.Sqrt2/2, real(p.State().At(a)), eps)
	require.InDelta(t, math.Sqrt2/2, real(p.State().At(b)), eps)
}

func TestTwoPhotons_InteractionTouchesOnlyItsTile(t *testing.T) {
	p := newPair(t)
	require.NoError(t, p.Propagate())
	mirror, err := elements.Mirror(45)
	require.NoError(t, err)
	require.NoError(t, p.ActOnSinglePhotons([]photons.Interaction{{X: 1, Y: 0, Op: mirror}}))

	// first photon turned up with the H reflection phase, second untouched
	a := []int{1, 0, 1, 0, 1, 2, 2, 1}
	b := []int{1, 2, 2, 1, 1, 0, 1, 0}
	require.InDelta(t, -math.Sqrt2/2, real(p.State().At(a)), eps)
	require.InDelta(t, -math.Sqrt2/2, real(p.State().At(b)), eps)
	require.InDelta(t, 1.0, p.TotalProbability(), eps)
}

func TestTwoPhotons_EdgeLoss(t *testing.T) {
	p := newPair(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Propagate())
	}
	// both photons have walked off the board
	require.InDelta(t, 0.0, p.TotalProbability(), eps)
	require.Equal(t, 2, p.Count())
}

func TestTwoPhotons_SnapshotRoundTrip(t *testing.T) {
	p := newPair(t)
	data, err := p.Snapshot()
	require.NoError(t, err)

	q, err := photons.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, q.Restore(data))
	require.Equal(t, 2, q.Count())
	require.True(t, p.State().ApproxEqual(q.State(), eps))
}
