// SPDX-License-Identifier: MIT

package photons

import (
	"github.com/katalvlaran/qtensor/grid"
	"github.com/katalvlaran/qtensor/scalar"
	"github.com/katalvlaran/qtensor/tensor"
)

// PolarizationAggregate holds the polarization amplitudes of a photon on one
// tile heading one way: (ARe + i·AIm)|H⟩ + (BRe + i·BIm)|V⟩.
// Direction is in degrees, 0 = right, counterclockwise.
type PolarizationAggregate struct {
	X, Y      int
	Direction int
	ARe, AIm  float64
	BRe, BIm  float64
}

// TileIntensity is the probability of finding the photon on tile (X, Y).
type TileIntensity struct {
	X, Y        int
	Probability float64
}

// AggregatePolarization groups the single-photon state by (x, y, direction)
// and reports both polarization amplitudes of each group, ordered by x, then
// y, then direction.
// Errors: ErrUnsupportedPhotonCount unless exactly one photon is present.
// Complexity: O(E).
func (p *Photons) AggregatePolarization() ([]PolarizationAggregate, error) {
	if err := p.requireSingle(); err != nil {
		return nil, photonsErrorf(opPolarization, err)
	}
	var out []PolarizationAggregate
	// entries are sorted by packed coordinate, so each group is contiguous
	for _, e := range p.state.Entries() {
		x, y, dir, pol := e.Coord[0], e.Coord[1], e.Coord[2], e.Coord[3]
		deg := grid.Direction(dir).Degrees()
		if n := len(out); n == 0 || out[n-1].X != x || out[n-1].Y != y || out[n-1].Direction != deg {
			out = append(out, PolarizationAggregate{X: x, Y: y, Direction: deg})
		}
		agg := &out[len(out)-1]
		if pol == 0 {
			agg.ARe, agg.AIm = real(e.Value), imag(e.Value)
		} else {
			agg.BRe, agg.BIm = real(e.Value), imag(e.Value)
		}
	}

	return out, nil
}

// TotalIntensityPerTile sums |amplitude|² over direction and polarization for
// every occupied tile, ordered by x, then y. Without losses the
// probabilities sum to one.
// Errors: ErrUnsupportedPhotonCount unless exactly one photon is present.
// Complexity: O(E).
func (p *Photons) TotalIntensityPerTile() ([]TileIntensity, error) {
	if err := p.requireSingle(); err != nil {
		return nil, photonsErrorf(opIntensity, err)
	}
	var out []TileIntensity
	for _, e := range p.state.Entries() {
		x, y := e.Coord[0], e.Coord[1]
		if n := len(out); n == 0 || out[n-1].X != x || out[n-1].Y != y {
			out = append(out, TileIntensity{X: x, Y: y})
		}
		out[len(out)-1].Probability += scalar.Abs2(e.Value)
	}

	return out, nil
}

// TotalProbability returns the squared norm of the joint state: 1 for a
// normalized lossless evolution, less once amplitude has been absorbed or
// has left the board. Works for any photon count; 0 when empty.
func (p *Photons) TotalProbability() float64 {
	return p.state.NormSquared()
}

// MeasureAbsorptionAtOperator returns the probability op would absorb on tile
// (x,y): ‖P_xy ψ‖² − ‖(P_xy ⊗ op) ψ‖², where P_xy projects onto the tile.
// The state is not changed.
// Errors: ErrUnsupportedPhotonCount unless exactly one photon is present, plus
// those of CreateLocalizedOperator.
func (p *Photons) MeasureAbsorptionAtOperator(x, y int, op *tensor.Operator) (float64, error) {
	if err := p.requireSingle(); err != nil {
		return 0, photonsErrorf(opAbsorption, err)
	}
	present, err := p.CreateLocalizedOperator(tensor.Identity(p.photonDims()[2:]), x, y)
	if err != nil {
		return 0, photonsErrorf(opAbsorption, err)
	}
	acted, err := p.CreateLocalizedOperator(op, x, y)
	if err != nil {
		return 0, photonsErrorf(opAbsorption, err)
	}
	before, err := present.MulVec(p.state)
	if err != nil {
		return 0, photonsErrorf(opAbsorption, err)
	}
	after, err := acted.MulVec(p.state)
	if err != nil {
		return 0, photonsErrorf(opAbsorption, err)
	}

	return before.NormSquared() - after.NormSquared(), nil
}
