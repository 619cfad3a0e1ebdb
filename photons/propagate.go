// SPDX-License-Identifier: MIT

package photons

import (
	"github.com/katalvlaran/qtensor/grid"
	"github.com/katalvlaran/qtensor/tensor"
)

// stepAlong moves one tile along dim by delta; a zero step is the identity.
func stepAlong(dim *tensor.Dimension, delta int) *tensor.Operator {
	if delta == 0 {
		return tensor.Identity([]*tensor.Dimension{dim})
	}

	return tensor.Shift(dim, delta)
}

// CreatePhotonPropagator returns the one-step propagator over
// [x, y, direction]: for each heading, the shift of x or y it implies,
// restricted to that heading by a direction indicator. With yDirMeansDown,
// "v" moves toward larger y.
func (p *Photons) CreatePhotonPropagator(yDirMeansDown bool) (*tensor.Operator, error) {
	dirAxis := []*tensor.Dimension{tensor.Direction()}
	branches := make([]*tensor.Operator, 0, len(grid.Directions()))
	for _, d := range grid.Directions() {
		dx, dy := d.Offset(yDirMeansDown)
		only, err := tensor.Indicator(dirAxis, []string{d.Label()})
		if err != nil {
			return nil, photonsErrorf(opPropagator, err)
		}
		branch, err := tensor.OuterOperators(stepAlong(p.dimX, dx), stepAlong(p.dimY, dy), only)
		if err != nil {
			return nil, photonsErrorf(opPropagator, err)
		}
		branches = append(branches, branch)
	}
	op, err := tensor.AddOperators(branches...)
	if err != nil {
		return nil, photonsErrorf(opPropagator, err)
	}

	return op, nil
}

// PropagatePhotons moves every photon one tile along its heading. The
// propagator acts on the x, y and direction axes of each photon block, leaving
// polarization untouched. Amplitude stepping off the board is lost.
func (p *Photons) PropagatePhotons(yDirMeansDown bool) error {
	op, err := p.CreatePhotonPropagator(yDirMeansDown)
	if err != nil {
		return photonsErrorf(opPropagate, err)
	}
	next, err := p.applyPerPhoton(op)
	if err != nil {
		return photonsErrorf(opPropagate, err)
	}
	before := p.state.NormSquared()
	p.state = next
	p.log.Debug().
		Int("entries", next.Len()).
		Float64("lost", before-next.NormSquared()).
		Msg("photons propagated")

	return nil
}

// Propagate is PropagatePhotons with the configured y convention.
func (p *Photons) Propagate() error {
	return p.PropagatePhotons(p.opts.YDirMeansDown)
}
